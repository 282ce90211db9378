package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateOrgCommand struct {
	Name string
}

// CreateOrgUseCase creates an organization with a globally unique name.
type CreateOrgUseCase struct {
	orgRepo org.Repository
	logger  logger.Interface
}

func NewCreateOrgUseCase(orgRepo org.Repository, logger logger.Interface) *CreateOrgUseCase {
	return &CreateOrgUseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (uc *CreateOrgUseCase) Execute(ctx context.Context, cmd CreateOrgCommand) (*org.Org, error) {
	o, err := org.NewOrg(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orgRepo.Create(ctx, o); err != nil {
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("org name already exists")
		}
		uc.logger.Errorw("failed to create org", "error", err)
		return nil, fmt.Errorf("failed to create org: %w", err)
	}

	uc.logger.Infow("org created", "org_id", o.ID(), "name", o.Name())
	return o, nil
}
