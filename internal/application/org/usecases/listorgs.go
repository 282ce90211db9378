package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/shared/logger"
)

// ListOrgsUseCase lists every organization, newest first.
type ListOrgsUseCase struct {
	orgRepo org.Repository
	logger  logger.Interface
}

func NewListOrgsUseCase(orgRepo org.Repository, logger logger.Interface) *ListOrgsUseCase {
	return &ListOrgsUseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (uc *ListOrgsUseCase) Execute(ctx context.Context) ([]*org.Org, error) {
	orgs, err := uc.orgRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list orgs", "error", err)
		return nil, fmt.Errorf("failed to list orgs: %w", err)
	}
	return orgs, nil
}
