package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteOrgCommand struct {
	OrgID uint
}

// DeleteOrgUseCase removes an organization, cascading its tickets and their
// messages and detaching member users first so no row still references the
// org when it goes. Detached members get a fresh default org on next login.
type DeleteOrgUseCase struct {
	orgRepo    org.Repository
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewDeleteOrgUseCase(orgRepo org.Repository, ticketRepo ticket.Repository, userRepo user.Repository, logger logger.Interface) *DeleteOrgUseCase {
	return &DeleteOrgUseCase{
		orgRepo:    orgRepo,
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *DeleteOrgUseCase) Execute(ctx context.Context, cmd DeleteOrgCommand) error {
	if _, err := uc.orgRepo.GetByID(ctx, cmd.OrgID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get org", "error", err, "org_id", cmd.OrgID)
		return fmt.Errorf("failed to get org: %w", err)
	}

	if err := uc.ticketRepo.DeleteByOrgID(ctx, cmd.OrgID); err != nil {
		uc.logger.Errorw("failed to cascade org tickets", "error", err, "org_id", cmd.OrgID)
		return fmt.Errorf("failed to delete org tickets: %w", err)
	}

	if err := uc.userRepo.DetachFromOrg(ctx, cmd.OrgID); err != nil {
		uc.logger.Errorw("failed to detach org members", "error", err, "org_id", cmd.OrgID)
		return fmt.Errorf("failed to detach org members: %w", err)
	}

	if err := uc.orgRepo.Delete(ctx, cmd.OrgID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete org", "error", err, "org_id", cmd.OrgID)
		return fmt.Errorf("failed to delete org: %w", err)
	}

	uc.logger.Infow("org deleted", "org_id", cmd.OrgID)
	return nil
}
