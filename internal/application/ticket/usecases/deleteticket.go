package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	OrgID    uint
	TicketID uint
}

// DeleteTicketUseCase removes a ticket and its messages. Admin-gated at the
// route level.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if err := uc.ticketRepo.Delete(ctx, cmd.OrgID, cmd.TicketID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "org_id", cmd.OrgID)
	return nil
}
