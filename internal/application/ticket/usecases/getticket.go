package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketCommand struct {
	OrgID    uint
	TicketID uint
}

// GetTicketUseCase loads one ticket with its conversation, scoped to the
// caller's org. A ticket in another org reads as not found.
type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*ticket.Ticket, error) {
	t, err := uc.ticketRepo.GetByIDWithMessages(ctx, cmd.OrgID, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}
