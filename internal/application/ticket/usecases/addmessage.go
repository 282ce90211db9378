package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddMessageCommand struct {
	OrgID    uint
	TicketID uint
	Role     string
	Content  string
}

type AddMessageResult struct {
	Ticket  *ticket.Ticket
	Message *ticket.Message
}

// AddMessageUseCase appends a message to a ticket's conversation and bumps
// the ticket's activity timestamp.
type AddMessageUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddMessageUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	role := vo.RoleUser
	if cmd.Role != "" {
		r, err := vo.NewMessageRole(cmd.Role)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		role = r
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.OrgID, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	m, err := ticket.NewMessage(t.ID(), role, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t.RecordReply()
	if err := uc.ticketRepo.AddMessage(ctx, t, m); err != nil {
		uc.logger.Errorw("failed to add message", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to add message: %w", err)
	}

	return &AddMessageResult{Ticket: t, Message: m}, nil
}
