package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	OrgID    uint
	Subject  string
	Priority string
	Message  string
}

// CreateTicketUseCase opens a ticket with its initial user message in one
// transaction.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = p
	}

	t, err := ticket.NewTicket(cmd.OrgID, cmd.Subject, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	initial, err := ticket.NewMessage(0, vo.RoleUser, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t, initial); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "org_id", cmd.OrgID)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	t.AttachMessages([]*ticket.Message{initial})
	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "org_id", cmd.OrgID)
	return t, nil
}
