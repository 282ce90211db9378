package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	OrgID    uint
	TicketID uint
	Subject  *string
	Status   *string
	Priority *string
}

// UpdateTicketUseCase patches a ticket's subject, status, or priority. Any
// applied change bumps the activity timestamp.
type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.OrgID, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	changed := false

	if cmd.Subject != nil && *cmd.Subject != t.Subject() {
		if err := t.UpdateSubject(*cmd.Subject); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed = true
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if status != t.Status() {
			if err := t.ChangeStatus(status); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			changed = true
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if priority != t.Priority() {
			if err := t.ChangePriority(priority); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			changed = true
		}
	}

	if !changed {
		return t, nil
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "org_id", cmd.OrgID)
	return t, nil
}
