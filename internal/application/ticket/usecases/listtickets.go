package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type ListTicketsCommand struct {
	OrgID  uint
	Limit  int
	Offset int
}

type ListTicketsResult struct {
	Tickets []*ticket.Ticket
	Total   int64
	Limit   int
	Offset  int
}

// ListTicketsUseCase lists an org's tickets by most recent activity.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	filter := ticket.ListFilter{
		Limit:  utils.ClampLimit(cmd.Limit, defaultListLimit, maxListLimit),
		Offset: utils.ClampOffset(cmd.Offset),
	}

	tickets, total, err := uc.ticketRepo.List(ctx, cmd.OrgID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "org_id", cmd.OrgID)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ListTicketsResult{
		Tickets: tickets,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}
