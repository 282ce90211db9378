package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	repo := new(mockTicketRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*ticket.Ticket"), mock.AnythingOfType("*ticket.Message")).
		Run(func(args mock.Arguments) {
			tk := args.Get(1).(*ticket.Ticket)
			msg := args.Get(2).(*ticket.Message)
			require.NoError(t, tk.SetID(5))
			require.NoError(t, msg.BindTicket(5))
			require.NoError(t, msg.SetID(1))
		}).Return(nil)

	uc := NewCreateTicketUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		OrgID:    1,
		Subject:  "VPN will not connect",
		Priority: "high",
		Message:  "Error 789 on every attempt since this morning.",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, result.Status())
	assert.Equal(t, vo.PriorityHigh, result.Priority())
	require.Len(t, result.Messages(), 1)
	assert.Equal(t, vo.RoleUser, result.Messages()[0].Role())
	repo.AssertExpectations(t)
}

func TestCreateTicketUseCase_Execute_DefaultsPriorityToMedium(t *testing.T) {
	repo := new(mockTicketRepository)
	repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateTicketUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		OrgID:   1,
		Subject: "Question about invoices",
		Message: "Where do I download last month's invoice?",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.PriorityMedium, result.Priority())
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{name: "subject too short", cmd: CreateTicketCommand{OrgID: 1, Subject: "hi", Message: "body"}},
		{name: "subject too long", cmd: CreateTicketCommand{OrgID: 1, Subject: strings.Repeat("x", 201), Message: "body"}},
		{name: "unknown priority", cmd: CreateTicketCommand{OrgID: 1, Subject: "valid subject", Priority: "urgent", Message: "body"}},
		{name: "empty message", cmd: CreateTicketCommand{OrgID: 1, Subject: "valid subject"}},
		{name: "message too long", cmd: CreateTicketCommand{OrgID: 1, Subject: "valid subject", Message: strings.Repeat("x", 5001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockTicketRepository)
			uc := NewCreateTicketUseCase(repo, noopLogger{})

			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
