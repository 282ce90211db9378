package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ai"
	"helpdesk/internal/domain/kb"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func conversationTicket(t *testing.T) *ticket.Ticket {
	t.Helper()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tk, err := ticket.ReconstructTicket(5, 1, "VPN keeps disconnecting", vo.StatusOpen, vo.PriorityMedium, now, now)
	require.NoError(t, err)

	m1, err := ticket.ReconstructMessage(1, 5, vo.RoleUser, "My VPN drops every few minutes.", now)
	require.NoError(t, err)
	m2, err := ticket.ReconstructMessage(2, 5, vo.RoleAgent, "Which client version are you on?", now)
	require.NoError(t, err)
	m3, err := ticket.ReconstructMessage(3, 5, vo.RoleUser, "Version 4.2, on office wifi.", now)
	require.NoError(t, err)
	tk.AttachMessages([]*ticket.Message{m1, m2, m3})
	return tk
}

func kbArticle(t *testing.T, id uint, title, body string) *kb.Article {
	t.Helper()
	a, err := kb.ReconstructArticle(id, title, body, nil, time.Now())
	require.NoError(t, err)
	return a
}

func TestDraftReplyUseCase_Execute(t *testing.T) {
	t.Run("drafts with conversation and knowledge base context", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		kbRepo := new(mockKBRepository)
		tk := conversationTicket(t)

		ticketRepo.On("GetByIDWithMessages", mock.Anything, uint(1), uint(5)).Return(tk, nil)
		kbRepo.On("SearchByTitle", mock.Anything, "VPN keeps disconnecting", 3).Return([]*kb.Article{
			kbArticle(t, 1, "VPN troubleshooting", "Restart the client and check your MTU settings."),
		}, nil)

		uc := NewDraftReplyUseCase(ticketRepo, kbRepo, ai.NewMockDrafter(), noopLogger{})
		result, err := uc.Execute(context.Background(), DraftReplyCommand{OrgID: 1, TicketID: 5, Tone: "professional"})

		require.NoError(t, err)
		assert.Equal(t, ai.ToneProfessional, result.Tone)
		assert.Contains(t, result.Draft, "Hello, thank you for contacting support.")
		assert.Contains(t, result.Draft, "VPN keeps disconnecting")
		assert.Contains(t, result.Draft, "Version 4.2, on office wifi.")
		assert.Contains(t, result.Draft, "- Restart the client and check your MTU settings.")
	})

	t.Run("is deterministic for the same context", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		kbRepo := new(mockKBRepository)
		tk := conversationTicket(t)

		ticketRepo.On("GetByIDWithMessages", mock.Anything, uint(1), uint(5)).Return(tk, nil)
		kbRepo.On("SearchByTitle", mock.Anything, mock.Anything, 3).Return([]*kb.Article{}, nil)

		uc := NewDraftReplyUseCase(ticketRepo, kbRepo, ai.NewMockDrafter(), noopLogger{})
		first, err := uc.Execute(context.Background(), DraftReplyCommand{OrgID: 1, TicketID: 5, Tone: "friendly"})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), DraftReplyCommand{OrgID: 1, TicketID: 5, Tone: "friendly"})
		require.NoError(t, err)

		assert.Equal(t, first.Draft, second.Draft)
		assert.Contains(t, first.Draft, "Hey! Thanks for reaching out.")
	})

	t.Run("short tone skips conversation and snippets", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		kbRepo := new(mockKBRepository)
		tk := conversationTicket(t)

		ticketRepo.On("GetByIDWithMessages", mock.Anything, uint(1), uint(5)).Return(tk, nil)
		kbRepo.On("SearchByTitle", mock.Anything, mock.Anything, 3).Return([]*kb.Article{}, nil)

		uc := NewDraftReplyUseCase(ticketRepo, kbRepo, ai.NewMockDrafter(), noopLogger{})
		result, err := uc.Execute(context.Background(), DraftReplyCommand{OrgID: 1, TicketID: 5, Tone: "short"})

		require.NoError(t, err)
		assert.Equal(t, "Thanks for reaching out. We're looking into it and will get back to you soon.\n\nRef: VPN keeps disconnecting", result.Draft)
	})

	t.Run("defaults to friendly tone when omitted", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		kbRepo := new(mockKBRepository)
		tk := conversationTicket(t)

		ticketRepo.On("GetByIDWithMessages", mock.Anything, uint(1), uint(5)).Return(tk, nil)
		kbRepo.On("SearchByTitle", mock.Anything, mock.Anything, 3).Return([]*kb.Article{}, nil)

		uc := NewDraftReplyUseCase(ticketRepo, kbRepo, ai.NewMockDrafter(), noopLogger{})
		result, err := uc.Execute(context.Background(), DraftReplyCommand{OrgID: 1, TicketID: 5})

		require.NoError(t, err)
		assert.Equal(t, ai.ToneFriendly, result.Tone)
	})

	t.Run("rejects unknown tone", func(t *testing.T) {
		uc := NewDraftReplyUseCase(new(mockTicketRepository), new(mockKBRepository), ai.NewMockDrafter(), noopLogger{})

		_, err := uc.Execute(context.Background(), DraftReplyCommand{OrgID: 1, TicketID: 5, Tone: "sarcastic"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("cross-tenant ticket reads as not found", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		ticketRepo.On("GetByIDWithMessages", mock.Anything, uint(2), uint(5)).
			Return(nil, errors.NewNotFoundError("ticket not found"))

		uc := NewDraftReplyUseCase(ticketRepo, new(mockKBRepository), ai.NewMockDrafter(), noopLogger{})
		_, err := uc.Execute(context.Background(), DraftReplyCommand{OrgID: 2, TicketID: 5})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("knowledge base failure degrades to no snippets", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		kbRepo := new(mockKBRepository)
		tk := conversationTicket(t)

		ticketRepo.On("GetByIDWithMessages", mock.Anything, uint(1), uint(5)).Return(tk, nil)
		kbRepo.On("SearchByTitle", mock.Anything, mock.Anything, 3).
			Return(nil, errors.NewInternalError("db down"))

		uc := NewDraftReplyUseCase(ticketRepo, kbRepo, ai.NewMockDrafter(), noopLogger{})
		result, err := uc.Execute(context.Background(), DraftReplyCommand{OrgID: 1, TicketID: 5})

		require.NoError(t, err)
		assert.NotContains(t, result.Draft, "knowledge base")
	})
}
