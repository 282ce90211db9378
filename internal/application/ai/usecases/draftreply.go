package usecases

import (
	"context"

	"helpdesk/internal/application/ai"
	"helpdesk/internal/domain/kb"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// DraftReplyUseCase composes a suggested agent reply for a ticket using the
// configured drafter, grounded on the conversation and knowledge base matches.
type DraftReplyUseCase struct {
	ticketRepo ticket.Repository
	kbRepo     kb.Repository
	drafter    ai.Drafter
	logger     logger.Interface
}

func NewDraftReplyUseCase(
	ticketRepo ticket.Repository,
	kbRepo kb.Repository,
	drafter ai.Drafter,
	logger logger.Interface,
) *DraftReplyUseCase {
	return &DraftReplyUseCase{
		ticketRepo: ticketRepo,
		kbRepo:     kbRepo,
		drafter:    drafter,
		logger:     logger,
	}
}

type DraftReplyCommand struct {
	OrgID    uint
	TicketID uint
	Tone     string
}

type DraftReplyResult struct {
	Draft string
	Tone  ai.Tone
}

func (uc *DraftReplyUseCase) Execute(ctx context.Context, cmd DraftReplyCommand) (*DraftReplyResult, error) {
	tone, err := ai.ParseTone(cmd.Tone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Lookup is org-scoped so a draft can never leak another tenant's ticket.
	t, err := uc.ticketRepo.GetByIDWithMessages(ctx, cmd.OrgID, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	dc := ai.DraftContext{
		Subject:      t.Subject(),
		LastMessages: messageContents(t.Messages()),
		KBSnippets:   uc.relatedSnippets(ctx, t.Subject()),
		Tone:         tone,
	}

	draft := uc.drafter.DraftReply(dc)

	uc.logger.Debugw("drafted reply",
		"org_id", cmd.OrgID,
		"ticket_id", cmd.TicketID,
		"tone", tone,
		"snippets", len(dc.KBSnippets),
	)

	return &DraftReplyResult{Draft: draft, Tone: tone}, nil
}

func messageContents(messages []*ticket.Message) []string {
	contents := make([]string, 0, len(messages))
	for _, m := range messages {
		contents = append(contents, m.Content())
	}
	return contents
}

// relatedSnippets looks up knowledge base articles whose title matches the
// ticket subject. KB lookup is best-effort: a failure degrades the draft
// rather than failing the request.
func (uc *DraftReplyUseCase) relatedSnippets(ctx context.Context, subject string) []string {
	articles, err := uc.kbRepo.SearchByTitle(ctx, subject, 3)
	if err != nil {
		uc.logger.Warnw("knowledge base lookup failed, drafting without snippets", "error", err)
		return nil
	}

	snippets := make([]string, 0, len(articles))
	for _, a := range articles {
		snippets = append(snippets, a.Snippet(140))
	}
	return snippets
}
