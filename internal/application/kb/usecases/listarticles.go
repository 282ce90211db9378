package usecases

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 100
)

type SearchArticlesCommand struct {
	Query string
	Limit int
}

// ListArticlesUseCase lists or searches the knowledge base. An empty query
// lists everything, newest first.
type ListArticlesUseCase struct {
	kbRepo kb.Repository
	logger logger.Interface
}

func NewListArticlesUseCase(kbRepo kb.Repository, logger logger.Interface) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		kbRepo: kbRepo,
		logger: logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context) ([]*kb.Article, error) {
	articles, err := uc.kbRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

// Search finds articles whose title contains the query, case-insensitively.
func (uc *ListArticlesUseCase) Search(ctx context.Context, cmd SearchArticlesCommand) ([]*kb.Article, error) {
	query := strings.TrimSpace(cmd.Query)
	if query == "" {
		return uc.Execute(ctx)
	}

	limit := utils.ClampLimit(cmd.Limit, defaultSearchLimit, maxSearchLimit)
	articles, err := uc.kbRepo.SearchByTitle(ctx, query, limit)
	if err != nil {
		uc.logger.Errorw("failed to search articles", "error", err, "query", query)
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	return articles, nil
}
