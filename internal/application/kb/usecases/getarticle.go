package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type GetArticleCommand struct {
	ArticleID uint
}

type GetArticleResult struct {
	Article      *kb.Article
	RenderedBody string
}

// GetArticleUseCase loads one article and renders its markdown body to
// sanitized HTML.
type GetArticleUseCase struct {
	kbRepo   kb.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewGetArticleUseCase(kbRepo kb.Repository, markdownSvc markdown.Service, logger logger.Interface) *GetArticleUseCase {
	return &GetArticleUseCase{
		kbRepo:   kbRepo,
		markdown: markdownSvc,
		logger:   logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, cmd GetArticleCommand) (*GetArticleResult, error) {
	article, err := uc.kbRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get article", "error", err, "article_id", cmd.ArticleID)
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	rendered, err := uc.markdown.ToHTMLSanitized(article.Body())
	if err != nil {
		uc.logger.Warnw("failed to render article body", "error", err, "article_id", article.ID())
		rendered = ""
	}

	return &GetArticleResult{Article: article, RenderedBody: rendered}, nil
}
