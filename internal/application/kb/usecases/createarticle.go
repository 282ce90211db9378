package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateArticleCommand struct {
	Title string
	Body  string
	Tags  []string
}

// CreateArticleUseCase adds an article to the shared knowledge base.
type CreateArticleUseCase struct {
	kbRepo kb.Repository
	logger logger.Interface
}

func NewCreateArticleUseCase(kbRepo kb.Repository, logger logger.Interface) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		kbRepo: kbRepo,
		logger: logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*kb.Article, error) {
	article, err := kb.NewArticle(cmd.Title, cmd.Body, cmd.Tags)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.kbRepo.Create(ctx, article); err != nil {
		uc.logger.Errorw("failed to create article", "error", err)
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	uc.logger.Infow("kb article created", "article_id", article.ID())
	return article, nil
}
