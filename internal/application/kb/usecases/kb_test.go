package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/services/markdown"
)

func reconstructTestArticle(t *testing.T, id uint, title, body string) *kb.Article {
	a, err := kb.ReconstructArticle(id, title, body, []string{"howto"}, biztime.NowUTC())
	require.NoError(t, err)
	return a
}

func TestCreateArticleUseCase_Execute(t *testing.T) {
	t.Run("creates article with cleaned tags", func(t *testing.T) {
		repo := new(mockKBRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*kb.Article")).Run(func(args mock.Arguments) {
			a := args.Get(1).(*kb.Article)
			require.NoError(t, a.SetID(1))
		}).Return(nil)

		uc := NewCreateArticleUseCase(repo, noopLogger{})
		result, err := uc.Execute(context.Background(), CreateArticleCommand{
			Title: "Connecting to the VPN",
			Body:  "Use the client from the portal.",
			Tags:  []string{" vpn ", "", "network"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"vpn", "network"}, result.Tags())
	})

	t.Run("missing title is a validation error", func(t *testing.T) {
		repo := new(mockKBRepository)

		uc := NewCreateArticleUseCase(repo, noopLogger{})
		_, err := uc.Execute(context.Background(), CreateArticleCommand{Body: "body"})

		assert.True(t, errors.IsValidationError(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListArticlesUseCase_Search(t *testing.T) {
	t.Run("empty query lists everything", func(t *testing.T) {
		repo := new(mockKBRepository)
		repo.On("List", mock.Anything).Return([]*kb.Article{
			reconstructTestArticle(t, 1, "A", "body"),
		}, nil)

		uc := NewListArticlesUseCase(repo, noopLogger{})
		articles, err := uc.Search(context.Background(), SearchArticlesCommand{Query: "   "})

		require.NoError(t, err)
		assert.Len(t, articles, 1)
		repo.AssertNotCalled(t, "SearchByTitle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("query goes to title search with clamped limit", func(t *testing.T) {
		repo := new(mockKBRepository)
		repo.On("SearchByTitle", mock.Anything, "vpn", 50).Return([]*kb.Article{}, nil)

		uc := NewListArticlesUseCase(repo, noopLogger{})
		_, err := uc.Search(context.Background(), SearchArticlesCommand{Query: " vpn "})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetArticleUseCase_Execute(t *testing.T) {
	t.Run("renders sanitized html body", func(t *testing.T) {
		repo := new(mockKBRepository)
		article := reconstructTestArticle(t, 1, "Formatting", "# Heading\n\n<script>alert(1)</script>")
		repo.On("GetByID", mock.Anything, uint(1)).Return(article, nil)

		uc := NewGetArticleUseCase(repo, markdown.NewService(), noopLogger{})
		result, err := uc.Execute(context.Background(), GetArticleCommand{ArticleID: 1})

		require.NoError(t, err)
		assert.Contains(t, result.RenderedBody, "Heading")
		assert.NotContains(t, result.RenderedBody, "<script>")
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		repo := new(mockKBRepository)
		repo.On("GetByID", mock.Anything, uint(9)).
			Return(nil, errors.NewNotFoundError("article not found"))

		uc := NewGetArticleUseCase(repo, markdown.NewService(), noopLogger{})
		_, err := uc.Execute(context.Background(), GetArticleCommand{ArticleID: 9})

		assert.True(t, errors.IsNotFoundError(err))
	})
}
