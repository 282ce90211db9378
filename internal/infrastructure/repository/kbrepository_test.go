package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/errors"
)

func createTestArticle(t *testing.T, repo kb.Repository, title string, tags []string) *kb.Article {
	a, err := kb.NewArticle(title, "Some helpful body text.", tags)
	require.NoError(t, err)
	err = repo.Create(context.Background(), a)
	require.NoError(t, err)
	return a
}

func TestKBArticleRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKBArticleRepository(db)
	ctx := context.Background()

	a := createTestArticle(t, repo, "Resetting your password", []string{"auth", "passwords"})
	assert.NotZero(t, a.ID())

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "Resetting your password", found.Title())
	assert.Equal(t, []string{"auth", "passwords"}, found.Tags())

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestKBArticleRepository_SearchByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKBArticleRepository(db)
	ctx := context.Background()

	createTestArticle(t, repo, "Billing FAQ", nil)
	createTestArticle(t, repo, "How billing cycles work", nil)
	createTestArticle(t, repo, "Exporting reports", nil)

	t.Run("match is case-insensitive", func(t *testing.T) {
		articles, err := repo.SearchByTitle(ctx, "BILLING", 10)
		require.NoError(t, err)
		assert.Len(t, articles, 2)
	})

	t.Run("limit bounds results", func(t *testing.T) {
		articles, err := repo.SearchByTitle(ctx, "billing", 1)
		require.NoError(t, err)
		assert.Len(t, articles, 1)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		articles, err := repo.SearchByTitle(ctx, "kubernetes", 10)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestKBArticleRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKBArticleRepository(db)

	first := createTestArticle(t, repo, "Oldest article", nil)
	second := createTestArticle(t, repo, "Newest article", nil)

	articles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, second.ID(), articles[0].ID())
	assert.Equal(t, first.ID(), articles[1].ID())
}
