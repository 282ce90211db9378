package kb

import "context"

type Repository interface {
	// Create persists a new article, assigning its ID.
	Create(ctx context.Context, a *Article) error

	// GetByID retrieves an article by ID.
	GetByID(ctx context.Context, id uint) (*Article, error)

	// List retrieves all articles, newest first.
	List(ctx context.Context) ([]*Article, error)

	// SearchByTitle retrieves articles whose title contains the query,
	// case-insensitively, newest first.
	SearchByTitle(ctx context.Context, query string, limit int) ([]*Article, error)
}
