package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

type KBArticleRepository struct {
	db     *gorm.DB
	mapper mappers.KBArticleMapper
}

func NewKBArticleRepository(db *gorm.DB) kb.Repository {
	return &KBArticleRepository{
		db:     db,
		mapper: mappers.NewKBArticleMapper(),
	}
}

func (r *KBArticleRepository) Create(ctx context.Context, a *kb.Article) error {
	model := r.mapper.ToModel(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *KBArticleRepository) GetByID(ctx context.Context, id uint) (*kb.Article, error) {
	var model models.KBArticleModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to get article by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *KBArticleRepository) List(ctx context.Context) ([]*kb.Article, error) {
	var articleModels []models.KBArticleModel
	err := r.db.WithContext(ctx).Order("id DESC").Find(&articleModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return r.toDomainSlice(articleModels)
}

// SearchByTitle matches case-insensitively by comparing lowercased titles,
// which behaves the same on MySQL and SQLite.
func (r *KBArticleRepository) SearchByTitle(ctx context.Context, query string, limit int) ([]*kb.Article, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var articleModels []models.KBArticleModel
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ?", pattern).
		Order("id DESC").
		Limit(limit).
		Find(&articleModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	return r.toDomainSlice(articleModels)
}

func (r *KBArticleRepository) toDomainSlice(articleModels []models.KBArticleModel) ([]*kb.Article, error) {
	articles := make([]*kb.Article, 0, len(articleModels))
	for i := range articleModels {
		a, err := r.mapper.ToDomain(&articleModels[i])
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}
