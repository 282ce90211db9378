package mappers

import (
	"helpdesk/internal/domain/kb"
	"helpdesk/internal/infrastructure/persistence/models"
)

// KBArticleMapper handles conversion between Article domain and model. Tags
// travel as a comma-separated string in the database column.
type KBArticleMapper interface {
	ToModel(a *kb.Article) *models.KBArticleModel
	ToDomain(model *models.KBArticleModel) (*kb.Article, error)
}

// KBArticleMapperImpl is the concrete implementation of KBArticleMapper.
type KBArticleMapperImpl struct{}

// NewKBArticleMapper creates a new KBArticleMapper.
func NewKBArticleMapper() KBArticleMapper {
	return &KBArticleMapperImpl{}
}

func (m *KBArticleMapperImpl) ToModel(a *kb.Article) *models.KBArticleModel {
	return &models.KBArticleModel{
		ID:        a.ID(),
		Title:     a.Title(),
		Body:      a.Body(),
		Tags:      kb.JoinTags(a.Tags()),
		CreatedAt: a.CreatedAt(),
	}
}

func (m *KBArticleMapperImpl) ToDomain(model *models.KBArticleModel) (*kb.Article, error) {
	return kb.ReconstructArticle(model.ID, model.Title, model.Body, kb.SplitTags(model.Tags), model.CreatedAt)
}
