package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

// RefreshTokenMapper handles conversion between RefreshToken domain and model.
type RefreshTokenMapper interface {
	ToModel(token *user.RefreshToken) *models.RefreshTokenModel
	ToDomain(model *models.RefreshTokenModel) *user.RefreshToken
}

// RefreshTokenMapperImpl is the concrete implementation of RefreshTokenMapper.
type RefreshTokenMapperImpl struct{}

// NewRefreshTokenMapper creates a new RefreshTokenMapper.
func NewRefreshTokenMapper() RefreshTokenMapper {
	return &RefreshTokenMapperImpl{}
}

func (m *RefreshTokenMapperImpl) ToModel(token *user.RefreshToken) *models.RefreshTokenModel {
	return &models.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		JTIHash:   token.JTIHash,
		ExpiresAt: token.ExpiresAt,
		Revoked:   token.Revoked,
		CreatedAt: token.CreatedAt,
	}
}

func (m *RefreshTokenMapperImpl) ToDomain(model *models.RefreshTokenModel) *user.RefreshToken {
	return &user.RefreshToken{
		ID:        model.ID,
		UserID:    model.UserID,
		JTIHash:   model.JTIHash,
		ExpiresAt: model.ExpiresAt,
		Revoked:   model.Revoked,
		CreatedAt: model.CreatedAt,
	}
}
