package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
)

type RefreshTokenRepository struct {
	db     *gorm.DB
	mapper mappers.RefreshTokenMapper
}

func NewRefreshTokenRepository(db *gorm.DB) user.RefreshTokenRepository {
	return &RefreshTokenRepository{
		db:     db,
		mapper: mappers.NewRefreshTokenMapper(),
	}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *user.RefreshToken) error {
	model := r.mapper.ToModel(token)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	token.ID = model.ID
	return nil
}

func (r *RefreshTokenRepository) GetByJTIHash(ctx context.Context, jtiHash string) (*user.RefreshToken, error) {
	var model models.RefreshTokenModel
	err := r.db.WithContext(ctx).Where("jti_hash = ?", jtiHash).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("refresh token not found")
		}
		return nil, fmt.Errorf("failed to get refresh token by jti hash: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.RefreshTokenModel{}).
		Where("id = ?", id).
		Update("revoked", true).Error
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeIfActive flips the revoked flag with a conditional UPDATE so that of
// two concurrent calls for the same hash exactly one observes RowsAffected 1.
// The loser gets a not-found error, same as an unknown hash.
func (r *RefreshTokenRepository) RevokeIfActive(ctx context.Context, jtiHash string) (*user.RefreshToken, error) {
	result := r.db.WithContext(ctx).Model(&models.RefreshTokenModel{}).
		Where("jti_hash = ? AND revoked = ?", jtiHash, false).
		Update("revoked", true)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.NewNotFoundError("refresh token not found")
	}

	var model models.RefreshTokenModel
	if err := r.db.WithContext(ctx).Where("jti_hash = ?", jtiHash).First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to load revoked refresh token: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", biztime.NowUTC()).
		Delete(&models.RefreshTokenModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
