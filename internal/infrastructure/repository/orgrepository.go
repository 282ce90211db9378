package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

type OrgRepository struct {
	db     *gorm.DB
	mapper mappers.OrgMapper
}

func NewOrgRepository(db *gorm.DB) org.Repository {
	return &OrgRepository{
		db:     db,
		mapper: mappers.NewOrgMapper(),
	}
}

func (r *OrgRepository) Create(ctx context.Context, o *org.Org) error {
	model := r.mapper.ToModel(o)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("org name already exists")
		}
		return fmt.Errorf("failed to create org: %w", err)
	}
	return o.SetID(model.ID)
}

func (r *OrgRepository) GetByID(ctx context.Context, id uint) (*org.Org, error) {
	var model models.OrgModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("org not found")
		}
		return nil, fmt.Errorf("failed to get org by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrgRepository) GetByName(ctx context.Context, name string) (*org.Org, error) {
	var model models.OrgModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get org by name: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrgRepository) List(ctx context.Context) ([]*org.Org, error) {
	var orgModels []models.OrgModel
	err := r.db.WithContext(ctx).Order("id DESC").Find(&orgModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orgs: %w", err)
	}

	orgs := make([]*org.Org, 0, len(orgModels))
	for i := range orgModels {
		o, err := r.mapper.ToDomain(&orgModels[i])
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, nil
}

func (r *OrgRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.OrgModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete org: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("org not found")
	}
	return nil
}
