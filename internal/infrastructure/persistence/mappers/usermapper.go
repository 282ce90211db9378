package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

// UserMapper handles conversion between User domain and model.
type UserMapper interface {
	// ToModel converts domain entity to GORM model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts GORM model to domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		OrgID:        u.OrgID(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role := authorization.ParseUserRole(model.Role)
	return user.ReconstructUser(model.ID, model.Email, model.PasswordHash, role, model.OrgID)
}
