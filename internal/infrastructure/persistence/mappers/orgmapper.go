package mappers

import (
	"helpdesk/internal/domain/org"
	"helpdesk/internal/infrastructure/persistence/models"
)

// OrgMapper handles conversion between Org domain and model.
type OrgMapper interface {
	ToModel(o *org.Org) *models.OrgModel
	ToDomain(model *models.OrgModel) (*org.Org, error)
}

// OrgMapperImpl is the concrete implementation of OrgMapper.
type OrgMapperImpl struct{}

// NewOrgMapper creates a new OrgMapper.
func NewOrgMapper() OrgMapper {
	return &OrgMapperImpl{}
}

func (m *OrgMapperImpl) ToModel(o *org.Org) *models.OrgModel {
	return &models.OrgModel{
		ID:   o.ID(),
		Name: o.Name(),
	}
}

func (m *OrgMapperImpl) ToDomain(model *models.OrgModel) (*org.Org, error) {
	return org.ReconstructOrg(model.ID, model.Name)
}
