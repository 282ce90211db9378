package mappers

import (
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles conversion between Ticket domain and model.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	MessageToModel(msg *ticket.Message) *models.TicketMessageModel
	MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error)
	MessagesToDomain(msgModels []*models.TicketMessageModel) ([]*ticket.Message, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:        t.ID(),
		OrgID:     t.OrgID(),
		Subject:   t.Subject(),
		Status:    t.Status().String(),
		Priority:  t.Priority().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket status: %w", err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket priority: %w", err)
	}

	return ticket.ReconstructTicket(model.ID, model.OrgID, model.Subject, status, priority, model.CreatedAt, model.UpdatedAt)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.TicketMessageModel {
	return &models.TicketMessageModel{
		ID:        msg.ID(),
		TicketID:  msg.TicketID(),
		Role:      msg.Role().String(),
		Content:   msg.Content(),
		CreatedAt: msg.CreatedAt(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error) {
	role, err := vo.NewMessageRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message role: %w", err)
	}

	return ticket.ReconstructMessage(model.ID, model.TicketID, role, model.Content, model.CreatedAt)
}

func (m *TicketMapperImpl) MessagesToDomain(msgModels []*models.TicketMessageModel) ([]*ticket.Message, error) {
	msgs := make([]*ticket.Message, 0, len(msgModels))
	for _, mm := range msgModels {
		msg, err := m.MessageToDomain(mm)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
