package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket, initial *ticket.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := r.mapper.ToModel(t)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		if err := t.SetID(model.ID); err != nil {
			return err
		}

		if err := initial.BindTicket(model.ID); err != nil {
			return err
		}
		msgModel := r.mapper.MessageToModel(initial)
		if err := tx.Create(msgModel).Error; err != nil {
			return fmt.Errorf("failed to create initial message: %w", err)
		}
		return initial.SetID(msgModel.ID)
	})
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ? AND org_id = ?", model.ID, model.OrgID).
		Updates(map[string]interface{}{
			"subject":    model.Subject,
			"status":     model.Status,
			"priority":   model.Priority,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, orgID, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", ticketID, orgID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByIDWithMessages(ctx context.Context, orgID, ticketID uint) (*ticket.Ticket, error) {
	t, err := r.GetByID(ctx, orgID, ticketID)
	if err != nil {
		return nil, err
	}

	var msgModels []*models.TicketMessageModel
	err = r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&msgModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket messages: %w", err)
	}

	msgs, err := r.mapper.MessagesToDomain(msgModels)
	if err != nil {
		return nil, err
	}
	t.AttachMessages(msgs)
	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, orgID uint, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("org_id = ?", orgID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.TicketModel
	err = r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("updated_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&ticketModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

func (r *TicketRepository) AddMessage(ctx context.Context, t *ticket.Ticket, m *ticket.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		msgModel := r.mapper.MessageToModel(m)
		if err := tx.Create(msgModel).Error; err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}
		if err := m.SetID(msgModel.ID); err != nil {
			return err
		}

		err := tx.Model(&models.TicketModel{}).
			Where("id = ?", t.ID()).
			Update("updated_at", t.UpdatedAt()).Error
		if err != nil {
			return fmt.Errorf("failed to bump ticket activity: %w", err)
		}
		return nil
	})
}

func (r *TicketRepository) Delete(ctx context.Context, orgID, ticketID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.TicketModel{}).
			Where("id = ? AND org_id = ?", ticketID, orgID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check ticket ownership: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("ticket not found")
		}

		// Messages reference the ticket, so they have to go first.
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketMessageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket messages: %w", err)
		}

		if err := tx.Where("id = ? AND org_id = ?", ticketID, orgID).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
}

func (r *TicketRepository) DeleteByOrgID(ctx context.Context, orgID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticketIDs []uint
		err := tx.Model(&models.TicketModel{}).
			Where("org_id = ?", orgID).
			Pluck("id", &ticketIDs).Error
		if err != nil {
			return fmt.Errorf("failed to collect org tickets: %w", err)
		}

		if len(ticketIDs) > 0 {
			if err := tx.Where("ticket_id IN ?", ticketIDs).Delete(&models.TicketMessageModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete org ticket messages: %w", err)
			}
		}

		if err := tx.Where("org_id = ?", orgID).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete org tickets: %w", err)
		}
		return nil
	})
}
