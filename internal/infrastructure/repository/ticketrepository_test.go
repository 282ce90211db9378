package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory SQLite is per-connection; pin the pool to one so every
	// query in a test sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.OrgModel{},
		&models.RefreshTokenModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
		&models.KBArticleModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, repo ticket.Repository, orgID uint, subject string) *ticket.Ticket {
	tk, err := ticket.NewTicket(orgID, subject, vo.PriorityMedium)
	require.NoError(t, err)

	msg, err := ticket.NewMessage(0, vo.RoleUser, "initial message")
	require.NoError(t, err)

	err = repo.Save(context.Background(), tk, msg)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("save assigns IDs to ticket and initial message", func(t *testing.T) {
		tk, err := ticket.NewTicket(1, "Printer on fire", vo.PriorityHigh)
		require.NoError(t, err)
		msg, err := ticket.NewMessage(0, vo.RoleUser, "It is literally on fire")
		require.NoError(t, err)

		err = repo.Save(ctx, tk, msg)
		assert.NoError(t, err)
		assert.NotZero(t, tk.ID())
		assert.NotZero(t, msg.ID())
	})

	t.Run("saved ticket loads back with its message", func(t *testing.T) {
		tk := createTestTicket(t, repo, 1, "Cannot log in")

		found, err := repo.GetByIDWithMessages(ctx, 1, tk.ID())
		assert.NoError(t, err)
		assert.Equal(t, "Cannot log in", found.Subject())
		assert.Equal(t, vo.StatusOpen, found.Status())
		require.Len(t, found.Messages(), 1)
		assert.Equal(t, "initial message", found.Messages()[0].Content())
	})
}

func TestTicketRepository_TenantScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, repo, 1, "Org one ticket")

	t.Run("owning org reads its ticket", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 1, tk.ID())
		assert.NoError(t, err)
		assert.Equal(t, tk.ID(), found.ID())
	})

	t.Run("another org gets not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 2, tk.ID())
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("another org cannot delete", func(t *testing.T) {
		err := repo.Delete(ctx, 2, tk.ID())
		assert.True(t, errors.IsNotFoundError(err))

		_, err = repo.GetByID(ctx, 1, tk.ID())
		assert.NoError(t, err)
	})

	t.Run("list only returns own tickets", func(t *testing.T) {
		createTestTicket(t, repo, 2, "Org two ticket")

		tickets, total, err := repo.List(ctx, 1, ticket.ListFilter{Limit: 50})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "Org one ticket", tickets[0].Subject())
	})
}

func TestTicketRepository_List_OrdersByActivity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	first := createTestTicket(t, repo, 1, "First ticket")
	createTestTicket(t, repo, 1, "Second ticket")

	// Replying to the first ticket bumps it back to the top.
	reply, err := ticket.NewMessage(first.ID(), vo.RoleAgent, "Have you tried turning it off and on")
	require.NoError(t, err)
	first.RecordReply()
	err = repo.AddMessage(ctx, first, reply)
	require.NoError(t, err)

	tickets, total, err := repo.List(ctx, 1, ticket.ListFilter{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, tickets, 2)
	assert.Equal(t, "First ticket", tickets[0].Subject())
	assert.Equal(t, "Second ticket", tickets[1].Subject())
}

func TestTicketRepository_Delete_CascadesMessages(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, repo, 1, "Short lived ticket")

	err := repo.Delete(ctx, 1, tk.ID())
	require.NoError(t, err)

	var count int64
	err = db.Model(&models.TicketMessageModel{}).Where("ticket_id = ?", tk.ID()).Count(&count).Error
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTicketRepository_DeleteByOrgID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	createTestTicket(t, repo, 1, "Doomed ticket one")
	createTestTicket(t, repo, 1, "Doomed ticket two")
	survivor := createTestTicket(t, repo, 2, "Survivor ticket")

	err := repo.DeleteByOrgID(ctx, 1)
	require.NoError(t, err)

	_, total, err := repo.List(ctx, 1, ticket.ListFilter{Limit: 50})
	require.NoError(t, err)
	assert.Zero(t, total)

	var msgCount int64
	err = db.Model(&models.TicketMessageModel{}).Count(&msgCount).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), msgCount)

	_, err = repo.GetByID(ctx, 2, survivor.ID())
	assert.NoError(t, err)
}
