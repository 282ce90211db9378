package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	mock.Mock
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket, initial *ticket.Message) error {
	args := m.Called(ctx, t, initial)
	return args.Error(0)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, orgID, ticketID uint) (*ticket.Ticket, error) {
	args := m.Called(ctx, orgID, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) GetByIDWithMessages(ctx context.Context, orgID, ticketID uint) (*ticket.Ticket, error) {
	args := m.Called(ctx, orgID, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) List(ctx context.Context, orgID uint, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	args := m.Called(ctx, orgID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*ticket.Ticket), args.Get(1).(int64), args.Error(2)
}

func (m *mockTicketRepository) AddMessage(ctx context.Context, t *ticket.Ticket, msg *ticket.Message) error {
	args := m.Called(ctx, t, msg)
	return args.Error(0)
}

func (m *mockTicketRepository) Delete(ctx context.Context, orgID, ticketID uint) error {
	args := m.Called(ctx, orgID, ticketID)
	return args.Error(0)
}

func (m *mockTicketRepository) DeleteByOrgID(ctx context.Context, orgID uint) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
