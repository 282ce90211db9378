package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/logger"
)

type mockKBRepository struct {
	mock.Mock
}

func (m *mockKBRepository) Create(ctx context.Context, a *kb.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockKBRepository) GetByID(ctx context.Context, id uint) (*kb.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kb.Article), args.Error(1)
}

func (m *mockKBRepository) List(ctx context.Context) ([]*kb.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kb.Article), args.Error(1)
}

func (m *mockKBRepository) SearchByTitle(ctx context.Context, query string, limit int) ([]*kb.Article, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kb.Article), args.Error(1)
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
