package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) DetachFromOrg(ctx context.Context, orgID uint) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}

type mockOrgRepository struct {
	mock.Mock
}

func (m *mockOrgRepository) Create(ctx context.Context, o *org.Org) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrgRepository) GetByID(ctx context.Context, id uint) (*org.Org, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*org.Org), args.Error(1)
}

func (m *mockOrgRepository) GetByName(ctx context.Context, name string) (*org.Org, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*org.Org), args.Error(1)
}

func (m *mockOrgRepository) List(ctx context.Context) ([]*org.Org, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*org.Org), args.Error(1)
}

func (m *mockOrgRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRefreshTokenRepository struct {
	mock.Mock
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *user.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) GetByJTIHash(ctx context.Context, jtiHash string) (*user.RefreshToken, error) {
	args := m.Called(ctx, jtiHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) RevokeIfActive(ctx context.Context, jtiHash string) (*user.RefreshToken, error) {
	args := m.Called(ctx, jtiHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GeneratePair(userID uint, role authorization.UserRole) (*TokenPair, error) {
	args := m.Called(userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (*TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenClaims), args.Error(1)
}

func (m *mockTokenService) RefreshTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

func (m *mockTokenService) HashJTI(jti string) string {
	args := m.Called(jti)
	return args.String(0)
}

// stubHasher avoids bcrypt cost in unit tests.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// noopLogger keeps use case tests quiet without mock bookkeeping.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                  {}
func (noopLogger) Info(msg string, args ...any)                   {}
func (noopLogger) Warn(msg string, args ...any)                   {}
func (noopLogger) Error(msg string, args ...any)                  {}
func (l noopLogger) With(args ...any) logger.Interface            { return l }
func (l noopLogger) Named(name string) logger.Interface           { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
