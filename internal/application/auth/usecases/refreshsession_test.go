package usecases

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
)

func activeLedgerRecord(userID uint, jtiHash string) *user.RefreshToken {
	return &user.RefreshToken{
		ID:        1,
		UserID:    userID,
		JTIHash:   jtiHash,
		ExpiresAt: biztime.NowUTC().Add(time.Hour),
		Revoked:   true, // as returned after the conditional revoke
		CreatedAt: biztime.NowUTC(),
	}
}

func refreshClaims(userID uint, jti string) *TokenClaims {
	return &TokenClaims{
		UserID:    userID,
		Role:      authorization.RoleOwner,
		TokenType: tokenTypeRefresh,
		JTI:       jti,
	}
}

func TestRefreshSessionUseCase_Execute_RotatesToken(t *testing.T) {
	userRepo := new(mockUserRepository)
	orgRepo := new(mockOrgRepository)
	ledger := new(mockRefreshTokenRepository)
	tokens := new(mockTokenService)

	orgID := uint(7)
	existing := reconstructTestUser(t, 42, "alice@example.com", &orgID)
	existingOrg, err := org.ReconstructOrg(7, "alice's org")
	require.NoError(t, err)

	tokens.On("Verify", "old-refresh").Return(refreshClaims(42, "old-jti"), nil)
	tokens.On("HashJTI", "old-jti").Return("old-hash")
	ledger.On("RevokeIfActive", mock.Anything, "old-hash").Return(activeLedgerRecord(42, "old-hash"), nil)
	userRepo.On("GetByID", mock.Anything, uint(42)).Return(existing, nil)
	orgRepo.On("GetByID", mock.Anything, uint(7)).Return(existingOrg, nil)
	expectPairIssued(tokens, ledger, uint(42))

	uc := NewRefreshSessionUseCase(userRepo, orgRepo, ledger, tokens, noopLogger{})
	result, err := uc.Execute(context.Background(), RefreshSessionCommand{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", result.Tokens.RefreshToken)
	ledger.AssertExpectations(t)
}

func TestRefreshSessionUseCase_Execute_ReplayFails(t *testing.T) {
	// The second consumption of the same jti loses the conditional revoke.
	userRepo := new(mockUserRepository)
	orgRepo := new(mockOrgRepository)
	ledger := new(mockRefreshTokenRepository)
	tokens := new(mockTokenService)

	tokens.On("Verify", "replayed-refresh").Return(refreshClaims(42, "used-jti"), nil)
	tokens.On("HashJTI", "used-jti").Return("used-hash")
	ledger.On("RevokeIfActive", mock.Anything, "used-hash").
		Return(nil, errors.NewNotFoundError("refresh token not found"))

	uc := NewRefreshSessionUseCase(userRepo, orgRepo, ledger, tokens, noopLogger{})
	_, err := uc.Execute(context.Background(), RefreshSessionCommand{RefreshToken: "replayed-refresh"})

	require.Error(t, err)
	require.NotNil(t, errors.GetAppError(err))
	assert.Equal(t, http.StatusUnauthorized, errors.GetAppError(err).Code)
	tokens.AssertNotCalled(t, "GeneratePair", mock.Anything, mock.Anything)
}

func TestRefreshSessionUseCase_Execute_RejectsBadTokens(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		claims *TokenClaims
	}{
		{name: "missing token", token: ""},
		{name: "undecodable token", token: "garbage", claims: nil},
		{name: "access token presented", token: "access-as-refresh", claims: &TokenClaims{
			UserID: 42, TokenType: tokenTypeAccess,
		}},
		{name: "refresh without jti", token: "no-jti", claims: &TokenClaims{
			UserID: 42, TokenType: tokenTypeRefresh,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			orgRepo := new(mockOrgRepository)
			ledger := new(mockRefreshTokenRepository)
			tokens := new(mockTokenService)

			if tt.token != "" {
				if tt.claims != nil {
					tokens.On("Verify", tt.token).Return(tt.claims, nil)
				} else {
					tokens.On("Verify", tt.token).Return(nil, errors.NewTokenInvalidError("refresh"))
				}
			}

			uc := NewRefreshSessionUseCase(userRepo, orgRepo, ledger, tokens, noopLogger{})
			_, err := uc.Execute(context.Background(), RefreshSessionCommand{RefreshToken: tt.token})

			require.Error(t, err)
			require.NotNil(t, errors.GetAppError(err))
			assert.Equal(t, http.StatusUnauthorized, errors.GetAppError(err).Code)
			ledger.AssertNotCalled(t, "RevokeIfActive", mock.Anything, mock.Anything)
		})
	}
}

func TestRefreshSessionUseCase_Execute_ExpiredLedgerRecord(t *testing.T) {
	userRepo := new(mockUserRepository)
	orgRepo := new(mockOrgRepository)
	ledger := new(mockRefreshTokenRepository)
	tokens := new(mockTokenService)

	expired := activeLedgerRecord(42, "stale-hash")
	expired.ExpiresAt = biztime.NowUTC().Add(-time.Minute)

	tokens.On("Verify", "stale-refresh").Return(refreshClaims(42, "stale-jti"), nil)
	tokens.On("HashJTI", "stale-jti").Return("stale-hash")
	ledger.On("RevokeIfActive", mock.Anything, "stale-hash").Return(expired, nil)

	uc := NewRefreshSessionUseCase(userRepo, orgRepo, ledger, tokens, noopLogger{})
	_, err := uc.Execute(context.Background(), RefreshSessionCommand{RefreshToken: "stale-refresh"})

	require.Error(t, err)
	require.NotNil(t, errors.GetAppError(err))
	assert.Equal(t, http.StatusUnauthorized, errors.GetAppError(err).Code)
	tokens.AssertNotCalled(t, "GeneratePair", mock.Anything, mock.Anything)
}

func TestLogoutUseCase_Execute_AlwaysSucceeds(t *testing.T) {
	t.Run("revokes a valid token", func(t *testing.T) {
		ledger := new(mockRefreshTokenRepository)
		tokens := new(mockTokenService)

		tokens.On("Verify", "live-refresh").Return(refreshClaims(42, "live-jti"), nil)
		tokens.On("HashJTI", "live-jti").Return("live-hash")
		ledger.On("RevokeIfActive", mock.Anything, "live-hash").Return(activeLedgerRecord(42, "live-hash"), nil)

		uc := NewLogoutUseCase(ledger, tokens, noopLogger{})
		uc.Execute(context.Background(), LogoutCommand{RefreshToken: "live-refresh"})
		ledger.AssertExpectations(t)
	})

	t.Run("swallows every failure", func(t *testing.T) {
		ledger := new(mockRefreshTokenRepository)
		tokens := new(mockTokenService)

		tokens.On("Verify", "garbage").Return(nil, errors.NewTokenInvalidError("refresh"))

		uc := NewLogoutUseCase(ledger, tokens, noopLogger{})
		uc.Execute(context.Background(), LogoutCommand{RefreshToken: "garbage"})
		uc.Execute(context.Background(), LogoutCommand{})
		ledger.AssertNotCalled(t, "RevokeIfActive", mock.Anything, mock.Anything)
	})

	t.Run("second logout with the same token is quiet", func(t *testing.T) {
		ledger := new(mockRefreshTokenRepository)
		tokens := new(mockTokenService)

		tokens.On("Verify", "used-refresh").Return(refreshClaims(42, "used-jti"), nil)
		tokens.On("HashJTI", "used-jti").Return("used-hash")
		ledger.On("RevokeIfActive", mock.Anything, "used-hash").
			Return(nil, errors.NewNotFoundError("refresh token not found"))

		uc := NewLogoutUseCase(ledger, tokens, noopLogger{})
		uc.Execute(context.Background(), LogoutCommand{RefreshToken: "used-refresh"})
		uc.Execute(context.Background(), LogoutCommand{RefreshToken: "used-refresh"})
	})
}
