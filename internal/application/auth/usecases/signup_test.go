package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

func testTokenPair() *TokenPair {
	return &TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		RefreshJTI:   "jti-1",
		ExpiresIn:    3600,
	}
}

func expectPairIssued(tokens *mockTokenService, ledger *mockRefreshTokenRepository, userID uint) {
	tokens.On("GeneratePair", userID, mock.Anything).Return(testTokenPair(), nil)
	tokens.On("HashJTI", "jti-1").Return("hash-1")
	tokens.On("RefreshTTL").Return(30 * 24 * time.Hour)
	ledger.On("Create", mock.Anything, mock.AnythingOfType("*user.RefreshToken")).Return(nil)
}

func TestSignupUseCase_Execute_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	orgRepo := new(mockOrgRepository)
	ledger := new(mockRefreshTokenRepository)
	tokens := new(mockTokenService)

	userRepo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	orgRepo.On("GetByName", mock.Anything, "alice's org").Return(nil, nil)
	orgRepo.On("Create", mock.Anything, mock.AnythingOfType("*org.Org")).Run(func(args mock.Arguments) {
		o := args.Get(1).(*org.Org)
		require.NoError(t, o.SetID(7))
	}).Return(nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*user.User)
		require.NoError(t, u.SetID(42))
	}).Return(nil)
	expectPairIssued(tokens, ledger, uint(42))

	uc := NewSignupUseCase(userRepo, orgRepo, ledger, stubHasher{}, tokens, noopLogger{})
	result, err := uc.Execute(context.Background(), SignupCommand{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User.Email())
	assert.Equal(t, "alice's org", result.Org.Name())
	require.NotNil(t, result.User.OrgID())
	assert.Equal(t, uint(7), *result.User.OrgID())
	assert.Equal(t, "access-token", result.Tokens.AccessToken)

	userRepo.AssertExpectations(t)
	orgRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestSignupUseCase_Execute_EmailTaken(t *testing.T) {
	userRepo := new(mockUserRepository)
	orgRepo := new(mockOrgRepository)
	ledger := new(mockRefreshTokenRepository)
	tokens := new(mockTokenService)

	userRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	uc := NewSignupUseCase(userRepo, orgRepo, ledger, stubHasher{}, tokens, noopLogger{})
	_, err := uc.Execute(context.Background(), SignupCommand{
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.True(t, errors.IsConflictError(err))
	orgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupUseCase_Execute_ReusesExistingDefaultOrg(t *testing.T) {
	userRepo := new(mockUserRepository)
	orgRepo := new(mockOrgRepository)
	ledger := new(mockRefreshTokenRepository)
	tokens := new(mockTokenService)

	existingOrg, err := org.ReconstructOrg(3, "bob's org")
	require.NoError(t, err)

	userRepo.On("ExistsByEmail", mock.Anything, "bob@example.com").Return(false, nil)
	orgRepo.On("GetByName", mock.Anything, "bob's org").Return(existingOrg, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*user.User)
		require.NoError(t, u.SetID(9))
	}).Return(nil)
	expectPairIssued(tokens, ledger, uint(9))

	uc := NewSignupUseCase(userRepo, orgRepo, ledger, stubHasher{}, tokens, noopLogger{})
	result, err := uc.Execute(context.Background(), SignupCommand{
		Email:    "bob@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.Org.ID())
	orgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupUseCase_Execute_WeakPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	orgRepo := new(mockOrgRepository)
	ledger := new(mockRefreshTokenRepository)
	tokens := new(mockTokenService)

	existingOrg, err := org.ReconstructOrg(3, "eve's org")
	require.NoError(t, err)

	userRepo.On("ExistsByEmail", mock.Anything, "eve@example.com").Return(false, nil)
	orgRepo.On("GetByName", mock.Anything, "eve's org").Return(existingOrg, nil)

	uc := NewSignupUseCase(userRepo, orgRepo, ledger, stubHasher{}, tokens, noopLogger{})
	_, err = uc.Execute(context.Background(), SignupCommand{
		Email:    "eve@example.com",
		Password: "short",
	})

	assert.True(t, errors.IsValidationError(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
