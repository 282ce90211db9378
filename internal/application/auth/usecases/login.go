package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User   *user.User
	Org    *org.Org
	Tokens *TokenPair
}

// LoginUseCase authenticates by email and password and issues a fresh token
// pair. Unknown email and wrong password fail identically.
type LoginUseCase struct {
	userRepo user.Repository
	orgRepo  org.Repository
	ledger   user.RefreshTokenRepository
	hasher   user.PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	orgRepo org.Repository,
	ledger user.RefreshTokenRepository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		ledger:   ledger,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := existing.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	o, err := ensureUserOrg(ctx, existing, uc.userRepo, uc.orgRepo, uc.logger)
	if err != nil {
		uc.logger.Errorw("failed to ensure user org", "error", err, "user_id", existing.ID())
		return nil, err
	}

	pair, err := uc.tokens.GeneratePair(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token pair", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	if err := recordRefreshToken(ctx, uc.ledger, uc.tokens, existing.ID(), pair); err != nil {
		uc.logger.Errorw("failed to record refresh token", "error", err, "user_id", existing.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())
	return &LoginResult{User: existing, Org: o, Tokens: pair}, nil
}
