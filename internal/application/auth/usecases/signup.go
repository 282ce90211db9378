package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SignupCommand struct {
	Email    string
	Password string
}

type SignupResult struct {
	User   *user.User
	Org    *org.Org
	Tokens *TokenPair
}

// SignupUseCase registers an account together with its default organization
// and issues the first token pair.
type SignupUseCase struct {
	userRepo user.Repository
	orgRepo  org.Repository
	ledger   user.RefreshTokenRepository
	hasher   user.PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	orgRepo org.Repository,
	ledger user.RefreshTokenRepository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		ledger:   ledger,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	o, err := resolveDefaultOrg(ctx, uc.orgRepo, emailLocalPart(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to resolve default org", "error", err)
		return nil, err
	}

	u, err := user.NewUser(cmd.Email, cmd.Password, o.ID(), uc.hasher)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := uc.tokens.GeneratePair(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token pair", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	if err := recordRefreshToken(ctx, uc.ledger, uc.tokens, u.ID(), pair); err != nil {
		uc.logger.Errorw("failed to record refresh token", "error", err, "user_id", u.ID())
		return nil, err
	}

	uc.logger.Infow("user signed up", "user_id", u.ID(), "org_id", o.ID())
	return &SignupResult{User: u, Org: o, Tokens: pair}, nil
}
