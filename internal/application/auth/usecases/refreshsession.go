package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RefreshSessionCommand struct {
	RefreshToken string
}

type RefreshSessionResult struct {
	User   *user.User
	Org    *org.Org
	Tokens *TokenPair
}

// RefreshSessionUseCase rotates a refresh token: the presented token's ledger
// record is atomically revoked and a successor pair is issued under a new
// jti. A token can therefore be consumed exactly once; replaying it, or
// racing two refreshes with the same token, leaves one caller with a 401.
type RefreshSessionUseCase struct {
	userRepo user.Repository
	orgRepo  org.Repository
	ledger   user.RefreshTokenRepository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshSessionUseCase(
	userRepo user.Repository,
	orgRepo org.Repository,
	ledger user.RefreshTokenRepository,
	tokens TokenService,
	logger logger.Interface,
) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		ledger:   ledger,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RefreshSessionUseCase) Execute(ctx context.Context, cmd RefreshSessionCommand) (*RefreshSessionResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewNotAuthenticatedError()
	}

	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewTokenInvalidError("refresh")
	}
	if claims.TokenType != tokenTypeRefresh || claims.UserID == 0 || claims.JTI == "" {
		return nil, errors.NewTokenInvalidError("refresh")
	}

	record, err := uc.ledger.RevokeIfActive(ctx, uc.tokens.HashJTI(claims.JTI))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewTokenRevokedError()
		}
		uc.logger.Errorw("failed to consume refresh token", "error", err)
		return nil, fmt.Errorf("failed to consume refresh token: %w", err)
	}
	if record.IsExpired() || record.UserID != claims.UserID {
		return nil, errors.NewTokenRevokedError()
	}

	existing, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewTokenInvalidError("refresh")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", claims.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
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

	uc.logger.Debugw("refresh token rotated", "user_id", existing.ID())
	return &RefreshSessionResult{User: existing, Org: o, Tokens: pair}, nil
}
