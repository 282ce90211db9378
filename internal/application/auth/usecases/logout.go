package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type LogoutCommand struct {
	RefreshToken string
}

// LogoutUseCase revokes the presented refresh token's ledger record on a
// best-effort basis. Every failure is swallowed; logout always succeeds so a
// client can always clear its session.
type LogoutUseCase struct {
	ledger user.RefreshTokenRepository
	tokens TokenService
	logger logger.Interface
}

func NewLogoutUseCase(
	ledger user.RefreshTokenRepository,
	tokens TokenService,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		ledger: ledger,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) {
	if cmd.RefreshToken == "" {
		return
	}

	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil || claims.TokenType != tokenTypeRefresh || claims.JTI == "" {
		return
	}

	if _, err := uc.ledger.RevokeIfActive(ctx, uc.tokens.HashJTI(claims.JTI)); err != nil {
		uc.logger.Debugw("logout revocation skipped", "error", err)
	}
}
