package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetCurrentUserCommand struct {
	UserID uint
}

// GetCurrentUserUseCase resolves the authenticated caller's account. The
// token was already verified by the middleware; a subject that no longer
// resolves to a user reads as not authenticated.
type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, cmd GetCurrentUserCommand) (*user.User, error) {
	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotAuthenticatedError()
		}
		uc.logger.Errorw("failed to get current user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return existing, nil
}
