package usecases

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/domain/org"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// resolveDefaultOrg finds or creates the caller's default organization, named
// after the email local part. Creation races collapse onto the existing row,
// so the operation is idempotent.
func resolveDefaultOrg(ctx context.Context, orgRepo org.Repository, emailLocalPart string) (*org.Org, error) {
	name := org.DefaultNameFor(emailLocalPart)

	existing, err := orgRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up org: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := org.NewOrg(name)
	if err != nil {
		return nil, fmt.Errorf("failed to build org: %w", err)
	}
	if err := orgRepo.Create(ctx, created); err != nil {
		if errors.IsConflictError(err) {
			return orgRepo.GetByName(ctx, name)
		}
		return nil, err
	}
	return created, nil
}

// ensureUserOrg heals accounts created before org binding existed: a user
// without an org gets the default one attached and persisted. Users that
// already have an org pass through untouched, so repeated calls are no-ops.
func ensureUserOrg(
	ctx context.Context,
	u *user.User,
	userRepo user.Repository,
	orgRepo org.Repository,
	log logger.Interface,
) (*org.Org, error) {
	if u.HasOrg() {
		o, err := orgRepo.GetByID(ctx, *u.OrgID())
		if err != nil {
			return nil, fmt.Errorf("failed to load user org: %w", err)
		}
		return o, nil
	}

	o, err := resolveDefaultOrg(ctx, orgRepo, u.EmailLocalPart())
	if err != nil {
		return nil, err
	}

	u.AttachOrg(o.ID())
	if err := userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to attach org to user: %w", err)
	}

	log.Infow("attached default org to legacy user",
		"user_id", u.ID(),
		"org_id", o.ID())
	return o, nil
}

// recordRefreshToken writes the hashed jti of a freshly issued refresh token
// into the ledger.
func recordRefreshToken(
	ctx context.Context,
	ledger user.RefreshTokenRepository,
	tokens TokenService,
	userID uint,
	pair *TokenPair,
) error {
	record, err := user.NewRefreshToken(userID, tokens.HashJTI(pair.RefreshJTI), tokens.RefreshTTL())
	if err != nil {
		return fmt.Errorf("failed to build refresh token record: %w", err)
	}
	if err := ledger.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record refresh token: %w", err)
	}
	return nil
}

func emailLocalPart(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
