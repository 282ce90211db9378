package user

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// RefreshToken is one entry in the refresh-token ledger. It stores only the
// SHA-256 digest of the token's jti; the raw identifier is never persisted.
//
// Lifecycle per identifier: issued, then revoked (terminal) or expired
// (terminal, derived from ExpiresAt). There is no resurrection transition.
type RefreshToken struct {
	ID        uint
	UserID    uint
	JTIHash   string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// NewRefreshToken creates a non-revoked ledger record expiring after ttl.
func NewRefreshToken(userID uint, jtiHash string, ttl time.Duration) (*RefreshToken, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if jtiHash == "" {
		return nil, fmt.Errorf("jti hash is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be positive")
	}

	now := biztime.NowUTC()
	return &RefreshToken{
		UserID:    userID,
		JTIHash:   jtiHash,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

// IsExpired reports whether the record's expiry is in the past. ExpiresAt is
// normalized to UTC before comparison regardless of how it was persisted.
func (t *RefreshToken) IsExpired() bool {
	return !biztime.ToUTC(t.ExpiresAt).After(biztime.NowUTC())
}

// IsUsable reports whether the record may still mint a successor pair.
func (t *RefreshToken) IsUsable() bool {
	return !t.Revoked && !t.IsExpired()
}

// Revoke idempotently marks the record revoked.
func (t *RefreshToken) Revoke() {
	t.Revoked = true
}

// RefreshTokenRepository is the persisted ledger of issued refresh tokens.
type RefreshTokenRepository interface {
	// Create inserts a new ledger record.
	Create(ctx context.Context, token *RefreshToken) error

	// GetByJTIHash looks up a record by the hashed token identifier.
	// Absence signals an unknown token.
	GetByJTIHash(ctx context.Context, jtiHash string) (*RefreshToken, error)

	// Revoke idempotently flips the revoked flag on a record.
	Revoke(ctx context.Context, id uint) error

	// RevokeIfActive atomically revokes the record with the given jti hash
	// only when it is not yet revoked, returning the record on success.
	// Exactly one of two concurrent calls for the same hash can win.
	RevokeIfActive(ctx context.Context, jtiHash string) (*RefreshToken, error)

	// DeleteExpired removes records whose expiry has passed. Maintenance
	// only; revocation, not deletion, is the logical delete.
	DeleteExpired(ctx context.Context) (int64, error)
}
