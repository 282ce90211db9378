package usecases

import (
	"time"

	"helpdesk/internal/shared/authorization"
)

// TokenPair carries a freshly signed access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	RefreshJTI   string
	ExpiresIn    int64
}

// TokenClaims is the decoded claim set of a verified token.
type TokenClaims struct {
	UserID    uint
	Role      authorization.UserRole
	TokenType string
	JTI       string
}

// TokenService issues and verifies the signed tokens used by the auth flows.
type TokenService interface {
	GeneratePair(userID uint, role authorization.UserRole) (*TokenPair, error)
	Verify(token string) (*TokenClaims, error)
	RefreshTTL() time.Duration
	HashJTI(jti string) string
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)
