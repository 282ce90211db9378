package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the signed claim set carried by both token types. The subject is
// the user ID, the ID field is the refresh jti, and TokenType tags the token
// so an access token can never pass for a refresh token or vice versa.
type Claims struct {
	Role      authorization.UserRole `json:"role,omitempty"`
	TokenType TokenType              `json:"typ"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back to a user ID.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject claim")
	}
	return uint(id), nil
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	RefreshJTI   string
	ExpiresIn    int64
}

// JWTService signs and verifies compact claim sets with a process-wide
// HS256 secret.
type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

// GeneratePair issues one access token and one refresh token for the user.
// The refresh token embeds a freshly generated jti, also returned so the
// caller can record it in the ledger.
func (s *JWTService) GeneratePair(userID uint, role authorization.UserRole) (*TokenPair, error) {
	accessToken, err := s.IssueAccessToken(userID, role)
	if err != nil {
		return nil, err
	}

	refreshToken, jti, err := s.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RefreshJTI:   jti,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

// IssueAccessToken signs an access-typed claim set expiring after the
// configured access TTL.
func (s *JWTService) IssueAccessToken(userID uint, role authorization.UserRole) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		Role:      role,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// IssueRefreshToken signs a refresh-typed claim set with a fresh random jti,
// returning both the token and the raw jti.
func (s *JWTService) IssueRefreshToken(userID uint) (string, string, error) {
	now := biztime.NowUTC()
	jti := uuid.NewString()

	claims := &Claims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.RefreshTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, jti, nil
}

// Verify checks signature and expiry. Any failure collapses to a single
// generic error; the caller must not learn why a token was rejected.
// Verify does not check the type tag or ledger state; callers do that.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token")
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// AccessTTL returns the configured access token lifetime.
func (s *JWTService) AccessTTL() time.Duration {
	return time.Duration(s.accessExpMinutes) * time.Minute
}

// RefreshTTL returns the configured refresh token lifetime.
func (s *JWTService) RefreshTTL() time.Duration {
	return time.Duration(s.refreshExpDays) * 24 * time.Hour
}

// HashJTI returns the SHA-256 hex digest of a refresh token identifier.
// The ledger stores and looks up only this digest, never the raw jti.
func HashJTI(jti string) string {
	sum := sha256.Sum256([]byte(jti))
	return hex.EncodeToString(sum[:])
}
