package http

import (
	authUsecases "helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
)

// jwtServiceAdapter bridges the infrastructure JWT service to the token
// service interface the auth use cases define.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) GeneratePair(userID uint, role authorization.UserRole) (*authUsecases.TokenPair, error) {
	pair, err := a.JWTService.GeneratePair(userID, role)
	if err != nil {
		return nil, err
	}
	return &authUsecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		RefreshJTI:   pair.RefreshJTI,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) Verify(token string) (*authUsecases.TokenClaims, error) {
	claims, err := a.JWTService.Verify(token)
	if err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return &authUsecases.TokenClaims{
		UserID:    userID,
		Role:      claims.Role,
		TokenType: string(claims.TokenType),
		JTI:       claims.ID,
	}, nil
}

func (a *jwtServiceAdapter) HashJTI(jti string) string {
	return auth.HashJTI(jti)
}
