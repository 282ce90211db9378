package errors

import (
	"fmt"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeTokenRevoked       ErrorType = "token_revoked"
	ErrorTypeNotAuthenticated   ErrorType = "not_authenticated"
)

// AuthError represents authentication-specific errors with enhanced security context
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged
	// Some auth errors (like invalid credentials) may be expected and don't need error-level logging
	ShouldLog bool
	// SecurityEvent indicates if this should be tracked as a security event
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for invalid login credentials.
// The same error covers unknown email and wrong password so callers cannot
// enumerate accounts.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false, // Expected error, don't clutter logs
		SecurityEvent: true,  // Track for brute force detection
	}
}

// NewTokenInvalidError creates an error for invalid tokens.
// The message is deliberately generic regardless of whether the failure was a
// bad signature, a malformed payload, or a wrong type tag.
func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: fmt.Sprintf("Invalid %s", tokenType),
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true, // May indicate tampering
		SecurityEvent: true,
	}
}

// NewTokenRevokedError creates an error for revoked or expired refresh tokens
func NewTokenRevokedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenRevoked,
			Message: "Refresh token revoked or expired",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true, // Replay of a consumed token is security-relevant
		SecurityEvent: true,
	}
}

// NewNotAuthenticatedError creates an error for requests carrying no credentials
func NewNotAuthenticatedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeNotAuthenticated,
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}
