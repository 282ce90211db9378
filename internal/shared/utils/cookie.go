package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/config"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SetAuthCookies sets access and refresh token as HttpOnly cookies
func SetAuthCookies(c *gin.Context, cookieConfig config.CookieConfig, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		AccessTokenCookie,
		accessToken,
		accessMaxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)

	c.SetCookie(
		RefreshTokenCookie,
		refreshToken,
		refreshMaxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearAuthCookies clears access and refresh token cookies. Both cookies are
// always cleared together.
func ClearAuthCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		c.SetCookie(
			name,
			"",
			-1,
			cookieConfig.Path,
			cookieConfig.Domain,
			cookieConfig.Secure,
			true, // HttpOnly
		)
	}
}

// GetTokenFromCookie retrieves a token from the named cookie, returning ""
// when absent.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

// GetBearerToken extracts a token from the request, preferring the named
// cookie and falling back to the Authorization: Bearer header.
func GetBearerToken(c *gin.Context, cookieName string) string {
	if token := GetTokenFromCookie(c, cookieName); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
