package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth authenticates the request with an access token taken from the
// access cookie, falling back to the Authorization Bearer header. On success
// the user ID and role are stored on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetBearerToken(c, utils.AccessTokenCookie)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

// RequireOrg resolves the authenticated caller's organization and stores its
// ID on the context. Callers without an organization are rejected. Must run
// after RequireAuth.
func (m *AuthMiddleware) RequireOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(constants.ContextKeyUserID)
		if userID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil || u == nil {
			m.logger.Warnw("failed to resolve authenticated user", "error", err, "user_id", userID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if !u.HasOrg() {
			utils.ErrorResponse(c, http.StatusForbidden, "user has no organization")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyOrgID, *u.OrgID())

		c.Next()
	}
}
