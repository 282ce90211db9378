package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// AIRouteConfig holds dependencies for AI drafting routes.
type AIRouteConfig struct {
	AIHandler      *handlers.AIHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAIRoutes configures AI drafting routes. Drafting reads the caller's
// org tickets, so it carries the same org requirement as the ticket routes,
// plus a per-IP rate limit.
func SetupAIRoutes(engine *gin.Engine, cfg *AIRouteConfig) {
	ai := engine.Group("/ai")
	ai.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireOrg())
	{
		ai.POST("/draft-reply", cfg.RateLimiter.Limit(), cfg.AIHandler.DraftReply)
	}
}
