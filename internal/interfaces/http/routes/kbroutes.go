package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// KBRouteConfig holds dependencies for knowledge base routes.
type KBRouteConfig struct {
	KBHandler      *handlers.KBHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupKBRoutes configures knowledge base routes. The knowledge base is
// shared across organizations; any authenticated caller may read and write.
func SetupKBRoutes(engine *gin.Engine, cfg *KBRouteConfig) {
	kb := engine.Group("/kb")
	kb.Use(cfg.AuthMiddleware.RequireAuth())
	{
		kb.POST("", cfg.KBHandler.CreateArticle)
		kb.GET("", cfg.KBHandler.ListArticles)

		// /search before /:id so it is not swallowed by the parameter route
		kb.GET("/search", cfg.KBHandler.SearchArticles)

		kb.GET("/:id", cfg.KBHandler.GetArticle)
	}
}
