package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// OrgRouteConfig holds dependencies for organization routes.
type OrgRouteConfig struct {
	OrgHandler     *handlers.OrgHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupOrgRoutes configures organization routes.
func SetupOrgRoutes(engine *gin.Engine, cfg *OrgRouteConfig) {
	orgs := engine.Group("/orgs")
	orgs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		orgs.POST("", cfg.OrgHandler.CreateOrg)
		orgs.GET("", cfg.OrgHandler.ListOrgs)
		orgs.DELETE("/:id",
			authorization.RequireAdmin(),
			cfg.OrgHandler.DeleteOrg)
	}
}
