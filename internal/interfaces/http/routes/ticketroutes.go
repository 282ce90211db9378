package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket routes. Every route requires an
// authenticated caller with an organization; ticket access is scoped to it.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireOrg())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		// Specific paths before parameterized ones to avoid route conflicts
		tickets.POST("/:id/messages", cfg.TicketHandler.AddMessage)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PATCH("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			cfg.TicketHandler.DeleteTicket)
	}
}
