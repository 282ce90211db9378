package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"helpdesk/internal/application/ai"
	aiUsecases "helpdesk/internal/application/ai/usecases"
	authUsecases "helpdesk/internal/application/auth/usecases"
	kbUsecases "helpdesk/internal/application/kb/usecases"
	orgUsecases "helpdesk/internal/application/org/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
	"helpdesk/internal/shared/utils"
)

// Router wires repositories, use cases and handlers into a Gin engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	ticketHandler  *handlers.TicketHandler
	orgHandler     *handlers.OrgHandler
	kbHandler      *handlers.KBHandler
	aiHandler      *handlers.AIHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	allowedOrigins []string
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrgRepository(db)
	tokenLedger := repository.NewRefreshTokenRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	kbRepo := repository.NewKBArticleRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokenService := &jwtServiceAdapter{jwtSvc}
	markdownSvc := markdown.NewService()
	drafter := ai.NewMockDrafter()

	signupUC := authUsecases.NewSignupUseCase(userRepo, orgRepo, tokenLedger, hasher, tokenService, log)
	loginUC := authUsecases.NewLoginUseCase(userRepo, orgRepo, tokenLedger, hasher, tokenService, log)
	refreshUC := authUsecases.NewRefreshSessionUseCase(userRepo, orgRepo, tokenLedger, tokenService, log)
	logoutUC := authUsecases.NewLogoutUseCase(tokenLedger, tokenService, log)
	currentUserUC := authUsecases.NewGetCurrentUserUseCase(userRepo, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, log)
	addMessageUC := ticketUsecases.NewAddMessageUseCase(ticketRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log)

	createOrgUC := orgUsecases.NewCreateOrgUseCase(orgRepo, log)
	listOrgsUC := orgUsecases.NewListOrgsUseCase(orgRepo, log)
	deleteOrgUC := orgUsecases.NewDeleteOrgUseCase(orgRepo, ticketRepo, userRepo, log)

	createArticleUC := kbUsecases.NewCreateArticleUseCase(kbRepo, log)
	listArticlesUC := kbUsecases.NewListArticlesUseCase(kbRepo, log)
	getArticleUC := kbUsecases.NewGetArticleUseCase(kbRepo, markdownSvc, log)

	draftReplyUC := aiUsecases.NewDraftReplyUseCase(ticketRepo, kbRepo, drafter, log)

	authHandler := handlers.NewAuthHandler(
		signupUC, loginUC, refreshUC, logoutUC, currentUserUC,
		log, cfg.Auth.Cookie, cfg.Auth.JWT,
	)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, listTicketsUC, getTicketUC, addMessageUC, updateTicketUC, deleteTicketUC, log,
	)
	orgHandler := handlers.NewOrgHandler(createOrgUC, listOrgsUC, deleteOrgUC, log)
	kbHandler := handlers.NewKBHandler(createArticleUC, listArticlesUC, getArticleUC, log)
	aiHandler := handlers.NewAIHandler(draftReplyUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, userRepo, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.AI.DraftsPerMinute, 1*time.Minute)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		ticketHandler:  ticketHandler,
		orgHandler:     orgHandler,
		kbHandler:      kbHandler,
		aiHandler:      aiHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupOrgRoutes(r.engine, &routes.OrgRouteConfig{
		OrgHandler:     r.orgHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupKBRoutes(r.engine, &routes.KBRouteConfig{
		KBHandler:      r.kbHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAIRoutes(r.engine, &routes.AIRouteConfig{
		AIHandler:      r.aiHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
