package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	signupUseCase      *usecases.SignupUseCase
	loginUseCase       *usecases.LoginUseCase
	refreshUseCase     *usecases.RefreshSessionUseCase
	logoutUseCase      *usecases.LogoutUseCase
	currentUserUseCase *usecases.GetCurrentUserUseCase
	logger             logger.Interface
	cookieConfig       config.CookieConfig
	jwtConfig          config.JWTConfig
}

func NewAuthHandler(
	signupUC *usecases.SignupUseCase,
	loginUC *usecases.LoginUseCase,
	refreshUC *usecases.RefreshSessionUseCase,
	logoutUC *usecases.LogoutUseCase,
	currentUserUC *usecases.GetCurrentUserUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
	jwtConfig config.JWTConfig,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase:      signupUC,
		loginUseCase:       loginUC,
		refreshUseCase:     refreshUC,
		logoutUseCase:      logoutUC,
		currentUserUseCase: currentUserUC,
		logger:             logger,
		cookieConfig:       cookieConfig,
		jwtConfig:          jwtConfig,
	}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, err)
		return
	}

	cmd := usecases.SignupCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, result.Tokens)

	utils.SuccessResponse(c, http.StatusCreated, "signup successful", gin.H{
		"user":       NewUserResponse(result.User),
		"org":        NewOrgResponse(result.Org),
		"expires_in": result.Tokens.ExpiresIn,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, result.Tokens)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":       NewUserResponse(result.User),
		"org":        NewOrgResponse(result.Org),
		"expires_in": result.Tokens.ExpiresIn,
	})
}

// Refresh handles POST /auth/refresh. The refresh token travels only in its
// HttpOnly cookie; rotation replaces both cookies.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)

	cmd := usecases.RefreshSessionCommand{RefreshToken: refreshToken}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookies(c, result.Tokens)

	utils.SuccessResponse(c, http.StatusOK, "session refreshed", gin.H{
		"user":       NewUserResponse(result.User),
		"expires_in": result.Tokens.ExpiresIn,
	})
}

// Logout handles POST /auth/logout. Always succeeds; a client must always be
// able to clear its session.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)

	h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{RefreshToken: refreshToken})

	utils.ClearAuthCookies(c, h.cookieConfig)

	utils.SuccessResponse(c, http.StatusOK, "logout successful", gin.H{"ok": true})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	currentUser, err := h.currentUserUseCase.Execute(c.Request.Context(), usecases.GetCurrentUserCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserResponse(currentUser))
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, tokens *usecases.TokenPair) {
	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 60 * 60

	utils.SetAuthCookies(c, h.cookieConfig, tokens.AccessToken, tokens.RefreshToken, accessMaxAge, refreshMaxAge)
}
