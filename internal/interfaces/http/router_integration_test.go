package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/persistence/models"
	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory SQLite is per-connection; pin the pool to one so every
	// query in a test sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.OrgModel{},
		&models.RefreshTokenModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
		&models.KBArticleModel{},
	))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT: sharedConfig.JWTConfig{
				Secret:           "integration-test-secret",
				AccessExpMinutes: 10080,
				RefreshExpDays:   30,
			},
			Cookie: sharedConfig.CookieConfig{Path: "/", SameSite: "Lax"},
		},
		AI: sharedConfig.AIConfig{DraftsPerMinute: 1000},
	}

	// Unreachable Redis: the rate limiter degrades open, which keeps these
	// tests independent of a running instance.
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:1"})
	t.Cleanup(func() { redisClient.Close() })

	router := NewRouter(db, redisClient, cfg, logger.NewLogger())
	router.SetupRoutes()
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, router *Router, method, path, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	var cookies []*http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" || c.Name == "refresh_token" {
			if c.Value != "" {
				cookies = append(cookies, c)
			}
		}
	}
	return cookies
}

func signup(t *testing.T, router *Router, email, password string) []*http.Cookie {
	t.Helper()
	w, env := doJSON(t, router, http.MethodPost, "/auth/signup",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password), nil)
	require.Equal(t, http.StatusCreated, w.Code, "signup: %s", w.Body.String())
	require.True(t, env.Success)
	cookies := sessionCookies(w)
	require.Len(t, cookies, 2)
	return cookies
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)

	cookies := signup(t, router, "ada@example.com", "correct horse battery")

	t.Run("me returns the signed up user", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodGet, "/auth/me", "", cookies)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), "ada@example.com")
		assert.Contains(t, string(env.Data), `"role":"owner"`)
	})

	t.Run("duplicate signup conflicts", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/auth/signup",
			`{"email":"ada@example.com","password":"another password"}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		w1, env1 := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"ada@example.com","password":"wrong password"}`, nil)
		w2, env2 := doJSON(t, router, http.MethodPost, "/auth/login",
			`{"email":"nobody@example.com","password":"wrong password"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, w1.Code)
		assert.Equal(t, http.StatusUnauthorized, w2.Code)
		require.NotNil(t, env1.Error)
		require.NotNil(t, env2.Error)
		assert.Equal(t, env1.Error.Message, env2.Error.Message)
	})

	t.Run("refresh rotates and replay fails", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/auth/refresh", "", cookies)
		require.Equal(t, http.StatusOK, w.Code, "refresh: %s", w.Body.String())
		rotated := sessionCookies(w)
		require.Len(t, rotated, 2)

		// The consumed refresh token must not work a second time.
		w, _ = doJSON(t, router, http.MethodPost, "/auth/refresh", "", cookies)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		// The successor works.
		w, _ = doJSON(t, router, http.MethodPost, "/auth/refresh", "", rotated)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("refresh without cookie is unauthorized", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/auth/refresh", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout always succeeds and clears cookies", func(t *testing.T) {
		fresh := signup(t, router, "grace@example.com", "long enough password")

		w, _ := doJSON(t, router, http.MethodPost, "/auth/logout", "", fresh)
		assert.Equal(t, http.StatusOK, w.Code)

		// Second logout with the already revoked token still succeeds.
		w, _ = doJSON(t, router, http.MethodPost, "/auth/logout", "", fresh)
		assert.Equal(t, http.StatusOK, w.Code)

		for _, c := range w.Result().Cookies() {
			assert.Empty(t, c.Value)
		}
	})
}

func TestTicketFlow(t *testing.T) {
	router := newTestRouter(t)
	cookies := signup(t, router, "support@example.com", "correct horse battery")

	t.Run("create list get", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodPost, "/tickets",
			`{"subject":"Printer on fire","message":"It is literally on fire."}`, cookies)
		require.Equal(t, http.StatusCreated, w.Code, "create: %s", w.Body.String())
		assert.Contains(t, string(env.Data), `"priority":"medium"`)

		w, env = doJSON(t, router, http.MethodGet, "/tickets", "", cookies)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"total":1`)

		w, env = doJSON(t, router, http.MethodGet, "/tickets/1", "", cookies)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), "It is literally on fire.")
	})

	t.Run("cross-tenant ticket reads as not found", func(t *testing.T) {
		other := signup(t, router, "rival@example.com", "correct horse battery")

		w, _ := doJSON(t, router, http.MethodGet, "/tickets/1", "", other)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, _ = doJSON(t, router, http.MethodDelete, "/tickets/1", "", other)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("add message and patch status", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/tickets/1/messages",
			`{"content":"We sent the fire brigade.","role":"agent"}`, cookies)
		assert.Equal(t, http.StatusCreated, w.Code)

		w, env := doJSON(t, router, http.MethodPatch, "/tickets/1",
			`{"status":"closed"}`, cookies)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"status":"closed"`)
	})

	t.Run("unauthenticated requests are rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, "/tickets", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDraftReplyEndpoint(t *testing.T) {
	router := newTestRouter(t)
	cookies := signup(t, router, "agent@example.com", "correct horse battery")

	w, _ := doJSON(t, router, http.MethodPost, "/tickets",
		`{"subject":"VPN keeps disconnecting","message":"Drops every few minutes."}`, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, router, http.MethodPost, "/ai/draft-reply",
		`{"ticket_id":1,"tone":"short"}`, cookies)
	require.Equal(t, http.StatusOK, w.Code, "draft: %s", w.Body.String())
	assert.Contains(t, string(env.Data), "Ref: VPN keeps disconnecting")

	t.Run("cross-tenant draft is not found", func(t *testing.T) {
		other := signup(t, router, "outsider@example.com", "correct horse battery")
		w, _ := doJSON(t, router, http.MethodPost, "/ai/draft-reply",
			`{"ticket_id":1}`, other)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestKBEndpoints(t *testing.T) {
	router := newTestRouter(t)
	cookies := signup(t, router, "kb@example.com", "correct horse battery")

	w, _ := doJSON(t, router, http.MethodPost, "/kb",
		`{"title":"VPN troubleshooting","body":"# Steps\n\nRestart the client.","tags":["network"]}`, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, router, http.MethodGet, "/kb/search?q=vpn", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "VPN troubleshooting")

	w, env = doJSON(t, router, http.MethodGet, "/kb/1", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "rendered_body")
	assert.Contains(t, string(env.Data), "Steps")
}
