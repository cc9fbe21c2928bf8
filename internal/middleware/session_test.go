package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dishflow/dishflow-web/internal/middleware"
	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{
		Level:       "error",
		Environment: "test",
	}); err != nil {
		panic(fmt.Sprintf("failed to initialize test logger: %v", err))
	}
}

// stubAuth satisfies the auth surface the guards need
type stubAuth struct {
	authenticated bool
}

func (s *stubAuth) Login(context.Context, models.Credentials) (*models.User, error) { return nil, nil }
func (s *stubAuth) Logout()                                                         {}
func (s *stubAuth) EnsureUser(context.Context) (*models.User, error)                { return nil, nil }
func (s *stubAuth) IsAuthenticated() bool                                           { return s.authenticated }

func TestRequireSession_RedirectsAnonymousToLogin(t *testing.T) {
	router := gin.New()
	router.GET("/dashboard", middleware.RequireSession(&stubAuth{authenticated: false}), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSession_PassesAuthenticated(t *testing.T) {
	router := gin.New()
	router.GET("/dashboard", middleware.RequireSession(&stubAuth{authenticated: true}), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard", w.Body.String())
}

func TestRedirectIfAuthenticated(t *testing.T) {
	router := gin.New()
	router.GET("/login", middleware.RedirectIfAuthenticated(&stubAuth{authenticated: true}), func(c *gin.Context) {
		c.String(http.StatusOK, "login form")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRedirectIfAuthenticated_PassesAnonymous(t *testing.T) {
	router := gin.New()
	router.GET("/login", middleware.RedirectIfAuthenticated(&stubAuth{authenticated: false}), func(c *gin.Context) {
		c.String(http.StatusOK, "login form")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 2)
	router := gin.New()
	router.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
