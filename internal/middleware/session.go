package middleware

import (
	"net/http"

	"github.com/dishflow/dishflow-web/internal/services"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireSession guards dashboard routes: without an active session the
// browser is redirected to the login page.
func RequireSession(auth services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IsAuthenticated() {
			logger.Debug("Unauthenticated request redirected to login",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RedirectIfAuthenticated keeps a signed-in user off the login page.
func RedirectIfAuthenticated(auth services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}

		c.Next()
	}
}
