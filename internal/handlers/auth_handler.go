package handlers

import (
	"net/http"

	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/internal/services"
	apperrors "github.com/dishflow/dishflow-web/pkg/errors"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth services.AuthServiceInterface
}

func NewAuthHandler(auth services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginPage renders the sign-in form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Sign in",
	})
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login exchanges the submitted credentials for a session. Failures re-render
// the form with the username kept and the password dropped.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		attachError(c, err)
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Title":    "Sign in",
			"Error":    "Username and password are required.",
			"Username": c.PostForm("username"),
		})
		return
	}

	creds := models.Credentials{Username: form.Username, Password: form.Password}
	if _, err := h.auth.Login(c.Request.Context(), creds); err != nil {
		attachError(c, err)

		message := "Something went wrong. Please try again."
		status := http.StatusBadGateway
		if apperrors.Is(err, apperrors.ErrUnauthorized) || apperrors.Is(err, apperrors.ErrInvalidInput) {
			message = "Invalid username or password."
			status = http.StatusUnauthorized
		}

		c.HTML(status, "login.html", gin.H{
			"Title":    "Sign in",
			"Error":    message,
			"Username": form.Username,
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout ends the session and returns to the public landing page.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout()
	c.Redirect(http.StatusFound, "/")
}
