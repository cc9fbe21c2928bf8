package handlers

import (
	"net/http"

	apperrors "github.com/dishflow/dishflow-web/pkg/errors"
	"github.com/gin-gonic/gin"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// renderError renders the shared error page and attaches the error to the gin
// context for the request log.
func renderError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// upstreamFailureMessage is what listing pages show when the recipe service
// is unreachable or errors; the upstream's failure details never reach the
// browser.
const upstreamFailureMessage = "Something went wrong talking to the recipe service. Please try again."

// statusForError maps a domain error to an HTTP status.
func statusForError(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// renderServiceError maps a domain error onto the right status and page. The
// upstream's failure details never reach the browser.
func renderServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		renderError(c, http.StatusNotFound, "We couldn't find that recipe.", err)
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		renderError(c, http.StatusBadRequest, "That request didn't look right.", err)
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		attachError(c, err)
		c.Redirect(http.StatusFound, "/login")
	default:
		renderError(c, http.StatusBadGateway, upstreamFailureMessage, err)
	}
}
