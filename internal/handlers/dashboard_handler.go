package handlers

import (
	"net/http"

	"github.com/dishflow/dishflow-web/internal/pagination"
	"github.com/dishflow/dishflow-web/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the signed-in management listing.
type DashboardHandler struct {
	recipes  services.RecipeServiceInterface
	auth     services.AuthServiceInterface
	pageSize int
}

func NewDashboardHandler(recipes services.RecipeServiceInterface, auth services.AuthServiceInterface, pageSize int) *DashboardHandler {
	return &DashboardHandler{
		recipes:  recipes,
		auth:     auth,
		pageSize: pageSize,
	}
}

// Dashboard renders the management listing, alphabetical by default.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user, err := h.auth.EnsureUser(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}

	query := parseBrowseQuery(c, h.pageSize, pagination.SortNameAsc)

	status := http.StatusOK
	var errorMessage string
	result, err := h.recipes.Browse(c.Request.Context(), query)
	if err != nil {
		attachError(c, err)
		status = statusForError(err)
		errorMessage = upstreamFailureMessage
		result = &services.BrowseResult{Query: query}
	}

	c.HTML(status, "dashboard.html", gin.H{
		"Title":       "Dashboard",
		"BasePath":    "/dashboard",
		"User":        user,
		"Result":      result,
		"Query":       result.Query,
		"SortChoices": sortChoices,
		"Error":       errorMessage,
	})
}
