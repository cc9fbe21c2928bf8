package handlers

import (
	"net/http"

	"github.com/dishflow/dishflow-web/internal/pagination"
	"github.com/dishflow/dishflow-web/internal/services"
	"github.com/gin-gonic/gin"
)

// LandingHandler serves the public recipe browsing page.
type LandingHandler struct {
	recipes  services.RecipeServiceInterface
	auth     services.AuthServiceInterface
	pageSize int
}

func NewLandingHandler(recipes services.RecipeServiceInterface, auth services.AuthServiceInterface, pageSize int) *LandingHandler {
	return &LandingHandler{
		recipes:  recipes,
		auth:     auth,
		pageSize: pageSize,
	}
}

// Landing renders the public listing, best-rated first by default.
func (h *LandingHandler) Landing(c *gin.Context) {
	query := parseBrowseQuery(c, h.pageSize, pagination.SortRatingDesc)

	status := http.StatusOK
	var errorMessage string
	result, err := h.recipes.Browse(c.Request.Context(), query)
	if err != nil {
		// Degrade to an inline message; the search and sort state stays put
		attachError(c, err)
		status = statusForError(err)
		errorMessage = upstreamFailureMessage
		result = &services.BrowseResult{Query: query}
	}

	c.HTML(status, "landing.html", gin.H{
		"Title":         "dishFlow",
		"BasePath":      "/",
		"Result":        result,
		"Query":         result.Query,
		"SortChoices":   sortChoices,
		"Error":         errorMessage,
		"Authenticated": h.auth.IsAuthenticated(),
	})
}
