package handlers

import (
	"strconv"
	"strings"

	"github.com/dishflow/dishflow-web/internal/pagination"
	"github.com/gin-gonic/gin"
)

// sortChoices drives the sort <select> on the listing pages.
var sortChoices = []struct {
	Value pagination.SortOption
	Label string
}{
	{pagination.SortNameAsc, "Name (A-Z)"},
	{pagination.SortNameDesc, "Name (Z-A)"},
	{pagination.SortRatingDesc, "Rating (high to low)"},
	{pagination.SortRatingAsc, "Rating (low to high)"},
}

// parseBrowseQuery derives the listing query from the request URL. The URL
// carries the whole listing state; an unknown sort or a bad page number falls
// back rather than erroring.
func parseBrowseQuery(c *gin.Context, pageSize int, defaultSort pagination.SortOption) pagination.Query {
	query := pagination.NewQuery(pageSize, defaultSort)
	query = query.WithSearch(strings.TrimSpace(c.Query("q")))
	query = query.WithSort(pagination.ParseSortOption(c.Query("sort"), defaultSort))

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			query = query.WithPage(page, 0)
		}
	}

	return query
}
