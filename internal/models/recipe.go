package models

import "fmt"

// Recipe is a single record as returned by the upstream recipe service.
// The service owns these records entirely; we only hold transient copies.
type Recipe struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
	PrepTimeMinutes    int      `json:"prepTimeMinutes"`
	CookTimeMinutes    int      `json:"cookTimeMinutes"`
	Servings           int      `json:"servings"`
	Difficulty         string   `json:"difficulty"`
	Cuisine            string   `json:"cuisine"`
	CaloriesPerServing int      `json:"caloriesPerServing"`
	Tags               []string `json:"tags"`
	UserID             int      `json:"userId"`
	Image              string   `json:"image"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	MealType           []string `json:"mealType"`
}

// TotalTimeMinutes returns prep plus cook time for display.
func (r *Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// RecipePayload is the subset of recipe fields sent on create and update.
// The upstream service assigns ID (and UserID) on create.
type RecipePayload struct {
	Name               string   `json:"name"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
	PrepTimeMinutes    int      `json:"prepTimeMinutes"`
	CookTimeMinutes    int      `json:"cookTimeMinutes"`
	Servings           int      `json:"servings"`
	Difficulty         string   `json:"difficulty"`
	Cuisine            string   `json:"cuisine"`
	CaloriesPerServing int      `json:"caloriesPerServing"`
	Tags               []string `json:"tags"`
	Image              string   `json:"image"`
	Rating             float64  `json:"rating"`
	MealType           []string `json:"mealType"`
}

// RecipePage is one page of a paginated listing response.
type RecipePage struct {
	Recipes []Recipe `json:"recipes"`
	Total   int      `json:"total"`
	Skip    int      `json:"skip"`
	Limit   int      `json:"limit"`
}

// DeleteResult is the upstream acknowledgement of a delete.
type DeleteResult struct {
	ID        int  `json:"id"`
	IsDeleted bool `json:"isDeleted"`
}

// Sort orders accepted by the upstream service.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListFilter describes a parameterized listing request. A non-empty Query
// routes the request to the search endpoint instead of the plain listing.
type ListFilter struct {
	Limit     int
	Skip      int
	Query     string
	SortField string
	SortOrder string
}

// Normalize fills in the upstream defaults for zero-value fields.
func (f ListFilter) Normalize() ListFilter {
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.SortField == "" {
		f.SortField = "name"
	}
	if f.SortOrder != OrderDesc {
		f.SortOrder = OrderAsc
	}
	return f
}

// CacheKey returns a stable key identifying this exact set of parameters.
func (f ListFilter) CacheKey() string {
	f = f.Normalize()
	return fmt.Sprintf("list:%d:%d:%s:%s:%s", f.Limit, f.Skip, f.SortField, f.SortOrder, f.Query)
}
