package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/dishflow/dishflow-web/internal/form"
	"github.com/dishflow/dishflow-web/internal/services"
	apperrors "github.com/dishflow/dishflow-web/pkg/errors"
	"github.com/gin-gonic/gin"
)

// mealTypeChoices drives the meal-type checkboxes on the recipe form.
var mealTypeChoices = []string{"Breakfast", "Lunch", "Dinner", "Snack", "Dessert"}

// RecipeHandler serves the recipe create/edit forms and their submissions.
type RecipeHandler struct {
	recipes services.RecipeServiceInterface
	auth    services.AuthServiceInterface
}

func NewRecipeHandler(recipes services.RecipeServiceInterface, auth services.AuthServiceInterface) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, auth: auth}
}

// recipeForm is the browser-side shape of a recipe submission. Repeated
// inputs (ingredients, instructions, tags, meal types) arrive as slices.
type recipeForm struct {
	Name               string   `form:"name" binding:"required,max=120"`
	Cuisine            string   `form:"cuisine" binding:"required,max=60"`
	Difficulty         string   `form:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	Image              string   `form:"image" binding:"omitempty,url"`
	Rating             float64  `form:"rating" binding:"gte=0,lte=5"`
	PrepTimeMinutes    int      `form:"prepTimeMinutes" binding:"gte=0"`
	CookTimeMinutes    int      `form:"cookTimeMinutes" binding:"gte=0"`
	Servings           int      `form:"servings" binding:"gte=1"`
	CaloriesPerServing int      `form:"caloriesPerServing" binding:"gte=0"`
	Ingredients        []string `form:"ingredients"`
	Instructions       []string `form:"instructions"`
	Tags               []string `form:"tags"`
	MealType           []string `form:"mealType"`
}

// toDraft converts the raw submission into a draft. Tags and meal types are
// deduplicated on the way in; blank ingredient and instruction rows survive
// until submission so a re-rendered form looks like what the user typed.
func (f *recipeForm) toDraft() *form.Draft {
	draft := form.NewDraft()
	draft.Name = f.Name
	draft.Cuisine = f.Cuisine
	draft.Difficulty = f.Difficulty
	draft.Image = f.Image
	draft.Rating = f.Rating
	draft.PrepTimeMinutes = f.PrepTimeMinutes
	draft.CookTimeMinutes = f.CookTimeMinutes
	draft.Servings = f.Servings
	draft.CaloriesPerServing = f.CaloriesPerServing

	if len(f.Ingredients) > 0 {
		draft.Ingredients = f.Ingredients
	}
	if len(f.Instructions) > 0 {
		draft.Instructions = f.Instructions
	}
	for _, tag := range f.Tags {
		draft.AddTag(tag)
	}
	for _, mealType := range f.MealType {
		draft.AddMealType(mealType)
	}

	return draft
}

// NewRecipe renders an empty create form.
func (h *RecipeHandler) NewRecipe(c *gin.Context) {
	h.renderForm(c, http.StatusOK, form.NewDraft(), nil)
}

// EditRecipe renders the form seeded from an existing recipe.
func (h *RecipeHandler) EditRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	h.renderForm(c, http.StatusOK, form.DraftFrom(recipe), nil)
}

// CreateRecipe handles the create form submission.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var submission recipeForm
	if err := c.ShouldBind(&submission); err != nil {
		attachError(c, err)
		h.renderForm(c, http.StatusBadRequest, submission.toDraft(), ParseValidationErrors(err))
		return
	}

	draft := submission.toDraft()
	if _, err := h.recipes.Create(c.Request.Context(), draft); err != nil {
		h.handleMutationError(c, draft, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// UpdateRecipe handles the edit form submission.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var submission recipeForm
	if err := c.ShouldBind(&submission); err != nil {
		attachError(c, err)
		draft := submission.toDraft()
		draft.RecipeID = id
		h.renderForm(c, http.StatusBadRequest, draft, ParseValidationErrors(err))
		return
	}

	draft := submission.toDraft()
	draft.RecipeID = id
	if _, err := h.recipes.Update(c.Request.Context(), draft); err != nil {
		h.handleMutationError(c, draft, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// DeleteRecipe removes a recipe and returns to the listing page the delete
// came from; a now-out-of-range page is clamped on the way back in.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if _, err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}

	back := "/dashboard"
	if page := c.PostForm("page"); page != "" {
		values := url.Values{}
		values.Set("q", c.PostForm("q"))
		values.Set("sort", c.PostForm("sort"))
		values.Set("page", page)
		back += "?" + values.Encode()
	}
	c.Redirect(http.StatusFound, back)
}

func (h *RecipeHandler) renderForm(c *gin.Context, status int, draft *form.Draft, errors []string) {
	title := "New recipe"
	if draft.IsEdit() {
		title = "Edit recipe"
	}

	user, err := h.auth.EnsureUser(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.HTML(status, "recipe_form.html", gin.H{
		"Title":           title,
		"User":            user,
		"Draft":           draft,
		"Difficulties":    form.Difficulties,
		"MealTypeChoices": mealTypeChoices,
		"Errors":          errors,
	})
}

// handleMutationError re-renders the form for upstream failures so the user's
// work is not lost; everything else goes through the shared error page.
func (h *RecipeHandler) handleMutationError(c *gin.Context, draft *form.Draft, err error) {
	if apperrors.Is(err, apperrors.ErrUpstream) {
		attachError(c, err)
		h.renderForm(c, http.StatusBadGateway, draft, []string{"The recipe service rejected the request. Please try again."})
		return
	}
	renderServiceError(c, err)
}

func recipeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		renderError(c, http.StatusNotFound, "We couldn't find that recipe.", err)
		return 0, false
	}
	return id, true
}
