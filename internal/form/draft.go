package form

import (
	"strings"

	"github.com/dishflow/dishflow-web/internal/models"
)

// Difficulty levels accepted by the recipe form.
var Difficulties = []string{"Easy", "Medium", "Hard"}

// Draft is the in-progress, not-yet-submitted recipe form state. It is a
// plain value object with no rendering concerns: handlers mutate it through
// the operations below and call Payload when the user submits.
type Draft struct {
	Name               string
	Cuisine            string
	Difficulty         string
	Image              string
	Tags               []string
	Rating             float64
	PrepTimeMinutes    int
	CookTimeMinutes    int
	Servings           int
	CaloriesPerServing int
	Ingredients        []string
	Instructions       []string
	MealType           []string

	// RecipeID is set when the draft edits an existing record
	RecipeID int
}

// NewDraft returns an empty draft with the form defaults: difficulty Easy,
// four servings, rating five, and one blank slot each for ingredients and
// instructions.
func NewDraft() *Draft {
	return &Draft{
		Difficulty:   "Easy",
		Rating:       5,
		Servings:     4,
		Ingredients:  []string{""},
		Instructions: []string{""},
		Tags:         []string{},
		MealType:     []string{},
	}
}

// DraftFrom seeds a draft from an existing record for editing.
func DraftFrom(recipe *models.Recipe) *Draft {
	d := &Draft{
		RecipeID:           recipe.ID,
		Name:               recipe.Name,
		Cuisine:            recipe.Cuisine,
		Difficulty:         recipe.Difficulty,
		Image:              recipe.Image,
		Tags:               append([]string{}, recipe.Tags...),
		Rating:             recipe.Rating,
		PrepTimeMinutes:    recipe.PrepTimeMinutes,
		CookTimeMinutes:    recipe.CookTimeMinutes,
		Servings:           recipe.Servings,
		CaloriesPerServing: recipe.CaloriesPerServing,
		Ingredients:        append([]string{}, recipe.Ingredients...),
		Instructions:       append([]string{}, recipe.Instructions...),
		MealType:           append([]string{}, recipe.MealType...),
	}
	if d.Difficulty == "" {
		d.Difficulty = "Easy"
	}
	if len(d.Ingredients) == 0 {
		d.Ingredients = []string{""}
	}
	if len(d.Instructions) == 0 {
		d.Instructions = []string{""}
	}
	return d
}

// IsEdit reports whether the draft targets an existing record.
func (d *Draft) IsEdit() bool {
	return d.RecipeID != 0
}

// AddIngredient appends a blank ingredient slot.
func (d *Draft) AddIngredient() {
	d.Ingredients = append(d.Ingredients, "")
}

// UpdateIngredient replaces the ingredient at index i. Out-of-range indexes
// are ignored.
func (d *Draft) UpdateIngredient(i int, value string) {
	if i >= 0 && i < len(d.Ingredients) {
		d.Ingredients[i] = value
	}
}

// RemoveIngredient drops the ingredient at index i. Out-of-range indexes
// are ignored.
func (d *Draft) RemoveIngredient(i int) {
	if i >= 0 && i < len(d.Ingredients) {
		d.Ingredients = append(d.Ingredients[:i], d.Ingredients[i+1:]...)
	}
}

// AddInstruction appends a blank instruction slot.
func (d *Draft) AddInstruction() {
	d.Instructions = append(d.Instructions, "")
}

// UpdateInstruction replaces the instruction at index i.
func (d *Draft) UpdateInstruction(i int, value string) {
	if i >= 0 && i < len(d.Instructions) {
		d.Instructions[i] = value
	}
}

// RemoveInstruction drops the instruction at index i.
func (d *Draft) RemoveInstruction(i int) {
	if i >= 0 && i < len(d.Instructions) {
		d.Instructions = append(d.Instructions[:i], d.Instructions[i+1:]...)
	}
}

// AddTag appends a tag. Blank values and values already present are
// no-ops, so the tag list stays deduplicated.
func (d *Draft) AddTag(tag string) {
	d.Tags = appendUnique(d.Tags, tag)
}

// RemoveTag drops a tag by value.
func (d *Draft) RemoveTag(tag string) {
	d.Tags = removeValue(d.Tags, tag)
}

// AddMealType appends a meal type with the same dedup rule as tags.
func (d *Draft) AddMealType(mealType string) {
	d.MealType = appendUnique(d.MealType, mealType)
}

// RemoveMealType drops a meal type by value.
func (d *Draft) RemoveMealType(mealType string) {
	d.MealType = removeValue(d.MealType, mealType)
}

// Payload returns the cleaned submission: blank ingredient and instruction
// entries are stripped, tags and meal types pass through as-is.
func (d *Draft) Payload() models.RecipePayload {
	return models.RecipePayload{
		Name:               d.Name,
		Cuisine:            d.Cuisine,
		Difficulty:         d.Difficulty,
		Image:              d.Image,
		Tags:               d.Tags,
		Rating:             d.Rating,
		PrepTimeMinutes:    d.PrepTimeMinutes,
		CookTimeMinutes:    d.CookTimeMinutes,
		Servings:           d.Servings,
		CaloriesPerServing: d.CaloriesPerServing,
		Ingredients:        stripBlank(d.Ingredients),
		Instructions:       stripBlank(d.Instructions),
		MealType:           d.MealType,
	}
}

func appendUnique(values []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return values
	}
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}

func removeValue(values []string, value string) []string {
	out := values[:0]
	for _, existing := range values {
		if existing != value {
			out = append(out, existing)
		}
	}
	return out
}

func stripBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
