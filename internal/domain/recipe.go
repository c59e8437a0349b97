package domain

import "strings"

// Recipe is a persisted recipe as returned by the backend.
// ID is assigned by the backend and never changes.
type Recipe struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// NewRecipe is the creation request body sent to the backend.
type NewRecipe struct {
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// DefaultUserID is the placeholder identity used until real auth exists.
const DefaultUserID = "test"

// SplitList splits comma-separated input and trims every part.
// Empty segments are kept: "salt," yields ["salt", ""].
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// IngredientsLine joins ingredients the way they are displayed.
func (r Recipe) IngredientsLine() string {
	return strings.Join(r.Ingredients, ", ")
}

// StepsLine joins steps the way they are displayed.
func (r Recipe) StepsLine() string {
	return strings.Join(r.Steps, ", ")
}
