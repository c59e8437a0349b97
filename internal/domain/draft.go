package domain

import (
	"fmt"
	"strings"
)

// Field names a single input of the add-recipe form.
type Field string

const (
	FieldTitle       Field = "title"
	FieldIngredients Field = "ingredients"
	FieldSteps       Field = "steps"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldTitle, FieldIngredients, FieldSteps}

// Draft is the unsaved content of the add-recipe form.
// Ingredients and Steps hold raw comma-separated text.
type Draft struct {
	Title       string
	Ingredients string
	Steps       string
}

func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Get returns the raw value of f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldIngredients:
		return d.Ingredients
	case FieldSteps:
		return d.Steps
	}
	return ""
}

// With returns a copy of d with f set to value.
func (d Draft) With(f Field, value string) Draft {
	switch f {
	case FieldTitle:
		d.Title = value
	case FieldIngredients:
		d.Ingredients = value
	case FieldSteps:
		d.Steps = value
	}
	return d
}

// Missing reports the fields that would block a submission.
// Title is checked after trimming; ingredients and steps are checked as typed.
func (d Draft) Missing() []Field {
	var out []Field
	if strings.TrimSpace(d.Title) == "" {
		out = append(out, FieldTitle)
	}
	if d.Ingredients == "" {
		out = append(out, FieldIngredients)
	}
	if d.Steps == "" {
		out = append(out, FieldSteps)
	}
	return out
}

// Validate returns a validation error naming every missing field.
func (d Draft) Validate() error {
	missing := d.Missing()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return &OpError{
		Op:   "draft.validate",
		Kind: KindValidation,
		Err:  fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(names, ", ")),
	}
}

// ToNewRecipe builds the creation body for userID.
// It does not validate; call Validate first.
func (d Draft) ToNewRecipe(userID string) NewRecipe {
	return NewRecipe{
		UserID:      userID,
		Title:       strings.TrimSpace(d.Title),
		Ingredients: SplitList(d.Ingredients),
		Steps:       SplitList(d.Steps),
	}
}
