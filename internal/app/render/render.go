// Package render turns recipes into text for the CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/recipedeck/internal/domain"
)

// Card renders one recipe as its title followed by the joined ingredient and step lines.
func Card(r domain.Recipe) string {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString("\nIngredients: ")
	b.WriteString(r.IngredientsLine())
	b.WriteString("\nSteps: ")
	b.WriteString(r.StepsLine())
	return b.String()
}

// List writes every recipe as a card, in list order, separated by blank lines.
func List(w io.Writer, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(w, "(no recipes)")
		return err
	}
	for i, r := range recipes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, Card(r)); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes recipes as an indented JSON array using the backend's field names.
func JSON(w io.Writer, recipes []domain.Recipe) error {
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(recipes)
}

// Write dispatches on format: pretty (default) or json.
func Write(w io.Writer, recipes []domain.Recipe, format string) error {
	switch format {
	case "pretty", "":
		return List(w, recipes)
	case "json":
		return JSON(w, recipes)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
