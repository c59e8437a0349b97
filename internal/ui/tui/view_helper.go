package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/recipedeck/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderCard draws one recipe; ingredients and steps are joined with ", ".
func renderCard(t Theme, r domain.Recipe, width int) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(clampString(r.Title, width)))
	b.WriteString("\n")
	b.WriteString(t.Label.Render("Ingredients:"))
	b.WriteString(" ")
	b.WriteString(r.IngredientsLine())
	b.WriteString("\n")
	b.WriteString(t.Label.Render("Steps:"))
	b.WriteString(" ")
	b.WriteString(r.StepsLine())

	return t.Card.Width(width).Render(b.String())
}
