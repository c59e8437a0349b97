package tui

import "github.com/aalvaropc/recipedeck/internal/domain"

type recipesLoadedMsg struct {
	recipes []domain.Recipe
	err     error
}

type recipeCreatedMsg struct {
	recipe domain.Recipe
	err    error
}
