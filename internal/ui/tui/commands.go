package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/recipedeck/internal/domain"
	"github.com/aalvaropc/recipedeck/internal/usecase"
)

// Commands only do I/O; results go back through Update so the client's
// state is mutated on the event loop.

func cmdLoadRecipes(c *usecase.RecipeClient) tea.Cmd {
	return func() tea.Msg {
		recipes, err := c.Fetch(context.Background())
		return recipesLoadedMsg{recipes: recipes, err: err}
	}
}

func cmdSubmitRecipe(c *usecase.RecipeClient, in domain.NewRecipe) tea.Cmd {
	return func() tea.Msg {
		rec, err := c.Send(context.Background(), in)
		return recipeCreatedMsg{recipe: rec, err: err}
	}
}
