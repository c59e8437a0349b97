package ports

import (
	"context"

	"github.com/aalvaropc/recipedeck/internal/domain"
)

// RecipeAPI talks to the remote recipe backend.
type RecipeAPI interface {
	ListRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
	CreateRecipe(ctx context.Context, in domain.NewRecipe) (domain.Recipe, error)
}
