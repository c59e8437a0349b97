package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aalvaropc/recipedeck/internal/app/render"
	"github.com/aalvaropc/recipedeck/internal/domain"
)

func addCmd(gf *globalFlags) *cobra.Command {
	var draft domain.Draft
	var noInteractive bool

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe",
		Long: `Add a recipe to the backend.

Ingredients and steps are comma-separated. Each part is trimmed; empty parts
(for example from a trailing comma) are kept.

Without --title/--ingredients/--steps and on a terminal, an interactive form is shown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			anySet := cmd.Flags().Changed("title") || cmd.Flags().Changed("ingredients") || cmd.Flags().Changed("steps")
			if !anySet && !noInteractive && term.IsTerminal(int(os.Stdin.Fd())) {
				d, err := promptDraft()
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
					return nil
				}
				if err != nil {
					return err
				}
				draft = d
			}

			s, err := loadSession(*gf, writerNotifier{w: cmd.ErrOrStderr()}, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.close()

			s.client.UpdateDraftField(domain.FieldTitle, draft.Title)
			s.client.UpdateDraftField(domain.FieldIngredients, draft.Ingredients)
			s.client.UpdateDraftField(domain.FieldSteps, draft.Steps)

			if err := s.client.SubmitRecipe(cmd.Context()); err != nil {
				return err
			}

			recipes := s.client.Recipes()
			created := recipes[len(recipes)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n\n%s\n", created.ID, render.Card(created))
			return nil
		},
	}

	c.Flags().StringVarP(&draft.Title, "title", "t", "", "Recipe title")
	c.Flags().StringVarP(&draft.Ingredients, "ingredients", "i", "", "Comma-separated ingredients")
	c.Flags().StringVarP(&draft.Steps, "steps", "s", "", "Comma-separated steps")
	c.Flags().BoolVar(&noInteractive, "no-interactive", false, "Never show the interactive form")
	return c
}

func promptDraft() (domain.Draft, error) {
	var d domain.Draft

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("e.g., Tea").
				Value(&d.Title),

			huh.NewText().
				Title("Ingredients").
				Description("Comma-separated").
				Placeholder("water, tea leaves").
				Value(&d.Ingredients),

			huh.NewText().
				Title("Steps").
				Description("Comma-separated").
				Placeholder("boil, steep, serve").
				Value(&d.Steps),
		),
	)

	if err := form.Run(); err != nil {
		return domain.Draft{}, err
	}
	return d, nil
}
