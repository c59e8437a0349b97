package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/recipedeck/internal/domain"
	"github.com/aalvaropc/recipedeck/internal/ports"
)

// Notices shown to the user. Every request failure collapses into NoticeSubmitFailed.
const (
	NoticeMissingFields = "Please fill in all fields."
	NoticeSubmitFailed  = "An error occurred while adding the recipe."
)

// RecipeClient holds the recipe list and the form draft and mediates between
// them and the backend.
//
// It is not safe for concurrent use. Hosts with an event loop call Fetch/Send
// off the loop and feed the results back through CompleteLoad/CompleteSubmit
// on the loop, so state is only touched from one goroutine.
type RecipeClient struct {
	api      ports.RecipeAPI
	identity ports.IdentityProvider
	notifier ports.Notifier
	log      *slog.Logger

	recipes []domain.Recipe
	draft   domain.Draft
}

type Option func(*RecipeClient)

func WithLogger(l *slog.Logger) Option {
	return func(c *RecipeClient) {
		if l != nil {
			c.log = l
		}
	}
}

func WithNotifier(n ports.Notifier) Option {
	return func(c *RecipeClient) { c.notifier = n }
}

func NewRecipeClient(api ports.RecipeAPI, identity ports.IdentityProvider, opts ...Option) *RecipeClient {
	c := &RecipeClient{
		api:      api,
		identity: identity,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		recipes:  []domain.Recipe{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Recipes returns a copy of the current list, in fetch-then-append order.
func (c *RecipeClient) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

func (c *RecipeClient) Draft() domain.Draft { return c.draft }

// UpdateDraftField sets one draft field. No validation happens here.
func (c *RecipeClient) UpdateDraftField(f domain.Field, value string) {
	c.draft = c.draft.With(f, value)
}

// InitializeAndLoad replaces the list with the backend's recipes for the current user.
// Failures are logged and returned but never shown to the user; the list is left as is.
func (c *RecipeClient) InitializeAndLoad(ctx context.Context) error {
	recipes, err := c.Fetch(ctx)
	return c.CompleteLoad(recipes, err)
}

// Fetch performs the list request without touching client state.
func (c *RecipeClient) Fetch(ctx context.Context) ([]domain.Recipe, error) {
	return c.api.ListRecipes(ctx, c.identity.UserID())
}

// CompleteLoad applies the outcome of Fetch.
func (c *RecipeClient) CompleteLoad(recipes []domain.Recipe, err error) error {
	if err != nil {
		c.log.Error("recipes.load.failed", "user_id", c.identity.UserID(), "err", err)
		return &domain.OpError{
			Op:   "recipes.load",
			Kind: domain.KindLoad,
			Err:  fmt.Errorf("%w: %w", domain.ErrLoadFailed, err),
		}
	}

	c.recipes = make([]domain.Recipe, len(recipes))
	copy(c.recipes, recipes)
	c.log.Info("recipes.load.ok", "user_id", c.identity.UserID(), "count", len(recipes))
	return nil
}

// SubmitRecipe validates the draft, sends it, and on success appends the
// created recipe and clears the draft. On any failure the user is notified and
// neither the list nor the draft changes.
func (c *RecipeClient) SubmitRecipe(ctx context.Context) error {
	in, err := c.BeginSubmit()
	if err != nil {
		return err
	}
	rec, err := c.Send(ctx, in)
	return c.CompleteSubmit(rec, err)
}

// BeginSubmit validates the draft and builds the creation body.
// Nothing is sent; a validation failure notifies the user.
func (c *RecipeClient) BeginSubmit() (domain.NewRecipe, error) {
	if err := c.draft.Validate(); err != nil {
		c.log.Warn("recipes.submit.invalid", "err", err)
		c.notify(NoticeMissingFields)
		return domain.NewRecipe{}, &domain.OpError{
			Op:   "recipes.submit",
			Kind: domain.KindSubmit,
			Err:  fmt.Errorf("%w: %w", domain.ErrSubmitFailed, err),
		}
	}
	return c.draft.ToNewRecipe(c.identity.UserID()), nil
}

// Send performs the create request without touching client state.
func (c *RecipeClient) Send(ctx context.Context, in domain.NewRecipe) (domain.Recipe, error) {
	return c.api.CreateRecipe(ctx, in)
}

// CompleteSubmit applies the outcome of Send.
func (c *RecipeClient) CompleteSubmit(rec domain.Recipe, err error) error {
	if err != nil {
		c.log.Error("recipes.submit.failed", "err", err)
		c.notify(NoticeSubmitFailed)
		return &domain.OpError{
			Op:   "recipes.submit",
			Kind: domain.KindSubmit,
			Err:  fmt.Errorf("%w: %w", domain.ErrSubmitFailed, err),
		}
	}

	c.recipes = append(c.recipes, rec)
	c.draft = domain.Draft{}
	c.log.Info("recipes.submit.ok", "id", rec.ID, "count", len(c.recipes))
	return nil
}

func (c *RecipeClient) notify(msg string) {
	if c.notifier != nil {
		c.notifier.Notify(msg)
	}
}
