package tui

import (
	"errors"
	"log/slog"

	"github.com/aalvaropc/recipedeck/internal/domain"
	"github.com/aalvaropc/recipedeck/internal/usecase"
)

type Deps struct {
	Client *usecase.RecipeClient
	// Notices must be the notifier the Client was built with, or its notices never show.
	Notices *Notices

	// APIURL is only displayed.
	APIURL string

	Logger *slog.Logger
	Debug  bool
}

func (d Deps) validate() error {
	switch {
	case d.Client == nil:
		return &domain.OpError{Op: "tui.run", Kind: domain.KindInvalidConfig, Err: errors.New("recipe client is required")}
	case d.Notices == nil:
		return &domain.OpError{Op: "tui.run", Kind: domain.KindInvalidConfig, Err: errors.New("notice queue is required")}
	}
	return nil
}
