package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/recipedeck/internal/domain"
	"github.com/aalvaropc/recipedeck/internal/infra/config"
	"github.com/aalvaropc/recipedeck/internal/infra/httpclient"
	"github.com/aalvaropc/recipedeck/internal/infra/identity"
	"github.com/aalvaropc/recipedeck/internal/infra/logger"
	"github.com/aalvaropc/recipedeck/internal/infra/recipeapi"
	"github.com/aalvaropc/recipedeck/internal/ports"
	"github.com/aalvaropc/recipedeck/internal/usecase"
)

type session struct {
	cfg     domain.Config
	root    string
	log     *slog.Logger
	client  *usecase.RecipeClient
	cleanup func() error
}

func (s *session) close() {
	if s.cleanup != nil {
		_ = s.cleanup()
	}
}

// loadSession resolves config once and wires the recipe client.
// Logging problems are reported on errOut but do not stop the command.
func loadSession(gf globalFlags, notifier ports.Notifier, errOut io.Writer) (*session, error) {
	loaded, err := config.Load(config.Options{Locator: config.NewFinder()})
	if err != nil {
		return nil, err
	}

	cfg := loaded.Config
	if gf.apiURL != "" {
		cfg.API.BaseURL = gf.apiURL
	}
	if gf.debug {
		cfg.Log.Debug = true
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	cleanup, err := logger.Setup(logger.Config{Dir: cfg.Log.Dir, Debug: cfg.Log.Debug})
	if err != nil {
		fmt.Fprintf(errOut, "warning: logging disabled: %v\n", err)
	}
	log := logger.L()
	log.Info("config.loaded",
		"root", loaded.Root,
		"from_file", loaded.FromFile,
		"api", cfg.API.BaseURL,
		"timeout", cfg.API.Timeout.String(),
		"user_id", cfg.Identity.UserID,
	)

	httpCfg := httpclient.DefaultConfig().WithTimeout(cfg.API.Timeout)
	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(httpCfg)),
		httpclient.WithTimeout(httpCfg.Timeout),
	)

	api, err := recipeapi.New(cfg.API.BaseURL,
		recipeapi.WithExecutor(exec),
		recipeapi.WithListSelector(cfg.API.ListSelector),
		recipeapi.WithLogger(log),
	)
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}

	client := usecase.NewRecipeClient(api, identity.NewStatic(cfg.Identity.UserID),
		usecase.WithLogger(log),
		usecase.WithNotifier(notifier),
	)

	return &session{
		cfg:     cfg,
		root:    loaded.Root,
		log:     log,
		client:  client,
		cleanup: cleanup,
	}, nil
}

// writerNotifier prints blocking notices for non-interactive commands.
type writerNotifier struct {
	w io.Writer
}

func (n writerNotifier) Notify(msg string) {
	fmt.Fprintf(n.w, "! %s\n", msg)
}
