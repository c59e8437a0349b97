package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/recipedeck/internal/domain"
	"github.com/aalvaropc/recipedeck/internal/ports"
)

// LoadFile loads recipedeck.yaml from root and applies it on top of defaults.
func LoadFile(root string) (domain.Config, error) {
	return applyFile(domain.DefaultConfig(), filepath.Join(root, FileName))
}

func applyFile(cfg domain.Config, path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.loadfile",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.loadfile",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	r := y.Recipedeck
	if r.API.BaseURL != "" {
		cfg.API.BaseURL = r.API.BaseURL
	}
	if r.API.Timeout != "" {
		d, err := time.ParseDuration(r.API.Timeout)
		if err == nil && d <= 0 {
			err = errors.New("must be positive")
		}
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "config.loadfile",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("api.timeout: %w", err),
			}
		}
		cfg.API.Timeout = d
	}
	if r.API.ListSelector != "" {
		cfg.API.ListSelector = r.API.ListSelector
	}
	if r.Identity.UserID != "" {
		cfg.Identity.UserID = r.Identity.UserID
	}
	if r.Log.Dir != "" {
		cfg.Log.Dir = r.Log.Dir
	}
	if r.Log.Debug != nil {
		cfg.Log.Debug = *r.Log.Debug
	}
	return cfg, nil
}

// Options controls Load.
type Options struct {
	StartDir string
	Locator  ports.ConfigLocator
	// Environ overrides the process environment; nil reads the real one.
	Environ map[string]string
}

// Loaded is a resolved configuration plus the directory it was anchored at.
type Loaded struct {
	Config domain.Config
	Root   string
	// FromFile is true when recipedeck.yaml was found and applied.
	FromFile bool
}

// Load resolves configuration as defaults < recipedeck.yaml < environment.
// A missing recipedeck.yaml is not an error. Relative log dirs are anchored at the root.
func Load(opts Options) (Loaded, error) {
	start := opts.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		start = wd
	}
	start, _ = filepath.Abs(start)

	out := Loaded{Config: domain.DefaultConfig(), Root: start}

	if opts.Locator != nil {
		root, err := opts.Locator.FindRoot(start)
		switch {
		case err == nil:
			cfg, lerr := LoadFile(root)
			if lerr != nil {
				return out, lerr
			}
			out.Config = cfg
			out.Root = root
			out.FromFile = true
		case domain.IsKind(err, domain.KindNotFound):
			// defaults only
		default:
			return out, err
		}
	}

	cfg, err := ApplyEnv(out.Config, opts.Environ)
	if err != nil {
		return out, err
	}

	if cfg.Log.Dir != "" && !filepath.IsAbs(cfg.Log.Dir) {
		cfg.Log.Dir = filepath.Join(out.Root, cfg.Log.Dir)
	}
	out.Config = cfg
	return out, nil
}

// Validate checks the fields recipedeck cannot run without.
func Validate(cfg domain.Config) error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return &domain.OpError{
			Op:   "config.validate",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: api base url is not set (use --api-url, %s, or %s)", domain.ErrInvalidConfig, EnvAPIURL, FileName),
		}
	}
	return nil
}
