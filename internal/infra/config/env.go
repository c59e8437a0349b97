package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/aalvaropc/recipedeck/internal/domain"
)

const (
	EnvAPIURL       = "RECIPEDECK_API_URL"
	EnvUserID       = "RECIPEDECK_USER_ID"
	EnvTimeout      = "RECIPEDECK_TIMEOUT"
	EnvListSelector = "RECIPEDECK_LIST_SELECTOR"
	EnvLogDir       = "RECIPEDECK_LOG_DIR"
	EnvDebug        = "RECIPEDECK_DEBUG"
)

// Pointers so unset variables leave file values alone.
type envConfig struct {
	APIURL       *string        `env:"RECIPEDECK_API_URL"`
	UserID       *string        `env:"RECIPEDECK_USER_ID"`
	Timeout      *time.Duration `env:"RECIPEDECK_TIMEOUT"`
	ListSelector *string        `env:"RECIPEDECK_LIST_SELECTOR"`
	LogDir       *string        `env:"RECIPEDECK_LOG_DIR"`
	Debug        *bool          `env:"RECIPEDECK_DEBUG"`
}

// ApplyEnv overlays RECIPEDECK_* variables on cfg.
// environ replaces the process environment when non-nil.
func ApplyEnv(cfg domain.Config, environ map[string]string) (domain.Config, error) {
	var e envConfig
	var err error
	if environ != nil {
		err = env.ParseWithOptions(&e, env.Options{Environment: environ})
	} else {
		err = env.Parse(&e)
	}
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	if e.APIURL != nil && *e.APIURL != "" {
		cfg.API.BaseURL = *e.APIURL
	}
	if e.UserID != nil && *e.UserID != "" {
		cfg.Identity.UserID = *e.UserID
	}
	if e.Timeout != nil && *e.Timeout > 0 {
		cfg.API.Timeout = *e.Timeout
	}
	if e.ListSelector != nil && *e.ListSelector != "" {
		cfg.API.ListSelector = *e.ListSelector
	}
	if e.LogDir != nil && *e.LogDir != "" {
		cfg.Log.Dir = *e.LogDir
	}
	if e.Debug != nil {
		cfg.Log.Debug = *e.Debug
	}
	return cfg, nil
}
