package domain

import "time"

// Config is the resolved recipedeck configuration.
type Config struct {
	API      APIConfig
	Identity IdentityConfig
	Log      LogConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	// ListSelector is a JSONPath applied to the list response to find the recipe array.
	ListSelector string
}

type IdentityConfig struct {
	UserID string
}

type LogConfig struct {
	Dir   string
	Debug bool
}

// DefaultConfig provides sane defaults if recipedeck.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:      30 * time.Second,
			ListSelector: "$",
		},
		Identity: IdentityConfig{UserID: DefaultUserID},
		Log:      LogConfig{Dir: ".recipedeck/logs"},
	}
}
