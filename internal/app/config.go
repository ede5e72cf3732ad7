package app

import (
	"fmt"

	"github.com/specialistvlad/affinerun/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SettingsPath string            // optional HCL settings file
	Environ      map[string]string // process environment, injected by the entrypoint
	Overrides    config.Settings   // values set explicitly on the command line

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	switch cfg.LogFormat {
	case logFormatText, logFormatJSON:
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}
