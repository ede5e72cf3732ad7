package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/affinerun/internal/ctxlog"
)

// Loader is the interface for a format-specific settings file reader.
type Loader interface {
	// Load reads the file at path into a partial Settings. Fields the file
	// does not mention are left empty. environ is available to the file's
	// expressions.
	Load(ctx context.Context, path string, environ map[string]string) (*Settings, error)
}

// Sources lists every input to Resolve.
type Sources struct {
	Loader    Loader
	FilePath  string
	Environ   map[string]string
	Overrides Settings
}

// Resolve layers defaults, the settings file, the environment and the
// overrides, later layers winning. Environment variables that are set but
// empty count as unset.
func Resolve(ctx context.Context, src Sources) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	settings := Defaults()

	if src.FilePath != "" {
		if src.Loader == nil {
			return nil, errors.New("settings file given but no loader is configured")
		}
		fromFile, err := src.Loader.Load(ctx, src.FilePath, src.Environ)
		if err != nil {
			return nil, fmt.Errorf("loading settings file: %w", err)
		}
		settings.Merge(*fromFile)
		logger.Debug("Settings file applied.", "path", src.FilePath)
	}

	environ := src.Environ
	if environ == nil {
		environ = map[string]string{}
	}
	if err := env.ParseWithOptions(&settings, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	settings.Merge(src.Overrides)
	logger.Debug("Settings resolved.", "settings", settings)

	return &settings, nil
}
