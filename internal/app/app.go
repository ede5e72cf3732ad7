package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/affinerun/internal/config"
	"github.com/specialistvlad/affinerun/internal/storage"
)

// Publisher uploads a finished result file.
type Publisher interface {
	PublishFile(ctx context.Context, path string) (string, error)
	GetDownloadURL(ctx context.Context, objectKey string) (string, error)
}

// PublisherFactory connects a Publisher for the given settings.
type PublisherFactory func(ctx context.Context, cfg config.Publish) (Publisher, error)

// Option customizes an App.
type Option func(*App)

// WithPublisherFactory replaces the MinIO publisher.
func WithPublisherFactory(f PublisherFactory) Option {
	return func(a *App) {
		if f == nil {
			return
		}
		a.newPublisher = f
	}
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW         io.Writer
	logger       *slog.Logger
	config       *Config
	loader       config.Loader
	newPublisher PublisherFactory
}

// NewApp is the constructor for the main application. Console lines go to
// outW, log records to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	a := &App{
		outW:         outW,
		logger:       newLogger(appConfig.LogLevel, appConfig.LogFormat, logW),
		config:       appConfig,
		loader:       loader,
		newPublisher: newMinIOPublisher,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.logger.Debug("Logger configured successfully.")
	return a
}

func newMinIOPublisher(ctx context.Context, cfg config.Publish) (Publisher, error) {
	s, err := storage.NewMinIOStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}
