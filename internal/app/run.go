package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/affinerun/internal/config"
	"github.com/specialistvlad/affinerun/internal/ctxlog"
	"github.com/specialistvlad/affinerun/internal/runner"
)

// Run executes one job. It returns the first error encountered; printing
// it and choosing the exit code is left to the caller.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	settings, err := config.Resolve(ctx, config.Sources{
		Loader:    a.loader,
		FilePath:  a.config.SettingsPath,
		Environ:   a.config.Environ,
		Overrides: a.config.Overrides,
	})
	if err != nil {
		return fmt.Errorf("resolving settings: %w", err)
	}

	fmt.Fprintln(a.outW, "Starting affine run...")
	fmt.Fprintf(a.outW, "Output directory: %s\n", settings.ResultDir)

	result, err := runner.New(settings.Files()).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "Success! Result saved to %s\n", result.Path)

	if settings.Publish.Enabled() {
		if err := a.publish(ctx, settings.Publish, result.Path); err != nil {
			return fmt.Errorf("publishing result: %w", err)
		}
	} else {
		a.logger.Debug("Publishing disabled.")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) publish(ctx context.Context, cfg config.Publish, path string) error {
	publisher, err := a.newPublisher(ctx, cfg)
	if err != nil {
		return err
	}

	key, err := publisher.PublishFile(ctx, path)
	if err != nil {
		return err
	}

	url, err := publisher.GetDownloadURL(ctx, key)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "Download URL: %s\n", url)
	a.logger.Info("Result published.", "bucket", cfg.Bucket, "key", key, "download_url", url)
	return nil
}
