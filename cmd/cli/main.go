package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/affinerun/internal/app"
	"github.com/specialistvlad/affinerun/internal/cli"
	"github.com/specialistvlad/affinerun/internal/hcl"
)

// main is the entrypoint for the affinerun application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr, os.Args[1:], env.ToMap(os.Environ()))
	stop()
	os.Exit(code)
}

// run executes the program and maps its outcome to an exit code.
func run(ctx context.Context, outW, errW io.Writer, args []string, environ map[string]string) int {
	err := execute(ctx, outW, errW, args, environ)
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(errW, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintf(errW, "Error during execution: %v\n", err)
	return 1
}

func execute(ctx context.Context, outW, errW io.Writer, args []string, environ map[string]string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	appConfig.Environ = environ

	return app.NewApp(outW, errW, appConfig, hcl.NewLoader()).Run(ctx)
}
