package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/affinerun/internal/app"
	"github.com/specialistvlad/affinerun/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageExitCode is returned for invalid command lines.
const UsageExitCode = 2

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// The environment is not read here; the caller fills Config.Environ.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("affinerun", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
affinerun - applies y = x*weight + bias to a single input and writes result.json.

Usage:
  affinerun [options]

Files:
  $DATA_DIR/data.json      model parameters {"weight", "bias"}
  $INPUT_DIR/input.json    input value {"x"}
  $RESULT_DIR/result.json  written on success

Environment:
  DATA_DIR, INPUT_DIR, RESULT_DIR   directories, default "."
  MINIO_ENDPOINT, MINIO_BUCKET      enable publishing result.json
  MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_USE_SSL, MINIO_PREFIX

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	dataDirFlag := flagSet.String("data-dir", "", "Directory containing data.json. Overrides DATA_DIR.")
	inputDirFlag := flagSet.String("input-dir", "", "Directory containing input.json. Overrides INPUT_DIR.")
	resultDirFlag := flagSet.String("result-dir", "", "Directory to receive result.json. Overrides RESULT_DIR.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: UsageExitCode, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{
			Code:    UsageExitCode,
			Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " ")),
		}
	}

	cfg, err := app.NewConfig(app.Config{
		SettingsPath: *configFlag,
		Overrides: config.Settings{
			DataDir:   *dataDirFlag,
			InputDir:  *inputDirFlag,
			ResultDir: *resultDirFlag,
		},
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: UsageExitCode, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config_path", cfg.SettingsPath)
	return cfg, false, nil
}
