package config

import (
	"log/slog"
	"path/filepath"
)

// Fixed file names inside the configured directories.
const (
	DataFileName   = "data.json"
	InputFileName  = "input.json"
	ResultFileName = "result.json"
)

// DefaultDir is used for any directory that no layer sets.
const DefaultDir = "."

// Settings holds the resolved configuration for a single run.
type Settings struct {
	DataDir   string `env:"DATA_DIR"`
	InputDir  string `env:"INPUT_DIR"`
	ResultDir string `env:"RESULT_DIR"`
	Publish   Publish
}

// Publish configures the optional upload of result.json to an
// S3-compatible bucket.
type Publish struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	UseSSL    *bool  `env:"MINIO_USE_SSL"` // nil when no layer sets it
	Bucket    string `env:"MINIO_BUCKET"`
	Prefix    string `env:"MINIO_PREFIX"`
}

// Files holds the concrete paths a run reads and writes.
type Files struct {
	DataPath   string
	InputPath  string
	ResultDir  string
	ResultPath string
}

// Defaults returns the settings used when no layer provides a value.
func Defaults() Settings {
	return Settings{
		DataDir:   DefaultDir,
		InputDir:  DefaultDir,
		ResultDir: DefaultDir,
	}
}

// Merge overlays every non-empty field of o onto s.
func (s *Settings) Merge(o Settings) {
	overlay(&s.DataDir, o.DataDir)
	overlay(&s.InputDir, o.InputDir)
	overlay(&s.ResultDir, o.ResultDir)

	overlay(&s.Publish.Endpoint, o.Publish.Endpoint)
	overlay(&s.Publish.AccessKey, o.Publish.AccessKey)
	overlay(&s.Publish.SecretKey, o.Publish.SecretKey)
	overlay(&s.Publish.Bucket, o.Publish.Bucket)
	overlay(&s.Publish.Prefix, o.Publish.Prefix)
	if o.Publish.UseSSL != nil {
		secure := *o.Publish.UseSSL
		s.Publish.UseSSL = &secure
	}
}

func overlay(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Files builds the data, input and result paths from the directories.
// Paths are joined as given; they are not checked for traversal.
func (s Settings) Files() Files {
	return Files{
		DataPath:   filepath.Join(s.DataDir, DataFileName),
		InputPath:  filepath.Join(s.InputDir, InputFileName),
		ResultDir:  s.ResultDir,
		ResultPath: filepath.Join(s.ResultDir, ResultFileName),
	}
}

// Secure reports whether the endpoint is reached over TLS.
func (p Publish) Secure() bool {
	return p.UseSSL != nil && *p.UseSSL
}

// Enabled reports whether publishing is configured.
func (p Publish) Enabled() bool {
	return p.Endpoint != "" && p.Bucket != ""
}

// LogValue implements slog.LogValuer and keeps the credentials out of logs.
func (p Publish) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", p.Enabled()),
		slog.String("endpoint", p.Endpoint),
		slog.String("bucket", p.Bucket),
		slog.String("prefix", p.Prefix),
		slog.Bool("use_ssl", p.Secure()),
		slog.Bool("has_credentials", p.AccessKey != "" || p.SecretKey != ""),
	)
}

// LogValue implements slog.LogValuer.
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("data_dir", s.DataDir),
		slog.String("input_dir", s.InputDir),
		slog.String("result_dir", s.ResultDir),
		slog.Any("publish", s.Publish),
	)
}
