package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/affinerun/internal/config"
	"github.com/specialistvlad/affinerun/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the schema of a settings file. Every attribute is optional.
type fileRoot struct {
	DataDir   string        `hcl:"data_dir,optional"`
	InputDir  string        `hcl:"input_dir,optional"`
	ResultDir string        `hcl:"result_dir,optional"`
	Publish   *publishBlock `hcl:"publish,block"`
}

type publishBlock struct {
	Endpoint  string `hcl:"endpoint,optional"`
	AccessKey string `hcl:"access_key,optional"`
	SecretKey string `hcl:"secret_key,optional"`
	UseSSL    *bool  `hcl:"use_ssl,optional"`
	Bucket    string `hcl:"bucket,optional"`
	Prefix    string `hcl:"prefix,optional"`
}

// Load parses and decodes the settings file at path.
func (l *Loader) Load(ctx context.Context, path string, environ map[string]string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, newEvalContext(environ), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	settings := root.translate()
	logger.Debug("HCL settings file decoded.", "path", path, "has_publish_block", root.Publish != nil)

	return settings, nil
}

// newEvalContext exposes the environment to expressions as the env object.
func newEvalContext(environ map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for name, value := range environ {
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

func (r *fileRoot) translate() *config.Settings {
	s := &config.Settings{
		DataDir:   r.DataDir,
		InputDir:  r.InputDir,
		ResultDir: r.ResultDir,
	}
	if p := r.Publish; p != nil {
		s.Publish = config.Publish{
			Endpoint:  p.Endpoint,
			AccessKey: p.AccessKey,
			SecretKey: p.SecretKey,
			UseSSL:    p.UseSSL,
			Bucket:    p.Bucket,
			Prefix:    p.Prefix,
		}
	}
	return s
}
