package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/affinerun/internal/app"
	"github.com/specialistvlad/affinerun/internal/hcl"
	"github.com/specialistvlad/affinerun/internal/model"
	"github.com/stretchr/testify/require"
)

// RootPlaceholder in environment values and file contents is replaced with
// the harness's temporary root directory.
const RootPlaceholder = "$ROOT"

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Scenario describes one integration run.
type Scenario struct {
	// Files maps paths relative to the root to their content.
	Files map[string]string
	// Environ is merged over the default layout (root/data, root/input,
	// root/result). An empty value removes the default.
	Environ map[string]string
	// Config is used as the app configuration when set.
	Config *app.Config
	// Options are passed to app.NewApp.
	Options []app.Option
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Root   string
	Stdout string
	Logs   string
	Err    error
}

// ResultPath returns root/result/result.json, the default output location.
func (r *HarnessResult) ResultPath() string {
	return filepath.Join(r.Root, "result", "result.json")
}

// ReadResult decodes the result.json at path.
func (r *HarnessResult) ReadResult(t *testing.T, path string) model.ResultDocument {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := model.DecodeResult(data)
	require.NoError(t, err)
	return doc
}

// RunIntegrationTest lays out the scenario under a temporary root and runs
// the app against it with the HCL settings loader.
func RunIntegrationTest(t *testing.T, sc Scenario) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	expand := func(s string) string { return strings.ReplaceAll(s, RootPlaceholder, root) }

	for name, content := range sc.Files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(expand(content)), 0o644))
	}

	environ := map[string]string{
		"DATA_DIR":   filepath.Join(root, "data"),
		"INPUT_DIR":  filepath.Join(root, "input"),
		"RESULT_DIR": filepath.Join(root, "result"),
	}
	for k, v := range sc.Environ {
		if v == "" {
			delete(environ, k)
			continue
		}
		environ[k] = expand(v)
	}

	cfg := sc.Config
	if cfg == nil {
		var err error
		cfg, err = app.NewConfig(app.Config{LogLevel: "debug", LogFormat: "text"})
		require.NoError(t, err)
	}
	cfg.SettingsPath = expand(cfg.SettingsPath)
	cfg.Overrides.DataDir = expand(cfg.Overrides.DataDir)
	cfg.Overrides.InputDir = expand(cfg.Overrides.InputDir)
	cfg.Overrides.ResultDir = expand(cfg.Overrides.ResultDir)
	cfg.Environ = environ

	stdout := &SafeBuffer{}
	logs := &SafeBuffer{}
	a := app.NewApp(stdout, logs, cfg, hcl.NewLoader(), sc.Options...)
	err := a.Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("AFFINERUN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return &HarnessResult{
		Root:   root,
		Stdout: stdout.String(),
		Logs:   logs.String(),
		Err:    err,
	}
}
