package config

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	settings *Settings
	err      error
	gotPath  string
	gotEnv   map[string]string
}

func (l *stubLoader) Load(_ context.Context, path string, environ map[string]string) (*Settings, error) {
	l.gotPath = path
	l.gotEnv = environ
	return l.settings, l.err
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		sources Sources
		want    Settings
	}{
		{
			name:    "defaults when nothing is set",
			sources: Sources{},
			want:    Defaults(),
		},
		{
			name: "environment sets directories",
			sources: Sources{Environ: map[string]string{
				"DATA_DIR":   "/app/data",
				"INPUT_DIR":  "/app/input",
				"RESULT_DIR": "/app/result",
			}},
			want: Settings{DataDir: "/app/data", InputDir: "/app/input", ResultDir: "/app/result"},
		},
		{
			name:    "empty variable counts as unset",
			sources: Sources{Environ: map[string]string{"DATA_DIR": "", "RESULT_DIR": "out"}},
			want:    Settings{DataDir: ".", InputDir: ".", ResultDir: "out"},
		},
		{
			name: "publish settings from environment",
			sources: Sources{Environ: map[string]string{
				"MINIO_ENDPOINT":   "minio:9000",
				"MINIO_ACCESS_KEY": "user",
				"MINIO_SECRET_KEY": "pass",
				"MINIO_USE_SSL":    "true",
				"MINIO_BUCKET":     "results",
				"MINIO_PREFIX":     "jobs/1",
			}},
			want: Settings{
				DataDir: ".", InputDir: ".", ResultDir: ".",
				Publish: Publish{
					Endpoint: "minio:9000", AccessKey: "user", SecretKey: "pass",
					UseSSL: boolPtr(true), Bucket: "results", Prefix: "jobs/1",
				},
			},
		},
		{
			name: "file below environment below overrides",
			sources: Sources{
				Loader: &stubLoader{settings: &Settings{
					DataDir:   "/file/data",
					InputDir:  "/file/input",
					ResultDir: "/file/result",
					Publish:   Publish{UseSSL: boolPtr(true)},
				}},
				FilePath: "settings.hcl",
				Environ: map[string]string{
					"INPUT_DIR":     "/env/input",
					"RESULT_DIR":    "/env/result",
					"MINIO_USE_SSL": "false",
				},
				Overrides: Settings{ResultDir: "/flag/result"},
			},
			want: Settings{
				DataDir: "/file/data", InputDir: "/env/input", ResultDir: "/flag/result",
				Publish: Publish{UseSSL: boolPtr(false)},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(context.Background(), tc.sources)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, *got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_PassesEnvironmentToLoader(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{settings: &Settings{}}
	environ := map[string]string{"JOB_ROOT": "/jobs/7"}

	_, err := Resolve(context.Background(), Sources{Loader: loader, FilePath: "run.hcl", Environ: environ})
	require.NoError(t, err)
	assert.Equal(t, "run.hcl", loader.gotPath)
	assert.Equal(t, environ, loader.gotEnv)
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("boom")

	_, err := Resolve(context.Background(), Sources{Loader: &stubLoader{err: loadErr}, FilePath: "x.hcl"})
	require.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "loading settings file")

	_, err = Resolve(context.Background(), Sources{FilePath: "x.hcl"})
	require.Error(t, err)

	_, err = Resolve(context.Background(), Sources{Environ: map[string]string{"MINIO_USE_SSL": "maybe"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading environment")
}
