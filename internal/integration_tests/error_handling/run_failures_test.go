package integration_tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/affinerun/internal/runner"
	"github.com/specialistvlad/affinerun/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMissingDataFile_FailsWithPath validates that an absent data.json is
// reported with its path and nothing is written.
func TestMissingDataFile_FailsWithPath(t *testing.T) {
	t.Parallel()

	files := map[string]string{"input/input.json": `{"x": 1}`}

	result := testutil.RunIntegrationTest(t, testutil.Scenario{Files: files})

	require.ErrorIs(t, result.Err, runner.ErrMissingFile)
	assert.Contains(t, result.Err.Error(), filepath.Join(result.Root, "data", "data.json"))
	assert.NoFileExists(t, result.ResultPath())
	assert.NotContains(t, result.Stdout, "Success!")
}

// TestMissingInputFile_FailsWithPath validates the same for input.json.
func TestMissingInputFile_FailsWithPath(t *testing.T) {
	t.Parallel()

	files := map[string]string{"data/data.json": `{}`}

	result := testutil.RunIntegrationTest(t, testutil.Scenario{Files: files})

	require.ErrorIs(t, result.Err, runner.ErrMissingFile)
	assert.Equal(t, "Input file not found: "+filepath.Join(result.Root, "input", "input.json"), result.Err.Error())
}

// TestMalformedInput_LeavesExistingResult validates that a parse failure
// happens before result.json is touched.
func TestMalformedInput_LeavesExistingResult(t *testing.T) {
	t.Parallel()

	previous := `{"status": "success", "output": 42}`
	files := map[string]string{
		"data/data.json":     `{"weight": 2}`,
		"input/input.json":   `{"x": 5`,
		"result/result.json": previous,
	}

	result := testutil.RunIntegrationTest(t, testutil.Scenario{Files: files})

	require.ErrorIs(t, result.Err, runner.ErrMalformedInput)
	got, err := os.ReadFile(result.ResultPath())
	require.NoError(t, err)
	assert.Equal(t, previous, string(got))
}

// TestMalformedData_TypeMismatch validates that a value of the wrong JSON
// type is rejected rather than ignored.
func TestMalformedData_TypeMismatch(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"data/data.json":   `{"weight": "2.0"}`,
		"input/input.json": `{"x": 5}`,
	}

	result := testutil.RunIntegrationTest(t, testutil.Scenario{Files: files})

	require.ErrorIs(t, result.Err, runner.ErrMalformedInput)
	assert.Contains(t, result.Err.Error(), "data.json")
}

// TestUnwritableResultDirectory validates that an output path blocked by a
// regular file is an I/O failure.
func TestUnwritableResultDirectory(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"data/data.json":   `{}`,
		"input/input.json": `{}`,
		"blocked":          "regular file",
	}
	environ := map[string]string{"RESULT_DIR": "$ROOT/blocked/result"}

	result := testutil.RunIntegrationTest(t, testutil.Scenario{Files: files, Environ: environ})

	require.ErrorIs(t, result.Err, runner.ErrIO)
	assert.Contains(t, result.Stdout, "Starting affine run...")
	assert.NotContains(t, result.Stdout, "Success!")
}
