package runner

import (
	"context"

	"github.com/specialistvlad/affinerun/internal/config"
	"github.com/specialistvlad/affinerun/internal/ctxlog"
	"github.com/specialistvlad/affinerun/internal/model"
)

// Result is the outcome of a successful run.
type Result struct {
	Document model.ResultDocument
	Path     string
}

// Runner executes one job against a fixed set of files.
type Runner struct {
	files config.Files
}

// New creates a Runner for the given files.
func New(files config.Files) *Runner {
	return &Runner{files: files}
}

// Run loads the data file, then the input file, computes the output and
// writes result.json. The data file is checked first, so it is the one
// reported when both are missing.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	params := model.DefaultModelParams()
	if err := LoadJSON(RoleData, r.files.DataPath, &params); err != nil {
		return nil, err
	}
	logger.Debug("Model parameters loaded.", "path", r.files.DataPath, "weight", params.Weight, "bias", params.Bias)

	input := model.DefaultInputValues()
	if err := LoadJSON(RoleInput, r.files.InputPath, &input); err != nil {
		return nil, err
	}
	logger.Debug("Input values loaded.", "path", r.files.InputPath, "x", input.X)

	doc := model.NewResult(params, input)
	logger.Info("Output computed.", "output", doc.Output)

	path, err := WriteResult(r.files.ResultDir, doc)
	if err != nil {
		return nil, err
	}
	logger.Debug("Result written.", "path", path)

	return &Result{Document: doc, Path: path}, nil
}
