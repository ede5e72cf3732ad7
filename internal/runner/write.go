package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/affinerun/internal/config"
	"github.com/specialistvlad/affinerun/internal/fsutil"
	"github.com/specialistvlad/affinerun/internal/model"
)

const (
	resultIndent   = "    "
	resultDirPerm  = 0o755
	resultFilePerm = 0o644
)

// WriteResult stores doc as result.json inside dir and returns the path
// written. Non-finite values are written as NaN, Infinity or -Infinity.
// An existing result.json is replaced atomically.
func WriteResult(dir string, doc model.ResultDocument) (string, error) {
	path := filepath.Join(dir, config.ResultFileName)

	data, err := doc.MarshalIndent(resultIndent)
	if err != nil {
		return "", &FileError{Kind: ErrIO, Role: RoleResult, Path: path, Err: fmt.Errorf("encoding result: %w", err)}
	}

	if err := os.MkdirAll(dir, resultDirPerm); err != nil {
		return "", &FileError{Kind: ErrIO, Role: RoleResult, Path: path, Err: fmt.Errorf("creating output directory: %w", err)}
	}

	if err := fsutil.WriteFileAtomic(path, data, resultFilePerm); err != nil {
		return "", &FileError{Kind: ErrIO, Role: RoleResult, Path: path, Err: err}
	}

	return path, nil
}
