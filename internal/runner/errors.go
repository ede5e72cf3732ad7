package runner

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Use errors.Is to classify a returned error.
var (
	ErrMissingFile    = errors.New("missing file")
	ErrMalformedInput = errors.New("malformed input")
	ErrIO             = errors.New("i/o failure")
)

// File roles, used in error messages.
const (
	RoleData   = "data"
	RoleInput  = "input"
	RoleResult = "result"
)

// FileError reports a failure tied to one of the job's files.
type FileError struct {
	Kind error
	Role string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch e.Kind {
	case ErrMissingFile:
		return fmt.Sprintf("%s file not found: %s", capitalize(e.Role), e.Path)
	case ErrMalformedInput:
		return fmt.Sprintf("%s file %s is not a valid JSON object: %v", capitalize(e.Role), e.Path, e.Err)
	default:
		return fmt.Sprintf("%s file %s: %v", capitalize(e.Role), e.Path, e.Err)
	}
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
