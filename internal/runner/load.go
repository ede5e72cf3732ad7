package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/specialistvlad/affinerun/internal/model"
)

var (
	errNotObject     = errors.New("top-level value is not an object")
	errEmptyDocument = errors.New("document is empty")
)

// LoadJSON decodes the JSON object stored at path into v. role names the
// file in error messages. The bare NaN, Infinity and -Infinity tokens are
// accepted as numbers.
func LoadJSON(role, path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileError{Kind: ErrMissingFile, Role: role, Path: path, Err: err}
		}
		return &FileError{Kind: ErrIO, Role: role, Path: path, Err: err}
	}

	if err := decodeObject(model.QuoteNonFinite(data), v); err != nil {
		return &FileError{Kind: ErrMalformedInput, Role: role, Path: path, Err: err}
	}
	return nil
}

// decodeObject requires the document to be a single JSON object.
// json.Unmarshal rejects trailing data after it.
func decodeObject(data []byte, v any) error {
	tok, err := json.NewDecoder(bytes.NewReader(data)).Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyDocument
		}
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errNotObject
	}
	return json.Unmarshal(data, v)
}
