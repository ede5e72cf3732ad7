// Package runner executes the job itself: load the model parameters and
// the input, apply the transform, and write result.json.
//
// Failures are returned as *FileError values classified by one of the
// sentinels ErrMissingFile, ErrMalformedInput and ErrIO. Nothing is
// retried and nothing is written unless both inputs decoded cleanly.
package runner
