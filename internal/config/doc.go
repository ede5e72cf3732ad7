// Package config defines the format-agnostic settings of a run and the
// rules for resolving them.
//
// Settings come from four layers, lowest precedence first: built-in
// defaults, an optional settings file read through a Loader, the
// environment (DATA_DIR, INPUT_DIR, RESULT_DIR and the MINIO_* variables),
// and explicit overrides such as CLI flags. Concrete Loader
// implementations, such as HCL, live in separate packages.
package config
