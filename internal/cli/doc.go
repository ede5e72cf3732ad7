// Package cli is responsible for parsing command-line arguments, validating
// user input, and reporting usage errors with their exit code. It
// translates CLI flags into the application's internal configuration.
package cli
