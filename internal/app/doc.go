// Package app contains the core application logic. It defines the App
// struct, its configuration, and the run lifecycle: resolve settings,
// execute the runner, optionally publish the result. It is decoupled from
// the CLI entrypoint and never exits the process itself.
package app
