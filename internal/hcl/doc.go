// Package hcl provides the HCL implementation of config.Loader. It parses
// an optional settings file and translates it into the format-agnostic
// config.Settings.
//
// Expressions in the file are evaluated with a single variable, env, an
// object holding the process environment:
//
//	input_dir = "${env.JOB_ROOT}/input"
package hcl
