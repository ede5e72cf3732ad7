// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the data a run works on: the affine model parameters
// read from data.json, the input value read from input.json, and the result
// document written to result.json.
//
// # Core Concepts
//
//   - ModelParams: the weight and bias of the transform. Keys missing from
//     data.json fall back to DefaultWeight and DefaultBias.
//
//   - InputValues: the scalar x the transform is applied to. A missing key
//     falls back to DefaultX.
//
//   - ResultDocument: the summary of one run. Its JSON field order is fixed
//     by the struct declaration: status, input, model_params, output.
//
// All numbers are float64, so integer and fractional inputs mix freely.
// Decoding is typed: a key holding the wrong JSON type is an error rather
// than a silently ignored value.
package model
