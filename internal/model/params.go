// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "encoding/json"

const (
	DefaultWeight = 1.0
	DefaultBias   = 0.0
	DefaultX      = 0.0
)

// ModelParams defines the affine transform y = x*weight + bias.
type ModelParams struct {
	Weight float64 `json:"weight"`
	Bias   float64 `json:"bias"`
}

// DefaultModelParams returns the parameters used for keys absent from data.json.
func DefaultModelParams() ModelParams {
	return ModelParams{Weight: DefaultWeight, Bias: DefaultBias}
}

// UnmarshalJSON decodes over the defaults, so absent and null keys keep
// their default value.
func (p *ModelParams) UnmarshalJSON(data []byte) error {
	decoded := DefaultModelParams().wire()
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = ModelParams{Weight: float64(decoded.Weight), Bias: float64(decoded.Bias)}
	return nil
}

type wireParams struct {
	Weight number `json:"weight"`
	Bias   number `json:"bias"`
}

func (p ModelParams) wire() wireParams {
	return wireParams{Weight: number(p.Weight), Bias: number(p.Bias)}
}

// InputValues holds the value the transform is applied to.
type InputValues struct {
	X float64 `json:"x"`
}

// DefaultInputValues returns the input used for keys absent from input.json.
func DefaultInputValues() InputValues {
	return InputValues{X: DefaultX}
}

// UnmarshalJSON decodes over the defaults, so absent and null keys keep
// their default value.
func (v *InputValues) UnmarshalJSON(data []byte) error {
	decoded := DefaultInputValues().wire()
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*v = InputValues{X: float64(decoded.X)}
	return nil
}

type wireInput struct {
	X number `json:"x"`
}

func (v InputValues) wire() wireInput {
	return wireInput{X: number(v.X)}
}
