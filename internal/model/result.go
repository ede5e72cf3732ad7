// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "encoding/json"

// StatusSuccess is the only status an emitted ResultDocument carries.
const StatusSuccess = "success"

// ResultDocument is the content of result.json. Field order is the wire order.
type ResultDocument struct {
	Status      string      `json:"status"`
	Input       InputValues `json:"input"`
	ModelParams ModelParams `json:"model_params"`
	Output      float64     `json:"output"`
}

// Compute applies the affine transform to the input.
//
// The explicit conversion rounds the product to float64 before the
// addition, which keeps the compiler from emitting a fused multiply-add.
// NaN and infinities propagate unchanged.
func Compute(params ModelParams, input InputValues) float64 {
	return float64(input.X*params.Weight) + params.Bias
}

// NewResult builds the success document for one run.
func NewResult(params ModelParams, input InputValues) ResultDocument {
	return ResultDocument{
		Status:      StatusSuccess,
		Input:       input,
		ModelParams: params,
		Output:      Compute(params, input),
	}
}

type wireResult struct {
	Status      string     `json:"status"`
	Input       wireInput  `json:"input"`
	ModelParams wireParams `json:"model_params"`
	Output      number     `json:"output"`
}

// MarshalIndent encodes d like json.MarshalIndent with no prefix. NaN and
// the infinities are written as the bare tokens NaN, Infinity and -Infinity,
// which plain json.Marshal refuses.
func (d ResultDocument) MarshalIndent(indent string) ([]byte, error) {
	data, err := json.MarshalIndent(wireResult{
		Status:      d.Status,
		Input:       d.Input.wire(),
		ModelParams: d.ModelParams.wire(),
		Output:      number(d.Output),
	}, "", indent)
	if err != nil {
		return nil, err
	}
	return unquoteNonFinite(data), nil
}

// UnmarshalJSON decodes a document; input already passed through
// QuoteNonFinite may carry non-finite values.
func (d *ResultDocument) UnmarshalJSON(data []byte) error {
	var decoded wireResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*d = ResultDocument{
		Status:      decoded.Status,
		Input:       InputValues{X: float64(decoded.Input.X)},
		ModelParams: ModelParams{Weight: float64(decoded.ModelParams.Weight), Bias: float64(decoded.ModelParams.Bias)},
		Output:      float64(decoded.Output),
	}
	return nil
}

// DecodeResult parses the content of a result.json, non-finite tokens
// included.
func DecodeResult(data []byte) (ResultDocument, error) {
	var doc ResultDocument
	err := json.Unmarshal(QuoteNonFinite(data), &doc)
	return doc, err
}
