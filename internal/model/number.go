// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Non-finite numbers are written as the bare tokens NaN, Infinity and
// -Infinity, the JSON extension most producers of these files emit.
// encoding/json rejects them, so they travel through it as marked strings.
const (
	tokenNaN    = "NaN"
	tokenPosInf = "Infinity"
	tokenNegInf = "-Infinity"

	nonFiniteMark = `\u0000nonfinite:`
)

var nonFiniteTokens = []string{tokenNegInf, tokenPosInf, tokenNaN}

func markedToken(token string) string {
	return `"` + nonFiniteMark + token + `"`
}

// QuoteNonFinite rewrites the bare NaN, Infinity and -Infinity tokens found
// outside strings into marked strings that the number fields of this
// package decode. Everything else is copied unchanged.
func QuoteNonFinite(data []byte) []byte {
	var out []byte
	inString, escaped := false, false
	last := 0

	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			continue
		}
		for _, token := range nonFiniteTokens {
			if bytes.HasPrefix(data[i:], []byte(token)) {
				out = append(out, data[last:i]...)
				out = append(out, markedToken(token)...)
				i += len(token) - 1
				last = i + 1
				break
			}
		}
	}

	if out == nil {
		return data
	}
	return append(out, data[last:]...)
}

// unquoteNonFinite reverses QuoteNonFinite on encoder output.
func unquoteNonFinite(data []byte) []byte {
	for _, token := range nonFiniteTokens {
		data = bytes.ReplaceAll(data, []byte(markedToken(token)), []byte(token))
	}
	return data
}

// number is a float64 on the wire that also accepts the non-finite tokens
// and magnitudes beyond the float64 range, which become infinities.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(markedToken(tokenNaN)), nil
	case math.IsInf(f, 1):
		return []byte(markedToken(tokenPosInf)), nil
	case math.IsInf(f, -1):
		return []byte(markedToken(tokenNegInf)), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON leaves n unchanged for null.
func (n *number) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch s {
	case "null":
		return nil
	case markedToken(tokenNaN):
		*n = number(math.NaN())
		return nil
	case markedToken(tokenPosInf):
		*n = number(math.Inf(1))
		return nil
	case markedToken(tokenNegInf):
		*n = number(math.Inf(-1))
		return nil
	}

	if len(s) == 0 || !(s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
		return fmt.Errorf("cannot use %s as a number", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("cannot use %s as a number: %w", s, err)
	}
	*n = number(f)
	return nil
}
