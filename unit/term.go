// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// snapTolerance is how close a summed exponent must be to an integer to be
// treated as that integer, so that 1/3+2/3 cancels the way 1+2 does.
const snapTolerance = 1e-9

// Term is a single factor of a composite unit, e.g. s^-2.
type Term struct {
	Symbol   string
	Exponent float64
}

// String renders the term as a token: the bare symbol when the exponent is 1,
// otherwise symbol^exponent.
func (t Term) String() string {
	if t.Exponent == 1 {
		return t.Symbol
	}
	return t.Symbol + "^" + FormatExponent(t.Exponent)
}

// FormatExponent renders integral exponents without a decimal point (2.0
// prints as 2) and keeps the shortest decimal form for the rest.
func FormatExponent(e float64) string {
	if e == math.Trunc(e) && math.Abs(e) < 1<<53 {
		return strconv.FormatInt(int64(e), 10)
	}
	return strconv.FormatFloat(e, 'g', -1, 64)
}

// snap pulls an exponent that is within snapTolerance of an integer onto it.
func snap(e float64) float64 {
	if r := math.Round(e); math.Abs(e-r) < snapTolerance {
		return r
	}
	return e
}

// parseToken splits "symbol" or "symbol^exponent" into a Term. Everything
// after '^' is one exponent literal, so "m^-1/2" has exponent -0.5.
func parseToken(token string) (Term, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return Term{}, &MalformedUnitError{Token: token, Reason: "empty unit"}
	}

	symbol, literal, hasExponent := strings.Cut(trimmed, "^")
	if symbol == "" {
		return Term{}, &MalformedUnitError{Token: token, Reason: "missing symbol"}
	}
	if strings.IndexFunc(symbol, unicode.IsSpace) >= 0 {
		return Term{}, &MalformedUnitError{Token: token, Reason: "symbol contains whitespace"}
	}
	if !hasExponent {
		return Term{Symbol: symbol, Exponent: 1}, nil
	}

	exponent, err := parseExponent(literal)
	if err != nil {
		return Term{}, &MalformedUnitError{Token: token, Reason: err.Error()}
	}
	return Term{Symbol: symbol, Exponent: exponent}, nil
}

// parseExponent accepts a float literal, falling back to a rational "a/b".
func parseExponent(literal string) (float64, error) {
	if literal == "" {
		return 0, errors.New("missing exponent")
	}

	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, errors.New("exponent must be finite")
		}
		return f, nil
	}

	if !strings.Contains(literal, "/") {
		return 0, fmt.Errorf("cannot parse exponent '%s'", literal)
	}
	r, ok := new(big.Rat).SetString(literal)
	if !ok {
		return 0, fmt.Errorf("cannot parse exponent '%s'", literal)
	}
	f, _ := r.Float64()
	if math.IsInf(f, 0) {
		return 0, errors.New("exponent must be finite")
	}
	return f, nil
}
