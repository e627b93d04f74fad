// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import "math"

// System names a unit system a magnitude can be expressed in.
type System int

const (
	Raw System = iota // as constructed
	SI
	Display // the "Imperial" system, reached through SI
)

func (s System) String() string {
	switch s {
	case Raw:
		return "raw"
	case SI:
		return "si"
	case Display:
		return "display"
	}
	return "unknown"
}

// ParseSystem accepts the names printed by System.String, plus "im" and
// "imperial" for Display.
func ParseSystem(name string) (System, bool) {
	switch name {
	case "raw":
		return Raw, true
	case "si", "SI":
		return SI, true
	case "display", "im", "IM", "imperial":
		return Display, true
	}
	return Raw, false
}

// ToSI replaces every symbol with its SI base, scaling the magnitude by
// factor^exponent per term.
func (r *Registry) ToSI(magnitude float64, e Expression) (float64, Expression, error) {
	return r.transform(magnitude, e, func(symbol string) (string, float64, bool) {
		base, ok := r.toBase[symbol]
		return base, r.baseFactor[symbol], ok
	})
}

// ToDisplay converts to SI first and then into the display system.
func (r *Registry) ToDisplay(magnitude float64, e Expression) (float64, Expression, error) {
	siMagnitude, siUnits, err := r.ToSI(magnitude, e)
	if err != nil {
		return 0, nil, err
	}
	return r.transform(siMagnitude, siUnits, func(symbol string) (string, float64, bool) {
		display, ok := r.toDisplay[symbol]
		return display, r.displayFactor[symbol], ok
	})
}

// Convert expresses magnitude in system.
func (r *Registry) Convert(magnitude float64, e Expression, system System) (float64, Expression, error) {
	switch system {
	case SI:
		return r.ToSI(magnitude, e)
	case Display:
		return r.ToDisplay(magnitude, e)
	}
	for _, t := range e {
		if !r.Has(t.Symbol) {
			return 0, nil, &UnknownUnitError{Symbol: t.Symbol}
		}
	}
	return magnitude, r.Canonicalize(e), nil
}

func (r *Registry) transform(magnitude float64, e Expression, lookup func(string) (string, float64, bool)) (float64, Expression, error) {
	factor := 1.0
	terms := make(Expression, 0, len(e))
	for _, t := range e {
		symbol, f, ok := lookup(t.Symbol)
		if !ok {
			return 0, nil, &UnknownUnitError{Symbol: t.Symbol}
		}
		factor *= math.Pow(f, t.Exponent)
		terms = append(terms, Term{Symbol: symbol, Exponent: t.Exponent})
	}
	return magnitude * factor, r.Canonicalize(terms), nil
}
