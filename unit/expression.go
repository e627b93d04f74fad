// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"math"
	"sort"
	"strings"

	"github.com/cmflannery/units/internal/enumerable"
)

// DOT separates the terms of a rendered Expression.
const DOT = "·"

// Expression is a composite unit: at most one Term per symbol, none with a
// zero exponent once canonical. The empty Expression is dimensionless.
type Expression []Term

// String renders the terms joined by DOT, e.g. "m·s^-1".
func (e Expression) String() string {
	return strings.Join(e.Tokens(), DOT)
}

// Tokens renders each term as a "symbol[^exponent]" token.
func (e Expression) Tokens() []string {
	return enumerable.Map(e, Term.String)
}

func (e Expression) IsDimensionless() bool {
	return len(e) == 0
}

// Exponent returns the summed exponent of symbol in e, 0 if absent.
func (e Expression) Exponent(symbol string) float64 {
	return enumerable.Reduce(e, 0.0, func(acc float64, t Term) float64 {
		if t.Symbol == symbol {
			return acc + t.Exponent
		}
		return acc
	})
}

// Power multiplies every exponent by p.
func Power(e Expression, p float64) Expression {
	powered := enumerable.Map(e, func(t Term) Term {
		return Term{Symbol: t.Symbol, Exponent: snap(t.Exponent * p)}
	})
	return dropZero(powered)
}

// Invert negates every exponent.
func Invert(e Expression) Expression {
	return Power(e, -1)
}

// Equal reports whether a and b hold the same (symbol, exponent) pairs,
// independent of order and of duplicate terms that sum to the same value.
// Exponents within snapTolerance of each other are equal.
func Equal(a, b Expression) bool {
	left, right := sum(a), sum(b)
	if len(left) != len(right) {
		return false
	}
	for symbol, exponent := range left {
		if other, ok := right[symbol]; !ok || !(math.Abs(other-exponent) < snapTolerance) {
			return false
		}
	}
	return true
}

// Merge concatenates the terms of a and b, sums exponents per symbol, drops
// zeros and sorts by registry rank. Multiplication is Merge(a, b); division
// is Merge(a, Invert(b)).
func (r *Registry) Merge(a, b Expression) Expression {
	terms := make(Expression, 0, len(a)+len(b))
	terms = append(terms, a...)
	terms = append(terms, b...)

	merged := combine(terms)
	sort.SliceStable(merged, func(i, j int) bool {
		return r.less(merged[i].Symbol, merged[j].Symbol)
	})
	return merged
}

// Canonicalize merges e with nothing, which is idempotent.
func (r *Registry) Canonicalize(e Expression) Expression {
	return r.Merge(e, nil)
}

// Parse reads "symbol" or "symbol^exponent" tokens into a canonical
// Expression. Every symbol must be registered.
func (r *Registry) Parse(tokens ...string) (Expression, error) {
	terms := make(Expression, 0, len(tokens))
	for _, token := range tokens {
		term, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		if _, ok := r.toBase[term.Symbol]; !ok {
			return nil, &UnknownUnitError{Symbol: term.Symbol}
		}
		terms = append(terms, term)
	}
	return r.Canonicalize(terms), nil
}

// combine sums exponents per symbol in first-seen order and drops zeros.
func combine(terms Expression) Expression {
	index := make(map[string]int, len(terms))
	combined := make(Expression, 0, len(terms))
	for _, t := range terms {
		if i, ok := index[t.Symbol]; ok {
			combined[i].Exponent += t.Exponent
			continue
		}
		index[t.Symbol] = len(combined)
		combined = append(combined, t)
	}
	for i := range combined {
		combined[i].Exponent = snap(combined[i].Exponent)
	}
	return dropZero(combined)
}

func dropZero(terms Expression) Expression {
	return enumerable.Filter(terms, func(t Term) bool { return t.Exponent != 0 })
}

func sum(e Expression) map[string]float64 {
	exponents := make(map[string]float64, len(e))
	for _, t := range combine(e) {
		exponents[t.Symbol] = t.Exponent
	}
	return exponents
}
