// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"fmt"
	"math"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/multierr"
)

// Definition maps a unit symbol onto its SI base symbol. Multiplying a
// magnitude in Symbol by Factor gives the magnitude in Base.
type Definition struct {
	Symbol      string  `koanf:"symbol"`
	Base        string  `koanf:"base"`
	Factor      float64 `koanf:"factor"`
	Description string  `koanf:"description"`
}

// DisplayDefinition maps an SI base symbol onto the display system.
// Multiplying an SI magnitude by Factor gives the magnitude in Symbol.
type DisplayDefinition struct {
	Base   string  `koanf:"base"`
	Symbol string  `koanf:"symbol"`
	Factor float64 `koanf:"factor"`
}

// Registry holds the conversion tables. It is read-only once built and safe
// for concurrent use.
type Registry struct {
	definitions []Definition
	display     []DisplayDefinition

	rank          map[string]int
	toBase        map[string]string
	baseFactor    map[string]float64
	toDisplay     map[string]string
	displayFactor map[string]float64
}

// NewRegistry validates and indexes the tables. The order of defs is the
// canonical sort order of expressions. Every inconsistency is reported.
func NewRegistry(defs []Definition, display []DisplayDefinition) (*Registry, error) {
	r := &Registry{
		definitions:   append([]Definition(nil), defs...),
		display:       append([]DisplayDefinition(nil), display...),
		rank:          make(map[string]int, len(defs)),
		toBase:        make(map[string]string, len(defs)),
		baseFactor:    make(map[string]float64, len(defs)),
		toDisplay:     make(map[string]string, len(display)),
		displayFactor: make(map[string]float64, len(display)),
	}

	var errs error
	for i, def := range defs {
		switch {
		case def.Symbol == "":
			errs = multierr.Append(errs, fmt.Errorf("definition %d has no symbol", i))
			continue
		case def.Base == "":
			errs = multierr.Append(errs, fmt.Errorf("unit '%s' has no base unit", def.Symbol))
		case !validFactor(def.Factor):
			errs = multierr.Append(errs, fmt.Errorf("unit '%s' has invalid factor %v", def.Symbol, def.Factor))
		}
		if _, err := parseToken(def.Symbol); err != nil || strings.ContainsRune(def.Symbol, '^') {
			errs = multierr.Append(errs, fmt.Errorf("unit '%s' is not a plain symbol", def.Symbol))
		}
		if _, dup := r.rank[def.Symbol]; dup {
			errs = multierr.Append(errs, fmt.Errorf("unit '%s' is defined more than once", def.Symbol))
			continue
		}
		r.rank[def.Symbol] = i
		r.toBase[def.Symbol] = def.Base
		r.baseFactor[def.Symbol] = def.Factor
	}

	bases := mapset.NewSet[string]()
	for _, def := range defs {
		if def.Base != "" {
			bases.Add(def.Base)
		}
	}
	for _, base := range sorted(bases) {
		if r.toBase[base] != base || r.baseFactor[base] != 1 {
			errs = multierr.Append(errs, fmt.Errorf("base unit '%s' must be defined as itself with factor 1", base))
		}
	}

	displayed := mapset.NewSet[string]()
	for _, d := range display {
		if !bases.Contains(d.Base) {
			errs = multierr.Append(errs, fmt.Errorf("display entry for '%s' is not a base unit", d.Base))
			continue
		}
		if !displayed.Add(d.Base) {
			errs = multierr.Append(errs, fmt.Errorf("base unit '%s' has more than one display entry", d.Base))
			continue
		}
		if base, ok := r.toBase[d.Symbol]; !ok || base != d.Base {
			errs = multierr.Append(errs, fmt.Errorf("display unit '%s' for '%s' must be a unit with base '%s'", d.Symbol, d.Base, d.Base))
		}
		if !validFactor(d.Factor) {
			errs = multierr.Append(errs, fmt.Errorf("display unit '%s' has invalid factor %v", d.Symbol, d.Factor))
		}
		r.toDisplay[d.Base] = d.Symbol
		r.displayFactor[d.Base] = d.Factor
	}
	for _, base := range sorted(bases.Difference(displayed)) {
		errs = multierr.Append(errs, fmt.Errorf("base unit '%s' has no display entry", base))
	}

	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// MustNewRegistry is NewRegistry that panics on an inconsistent table.
func MustNewRegistry(defs []Definition, display []DisplayDefinition) *Registry {
	r, err := NewRegistry(defs, display)
	if err != nil {
		panic(fmt.Sprintf("invalid unit registry: %v", err))
	}
	return r
}

// Extend returns a new registry with defs and display layered over r's
// tables: an entry for an existing symbol (or base) replaces it in place,
// new entries are appended. r is not modified.
func (r *Registry) Extend(defs []Definition, display []DisplayDefinition) (*Registry, error) {
	mergedDefs := append([]Definition(nil), r.definitions...)
	for _, def := range defs {
		if i, ok := r.rank[def.Symbol]; ok {
			mergedDefs[i] = def
		} else {
			mergedDefs = append(mergedDefs, def)
		}
	}

	mergedDisplay := append([]DisplayDefinition(nil), r.display...)
	for _, d := range display {
		replaced := false
		for i := range mergedDisplay {
			if mergedDisplay[i].Base == d.Base {
				mergedDisplay[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			mergedDisplay = append(mergedDisplay, d)
		}
	}

	return NewRegistry(mergedDefs, mergedDisplay)
}

// Definitions returns a copy of the unit table in registry order.
func (r *Registry) Definitions() []Definition {
	return append([]Definition(nil), r.definitions...)
}

// DisplayDefinitions returns a copy of the display table.
func (r *Registry) DisplayDefinitions() []DisplayDefinition {
	return append([]DisplayDefinition(nil), r.display...)
}

// Lookup returns the definition of symbol.
func (r *Registry) Lookup(symbol string) (Definition, error) {
	i, ok := r.rank[symbol]
	if !ok {
		return Definition{}, &UnknownUnitError{Symbol: symbol}
	}
	return r.definitions[i], nil
}

// Has reports whether symbol is registered.
func (r *Registry) Has(symbol string) bool {
	_, ok := r.rank[symbol]
	return ok
}

// less orders symbols by registry rank; unregistered symbols sort last,
// lexically among themselves.
func (r *Registry) less(a, b string) bool {
	ra, okA := r.rank[a]
	rb, okB := r.rank[b]
	switch {
	case okA && okB:
		return ra < rb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func sorted(set mapset.Set[string]) []string {
	items := set.ToSlice()
	sort.Strings(items)
	return items
}
