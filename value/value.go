// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package value implements Value, a float64 magnitude tagged with a composite
// unit. Arithmetic tracks the unit algebra, checks dimensional agreement on
// the SI form of each operand, and converts between unit systems.
//
//	a := value.MustNew(100, "mi", "h^-1")
//	b := value.MustNew(10, "m", "s^-1")
//	sum, err := a.Add(b) // 54.704 m·s^-1
//
// Values are immutable; every operation returns a new Value.
package value

import (
	"fmt"

	"github.com/cmflannery/units/unit"
)

// Value is a magnitude expressed in units. The zero Value is a
// dimensionless 0 using the default registry.
type Value struct {
	magnitude float64
	units     unit.Expression
	registry  *unit.Registry
}

// New builds a Value from a magnitude and "symbol[^exponent]" tokens, using
// the default registry.
func New(magnitude float64, tokens ...string) (Value, error) {
	return NewIn(unit.Default(), magnitude, tokens...)
}

// NewIn is New against an explicit registry.
func NewIn(registry *unit.Registry, magnitude float64, tokens ...string) (Value, error) {
	units, err := registry.Parse(tokens...)
	if err != nil {
		return Value{}, err
	}
	return Value{magnitude: magnitude, units: units, registry: registry}, nil
}

// MustNew is New that panics on unparsable units.
func MustNew(magnitude float64, tokens ...string) Value {
	v, err := New(magnitude, tokens...)
	if err != nil {
		panic(fmt.Sprintf("value: %v", err))
	}
	return v
}

// Parse is New with a number-like magnitude string, see ParseMagnitude.
func Parse(magnitude string, tokens ...string) (Value, error) {
	return ParseIn(unit.Default(), magnitude, tokens...)
}

// ParseIn is Parse against an explicit registry.
func ParseIn(registry *unit.Registry, magnitude string, tokens ...string) (Value, error) {
	m, err := ParseMagnitude(magnitude)
	if err != nil {
		return Value{}, err
	}
	return NewIn(registry, m, tokens...)
}

// Magnitude is the raw number in the units the Value was built with.
func (v Value) Magnitude() float64 {
	return v.magnitude
}

// Units returns the canonical units the Value was built with, not
// necessarily SI.
func (v Value) Units() unit.Expression {
	return append(unit.Expression{}, v.units...)
}

func (v Value) Registry() *unit.Registry {
	if v.registry == nil {
		return unit.Default()
	}
	return v.registry
}

// SI returns the magnitude and units converted to SI base units.
func (v Value) SI() (float64, unit.Expression) {
	return v.in(unit.SI)
}

func (v Value) SIValue() float64 {
	m, _ := v.SI()
	return m
}

func (v Value) SIUnits() unit.Expression {
	_, u := v.SI()
	return u
}

// IM returns the magnitude and units in the display system, reached
// through SI.
func (v Value) IM() (float64, unit.Expression) {
	return v.in(unit.Display)
}

func (v Value) IMValue() float64 {
	m, _ := v.IM()
	return m
}

func (v Value) IMUnits() unit.Expression {
	_, u := v.IM()
	return u
}

// To re-expresses v in system.
func (v Value) To(system unit.System) Value {
	m, u := v.in(system)
	return Value{magnitude: m, units: u, registry: v.registry}
}

// String renders the raw magnitude followed by its units.
func (v Value) String() string {
	return v.Format(-1)
}

// Format renders the magnitude with FormatMagnitude at precision (-1 for
// the shortest exact form) followed by its units.
func (v Value) Format(precision int) string {
	number := FormatMagnitude(v.magnitude, precision)
	if v.units.IsDimensionless() {
		return number
	}
	return number + " " + v.units.String()
}

// in converts v to system. Construction only admits registered symbols and
// derived Values are checked in derive, so conversion cannot fail.
func (v Value) in(system unit.System) (float64, unit.Expression) {
	m, u, err := v.Registry().Convert(v.magnitude, v.units, system)
	if err != nil {
		panic(fmt.Sprintf("value: inconsistent registry for %v: %v", v.units, err))
	}
	return m, u
}

// derive builds a result in v's registry, rejecting units it cannot resolve.
func (v Value) derive(magnitude float64, units unit.Expression) (Value, error) {
	registry := v.Registry()
	for _, t := range units {
		if !registry.Has(t.Symbol) {
			return Value{}, &unit.UnknownUnitError{Symbol: t.Symbol}
		}
	}
	return Value{magnitude: magnitude, units: registry.Canonicalize(units), registry: v.registry}, nil
}
