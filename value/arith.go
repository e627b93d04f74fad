// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package value

import (
	"math"

	"github.com/cmflannery/units/unit"
)

// Add sums two Values whose SI units agree. The result is in SI units.
func (v Value) Add(o Operand) (Value, error) {
	return v.additive("addition", o, func(a, b float64) float64 { return a + b })
}

// Sub subtracts a Value whose SI units agree with v's. The result is in SI
// units.
func (v Value) Sub(o Operand) (Value, error) {
	return v.additive("subtraction", o, func(a, b float64) float64 { return a - b })
}

func (v Value) additive(op string, o Operand, f func(a, b float64) float64) (Value, error) {
	a, aUnits, b, err := v.agree(op, o)
	if err != nil {
		return Value{}, err
	}
	return v.derive(f(a, b), aUnits)
}

// Mul multiplies by a Scalar, keeping v's units, or by a Value, merging the
// SI units of both.
func (v Value) Mul(o Operand) (Value, error) {
	switch rhs := resolve(o).(type) {
	case Scalar:
		return v.Scale(float64(rhs)), nil
	case Value:
		a, aUnits := v.SI()
		b, bUnits := rhs.SI()
		return v.derive(a*b, v.Registry().Merge(aUnits, bUnits))
	}
	return Value{}, &TypeKindError{Op: "multiplication", Kind: kindOf(o)}
}

// Scale multiplies the magnitude by k, keeping v's units. It is also
// k * v, which commutes with v * k.
func (v Value) Scale(k float64) Value {
	return Value{magnitude: v.magnitude * k, units: v.units, registry: v.registry}
}

// Div divides by a Scalar, keeping v's units, or by a Value, merging v's SI
// units with the inverted SI units of the divisor. A scalar divided by a
// Value is not supported.
func (v Value) Div(o Operand) (Value, error) {
	switch rhs := resolve(o).(type) {
	case Scalar:
		return Value{magnitude: v.magnitude / float64(rhs), units: v.units, registry: v.registry}, nil
	case Value:
		a, aUnits := v.SI()
		b, bUnits := rhs.SI()
		return v.derive(a/b, v.Registry().Merge(aUnits, unit.Invert(bUnits)))
	}
	return Value{}, &TypeKindError{Op: "division", Kind: kindOf(o)}
}

// Pow raises v to a finite Scalar exponent, multiplying every SI exponent by
// it.
func (v Value) Pow(o Operand) (Value, error) {
	p, ok := resolve(o).(Scalar)
	if !ok {
		return Value{}, &TypeKindError{Op: "power", Kind: kindOf(o)}
	}
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return Value{}, &TypeKindError{Op: "power", Kind: "non-finite scalar"}
	}
	a, aUnits := v.SI()
	return v.derive(math.Pow(a, float64(p)), unit.Power(aUnits, float64(p)))
}

// Neg flips the sign, keeping v's units.
func (v Value) Neg() Value {
	return v.Scale(-1)
}

// Abs drops the sign, keeping v's units.
func (v Value) Abs() Value {
	return Value{magnitude: math.Abs(v.magnitude), units: v.units, registry: v.registry}
}

// Convert re-expresses v in the given units, which must have the same SI
// units as v.
func (v Value) Convert(tokens ...string) (Value, error) {
	registry := v.Registry()
	target, err := registry.Parse(tokens...)
	if err != nil {
		return Value{}, err
	}
	factor, targetUnits, err := registry.ToSI(1, target)
	if err != nil {
		return Value{}, err
	}
	m, units := v.SI()
	if !unit.Equal(units, targetUnits) {
		return Value{}, &DimensionMismatchError{Op: "conversion", Left: units, Right: targetUnits}
	}
	return Value{magnitude: m / factor, units: target, registry: v.registry}, nil
}

// agree returns the SI magnitudes of v and o, failing unless o is a Value
// with the same SI units.
func (v Value) agree(op string, o Operand) (float64, unit.Expression, float64, error) {
	rhs, ok := resolve(o).(Value)
	if !ok {
		return 0, nil, 0, &TypeKindError{Op: op, Kind: kindOf(o)}
	}
	a, aUnits := v.SI()
	b, bUnits := rhs.SI()
	if !unit.Equal(aUnits, bUnits) {
		return 0, nil, 0, &DimensionMismatchError{Op: op, Left: aUnits, Right: bUnits}
	}
	return a, aUnits, b, nil
}
