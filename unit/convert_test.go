// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSI(t *testing.T) {
	tests := []struct {
		tokens    []string
		magnitude float64
		expected  float64
		units     Expression
	}{
		{[]string{"km"}, 1, 1000, Expression{{"m", 1}}},
		{[]string{"mi", "h^-1"}, 100, 44.704, Expression{{"m", 1}, {"s", -1}}},
		{[]string{"ft", "s^-2"}, 1, 0.3048, Expression{{"m", 1}, {"s", -2}}},
		{[]string{"km", "m^-1"}, 3, 3000, Expression{}},
		{[]string{"g", "min^-1"}, 60, 0.001, Expression{{"kg", 1}, {"s", -1}}},
		{[]string{"in^2"}, 1, 0.00064516, Expression{{"m", 2}}},
		{[]string{"psi"}, 1, 6894.757293168361, Expression{{"Pa", 1}}},
		{[]string{"m^1/2"}, 4, 4, Expression{{"m", 0.5}}},
		{nil, 7, 7, Expression{}},
	}

	r := Default()
	for _, test := range tests {
		t.Run(strings.Join(test.tokens, " "), func(t *testing.T) {
			e, err := r.Parse(test.tokens...)
			require.NoError(t, err)
			got, units, err := r.ToSI(test.magnitude, e)
			require.NoError(t, err)
			assert.InEpsilon(t, test.expected, got, 1e-12)
			assert.Equal(t, test.units, units)
		})
	}
}

func TestToDisplay(t *testing.T) {
	r := Default()

	e, err := r.Parse("m^-1/2", "m^5")
	require.NoError(t, err)
	got, units, err := r.ToDisplay(10, e)
	require.NoError(t, err)
	assert.Equal(t, Expression{{"ft", 4.5}}, units)
	assert.Equal(t, []string{"ft^4.5"}, units.Tokens())
	assert.InEpsilon(t, 10*math.Pow(1/0.3048, 4.5), got, 1e-12)

	e, err = r.Parse("kg", "m", "s^-2")
	require.NoError(t, err)
	got, units, err = r.ToDisplay(1, e)
	require.NoError(t, err)
	assert.Equal(t, Expression{{"ft", 1}, {"lbm", 1}, {"s", -2}}, units)
	assert.InEpsilon(t, 7.23301385, got, 1e-8)
}

func TestDisplayRoundTrip(t *testing.T) {
	r := Default()
	inputs := [][]string{
		{"mi", "h^-1"},
		{"kg", "m^2", "s^-2"},
		{"N", "m^-2"},
		{"Pa^1/2"},
		{"slug", "ft^-3"},
	}

	for _, tokens := range inputs {
		e, err := r.Parse(tokens...)
		require.NoError(t, err)
		siValue, siUnits, err := r.ToSI(3.5, e)
		require.NoError(t, err)
		displayValue, displayUnits, err := r.ToDisplay(3.5, e)
		require.NoError(t, err)

		back, backUnits, err := r.ToSI(displayValue, displayUnits)
		require.NoError(t, err)
		assert.True(t, Equal(siUnits, backUnits), "%s vs %s", siUnits, backUnits)
		assert.InEpsilon(t, siValue, back, 1e-4)
	}
}

func TestConvertUnknownUnit(t *testing.T) {
	r := Default()
	bad := Expression{{"m", 1}, {"furlong", 1}}

	for _, system := range []System{Raw, SI, Display} {
		_, _, err := r.Convert(1, bad, system)
		var unknown *UnknownUnitError
		require.True(t, errors.As(err, &unknown), system.String())
		assert.Equal(t, "furlong", unknown.Symbol)
	}
}

func TestParseSystem(t *testing.T) {
	for _, system := range []System{Raw, SI, Display} {
		parsed, ok := ParseSystem(system.String())
		assert.True(t, ok)
		assert.Equal(t, system, parsed)
	}
	parsed, ok := ParseSystem("imperial")
	assert.True(t, ok)
	assert.Equal(t, Display, parsed)
	_, ok = ParseSystem("cgs")
	assert.False(t, ok)
}
