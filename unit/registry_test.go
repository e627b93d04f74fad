// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	for _, def := range r.Definitions() {
		assert.True(t, r.Has(def.Base), "base of %s", def.Symbol)
		got, err := r.Lookup(def.Symbol)
		require.NoError(t, err)
		assert.Equal(t, def, got)
	}
	assert.Len(t, r.DisplayDefinitions(), 5)
	assert.Equal(t, DefaultDefinitions(), r.Definitions())

	_, err := r.Lookup("furlong")
	var unknown *UnknownUnitError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "furlong", unknown.Symbol)
}

func TestDefaultDefinitionsAreCopies(t *testing.T) {
	defs := DefaultDefinitions()
	defs[0].Factor = 42
	def, err := Default().Lookup("m")
	require.NoError(t, err)
	assert.Equal(t, 1.0, def.Factor)
}

func TestNewRegistryValidation(t *testing.T) {
	good := []Definition{
		{Symbol: "m", Base: "m", Factor: 1},
		{Symbol: "ft", Base: "m", Factor: 0.3048},
	}
	goodDisplay := []DisplayDefinition{{Base: "m", Symbol: "ft", Factor: 1 / 0.3048}}

	_, err := NewRegistry(good, goodDisplay)
	require.NoError(t, err)

	tests := []struct {
		name    string
		defs    []Definition
		display []DisplayDefinition
		errs    int
	}{
		{
			name:    "missing display",
			defs:    append(good, Definition{Symbol: "s", Base: "s", Factor: 1}),
			display: goodDisplay,
			errs:    1,
		},
		{
			name:    "duplicate symbol",
			defs:    append(good, Definition{Symbol: "ft", Base: "m", Factor: 0.3}),
			display: goodDisplay,
			errs:    1,
		},
		{
			name:    "undefined base",
			defs:    append(good, Definition{Symbol: "min", Base: "s", Factor: 60}),
			display: goodDisplay,
			errs:    2, // s is not defined as itself and has no display entry
		},
		{
			name:    "bad factors",
			defs:    append(good, Definition{Symbol: "km", Base: "m", Factor: 0}, Definition{Symbol: "mi", Base: "m", Factor: math.Inf(1)}),
			display: goodDisplay,
			errs:    2,
		},
		{
			name:    "display symbol with wrong base",
			defs:    append(good, Definition{Symbol: "s", Base: "s", Factor: 1}),
			display: append(goodDisplay, DisplayDefinition{Base: "s", Symbol: "ft", Factor: 1}),
			errs:    1,
		},
		{
			name:    "display for non-base",
			defs:    good,
			display: append(goodDisplay, DisplayDefinition{Base: "ft", Symbol: "ft", Factor: 1}),
			errs:    1,
		},
		{
			name:    "exponent in symbol",
			defs:    append(good, Definition{Symbol: "m^2", Base: "m", Factor: 1}),
			display: goodDisplay,
			errs:    1,
		},
		{
			name:    "empty symbol",
			defs:    append(good, Definition{Base: "m", Factor: 1}),
			display: goodDisplay,
			errs:    1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := NewRegistry(test.defs, test.display)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Len(t, multierr.Errors(err), test.errs, "%v", err)
		})
	}
}

func TestMustNewRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry([]Definition{{Symbol: "m", Base: "m", Factor: 1}}, nil)
	})
}

func TestExtend(t *testing.T) {
	base := Default()
	r, err := base.Extend(
		[]Definition{
			{Symbol: "furlong", Base: "m", Factor: 201.168},
			{Symbol: "mi", Base: "m", Factor: 1609.34},
		},
		[]DisplayDefinition{{Base: "s", Symbol: "min", Factor: 1.0 / 60.0}},
	)
	require.NoError(t, err)

	assert.True(t, r.Has("furlong"))
	assert.False(t, base.Has("furlong"))

	mi, err := r.Lookup("mi")
	require.NoError(t, err)
	assert.Equal(t, 1609.34, mi.Factor)

	// replaced definitions keep their rank, new ones sort last
	e, err := r.Parse("furlong", "s^-1", "mi")
	require.NoError(t, err)
	assert.Equal(t, Expression{{"mi", 1}, {"s", -1}, {"furlong", 1}}, e)

	v, units, err := r.ToDisplay(120, Expression{{"s", 1}})
	require.NoError(t, err)
	assert.InDelta(t, 2, v, 1e-12)
	assert.Equal(t, Expression{{"min", 1}}, units)

	_, err = base.Extend([]Definition{{Symbol: "hand", Base: "cubit", Factor: 0.25}}, nil)
	assert.Error(t, err)
}
