// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

const (
	inch  = 0.0254 // by definition
	foot  = inch * 12.0
	yard  = inch * 36.0
	mile  = inch * 12.0 * 5280.0
	pound = 0.45359237 // by definition
	gee   = 9.80665    // standard gravity, by definition

	poundForce = pound * gee
	slug       = poundForce / foot
	psi        = poundForce / (inch * inch)
)

// registry order is the canonical sort order: length, mass, time, force, pressure
var defaultDefinitions = []Definition{
	{Symbol: "m", Base: "m", Factor: 1, Description: "meters"},
	{Symbol: "km", Base: "m", Factor: 1000, Description: "kilometers"},
	{Symbol: "in", Base: "m", Factor: inch, Description: "inches"},
	{Symbol: "ft", Base: "m", Factor: foot, Description: "feet"},
	{Symbol: "yd", Base: "m", Factor: yard, Description: "yards"},
	{Symbol: "mi", Base: "m", Factor: mile, Description: "miles"},

	{Symbol: "kg", Base: "kg", Factor: 1, Description: "kilograms"},
	{Symbol: "g", Base: "kg", Factor: 1.0 / 1000.0, Description: "grams"},
	{Symbol: "lbm", Base: "kg", Factor: pound, Description: "pounds mass"},
	{Symbol: "slug", Base: "kg", Factor: slug, Description: "slugs"},

	{Symbol: "s", Base: "s", Factor: 1, Description: "seconds"},
	{Symbol: "min", Base: "s", Factor: 60, Description: "minutes"},
	{Symbol: "h", Base: "s", Factor: 3600, Description: "hours"},

	{Symbol: "N", Base: "N", Factor: 1, Description: "newtons"},
	{Symbol: "lbf", Base: "N", Factor: poundForce, Description: "pounds force"},

	{Symbol: "Pa", Base: "Pa", Factor: 1, Description: "pascals"},
	{Symbol: "psi", Base: "Pa", Factor: psi, Description: "pounds per square inch"},
}

var defaultDisplay = []DisplayDefinition{
	{Base: "m", Symbol: "ft", Factor: 1 / foot},
	{Base: "kg", Symbol: "lbm", Factor: 1 / pound},
	{Base: "s", Symbol: "s", Factor: 1},
	{Base: "N", Symbol: "lbf", Factor: 1 / poundForce},
	{Base: "Pa", Symbol: "psi", Factor: 1 / psi},
}

var defaultRegistry = MustNewRegistry(defaultDefinitions, defaultDisplay)

// Default returns the process-wide registry of SI and Imperial units.
func Default() *Registry {
	return defaultRegistry
}

// DefaultDefinitions returns a copy of the built-in unit table.
func DefaultDefinitions() []Definition {
	return append([]Definition(nil), defaultDefinitions...)
}

// DefaultDisplay returns a copy of the built-in display table.
func DefaultDisplay() []DisplayDefinition {
	return append([]DisplayDefinition(nil), defaultDisplay...)
}
