// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		valid    bool
	}{
		{"1", 1, true},
		{"-42", -42, true},
		{"+7", 7, true},
		{"42.5", 42.5, true},
		{"1e3", 1000, true},
		{"-2.5E-2", -0.025, true},
		{"010", 10, true}, // decimal, not octal
		{"0x10", 16, true},
		{"0o17", 15, true},
		{"0b1010", 10, true},
		{"1_000_000", 1e6, true},
		{" 12 ", 12, true},
		{"99999999999999999999", 1e20, true},

		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"12m", 0, false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseMagnitude(test.input)
			if !test.valid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestFormatMagnitude(t *testing.T) {
	a, b := 0.1, 0.2

	tests := []struct {
		input     float64
		precision int
		expected  string
	}{
		{1.0 / 3.0, 4, "0.3333"},
		{2.0 / 3.0, 4, "0.6667"},
		{1.0 / 3.0, 2, "0.33"},
		{1.0 / 3.0, 8, "0.33333333"},
		{6.0 / 3.0, 4, "2"}, // precision does not affect integers
		{math.Pi, 4, "3.1416"},
		{2 * math.Pi, 4, "6.2832"},
		{0.5, 4, "0.5"},
		{-1.25, 4, "-1.25"},
		{1e-7, 4, "1.0000e-07"},
		{1.5e20, 2, "1.50e+20"},
		{a + b, -1, "0.30000000000000004"},
		{a + b, 4, "0.3"},
		{1e20, 4, "1.0000e+20"},
		{math.Inf(1), 4, "+Inf"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatMagnitude(test.input, test.precision))
		})
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1"},
		{"1000", "1,000"},
		{"-1234567.891", "-1,234,567.891"},
		{"123456", "123,456"},
		{"1.0000e+20", "1.0000e+20"},
		{"+Inf", "+Inf"},
		{"-Inf", "-Inf"},
		{"NaN", "NaN"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, Group(test.input))
		})
	}
}
