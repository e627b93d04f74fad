// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package unit implements composite unit expressions such as m·s^-1 and the
// registry that converts them to SI base units and to a display system.
//
// Expressions are slices of Terms with one Term per symbol. Merging sums
// exponents per symbol, drops zeros and sorts by the registry's order, so
// two expressions built from the same tokens in any order are identical.
//
// Exponents may be fractional: "m^0.5" and "m^1/2" both parse to m^0.5.
package unit
