// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import "fmt"

// UnknownUnitError reports a unit symbol with no entry in the registry.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit '%s'", e.Symbol)
}

// MalformedUnitError reports a unit token that cannot be parsed, such as a
// missing symbol or an unreadable exponent literal.
type MalformedUnitError struct {
	Token  string
	Reason string
}

func (e *MalformedUnitError) Error() string {
	return fmt.Sprintf("malformed unit '%s': %s", e.Token, e.Reason)
}
