// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package value

import "cmp"

// Compare returns -1, 0 or +1 as v's SI magnitude is less than, equal to or
// greater than o's. o must be a Value with the same SI units.
func (v Value) Compare(o Operand) (int, error) {
	a, _, b, err := v.agree("comparison", o)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(a, b), nil
}

func (v Value) Less(o Operand) (bool, error) {
	return v.compare("<", o, func(a, b float64) bool { return a < b })
}

func (v Value) LessEqual(o Operand) (bool, error) {
	return v.compare("<=", o, func(a, b float64) bool { return a <= b })
}

func (v Value) Equal(o Operand) (bool, error) {
	return v.compare("==", o, func(a, b float64) bool { return a == b })
}

func (v Value) NotEqual(o Operand) (bool, error) {
	return v.compare("!=", o, func(a, b float64) bool { return a != b })
}

func (v Value) GreaterEqual(o Operand) (bool, error) {
	return v.compare(">=", o, func(a, b float64) bool { return a >= b })
}

func (v Value) Greater(o Operand) (bool, error) {
	return v.compare(">", o, func(a, b float64) bool { return a > b })
}

func (v Value) compare(op string, o Operand, f func(a, b float64) bool) (bool, error) {
	a, _, b, err := v.agree(op, o)
	if err != nil {
		return false, err
	}
	return f(a, b), nil
}
