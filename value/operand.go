// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package value

// Operand is the right-hand side of a Value operation: either a Scalar or a
// Value. The set is closed; operations switch over it exhaustively.
type Operand interface {
	isOperand()
}

// Scalar is a dimensionless plain number.
type Scalar float64

func (Scalar) isOperand() {}

func (Value) isOperand() {}

// resolve dereferences a non-nil *Value, which also satisfies Operand.
func resolve(o Operand) Operand {
	if p, ok := o.(*Value); ok && p != nil {
		return *p
	}
	return o
}

func kindOf(o Operand) string {
	switch resolve(o).(type) {
	case Scalar:
		return "scalar"
	case Value:
		return "value"
	}
	return "nil"
}
