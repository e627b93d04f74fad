// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package value

import (
	"fmt"

	"github.com/cmflannery/units/unit"
)

// TypeKindError reports an operand of a kind the operation does not accept,
// e.g. adding a plain scalar to a Value.
type TypeKindError struct {
	Op   string
	Kind string
}

func (e *TypeKindError) Error() string {
	return fmt.Sprintf("%s not supported for %s operand", e.Op, e.Kind)
}

// DimensionMismatchError reports two Values whose SI units differ for an
// operation that requires them to agree.
type DimensionMismatchError struct {
	Op    string
	Left  unit.Expression
	Right unit.Expression
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s not supported for units [%s] and [%s]", e.Op, e.Left, e.Right)
}
