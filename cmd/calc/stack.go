// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cmflannery/units/unit"
	"github.com/cmflannery/units/value"
)

type Stack struct {
	values   []value.Value
	registry *unit.Registry
	logger   *zap.Logger
}

func newStack(registry *unit.Registry, logger *zap.Logger) *Stack {
	return &Stack{values: []value.Value{}, registry: registry, logger: logger}
}

type Aliases map[string]string

var STACKALIAS = Aliases{
	"dup": "d",
	"pop": "p",
}

var STACKOP = map[string]func(*Stack) error{
	"x": func(s *Stack) error { return s.exchange() },
	"d": func(s *Stack) error { return s.dup() },
	"p": func(s *Stack) error {
		if _, err := s.pop(); err != nil {
			return errors.Errorf("stack is empty for '%s'", "pop")
		}
		return nil
	},
}

var BINARYALIAS = Aliases{
	".":       "*",
	"•":       "*",
	unit.DOT: "*",
	"pow":     "**",
}

var BINARYOP = map[string]func(left, right value.Value) (value.Value, error){
	"+": func(left, right value.Value) (value.Value, error) { return left.Add(right) },
	"-": func(left, right value.Value) (value.Value, error) { return left.Sub(right) },
	"*": func(left, right value.Value) (value.Value, error) {
		if left.Units().IsDimensionless() {
			return right.Scale(left.Magnitude()), nil
		}
		return left.Mul(operand(right))
	},
	"/":  func(left, right value.Value) (value.Value, error) { return left.Div(operand(right)) },
	"**": func(left, right value.Value) (value.Value, error) { return left.Pow(operand(right)) },
}

var UNARYOP = map[string]func(value.Value) value.Value{
	"chs": value.Value.Neg,
	"abs": value.Value.Abs,
	"si":  func(v value.Value) value.Value { return v.To(unit.SI) },
	"im":  func(v value.Value) value.Value { return v.To(unit.Display) },
}

// operand passes dimensionless values as a Scalar so that scaling keeps the
// left-hand units as written.
func operand(v value.Value) value.Operand {
	if v.Units().IsDimensionless() {
		return value.Scalar(v.Magnitude())
	}
	return v
}

func (a Aliases) resolve(op string) string {
	if name, ok := a[op]; ok {
		return name
	}
	return op
}

func (s *Stack) binaryOp(op string) error {
	fn, ok := BINARYOP[BINARYALIAS.resolve(op)]
	if !ok {
		return errors.Errorf("unimplemented binary operation '%s'", op)
	}
	if s.size() < 2 {
		return errors.Errorf("not enough arguments for binary operation '%s'", op)
	}
	right, _ := s.pop()
	left, _ := s.pop()

	result, err := fn(left, right)
	if err != nil {
		return err
	}
	s.logger.Debug("binary",
		zap.String("op", op),
		zap.Stringer("left", left),
		zap.Stringer("right", right),
		zap.Stringer("result", result))
	s.push(result)
	return nil
}

func (s *Stack) unaryOp(op string) error {
	fn, ok := UNARYOP[op]
	if !ok {
		return errors.Errorf("unimplemented unary operation '%s'", op)
	}
	v, err := s.pop()
	if err != nil {
		return errors.Errorf("not enough arguments for unary operation '%s'", op)
	}

	result := fn(v)
	s.logger.Debug("unary",
		zap.String("op", op),
		zap.Stringer("operand", v),
		zap.Stringer("result", result))
	s.push(result)
	return nil
}

// apply attaches units to a dimensionless top of stack and converts anything
// else to them.
func (s *Stack) apply(tokens []string) error {
	label := strings.Join(tokens, unit.DOT)
	v, err := s.pop()
	if err != nil {
		return errors.Errorf("not enough arguments for '%s'", label)
	}

	var result value.Value
	if v.Units().IsDimensionless() {
		result, err = value.NewIn(s.registry, v.Magnitude(), tokens...)
	} else {
		result, err = v.Convert(tokens...)
	}
	if err != nil {
		s.push(v)
		return err
	}
	s.logger.Debug("units",
		zap.Strings("units", tokens),
		zap.Stringer("operand", v),
		zap.Stringer("result", result))
	s.push(result)
	return nil
}

// reduce folds the whole stack left to right with op, bottom value first.
func (s *Stack) reduce(op string) error {
	if s.size() < 2 {
		return errors.Errorf("not enough arguments for reduction operation '@%s'", op)
	}
	fn, ok := BINARYOP[BINARYALIAS.resolve(op)]
	if !ok {
		return errors.Errorf("unimplemented reduction operation '@%s'", op)
	}

	result := s.values[0]
	for i := 1; i < len(s.values); i++ {
		var err error
		if result, err = fn(result, s.values[i]); err != nil {
			return err
		}
	}
	s.logger.Debug("reduce",
		zap.String("op", op),
		zap.Int("size", s.size()),
		zap.Stringer("result", result))

	s.values = []value.Value{result}
	return nil
}

func (s *Stack) push(v value.Value) {
	s.values = append(s.values, v)
}

// pushNumber pushes a dimensionless value, which cannot fail to build.
func (s *Stack) pushNumber(m float64) {
	v, _ := value.NewIn(s.registry, m)
	s.push(v)
}

func (s *Stack) pop() (value.Value, error) {
	if len(s.values) == 0 {
		return value.Value{}, errors.New("stack is empty")
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return v, nil
}

func (s *Stack) peek() (value.Value, error) {
	if len(s.values) == 0 {
		return value.Value{}, errors.New("stack is empty")
	}

	return s.values[len(s.values)-1], nil
}

// dup pushes the top value again; values are immutable so sharing is safe.
func (s *Stack) dup() error {
	top, err := s.peek()
	if err != nil {
		return errors.Errorf("stack is empty for '%s'", "duplicate")
	}
	s.push(top)
	return nil
}

func (s *Stack) exchange() error {
	if s.size() < 2 {
		return errors.Errorf("not enough arguments for '%s'", "exchange")
	}

	s.values[len(s.values)-1], s.values[len(s.values)-2] = s.values[len(s.values)-2], s.values[len(s.values)-1]
	return nil
}

func (s *Stack) size() int {
	return len(s.values)
}

// Display controls how the final stack is rendered.
type Display struct {
	precision int
	system    unit.System
	group     bool
}

func (d Display) format(v value.Value) (string, string) {
	v = v.To(d.system)
	number := value.FormatMagnitude(v.Magnitude(), d.precision)
	if d.group {
		number = value.Group(number)
	}
	return number, v.Units().String()
}

func (s *Stack) oneline(d Display) string {
	parts := make([]string, 0, len(s.values))
	for _, v := range s.values {
		number, units := d.format(v)
		parts = append(parts, strings.TrimSpace(number+" "+units))
	}
	return strings.Join(parts, " ")
}

// ColumnWidths tracks integer and fractional part widths for alignment
type ColumnWidths struct {
	integerWidth    int // width of integer part (before decimal point)
	fractionalWidth int // width of fractional part (including decimal point)
}

func maxWidths(numbers []string) ColumnWidths {
	var widths ColumnWidths
	for _, number := range numbers {
		intPart, fracPart := splitNumber(number)
		widths.integerWidth = max(widths.integerWidth, len(intPart))
		widths.fractionalWidth = max(widths.fractionalWidth, len(fracPart))
	}
	return widths
}

// splitNumber splits a number string into integer and fractional parts.
// The fractional part includes the decimal point and any exponent.
func splitNumber(str string) (string, string) {
	if i := strings.Index(str, "."); i >= 0 {
		return str[:i], str[i:]
	}
	return str, ""
}

// print writes the stack top first, one value per line, aligning the
// decimal points.
func (s *Stack) print(w io.Writer, d Display) {
	numbers := make([]string, len(s.values))
	units := make([]string, len(s.values))
	for i, v := range s.values {
		numbers[i], units[i] = d.format(v)
	}
	widths := maxWidths(numbers)

	for i := len(s.values) - 1; i >= 0; i-- {
		intPart, fracPart := splitNumber(numbers[i])
		line := fmt.Sprintf("%*s%-*s", widths.integerWidth, intPart, widths.fractionalWidth, fracPart)
		if units[i] != "" {
			line += " " + units[i]
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
