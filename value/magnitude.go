// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// largest magnitude printed in plain integer form
const maxPlain = 1e15

// ParseMagnitude reads a number-like string: decimal integers and floats
// (with optional exponent), hexadecimal, octal and binary integers (0x, 0o,
// 0b prefixes) and '_' digit separators.
func ParseMagnitude(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if i, err := strconv.ParseInt(s, integerBase(s), 64); err == nil {
		return float64(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f, nil
	}
	return 0, &TypeKindError{Op: "parse", Kind: fmt.Sprintf("non-numeric %q", input)}
}

// integerBase keeps a leading zero decimal ("010") from reading as octal.
func integerBase(s string) int {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && digits[1] >= '0' && digits[1] <= '9' {
		return 10
	}
	return 0
}

// FormatMagnitude prints integral magnitudes without a fractional part and
// everything else with precision digits after the decimal point, trailing
// zeros removed. Magnitudes too small or too large for that switch to
// exponent form. A negative precision gives the shortest exact form.
func FormatMagnitude(m float64, precision int) string {
	abs := math.Abs(m)
	switch {
	case math.IsNaN(m) || math.IsInf(m, 0):
		return strconv.FormatFloat(m, 'g', -1, 64)
	case m == math.Trunc(m) && abs < maxPlain:
		return strconv.FormatInt(int64(m), 10)
	case precision < 0:
		return strconv.FormatFloat(m, 'g', -1, 64)
	case abs >= maxPlain || abs < math.Pow(10, -float64(precision)):
		return strconv.FormatFloat(m, 'e', precision, 64)
	}

	s := strconv.FormatFloat(m, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// Group inserts ',' between thousands in the integer part of a formatted
// decimal number. Anything else, such as "+Inf" or "1e+20", is unchanged.
func Group(number string) string {
	sign := ""
	if strings.HasPrefix(number, "-") {
		sign, number = "-", number[1:]
	}
	integer, fraction, hasFraction := strings.Cut(number, ".")
	if strings.TrimLeft(integer, "0123456789") != "" {
		return sign + number
	}

	var sb strings.Builder
	for i, c := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	if hasFraction {
		sb.WriteString("." + fraction)
	}
	return sign + sb.String()
}
