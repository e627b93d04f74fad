// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"regexp"
	"strings"
)

var (
	unitRe = regexp.MustCompile(`^([°a-zA-Z]+)(\^(-?\d+(?:\.\d+)?(?:/\d+)?))?`)
	sepRe  = regexp.MustCompile(`^([.*·•/])`)
)

// parseUnits splits a unit argument such as "m.s^-1", "kg·m·s^-2", "m/s" or
// "/s" into "symbol[^exponent]" tokens. Everything after a single '/' is a
// denominator. It reports false if the argument is not shaped like units;
// whether the symbols exist is left to the registry.
func parseUnits(input string) ([]string, bool) {
	if input == "" {
		return nil, false
	}

	var tokens []string
	nextPosition := 0
	denominator := false
	if input[0] == '/' && len(input) > 1 { // no numerator
		nextPosition = 1
		denominator = true
	}

	for {
		match := unitRe.FindStringSubmatch(input[nextPosition:])
		if match == nil {
			return nil, false
		}

		exponent := match[3]
		if exponent == "" {
			exponent = "1"
		}
		if denominator {
			exponent = negate(exponent)
		}
		if exponent == "1" {
			tokens = append(tokens, match[1])
		} else {
			tokens = append(tokens, match[1]+"^"+exponent)
		}

		nextPosition += len(match[0])
		if nextPosition >= len(input) { // end of input
			return tokens, true
		}

		sepMatch := sepRe.FindStringSubmatch(input[nextPosition:])
		if sepMatch == nil {
			return nil, false // unexpected char
		}
		if sepMatch[1] == "/" {
			if denominator {
				return nil, false // second instance of /
			}
			denominator = true
		}
		nextPosition += len(sepMatch[1])
	}
}

func negate(exponent string) string {
	if trimmed, ok := strings.CutPrefix(exponent, "-"); ok {
		return trimmed
	}
	return "-" + exponent
}
