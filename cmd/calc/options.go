// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cmflannery/units/unit"
	"github.com/cmflannery/units/value"
)

type Options struct {
	trace     bool
	group     bool
	oneline   bool
	precision int
	system    string
	config    string
	history   string
}

func newOptions() *Options {
	return &Options{
		precision: 4,
		system:    unit.Raw.String(),
	}
}

func (o *Options) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&o.trace, "trace", "t", o.trace, "Trace operations")
	flags.BoolVarP(&o.group, "group", "g", o.group, "Use ',' to group decimal numbers")
	flags.BoolVarP(&o.oneline, "oneline", "o", o.oneline, "Show final stack on one line")
	flags.IntVarP(&o.precision, "precision", "p", o.precision, "Display precision for floating point numbers")
	flags.StringVarP(&o.system, "system", "s", o.system, "Unit system for the final stack (raw, si or display)")

	persistent := cmd.PersistentFlags()
	persistent.StringVarP(&o.config, "config", "c", o.config, "YAML config file")
	persistent.StringVar(&o.history, "history", o.history, "SQLite file recording each evaluation")
}

// loadConfig applies the config file, if any, to every setting not given on
// the command line and returns the unit registry it describes.
func (o *Options) loadConfig(cmd *cobra.Command) (*unit.Registry, error) {
	if o.config == "" {
		return unit.Default(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(o.config), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "loading config %s", o.config)
	}

	changed := cmd.Flags().Changed
	if k.Exists("precision") && !changed("precision") {
		o.precision = k.Int("precision")
	}
	if k.Exists("system") && !changed("system") {
		o.system = k.String("system")
	}
	if k.Exists("history") && !changed("history") {
		o.history = k.String("history")
	}
	if k.Exists("group") && !changed("group") {
		o.group = k.Bool("group")
	}

	var defs []unit.Definition
	if k.Exists("units") {
		if err := k.Unmarshal("units", &defs); err != nil {
			return nil, errors.Wrapf(err, "config %s: units", o.config)
		}
	}
	var display []unit.DisplayDefinition
	if k.Exists("display") {
		if err := k.Unmarshal("display", &display); err != nil {
			return nil, errors.Wrapf(err, "config %s: display", o.config)
		}
	}
	if len(defs) == 0 && len(display) == 0 {
		return unit.Default(), nil
	}

	registry, err := unit.Default().Extend(defs, display)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", o.config)
	}
	return registry, nil
}

func (o *Options) display() (Display, error) {
	system, ok := unit.ParseSystem(o.system)
	if !ok {
		return Display{}, errors.Errorf("unknown unit system '%s'", o.system)
	}
	if o.precision < 0 {
		return Display{}, errors.Errorf("precision must not be negative, got %d", o.precision)
	}
	return Display{precision: o.precision, system: system, group: o.group}, nil
}

func heredoc(text string) string {
	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")

	// Find the minimum leading whitespace for non-empty lines
	minIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			leadingSpaces := len(line) - len(strings.TrimLeft(line, " "))
			if minIndent == -1 || leadingSpaces < minIndent {
				minIndent = leadingSpaces
			}
		}
	}

	// Remove the minimum leading whitespace from each line
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}

	return strings.TrimLeft(strings.Join(lines, "\n"), "\n")
}

// help describes the arguments; flags are listed by cobra.
func help(registry *unit.Registry) string {
	var sb strings.Builder
	sb.WriteString(heredoc(`
        Evaluates ARGUMENTS left to right on a stack and prints the final stack,
        top first. Put '--' before a leading negative number.

        Numbers:
          Decimal integers and floating point numbers (with optional exponent: [eE][-+]?[0-9]+)
          Hexadecimal, octal and binary integers (leading 0x, 0o or 0b)

        Constants:
          pi

        Stack Operations:
          x: exchange top 2 elements of the stack
          d: duplicate top element of the stack (aliased as dup)
          p: pop top element off of the stack (aliased as pop)

        Binary numerical operations (prepend with '@' to reduce the stack):
          + - * /
          *   (aliased as ., · and •)
          **  (aliased as pow, dimensionless exponent only)

        Unary operations:
          chs (change sign)
          abs (absolute value)
          si  (convert to SI units)
          im  (convert to display units)

        Units:
          Units are applied if current top of stack does not have any units
          Otherwise the current top of stack is converted to the units
          Terms are joined by '.', '*' or '·'; terms after a '/' are inverted
          e.g. m.s^-1, kg·m·s^-2, m/s, ft^4.5, m^1/2
    `))
	sb.WriteString("\n")
	for _, def := range registry.Definitions() {
		fmt.Fprintf(&sb, "\n  %-5s %s", def.Symbol, def.Description)
		if def.Symbol != def.Base {
			fmt.Fprintf(&sb, " (%s %s)", value.FormatMagnitude(def.Factor, -1), def.Base)
		}
	}
	return sb.String()
}
