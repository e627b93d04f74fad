// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cmflannery/units/unit"
	"github.com/cmflannery/units/value"
)

var CONSTANTS = map[string]float64{
	"pi": math.Pi,
}

func newRootCommand() *cobra.Command {
	opts := newOptions()

	cmd := &cobra.Command{
		Use:           "calc [OPTIONS] ARGUMENTS...",
		Short:         "RPN calculator with units",
		Long:          help(unit.Default()),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().SetInterspersed(false)
	opts.addFlags(cmd)

	cmd.AddCommand(newHistoryCommand(opts))
	return cmd
}

func newHistoryCommand(opts *Options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := opts.loadConfig(cmd); err != nil {
				return err
			}
			if opts.history == "" {
				return errors.New("no history file, use --history or set history in the config")
			}

			history, err := openHistory(opts.history)
			if err != nil {
				return err
			}
			defer history.Close()

			entries, err := history.recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := len(entries) - 1; i >= 0; i-- {
				e := entries[i]
				fmt.Fprintf(out, "%d  %s  %s  [%s] => %s\n",
					e.ID, e.CreatedAt.Local().Format(time.DateTime), e.Args, e.System, e.Result)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "number", "n", 10, "Number of entries to show")
	return cmd
}

func newLogger(trace bool, w io.Writer) *zap.Logger {
	if !trace {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zap.DebugLevel))
}

// run evaluates args and prints the resulting stack.
func run(cmd *cobra.Command, opts *Options, args []string) error {
	registry, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	display, err := opts.display()
	if err != nil {
		return err
	}

	logger := newLogger(opts.trace, cmd.ErrOrStderr())
	defer logger.Sync()

	stack := newStack(registry, logger)
	for i, arg := range args {
		if err := stack.eval(arg); err != nil {
			return errors.Wrapf(err, "argument %d '%s'", i+1, arg)
		}
	}

	out := cmd.OutOrStdout()
	if opts.oneline {
		fmt.Fprintln(out, stack.oneline(display))
	} else {
		stack.print(out, display)
	}

	if opts.history != "" {
		history, err := openHistory(opts.history)
		if err != nil {
			return err
		}
		defer history.Close()
		id, err := history.save(cmd.Context(), args, stack.oneline(display), display.system.String())
		if err != nil {
			return err
		}
		logger.Debug("history", zap.String("path", opts.history), zap.Int64("id", id))
	}
	return nil
}

// eval applies one argument to the stack.
func (s *Stack) eval(arg string) error {
	if op, ok := STACKOP[STACKALIAS.resolve(arg)]; ok {
		return op(s)
	}
	if _, ok := BINARYOP[BINARYALIAS.resolve(arg)]; ok {
		return s.binaryOp(arg)
	}
	if op, ok := strings.CutPrefix(arg, "@"); ok {
		return s.reduce(op)
	}
	if _, ok := UNARYOP[arg]; ok {
		return s.unaryOp(arg)
	}
	if c, ok := CONSTANTS[arg]; ok {
		s.pushNumber(c)
		return nil
	}
	if m, err := value.ParseMagnitude(arg); err == nil {
		s.pushNumber(m)
		return nil
	}
	if tokens, ok := parseUnits(arg); ok {
		return s.apply(tokens)
	}
	return errors.New("unrecognized argument")
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, exiting\n", err)
		os.Exit(1)
	}
}
