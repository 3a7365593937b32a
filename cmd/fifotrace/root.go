// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"github.com/db47h/dataflow/internal/scenario"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type flags struct {
	logLevel string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "fifotrace",
		Short:         "Trace elastic buffer scenarios tick by tick",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&f.noColor, "no-color", false, "disable colored output")

	root.AddCommand(&cobra.Command{
		Use:   "run <scenario.yml>...",
		Short: "Run scenario files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scs []*scenario.Scenario
			for _, name := range args {
				s, err := scenario.Load(name)
				if err != nil {
					return err
				}
				scs = append(scs, s)
			}
			return runAll(cmd, &f, scs)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Run the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd, &f, scenario.Demos())
		},
	})
	return root
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "--log-level")
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger(), nil
}

func runAll(cmd *cobra.Command, f *flags, scs []*scenario.Scenario) error {
	log, err := newLogger(f.logLevel)
	if err != nil {
		return err
	}
	if f.noColor {
		color.NoColor = true
	}
	for _, s := range scs {
		recs, err := s.Run(log.With().Str("scenario", s.Name).Logger())
		if err != nil {
			return err
		}
		if err = printTrace(cmd.OutOrStdout(), s, recs); err != nil {
			return err
		}
	}
	return nil
}
