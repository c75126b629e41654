package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	seed     uint64
	format   string
	logLevel string
}

// newRootCmd assembles the command tree. Commands are built fresh on every
// call so tests can execute them in isolation.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "coalsim",
		Short:         "Simulate coalescent genealogies and genetic drift",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseFormat(opts.format); err != nil {
				return err
			}
			return setupLogging(cmd.ErrOrStderr(), opts.logLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.Uint64Var(&opts.seed, "seed", 0, "base random seed (0 selects the default seed)")
	flags.StringVar(&opts.format, "format", string(formatText), "output format: text, json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newSimulateCmd(opts),
		newTreeCmd(opts),
		newDriftCmd(opts),
	)
	return root
}

// setupLogging installs a text slog handler on w at the requested level.
func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
