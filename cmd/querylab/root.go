package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jamesrr39/goutil/logpkg"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vegasq/querylab/output"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Source  string
	Config  string
	Format  string // "text" | "json" | "csv"
	Lang    string
	Verbose bool
	Profile string // "" | "cpu" | "mem"

	logger   *logpkg.Logger
	profiler interface{ Stop() }
}

var (
	validFormats  = []string{"text", "json", "csv"}
	validProfiles = []string{"", "cpu", "mem"}
)

func newRootCommand() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "querylab",
		Short: "Query exercises over a customers and orders dataset",
		Long: `querylab runs a catalog of filter, join, ordering, grouping and statistics
queries over customers, orders, products and suppliers.

Without --source the embedded sample dataset is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			if !contains(validProfiles, opts.Profile) {
				return fmt.Errorf("invalid profile %q: must be cpu or mem", opts.Profile)
			}

			logLevel := logpkg.LogLevelInfo
			if opts.Verbose {
				logLevel = logpkg.LogLevelDebug
			}
			opts.logger = logpkg.NewLogger(cmd.ErrOrStderr(), logLevel)

			switch opts.Profile {
			case "cpu":
				opts.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
			case "mem":
				opts.profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.stopProfile()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Source, "source", "", "dataset: file.yaml, parquet directory, sqlite:<path> or postgres://... (default: embedded sample)")
	flags.StringVar(&opts.Config, "config", "", "YAML file with thresholds and price tier breakpoints")
	flags.StringVar(&opts.Format, "format", "text", "output format (text|json|csv)")
	flags.StringVar(&opts.Lang, "lang", "en", "language tag for number formatting in text output")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Profile, "profile", "", "write a cpu or mem profile to the current directory")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newSchemaCommand(opts))

	return cmd, opts
}

// runRoot executes the command tree. cobra skips PersistentPostRun when a
// command fails, so a running profiler is stopped here as well.
func runRoot(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	err := cmd.ExecuteContext(ctx)
	opts.stopProfile()
	return err
}

// stopProfile stops a running profiler. Calling it again is a no-op.
func (opts *rootOptions) stopProfile() {
	if opts.profiler == nil {
		return
	}
	opts.profiler.Stop()
	opts.profiler = nil
	opts.logger.Info("profile written to the current directory")
}

// formatter returns the output formatter selected by --format.
func (opts *rootOptions) formatter(w io.Writer) output.Formatter {
	switch opts.Format {
	case "json":
		return output.NewJSONFormatter(w)
	case "csv":
		return output.NewCSVFormatter(w)
	default:
		return output.NewTextFormatter(w, opts.Lang)
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
