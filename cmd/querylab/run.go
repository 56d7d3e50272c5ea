package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vegasq/querylab/internal/catalog"
	"github.com/vegasq/querylab/internal/config"
	"github.com/vegasq/querylab/internal/source"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [entry...]",
		Short: "Run catalog entries and print their results",
		Long: `Run catalog entries against the dataset and print every result set.

Example:
  querylab run turnover city-statistics
  querylab run --all --format json
  querylab --source sqlite:shop.db run price-tiers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("name one or more entries, or pass --all")
			}

			cfg, err := config.Load(opts.Config)
			if err != nil {
				return err
			}

			ds, err := source.Open(cmd.Context(), opts.Source, opts.logger)
			if err != nil {
				return err
			}

			runner := catalog.NewRunner(ds, cfg, opts.formatter(cmd.OutOrStdout()), opts.logger)
			if all {
				return runner.RunAll(cmd.Context())
			}
			return runner.Run(cmd.Context(), args...)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every entry in catalog order")

	return cmd
}
