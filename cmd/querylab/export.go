package main

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/querylab/internal/source"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <destination>",
		Short: "Write the dataset as parquet files or into a SQL database",
		Long: `Write the loaded dataset to a destination.

A directory receives one parquet file per table. sqlite:<path> and
postgres://... destinations get the tables created when missing.

Example:
  querylab export ./shop
  querylab --source ./shop export sqlite:shop.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := source.Open(cmd.Context(), opts.Source, opts.logger)
			if err != nil {
				return err
			}
			if err := source.Save(cmd.Context(), args[0], ds, opts.logger); err != nil {
				return err
			}
			opts.logger.Info("exported %d customers and %d orders to %s", len(ds.Customers), ds.OrderCount(), args[0])
			return nil
		},
	}
}
