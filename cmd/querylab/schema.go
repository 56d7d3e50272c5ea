package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vegasq/querylab/output"
	"github.com/vegasq/querylab/store"
)

func newSchemaCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <directory>",
		Short: "Describe the parquet files of an exported dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := store.DescribeDataset(args[0])
			if err != nil {
				return err
			}

			formatter := opts.formatter(cmd.OutOrStdout())
			for _, table := range tables {
				rs := output.ResultSet{
					Title:   fmt.Sprintf("%s (%d rows)", table.File, table.Rows),
					Columns: []string{"name", "type", "physical_type", "logical_type", "optional"},
				}
				for _, col := range table.Columns {
					rs.Rows = append(rs.Rows, map[string]interface{}{
						"name":          col.Name,
						"type":          col.Type,
						"physical_type": col.PhysicalType,
						"logical_type":  col.LogicalType,
						"optional":      col.Optional,
					})
				}
				if err := formatter.Format(rs); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
