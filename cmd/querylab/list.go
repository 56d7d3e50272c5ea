package main

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/querylab/internal/catalog"
	"github.com/vegasq/querylab/output"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs := output.ResultSet{
				Title:   "Catalog",
				Columns: []string{"name", "category", "title", "description"},
			}
			for _, e := range catalog.Entries() {
				rs.Rows = append(rs.Rows, map[string]interface{}{
					"name":        e.Name,
					"category":    string(e.Category),
					"title":       e.Title,
					"description": e.Description,
				})
			}
			return opts.formatter(cmd.OutOrStdout()).Format(rs)
		},
	}
}
