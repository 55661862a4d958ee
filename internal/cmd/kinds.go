package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/gridtable/internal/output"
	"github.com/go-theft-auto/gridtable/layoutfile"
)

func newKindsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the cell kinds layout files and scripts can create",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := layoutfile.Kinds()
			if opts.format == output.FormatTable {
				t := output.Table{Headers: []string{"KIND"}}
				for _, k := range kinds {
					t.Rows = append(t.Rows, []string{k})
				}
				return opts.printer(cmd).Print(cmd.Context(), t)
			}
			return opts.printer(cmd).Print(cmd.Context(), kinds)
		},
	}
}
