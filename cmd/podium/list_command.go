package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := ctx.sources(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(srcs))
			for _, s := range srcs {
				rows = append(rows, []string{s.entry.ID, s.entry.Title, s.entry.Description, s.origin})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"ID", "Title", "Description", "Source"}, rows, nil))
			return nil
		},
	}
}
