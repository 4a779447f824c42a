package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := opts.assessmentService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			w := opts.newTable()
			w.AppendHeader(table.Row{"#", "ID", "Category", "Reversed", "Text"})
			for i, q := range svc.Questions() {
				reversed := ""
				if q.Reversed {
					reversed = "yes"
				}
				w.AppendRow(table.Row{i + 1, q.ID, q.Category.Name(), reversed, q.Text})
			}
			w.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignRight},
				{Number: 5, WidthMax: 72},
			})

			fmt.Fprintln(cmd.OutOrStdout(), opts.render(w))
			return nil
		},
	}
}
