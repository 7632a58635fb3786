package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlsample/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Long:  `List the registered sampling dialects and how each spells its grammar.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"NAME", "CLAUSE", "SEED CLAUSE", "METHODS", "DEFAULT METHOD"})

			for _, name := range dialect.List() {
				d, ok := dialect.Get(name)
				if !ok {
					continue
				}
				methods := strings.Join(d.Methods, ", ")
				if !d.SupportsMethod {
					methods = "(none)"
				}
				defaultMethod := d.DefaultMethod
				if defaultMethod == "" {
					defaultMethod = "(engine default)"
				}
				t.AppendRow(table.Row{
					d.Name,
					d.Keyword(d.SampleKeyword),
					d.Keyword(d.RepeatKeyword),
					methods,
					defaultMethod,
				})
			}
			t.Render()
		},
	}
}
