package commands

import (
	"fmt"

	"github.com/leapstack-labs/sqlsample/internal/engine"
	"github.com/leapstack-labs/sqlsample/pkg/sample"
	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &QueryOptions{}
	var clauseOnly bool

	cmd := &cobra.Command{
		Use:   "render TABLE",
		Short: "Render a sampled query without executing it",
		Long: `Render the SQL for a sampled query against TABLE.

The sampling options are normalized and rendered for the selected
dialect, then attached to the FROM clause. With --clause-only, only the
sampling clause itself is printed.`,
		Example: `  # Five percent Bernoulli sample, PostgreSQL grammar
  sqlsample render events --fraction 5 --method bernoulli -d postgres

  # Deterministic sample
  sqlsample render events --fraction 5 --method system --repeatable 42

  # T-SQL row-count sample via a raw fraction expression
  sqlsample render dbo.events --fraction "1000 ROWS" --raw -d sqlserver

  # Options from a YAML file
  sqlsample render events --spec sample.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, clauseOnly)
		},
	}

	addQueryFlags(cmd, opts)
	cmd.Flags().BoolVar(&clauseOnly, "clause-only", false, "Print only the sampling clause")

	return cmd
}

func runRender(cmd *cobra.Command, table string, opts *QueryOptions, clauseOnly bool) error {
	cfg := configFrom(cmd)
	d, err := resolveDialect(cmd, cfg)
	if err != nil {
		return err
	}

	q, err := opts.buildQuery(table)
	if err != nil {
		return err
	}

	if clauseOnly {
		if q.Sampling == nil {
			return fmt.Errorf("no sampling options given")
		}
		spec, err := sample.Normalize(q.Sampling)
		if err != nil {
			return err
		}
		clause, err := sample.Render(spec, d)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), clause)
		return nil
	}

	sqlText, err := engine.BuildSQL(q, d)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), sqlText)
	return nil
}
