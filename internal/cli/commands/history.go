package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlsample/internal/cli/config"
	"github.com/leapstack-labs/sqlsample/internal/state"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded preview runs",
		Long:  `List the sampled queries previously executed with "sqlsample preview", newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")

	return cmd
}

func runHistory(cmd *cobra.Command, limit int) error {
	cfg := configFrom(cmd)

	statePath := cfg.StatePath
	if statePath == "" {
		statePath = config.DefaultStateFile
	}

	s := state.NewSQLiteStore(newLogger(cfg.Verbose))
	if err := s.Open(statePath); err != nil {
		return fmt.Errorf("failed to open preview history: %w", err)
	}
	defer func() { _ = s.Close() }()

	runs, err := s.ListPreviews(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No preview runs recorded.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "DIALECT", "TABLE", "ROWS", "MS", "CREATED", "SQL"})
	for _, run := range runs {
		t.AppendRow(table.Row{
			shortID(run.ID),
			run.Dialect,
			run.Table,
			run.RowCount,
			run.DurationMs,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(run.SQL, 60),
		})
	}
	t.Render()
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
