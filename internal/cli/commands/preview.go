package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/sqlsample/internal/engine"
	"github.com/leapstack-labs/sqlsample/internal/state"
	"github.com/leapstack-labs/sqlsample/pkg/adapter"
	"github.com/spf13/cobra"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	opts := &QueryOptions{}
	var (
		format    string
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "preview TABLE",
		Short: "Execute a sampled query and show the rows",
		Long: `Execute a sampled query against the configured database and
display the returned rows. Each run is recorded in the preview history
unless --no-history is given.

The sampling dialect follows the database adapter, so the generated
clause always matches the engine it runs on.`,
		Example: `  # One percent reservoir sample from an in-memory DuckDB
  sqlsample preview events --fraction 1

  # Postgres preview with a deterministic sample
  sqlsample preview public.orders --fraction 5 --method system --repeatable 42 \
      --db-type postgres --db-host localhost --db-name shop

  # JSON output for scripting
  sqlsample preview events --fraction 1 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], opts, format, noHistory)
		},
	}

	addQueryFlags(cmd, opts)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, csv, md (overrides -o)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording the run in the preview history")

	return cmd
}

func runPreview(cmd *cobra.Command, table string, opts *QueryOptions, format string, noHistory bool) error {
	cfg := configFrom(cmd)
	logger := newLogger(cfg.Verbose)

	q, err := opts.buildQuery(table)
	if err != nil {
		return err
	}

	a, err := adapter.New(cfg.AdapterConfig(), logger)
	if err != nil {
		return err
	}
	if err := a.Connect(cmd.Context(), cfg.AdapterConfig()); err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	var store state.Store
	if !noHistory && cfg.StatePath != "" {
		s := state.NewSQLiteStore(logger)
		if err := s.Open(cfg.StatePath); err != nil {
			return fmt.Errorf("failed to open preview history: %w", err)
		}
		defer func() { _ = s.Close() }()
		store = s
	}

	e := engine.New(a, store, logger)
	res, err := e.Preview(cmd.Context(), q)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "%s (%s)\n", res.SQL, res.Duration)
	}

	if format == "" {
		format = cfg.OutputFormat
	}
	return renderResult(cmd.OutOrStdout(), res, format)
}

// newLogger builds the CLI logger: debug text on stderr when verbose,
// silent otherwise.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
