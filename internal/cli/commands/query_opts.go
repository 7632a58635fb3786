package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlsample/internal/cli/config"
	"github.com/leapstack-labs/sqlsample/internal/engine"
	"github.com/leapstack-labs/sqlsample/pkg/dialect"
	"github.com/leapstack-labs/sqlsample/pkg/fromref"
	"github.com/leapstack-labs/sqlsample/pkg/sample"
	"github.com/spf13/cobra"
)

// QueryOptions holds the flags shared by render and preview.
type QueryOptions struct {
	Columns     []string
	Alias       string
	Where       string
	Limit       int
	Fraction    string
	RawFraction bool
	Method      string
	Repeatable  string
	SpecFile    string
}

func addQueryFlags(cmd *cobra.Command, opts *QueryOptions) {
	cmd.Flags().StringSliceVar(&opts.Columns, "columns", nil, "Columns to select (default *)")
	cmd.Flags().StringVar(&opts.Alias, "alias", "", "Table alias")
	cmd.Flags().StringVar(&opts.Where, "where", "", "Raw WHERE condition")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "LIMIT row count (0 for none)")
	cmd.Flags().StringVar(&opts.Fraction, "fraction", "", "Sample fraction (percentage or row count, dialect-dependent)")
	cmd.Flags().BoolVar(&opts.RawFraction, "raw", false, "Treat --fraction as a raw SQL expression (e.g. '1000 ROWS')")
	cmd.Flags().StringVar(&opts.Method, "method", "", "Sampling method (e.g. system, bernoulli)")
	cmd.Flags().StringVar(&opts.Repeatable, "repeatable", "", "Repeatable seed value")
	cmd.Flags().StringVar(&opts.SpecFile, "spec", "", "YAML file with sampling options (fraction/method/repeatable)")
}

// samplingInput assembles the raw sampling options to normalize.
// Returns nil when no sampling was requested at all.
func (opts *QueryOptions) samplingInput() (any, error) {
	if opts.SpecFile != "" {
		return loadSpecFile(opts.SpecFile)
	}
	if opts.Fraction == "" && opts.Method == "" && opts.Repeatable == "" {
		return nil, nil
	}

	m := map[string]any{}
	if opts.Fraction != "" {
		if opts.RawFraction {
			m["fraction"] = sample.Raw(opts.Fraction)
		} else {
			m["fraction"] = opts.Fraction
		}
	}
	if opts.Method != "" {
		m["method"] = opts.Method
	}
	if opts.Repeatable != "" {
		m["repeatable"] = opts.Repeatable
	}
	return m, nil
}

// buildQuery assembles the engine query for a table argument.
func (opts *QueryOptions) buildQuery(table string) (*engine.Query, error) {
	sampling, err := opts.samplingInput()
	if err != nil {
		return nil, err
	}
	return &engine.Query{
		Columns:  opts.Columns,
		From:     fromref.From(parseTable(table, opts.Alias)),
		Where:    opts.Where,
		Limit:    opts.Limit,
		Sampling: sampling,
	}, nil
}

// parseTable splits a dotted table argument into its qualified parts.
func parseTable(table, alias string) *fromref.TableName {
	t := &fromref.TableName{Alias: alias}
	parts := strings.Split(table, ".")
	switch len(parts) {
	case 1:
		t.Name = parts[0]
	case 2:
		t.Schema, t.Name = parts[0], parts[1]
	default:
		t.Catalog = parts[0]
		t.Schema = parts[1]
		t.Name = strings.Join(parts[2:], ".")
	}
	return t
}

// resolveDialect picks the rendering dialect: explicit flag value first,
// then the configured default.
func resolveDialect(cmd *cobra.Command, cfg *config.Config) (*dialect.Dialect, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("dialect")
	if name == "" {
		name = cfg.Dialect
	}
	if name == "" {
		return dialect.Default(), nil
	}
	d, ok := dialect.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (available: %s)", name, strings.Join(dialect.List(), ", "))
	}
	return d, nil
}
