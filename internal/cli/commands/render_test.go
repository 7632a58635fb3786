package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/sqlsample/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/leapstack-labs/sqlsample/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/sqlsample/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/sqlsample/pkg/dialects/sqlserver"
)

func execCommand(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(WithConfig(context.Background(), cfg))
	return buf.String(), err
}

func TestRenderFractionOnly(t *testing.T) {
	out, err := execCommand(t, NewRenderCommand(), &config.Config{}, "events", "--fraction", "5")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM events TABLESAMPLE (5)\n", out)
}

func TestRenderFullClause(t *testing.T) {
	out, err := execCommand(t, NewRenderCommand(), &config.Config{Dialect: "postgres"},
		"public.orders",
		"--alias", "o",
		"--columns", "o.id,o.total",
		"--fraction", "5",
		"--method", "system",
		"--repeatable", "42",
		"--where", "o.total > 0",
		"--limit", "10")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT o.id, o.total FROM public.orders o TABLESAMPLE SYSTEM (5) REPEATABLE (42) WHERE o.total > 0 LIMIT 10\n",
		out)
}

func TestRenderClauseOnly(t *testing.T) {
	out, err := execCommand(t, NewRenderCommand(), &config.Config{Dialect: "snowflake"},
		"events", "--fraction", "10", "--clause-only")
	require.NoError(t, err)
	assert.Equal(t, "SAMPLE (10)\n", out)
}

func TestRenderRawFraction(t *testing.T) {
	out, err := execCommand(t, NewRenderCommand(), &config.Config{Dialect: "sqlserver"},
		"dbo.events", "--fraction", "1000 ROWS", "--raw", "--clause-only")
	require.NoError(t, err)
	assert.Equal(t, "TABLESAMPLE (1000 ROWS)\n", out)
}

func TestRenderSpecFileWithLegacyKey(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("fraction: 10\ntype: bernoulli\n"), 0o644))

	out, err := execCommand(t, NewRenderCommand(), &config.Config{},
		"events", "--spec", specPath, "--clause-only")
	require.NoError(t, err)
	assert.Equal(t, "TABLESAMPLE BERNOULLI (10)\n", out)
}

func TestRenderSpecFileMissingFraction(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("method: system\n"), 0o644))

	_, err := execCommand(t, NewRenderCommand(), &config.Config{}, "events", "--spec", specPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fraction")
}

func TestRenderUnknownDialect(t *testing.T) {
	_, err := execCommand(t, NewRenderCommand(), &config.Config{Dialect: "oracle"}, "events", "--fraction", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dialect "oracle"`)
}

func TestRenderClauseOnlyWithoutSampling(t *testing.T) {
	_, err := execCommand(t, NewRenderCommand(), &config.Config{}, "events", "--clause-only")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sampling options")
}

func TestParseTable(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "events", want: "events"},
		{input: "sales.orders", want: "sales.orders"},
		{input: "prod.sales.orders", want: "prod.sales.orders"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTable(tt.input, "").Ref())
		})
	}
}
