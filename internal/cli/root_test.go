package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/leapstack-labs/sqlsample/pkg/dialects/postgres"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlsample v")
}

func TestRenderThroughRoot(t *testing.T) {
	out, err := execRoot(t, "render", "events", "--fraction", "5", "--method", "system", "-d", "postgres")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM events TABLESAMPLE SYSTEM (5)\n", out)
}

func TestRootUnknownDialect(t *testing.T) {
	_, err := execRoot(t, "render", "events", "--fraction", "5", "-d", "postgress")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
}
