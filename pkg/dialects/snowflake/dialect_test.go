package snowflake_test

import (
	"testing"

	"github.com/leapstack-labs/sqlsample/pkg/dialect"
	"github.com/leapstack-labs/sqlsample/pkg/dialects/snowflake"
	"github.com/leapstack-labs/sqlsample/pkg/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeRegistered(t *testing.T) {
	d, ok := dialect.Get("snowflake")
	require.True(t, ok)
	assert.Equal(t, snowflake.Snowflake, d)
}

func TestSnowflakeSampleKeyword(t *testing.T) {
	got, err := sample.Render(&sample.Spec{Fraction: 10}, snowflake.Snowflake)
	require.NoError(t, err)
	assert.Equal(t, "SAMPLE (10)", got)
}

func TestSnowflakeSeedClause(t *testing.T) {
	spec := &sample.Spec{Fraction: 10, Method: "bernoulli", Repeatable: 99}
	got, err := sample.Render(spec, snowflake.Snowflake)
	require.NoError(t, err)
	assert.Equal(t, "SAMPLE BERNOULLI (10) SEED (99)", got)
}
