// Command sqlsample renders and previews TABLESAMPLE queries.
package main

import (
	"github.com/leapstack-labs/sqlsample/internal/cli"

	// Register database adapters.
	_ "github.com/leapstack-labs/sqlsample/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/sqlsample/pkg/adapters/postgres"

	// Register sampling dialects.
	_ "github.com/leapstack-labs/sqlsample/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/sqlsample/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/sqlsample/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/sqlsample/pkg/dialects/sqlserver"
)

func main() {
	cli.Execute()
}
