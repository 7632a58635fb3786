// Package adapter provides the database adapter contract used to run
// sampled queries against real engines.
//
// Concrete adapter implementations live in pkg/adapters/ subdirectories
// and register themselves by name in their init() functions.
package adapter

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/sqlsample/pkg/dialect"
)

// Config holds the configuration for connecting to a database.
type Config struct {
	// Type specifies the database type (e.g., "duckdb", "postgres")
	Type string

	// Path is the file path for file-based databases.
	// Use ":memory:" for in-memory databases.
	Path string

	// Host is the hostname for network-based databases
	Host string

	// Port is the port number for network-based databases
	Port int

	// Database is the database name
	Database string

	// Username for authentication
	Username string

	// Password for authentication
	Password string

	// Options contains additional driver-specific options
	Options map[string]string
}

// Adapter defines the interface that all database adapters must implement.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string) (*sql.Rows, error)

	// Dialect returns the sampling dialect the adapter's engine speaks.
	// The engine uses it to render TABLESAMPLE clauses that the target
	// database will accept.
	Dialect() *dialect.Dialect
}
