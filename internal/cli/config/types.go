// Package config provides configuration management for the sqlsample CLI.
package config

import "github.com/leapstack-labs/sqlsample/pkg/adapter"

// DatabaseConfig describes the database previews run against.
type DatabaseConfig struct {
	Type     string            `koanf:"type"`
	Path     string            `koanf:"path"`
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	Database string            `koanf:"database"`
	Username string            `koanf:"username"`
	Password string            `koanf:"password"`
	Options  map[string]string `koanf:"options"`
}

// Config holds all CLI configuration options.
type Config struct {
	Dialect      string          `koanf:"dialect"`
	StatePath    string          `koanf:"state_path"`
	Verbose      bool            `koanf:"verbose"`
	OutputFormat string          `koanf:"output"`
	Database     *DatabaseConfig `koanf:"database"`
}

// Default configuration values
const (
	DefaultDialect   = "ansi"
	DefaultStateFile = ".sqlsample/state.db"
	DefaultOutput    = "table"
	DefaultDBType    = "duckdb"
)

// AdapterConfig converts the database section into an adapter config.
func (c *Config) AdapterConfig() adapter.Config {
	db := c.Database
	if db == nil {
		db = &DatabaseConfig{Type: DefaultDBType}
	}
	dbType := db.Type
	if dbType == "" {
		dbType = DefaultDBType
	}
	return adapter.Config{
		Type:     dbType,
		Path:     db.Path,
		Host:     db.Host,
		Port:     db.Port,
		Database: db.Database,
		Username: db.Username,
		Password: db.Password,
		Options:  db.Options,
	}
}
