// Package commands implements the sqlsample CLI subcommands.
package commands

import (
	"context"

	"github.com/leapstack-labs/sqlsample/internal/cli/config"
	"github.com/spf13/cobra"
)

// configKey is used to store config in context.
type configKey struct{}

// WithConfig stores the loaded config in a context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom retrieves the config placed in the command context by the
// root command. Falls back to an empty config so commands stay usable
// in tests that bypass the root.
func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}
