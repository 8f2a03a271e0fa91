// Package commands contains the foodsql subcommands.
package commands

import "github.com/nutridata-labs/foodsql/internal/cli/config"

// getConfig returns the configuration loaded by the root command.
func getConfig() *config.Config {
	return config.GetCurrentConfig()
}
