// Package cli provides the command-line interface for foodsql.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutridata-labs/foodsql/internal/cli/commands"
	"github.com/nutridata-labs/foodsql/internal/cli/config"
	"github.com/nutridata-labs/foodsql/internal/logging"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "foodsql",
		Short: "foodsql - food spreadsheet to MySQL dump converter",
		Long: `foodsql converts a food/nutrition master spreadsheet (.xlsx) into a MySQL
script that recreates the data as a relational table: DROP TABLE, CREATE TABLE
and one INSERT per row.

Column types are inferred from the header: known identifier columns stay text,
the nutrient measurement block (anchored on the "energy" column) becomes
DOUBLE, and everything else defaults to VARCHAR.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logging.Setup(cmd.ErrOrStderr(), cfg.LogFormat, cfg.Verbose)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", configFile)
				}
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Spreadsheet to SQL converter
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./foodsql.yaml)")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Path to the input .xlsx workbook")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Path of the SQL script to write")
	rootCmd.PersistentFlags().String("table", "", "Name of the SQL table to emit")
	rootCmd.PersistentFlags().String("sheet", "", "Worksheet name (default: first sheet)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	rootCmd.SetContext(context.Background())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
