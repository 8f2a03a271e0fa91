package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nutridata-labs/foodsql/internal/pipeline"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert the spreadsheet into a SQL script",
		Long: `Read the input workbook, clean and classify its columns, and write a SQL
script containing DROP TABLE, CREATE TABLE and one INSERT per data row.

The run aborts before any output is written if the input file is missing or
unreadable. Cells that cannot be coerced to their column's numeric type are
emitted as NULL; the row itself is still written.`,
		Example: `  # Convert using foodsql.yaml settings
  foodsql convert

  # Override input and table name
  foodsql convert -i food_database.xlsx --table tb_food_mst -o food.sql`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd)
		},
	}
}

func runConvert(cmd *cobra.Command) error {
	cfg := getConfig()

	classifier, err := cfg.Classifier()
	if err != nil {
		return err
	}

	res, err := pipeline.Run(pipeline.Options{
		Input:      cfg.Input,
		Output:     cfg.Output,
		TableName:  cfg.TableName,
		Sheet:      cfg.Sheet,
		Cleaner:    cfg.Cleaner(),
		Classifier: classifier,
		Logger:     slog.Default(),
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		renderSchema(cmd.OutOrStdout(), res.Table, res.Schema)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "SQL file %q generated successfully with %d INSERT statements.\n",
		cfg.Output, res.Rows)
	return nil
}
