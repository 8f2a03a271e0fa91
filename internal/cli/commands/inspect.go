package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nutridata-labs/foodsql/internal/pipeline"
	tbl "github.com/nutridata-labs/foodsql/pkg/table"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the inferred schema without writing SQL",
		Long: `Load and classify the input workbook, then print the storage kind inferred
for every column. Useful for checking classification before generating the
script, e.g. that identifier columns stayed text and the nutrient block was
anchored correctly.`,
		Example: `  foodsql inspect
  foodsql inspect -i food_database.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd)
		},
	}
}

func runInspect(cmd *cobra.Command) error {
	cfg := getConfig()

	classifier, err := cfg.Classifier()
	if err != nil {
		return err
	}

	res, err := pipeline.Inspect(pipeline.Options{
		Input:      cfg.Input,
		Sheet:      cfg.Sheet,
		Cleaner:    cfg.Cleaner(),
		Classifier: classifier,
		Logger:     slog.Default(),
	})
	if err != nil {
		return err
	}

	renderSchema(cmd.OutOrStdout(), res.Table, res.Schema)
	fmt.Fprintf(cmd.OutOrStdout(), "(%d columns, %d data rows)\n", len(res.Table.Columns), res.Rows)
	return nil
}

// renderSchema prints one row per column with its inferred storage kind.
func renderSchema(w io.Writer, t *tbl.Table, schema *tbl.Schema) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Column", "Kind"})

	for i, col := range t.Columns {
		tw.AppendRow(table.Row{i + 1, col, schema.Kind(col).String()})
	}

	tw.Render()
}
