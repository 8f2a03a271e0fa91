// Package classify assigns a storage kind to every column of a cleaned table
// and coerces numeric columns cell by cell.
package classify

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nutridata-labs/foodsql/pkg/table"
)

// Classifier holds the naming heuristics used to assign storage kinds.
//
// Precedence, highest first: explicit overrides (primary key, Overrides map),
// the anchor-delimited measurement range, then Text. Columns on the ForcedText
// list are never swept into the measurement range; this runs before any
// numeric inference so identifier-like values (leading zeros, mixed codes)
// cannot be corrupted.
type Classifier struct {
	// PrimaryKey names the column classified PrimaryKeyText.
	PrimaryKey string
	// Overrides maps column names to explicit kinds.
	Overrides map[string]table.Kind
	// RangeStart and RangeEnd name the anchor columns delimiting the
	// contiguous block of measurement columns, inclusive on both ends.
	RangeStart string
	RangeEnd   string
	// ForcedText lists columns excluded from the measurement range.
	ForcedText []string

	Logger *slog.Logger
}

// Default returns a Classifier tuned for the food master spreadsheet layout.
func Default() *Classifier {
	return &Classifier{
		PrimaryKey: "food_id",
		Overrides: map[string]table.Kind{
			"ndb_no":        table.Integer,
			"last_modified": table.DateTime,
		},
		RangeStart: "energy",
		RangeEnd:   "serv_weight_7",
		ForcedText: []string{"food_id", "ndb_no", "item code"},
	}
}

// Run assigns a kind to every column of tbl and coerces all Integer/Float
// cells in place. It never fails: a missing anchor degrades to an all-text
// schema and is returned as a warning, and per-cell coercion failures become
// missing values.
func (c *Classifier) Run(tbl *table.Table) (*table.Schema, []string) {
	schema := table.NewSchema()
	var warnings []string

	start, end := tbl.Index(c.RangeStart), tbl.Index(c.RangeEnd)
	switch {
	case start < 0 || end < 0:
		warnings = append(warnings, fmt.Sprintf(
			"measurement anchors %q..%q not found in header; defaulting all columns to VARCHAR", c.RangeStart, c.RangeEnd))
	case end < start:
		warnings = append(warnings, fmt.Sprintf(
			"measurement anchor %q appears before %q; defaulting all columns to VARCHAR", c.RangeEnd, c.RangeStart))
	default:
		forced := make(map[string]bool, len(c.ForcedText))
		for _, col := range c.ForcedText {
			forced[col] = true
		}
		for i := start; i <= end; i++ {
			if !forced[tbl.Columns[i]] {
				schema.Set(tbl.Columns[i], table.Float)
			}
		}
	}

	// Explicit overrides win over the range heuristic.
	for col, k := range c.Overrides {
		if tbl.Index(col) >= 0 {
			schema.Set(col, k)
		}
	}
	if tbl.Index(c.PrimaryKey) >= 0 {
		schema.Set(c.PrimaryKey, table.PrimaryKeyText)
	}

	c.coerce(tbl, schema)
	return schema, warnings
}

// coerce rewrites every cell of a numeric column to a canonical numeric token.
// Failures become the missing-value marker, never an error.
func (c *Classifier) coerce(tbl *table.Table, schema *table.Schema) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for i, col := range tbl.Columns {
		if !schema.Kind(col).Numeric() {
			continue
		}
		for r, row := range tbl.Rows {
			if row[i].Null() {
				continue
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(row[i].String()), 64)
			if err != nil {
				logger.Debug("cell failed numeric coercion, emitting NULL",
					"column", col, "row", r+1, "value", row[i].String())
				row[i] = table.Missing()
				continue
			}
			row[i] = table.NewValue(strconv.FormatFloat(f, 'f', -1, 64))
		}
	}
}
