// Package clean normalizes raw cell values before type classification.
//
// Cleaning is column-agnostic apart from the zero-placeholder policy:
// semicolons are structural delimiters downstream and are removed from every
// cell, and placeholder values are replaced with the missing-value marker.
package clean

import (
	"strings"

	"github.com/nutridata-labs/foodsql/pkg/table"
)

// Cleaner rewrites cell values in place according to its policies.
type Cleaner struct {
	// ZeroAsMissing treats the literal "0" as a missing-value placeholder.
	// The source data uses 0 as its no-measurement convention, which also
	// blanks legitimate zero measurements; columns listed in KeepZero are
	// exempt.
	ZeroAsMissing bool
	// KeepZero lists columns whose "0" cells are preserved even when
	// ZeroAsMissing is on.
	KeepZero []string
}

// Default returns a Cleaner with the source data's placeholder convention.
func Default() *Cleaner {
	return &Cleaner{ZeroAsMissing: true}
}

// Run cleans every cell of tbl in place. Row and column counts are unchanged.
func (c *Cleaner) Run(tbl *table.Table) {
	keepZero := make(map[string]bool, len(c.KeepZero))
	for _, col := range c.KeepZero {
		keepZero[col] = true
	}

	for _, row := range tbl.Rows {
		for i := range row {
			if row[i].Null() {
				continue
			}
			v := strings.ReplaceAll(row[i].String(), ";", "")
			if c.isPlaceholder(v, keepZero[tbl.Columns[i]]) {
				row[i] = table.Missing()
			} else {
				row[i] = table.NewValue(v)
			}
		}
	}
}

func (c *Cleaner) isPlaceholder(v string, keepZero bool) bool {
	switch v {
	case "", "NULL":
		return true
	case "0":
		return c.ZeroAsMissing && !keepZero
	}
	return false
}
