// Package table defines the in-memory tabular model shared by the loader,
// the cleaning/classification passes, and the SQL emitter.
package table

// Value is a single cell. A missing value is a distinct sentinel, not any
// particular string: once a cell is marked missing its raw text is gone.
type Value struct {
	raw     string
	missing bool
}

// NewValue returns a present cell holding raw text.
func NewValue(raw string) Value {
	return Value{raw: raw}
}

// Missing returns the missing-value sentinel.
func Missing() Value {
	return Value{missing: true}
}

// Null reports whether the cell holds no value.
func (v Value) Null() bool {
	return v.missing
}

// String returns the raw cell text. Empty for missing cells.
func (v Value) String() string {
	if v.missing {
		return ""
	}
	return v.raw
}

// Table is an ordered set of named columns plus data rows. Every row has
// exactly one Value per column; the column set is fixed before any row is
// appended.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// New creates an empty table over the given columns.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds a data row. Short rows are padded with missing values and long
// rows are truncated so the row always covers every column.
func (t *Table) Append(row []Value) {
	if len(row) > len(t.Columns) {
		row = row[:len(t.Columns)]
	}
	for len(row) < len(t.Columns) {
		row = append(row, Missing())
	}
	t.Rows = append(t.Rows, row)
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}
