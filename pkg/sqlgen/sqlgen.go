// Package sqlgen emits a MySQL script (DROP/CREATE/INSERT) for a classified
// table. Output is deterministic for identical input and column order.
package sqlgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/nutridata-labs/foodsql/pkg/table"
)

// Column type rendering per storage kind.
const (
	typeText       = "VARCHAR(255)"
	typePrimaryKey = "VARCHAR(50)"
	typeInteger    = "INT"
	typeFloat      = "DOUBLE"
	typeDateTime   = "DATETIME"
)

var stringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

// Emit writes the full SQL script for tbl to w: a DROP TABLE IF EXISTS, the
// CREATE TABLE with one definition per column in original order, then all rows
// as single-row INSERTs inside one transaction.
func Emit(w io.Writer, tbl *table.Table, schema *table.Schema, tableName string) error {
	p := &printer{w: w}

	p.printf("DROP TABLE IF EXISTS %s;\n\n", quoteIdent(tableName))
	p.write(createTable(tbl, schema, tableName))
	p.write("START TRANSACTION;\n")

	prefix := insertPrefix(tbl, tableName)
	for _, row := range tbl.Rows {
		p.write(prefix)
		for i, col := range tbl.Columns {
			if i > 0 {
				p.write(", ")
			}
			p.write(Literal(row[i], schema.Kind(col)))
		}
		p.write(");\n")
	}

	p.write("COMMIT;\n")
	return p.err
}

// Literal renders one cell per its column's storage kind: NULL for missing
// cells, an unquoted token for numeric kinds, a single-quoted escaped string
// for everything else.
func Literal(v table.Value, k table.Kind) string {
	if v.Null() {
		return "NULL"
	}
	if k.Numeric() {
		return strings.TrimSpace(v.String())
	}
	return "'" + stringEscaper.Replace(v.String()) + "'"
}

// ColumnType returns the SQL type for a storage kind.
func ColumnType(k table.Kind) string {
	switch k {
	case table.Integer:
		return typeInteger
	case table.Float:
		return typeFloat
	case table.DateTime:
		return typeDateTime
	case table.PrimaryKeyText:
		return typePrimaryKey
	default:
		return typeText
	}
}

func createTable(tbl *table.Table, schema *table.Schema, tableName string) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE " + quoteIdent(tableName) + " (\n")

	defs := make([]string, 0, len(tbl.Columns)+1)
	for _, col := range tbl.Columns {
		k := schema.Kind(col)
		nullability := "NULL"
		if k == table.PrimaryKeyText {
			nullability = "NOT NULL"
		}
		defs = append(defs, fmt.Sprintf("  %s %s %s", quoteIdent(col), ColumnType(k), nullability))
	}
	if pk := schema.PrimaryKey(tbl); pk != "" {
		defs = append(defs, fmt.Sprintf("  PRIMARY KEY (%s)", quoteIdent(pk)))
	}

	b.WriteString(strings.Join(defs, ",\n"))
	b.WriteString("\n) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;\n\n")
	return b.String()
}

func insertPrefix(tbl *table.Table, tableName string) string {
	quoted := make([]string, len(tbl.Columns))
	for i, col := range tbl.Columns {
		quoted[i] = quoteIdent(col)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (", quoteIdent(tableName), strings.Join(quoted, ", "))
}

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// printer wraps an io.Writer and remembers the first write error so the emit
// loop stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) printf(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}
