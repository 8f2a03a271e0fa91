package table

import "fmt"

// Kind is the storage kind assigned to a column.
type Kind int

const (
	// Text is the default kind: a bounded-length string.
	Text Kind = iota
	// Integer columns hold whole-number measurements.
	Integer
	// Float columns hold decimal measurements.
	Float
	// DateTime columns hold timestamps.
	DateTime
	// PrimaryKeyText is a text column carrying the table's primary key.
	PrimaryKeyText
)

// Numeric reports whether values of this kind are emitted unquoted.
func (k Kind) Numeric() bool {
	return k == Integer || k == Float
}

// String returns the kind name for logs and schema listings.
func (k Kind) String() string {
	switch k {
	case Text:
		return "TEXT"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case DateTime:
		return "DATETIME"
	case PrimaryKeyText:
		return "PRIMARY_KEY_TEXT"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Schema maps each column of a Table, in order, to its storage kind.
type Schema struct {
	kinds map[string]Kind
}

// NewSchema returns a schema with no assignments; unassigned columns are Text.
func NewSchema() *Schema {
	return &Schema{kinds: make(map[string]Kind)}
}

// Set assigns a kind to a column.
func (s *Schema) Set(column string, k Kind) {
	s.kinds[column] = k
}

// Kind returns the kind assigned to a column, defaulting to Text.
func (s *Schema) Kind(column string) Kind {
	if k, ok := s.kinds[column]; ok {
		return k
	}
	return Text
}

// PrimaryKey returns the name of the primary-key column in tbl order, or "".
func (s *Schema) PrimaryKey(tbl *Table) string {
	for _, c := range tbl.Columns {
		if s.Kind(c) == PrimaryKeyText {
			return c
		}
	}
	return ""
}
