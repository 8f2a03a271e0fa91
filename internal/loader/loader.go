// Package loader reads an .xlsx workbook into the in-memory table model.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nutridata-labs/foodsql/pkg/table"
)

var (
	// ErrSourceNotFound means the input file does not exist.
	ErrSourceNotFound = errors.New("input file not found")
	// ErrUnsupportedFormat means the input is not a readable .xlsx workbook.
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
)

// Load reads the named sheet of an .xlsx workbook into a Table. The first row
// is the header (trimmed, semicolons stripped); all following rows are data.
// An empty sheet name selects the first sheet.
//
// Cells are read raw, without number formatting, so identifier-like values
// such as "09012" keep their leading zeros. Type assignment happens later in
// the classifier, never here.
func Load(path, sheet string) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".xlsx" && ext != ".xlsm" {
		return nil, fmt.Errorf("%w: %s (convert the file to .xlsx and retry)", ErrUnsupportedFormat, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v (convert the file to .xlsx and retry)", ErrUnsupportedFormat, path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	columns, err := cleanHeader(rows[0])
	if err != nil {
		return nil, err
	}

	tbl := table.New(columns)
	for _, raw := range rows[1:] {
		row := make([]table.Value, 0, len(columns))
		for i := range columns {
			if i < len(raw) {
				row = append(row, table.NewValue(raw[i]))
			} else {
				row = append(row, table.Missing())
			}
		}
		tbl.Append(row)
	}
	return tbl, nil
}

// cleanHeader trims each column name and strips embedded semicolons so the
// names are safe as SQL identifiers. Trailing unnamed columns are dropped;
// duplicate names are an error.
func cleanHeader(header []string) ([]string, error) {
	columns := make([]string, 0, len(header))
	for _, h := range header {
		name := strings.TrimSpace(strings.ReplaceAll(h, ";", ""))
		columns = append(columns, name)
	}
	for len(columns) > 0 && columns[len(columns)-1] == "" {
		columns = columns[:len(columns)-1]
	}

	seen := make(map[string]bool, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("header column %d is empty", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		seen[name] = true
	}
	if len(columns) == 0 {
		return nil, errors.New("header row is empty")
	}
	return columns, nil
}
