package pipeline

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nutridata-labs/foodsql/internal/loader"
)

func writeWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}

	path := filepath.Join(t.TempDir(), "food.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_EndToEnd(t *testing.T) {
	input := writeWorkbook(t,
		[]interface{}{"food_id", "ndb_no", "energy", "protein", "serv_weight_7", "last_modified"},
		[]interface{}{"09012", "9012", "150", "", "3.5;", "2024-01-01"},
		[]interface{}{"09013", "NULL", "0", "n/a", "12", "2024-02-01"},
	)
	output := filepath.Join(t.TempDir(), "food.sql")

	res, err := Run(Options{
		Input:     input,
		Output:    output,
		TableName: "tb_food_mst",
		Logger:    quietLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.Empty(t, res.Warnings)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	sql := string(data)

	// The forced-text primary key keeps its leading zero; the empty protein
	// cell becomes NULL; the semicolon-suffixed weight coerces to 3.5.
	assert.Contains(t, sql,
		"VALUES ('09012', 9012, 150, NULL, 3.5, '2024-01-01');")

	// "0" and "NULL" placeholders and the failed coercion all emit NULL.
	assert.Contains(t, sql,
		"VALUES ('09013', NULL, NULL, NULL, 12, '2024-02-01');")

	assert.True(t, strings.HasPrefix(sql, "DROP TABLE IF EXISTS `tb_food_mst`;"))
	assert.Equal(t, 1, strings.Count(sql, "START TRANSACTION;"))
	assert.True(t, strings.HasSuffix(sql, "COMMIT;\n"))
	assert.Equal(t, res.Rows, strings.Count(sql, "INSERT INTO "))
}

func TestRun_Deterministic(t *testing.T) {
	input := writeWorkbook(t,
		[]interface{}{"food_id", "energy", "serv_weight_7"},
		[]interface{}{"09012", "150", "3.5"},
	)
	dir := t.TempDir()

	read := func(name string) string {
		out := filepath.Join(dir, name)
		_, err := Run(Options{Input: input, Output: out, TableName: "t", Logger: quietLogger()})
		require.NoError(t, err)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, read("first.sql"), read("second.sql"))
}

func TestRun_MissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.sql")

	_, err := Run(Options{
		Input:     filepath.Join(dir, "absent.xlsx"),
		Output:    output,
		TableName: "t",
		Logger:    quietLogger(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrSourceNotFound)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_AnchorFallback(t *testing.T) {
	// No "energy" column: the run still completes, with a warning and an
	// all-text schema for non-overridden columns.
	input := writeWorkbook(t,
		[]interface{}{"food_id", "ndb_no", "protein", "last_modified"},
		[]interface{}{"09012", "9012", "23.4", "2024-01-01"},
	)
	output := filepath.Join(t.TempDir(), "out.sql")

	res, err := Run(Options{Input: input, Output: output, TableName: "t", Logger: quietLogger()})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	sql := string(data)

	assert.Contains(t, sql, "`protein` VARCHAR(255) NULL")
	assert.Contains(t, sql, "'23.4'")
}

func TestInspect_WritesNoFile(t *testing.T) {
	input := writeWorkbook(t,
		[]interface{}{"food_id", "energy", "serv_weight_7"},
		[]interface{}{"09012", "150", "3.5"},
	)

	res, err := Inspect(Options{Input: input, Logger: quietLogger()})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rows)
	require.NotNil(t, res.Schema)
	assert.Equal(t, "food_id", res.Schema.PrimaryKey(res.Table))
}

func TestRun_RowCountMatchesInserts(t *testing.T) {
	rows := [][]interface{}{
		{"food_id", "energy", "serv_weight_7"},
	}
	for i := 0; i < 25; i++ {
		rows = append(rows, []interface{}{string(rune('a' + i)), "1", "2"})
	}
	input := writeWorkbook(t, rows...)
	output := filepath.Join(t.TempDir(), "out.sql")

	res, err := Run(Options{Input: input, Output: output, TableName: "t", Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, 25, res.Rows)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, 25, strings.Count(string(data), "INSERT INTO "))
}
