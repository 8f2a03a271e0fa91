package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nutridata-labs/foodsql/internal/cli/config"
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

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	cmd.SetContext(context.Background())

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertCommand(t *testing.T) {
	input := writeWorkbook(t,
		[]interface{}{"food_id", "ndb_no", "energy", "serv_weight_7", "last_modified"},
		[]interface{}{"09012", "9012", "150", "3.5", "2024-01-01"},
	)
	output := filepath.Join(t.TempDir(), "food.sql")

	out, _, err := execute(t, "convert", "-i", input, "-o", output, "--table", "tb_food_test")
	require.NoError(t, err)
	assert.Contains(t, out, "1 INSERT statements")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	sql := string(data)

	assert.Contains(t, sql, "CREATE TABLE `tb_food_test`")
	assert.Contains(t, sql, "VALUES ('09012', 9012, 150, 3.5, '2024-01-01');")
}

func TestConvertCommand_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "convert",
		"-i", filepath.Join(dir, "absent.xlsx"),
		"-o", filepath.Join(dir, "out.sql"),
		"--table", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestInspectCommand(t *testing.T) {
	input := writeWorkbook(t,
		[]interface{}{"food_id", "ndb_no", "energy", "serv_weight_7"},
		[]interface{}{"09012", "9012", "150", "3.5"},
	)

	out, _, err := execute(t, "inspect", "-i", input)
	require.NoError(t, err)

	assert.Contains(t, out, "PRIMARY_KEY_TEXT")
	assert.Contains(t, out, "FLOAT")
	assert.Contains(t, out, "(4 columns, 1 data rows)")
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "foodsql "))
}
