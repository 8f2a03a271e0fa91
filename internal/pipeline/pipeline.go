// Package pipeline wires the loader, cleaner, classifier and SQL emitter into
// a single one-shot run: load fully into memory, transform in memory, write
// the script to the output file.
package pipeline

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/nutridata-labs/foodsql/internal/classify"
	"github.com/nutridata-labs/foodsql/internal/clean"
	"github.com/nutridata-labs/foodsql/internal/loader"
	"github.com/nutridata-labs/foodsql/pkg/sqlgen"
	"github.com/nutridata-labs/foodsql/pkg/table"
)

// Options are the inputs of one run. Input, Output and TableName are opaque
// strings supplied by the CLI layer.
type Options struct {
	Input     string
	Output    string
	TableName string
	Sheet     string

	Cleaner    *clean.Cleaner
	Classifier *classify.Classifier
	Logger     *slog.Logger
}

// Result summarizes a completed run (or an Inspect pass).
type Result struct {
	Table    *table.Table
	Schema   *table.Schema
	Warnings []string
	// Rows is the number of INSERT statements written; for Inspect it is the
	// number of data rows loaded.
	Rows int
}

// Inspect loads, cleans and classifies the input without writing any SQL.
func Inspect(opts Options) (*Result, error) {
	opts = withDefaults(opts)

	tbl, err := loader.Load(opts.Input, opts.Sheet)
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("loaded spreadsheet", "input", opts.Input, "rows", tbl.RowCount(), "columns", len(tbl.Columns))

	opts.Cleaner.Run(tbl)

	schema, warnings := opts.Classifier.Run(tbl)
	for _, w := range warnings {
		opts.Logger.Warn(w)
	}

	return &Result{Table: tbl, Schema: schema, Warnings: warnings, Rows: tbl.RowCount()}, nil
}

// Run executes the full pipeline and writes the SQL script to Options.Output.
// The output file is created only after the input has loaded and classified,
// so a fatal load error leaves no partial output behind.
func Run(opts Options) (res *Result, err error) {
	opts = withDefaults(opts)

	res, err = Inspect(opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", opts.Output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", opts.Output, cerr)
			res = nil
		}
	}()

	opts.Logger.Info("generating sql", "output", opts.Output, "table", opts.TableName)

	w := bufio.NewWriter(f)
	if err := sqlgen.Emit(w, res.Table, res.Schema, opts.TableName); err != nil {
		return nil, fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("writing %s: %w", opts.Output, err)
	}

	opts.Logger.Info("sql script written", "output", opts.Output, "inserts", res.Rows)
	return res, nil
}

func withDefaults(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Cleaner == nil {
		opts.Cleaner = clean.Default()
	}
	if opts.Classifier == nil {
		opts.Classifier = classify.Default()
	}
	if opts.Classifier.Logger == nil {
		opts.Classifier.Logger = opts.Logger
	}
	if opts.TableName == "" {
		opts.TableName = "tb_food_mst_dosm_origin"
	}
	return opts
}
