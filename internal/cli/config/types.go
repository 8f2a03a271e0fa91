// Package config provides configuration management for the foodsql CLI.
//
// Configuration is layered with koanf: built-in defaults, then an optional
// foodsql.yaml project file, then FOODSQL_* environment variables, then
// explicitly set CLI flags.
package config

import (
	"fmt"
	"strings"

	"github.com/nutridata-labs/foodsql/internal/classify"
	"github.com/nutridata-labs/foodsql/internal/clean"
	"github.com/nutridata-labs/foodsql/pkg/table"
)

// Anchors names the columns delimiting the measurement block, inclusive.
type Anchors struct {
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

// Config holds all CLI configuration options.
type Config struct {
	Input     string `koanf:"input"`
	Output    string `koanf:"output"`
	TableName string `koanf:"table_name"`
	Sheet     string `koanf:"sheet"`

	PrimaryKey        string            `koanf:"primary_key"`
	TypeOverrides     map[string]string `koanf:"type_overrides"`
	Anchors           Anchors           `koanf:"anchors"`
	ForcedTextColumns []string          `koanf:"forced_text_columns"`
	ZeroAsMissing     bool              `koanf:"zero_as_missing"`
	KeepZeroColumns   []string          `koanf:"keep_zero_columns"`

	Verbose   bool   `koanf:"verbose"`
	LogFormat string `koanf:"log_format"`
}

// Default configuration values. Input/output/table defaults mirror the food
// master data drop this tool was built around.
const (
	DefaultInput     = "latest_food_database_sept_25.xlsx"
	DefaultOutput    = "food_data_2025_fixed.sql"
	DefaultTableName = "tb_food_mst_dosm_origin"
	DefaultLogFormat = "text"
)

// Cleaner builds the cleaning pass described by the config.
func (c *Config) Cleaner() *clean.Cleaner {
	return &clean.Cleaner{
		ZeroAsMissing: c.ZeroAsMissing,
		KeepZero:      c.KeepZeroColumns,
	}
}

// Classifier builds the classification pass described by the config.
func (c *Config) Classifier() (*classify.Classifier, error) {
	overrides := make(map[string]table.Kind, len(c.TypeOverrides))
	for col, name := range c.TypeOverrides {
		k, err := parseKind(name)
		if err != nil {
			return nil, fmt.Errorf("type_overrides[%s]: %w", col, err)
		}
		overrides[col] = k
	}
	return &classify.Classifier{
		PrimaryKey: c.PrimaryKey,
		Overrides:  overrides,
		RangeStart: c.Anchors.Start,
		RangeEnd:   c.Anchors.End,
		ForcedText: c.ForcedTextColumns,
	}, nil
}

// parseKind maps a config type name to a storage kind.
func parseKind(name string) (table.Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TEXT", "VARCHAR":
		return table.Text, nil
	case "INTEGER", "INT":
		return table.Integer, nil
	case "FLOAT", "DOUBLE":
		return table.Float, nil
	case "DATETIME":
		return table.DateTime, nil
	default:
		return table.Text, fmt.Errorf("unknown column type %q", name)
	}
}
