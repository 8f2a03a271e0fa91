package config

import "fmt"

// Validate checks if the configuration is valid. Input file existence is
// checked by the loader at run time, not here, so help output works in any
// directory.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.TableName == "" {
		return fmt.Errorf("table_name is required")
	}
	if c.PrimaryKey == "" {
		return fmt.Errorf("primary_key is required")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	for col, name := range c.TypeOverrides {
		if _, err := parseKind(name); err != nil {
			return fmt.Errorf("type_overrides[%s]: %w", col, err)
		}
	}
	return nil
}
