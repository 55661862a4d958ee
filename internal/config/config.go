package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AppName is the application name used for the config directory.
const AppName = "gridtable"

// Config holds CLI configuration.
type Config struct {
	OutputFormat     string   `yaml:"output_format,omitempty" json:"output_format,omitempty"` // text, json, yaml, table
	RowSeparation    *float32 `yaml:"row_separation,omitempty" json:"row_separation,omitempty"`
	ColumnSeparation *float32 `yaml:"column_separation,omitempty" json:"column_separation,omitempty"`
	Debug            bool     `yaml:"debug,omitempty" json:"debug,omitempty"`
	FontPath         string   `yaml:"font_path,omitempty" json:"font_path,omitempty"`
	FontSize         float64  `yaml:"font_size,omitempty" json:"font_size,omitempty"`
	Background       string   `yaml:"background,omitempty" json:"background,omitempty"`
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads config from the given path. A missing file yields an empty config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save saves config to the given path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Keys returns the settable configuration keys, sorted.
func Keys() []string {
	keys := []string{
		"output_format",
		"row_separation",
		"column_separation",
		"debug",
		"font_path",
		"font_size",
		"background",
	}
	slices.Sort(keys)
	return keys
}

// Set assigns value to key, parsing numbers and booleans.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output_format":
		c.OutputFormat = value
	case "row_separation", "column_separation":
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		v := float32(f)
		if key == "row_separation" {
			c.RowSeparation = &v
		} else {
			c.ColumnSeparation = &v
		}
	case "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Debug = b
	case "font_path":
		c.FontPath = value
	case "font_size":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.FontSize = f
	case "background":
		c.Background = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Unset clears key.
func (c *Config) Unset(key string) error {
	switch key {
	case "output_format":
		c.OutputFormat = ""
	case "row_separation":
		c.RowSeparation = nil
	case "column_separation":
		c.ColumnSeparation = nil
	case "debug":
		c.Debug = false
	case "font_path":
		c.FontPath = ""
	case "font_size":
		c.FontSize = 0
	case "background":
		c.Background = ""
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
