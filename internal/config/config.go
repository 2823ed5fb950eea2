package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level expense-manager.yaml configuration.
type Config struct {
	DataFile      string       `yaml:"data_file"`
	DefaultSource string       `yaml:"default_source"`
	Export        ExportConfig `yaml:"export"`
	AuditLog      string       `yaml:"audit_log,omitempty"`
}

// ExportConfig controls where and how transaction exports are written.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // "csv" or "xlsx"
}

// Load reads an expense-manager.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default() *Config {
	return &Config{
		DataFile:      "expense-manager.db",
		DefaultSource: "leumi",
		Export: ExportConfig{
			Dir:    "exports",
			Format: "csv",
		},
		AuditLog: "audit-log.csv",
	}
}
