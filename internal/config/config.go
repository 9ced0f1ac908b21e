package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file expected at the data root.
const FileName = "recoup.yaml"

// Config represents the top-level recoup.yaml configuration.
type Config struct {
	DefaultAccount string        `yaml:"default_account"`
	Display        DisplayConfig `yaml:"display"`
	Git            GitConfig     `yaml:"git"`
}

// DisplayConfig controls how amounts are rendered.
type DisplayConfig struct {
	Currency string `yaml:"currency"` // ISO 4217 code, e.g. "USD"
}

// GitConfig controls git snapshotting of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a recoup.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new data directory.
func Default(account, currency string) *Config {
	if currency == "" {
		currency = "USD"
	}
	return &Config{
		DefaultAccount: account,
		Display: DisplayConfig{
			Currency: currency,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Recoup",
			AuthorEmail: "recoup@localhost",
		},
	}
}
