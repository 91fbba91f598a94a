// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avelorn/chronline/internal/analytics"
	"github.com/avelorn/chronline/internal/domain"
)

// CategoryRule is a user-supplied categorization rule. Custom rules are
// evaluated before the built-in table, so they can shadow it.
type CategoryRule struct {
	Pattern string `yaml:"pattern"`
	Label   string `yaml:"label"`
}

// Config holds all runtime settings.
type Config struct {
	Addr          string         `yaml:"addr"`
	DBPath        string         `yaml:"db_path"` // empty = in-memory
	LogLevel      string         `yaml:"log_level"`
	LogFormat     string         `yaml:"log_format"`
	Notifications bool           `yaml:"notifications"`
	Categories    []CategoryRule `yaml:"categories"`
}

// DefaultConfig returns sensible defaults: local API port, in-memory store,
// human-readable logs, notifications off.
func DefaultConfig() *Config {
	return &Config{
		Addr:      ":8080",
		DBPath:    "",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds the effective configuration: defaults, then the config file,
// then environment overrides. An empty path falls back to $CHRONLINE_CONFIG
// and then to ~/.config/chronline/config.yaml; only the last may be missing
// without error, since the first two were asked for explicitly.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := true
	if path == "" {
		path = os.Getenv("CHRONLINE_CONFIG")
	}
	if path == "" {
		path = defaultPath()
		explicit = false
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chronline", "config.yaml")
}

// loadFromFile reads a YAML config file and merges it into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Addr = domain.CoalesceStr(os.Getenv("CHRONLINE_ADDR"), cfg.Addr)
	cfg.DBPath = domain.CoalesceStr(os.Getenv("CHRONLINE_DB"), cfg.DBPath)
	cfg.LogLevel = domain.CoalesceStr(os.Getenv("CHRONLINE_LOG_LEVEL"), cfg.LogLevel)
	cfg.LogFormat = domain.CoalesceStr(os.Getenv("CHRONLINE_LOG_FORMAT"), cfg.LogFormat)
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format: must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	for i, rule := range c.Categories {
		if rule.Pattern == "" {
			return fmt.Errorf("categories[%d].pattern: must not be empty", i)
		}
		if rule.Label == "" {
			return fmt.Errorf("categories[%d].label: must not be empty", i)
		}
	}
	return nil
}

// ApplyFlags overlays non-empty command line overrides and revalidates.
func (c *Config) ApplyFlags(dbPath, logLevel string) error {
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	return c.validate()
}

// DatabasePath maps the configured path onto what the store expects.
func (c *Config) DatabasePath() string {
	if c.DBPath == "" {
		return ":memory:"
	}
	return c.DBPath
}

// Rules returns the effective categorization table: custom rules first, then
// the built-ins. Patterns are lowercased to match how app names are compared.
func (c *Config) Rules() []analytics.CategoryRule {
	rules := make([]analytics.CategoryRule, 0, len(c.Categories))
	for _, r := range c.Categories {
		rules = append(rules, analytics.CategoryRule{Pattern: strings.ToLower(r.Pattern), Label: r.Label})
	}
	return append(rules, analytics.DefaultRules()...)
}
