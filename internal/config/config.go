package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"kbase/internal/domain"
)

// ErrInvalidConfig is returned when a config file parses but holds bad values
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	CatalogPath string     `toml:"catalog_path,omitempty"` // empty means the embedded catalog
	LogLevel    string     `toml:"log_level"`
	LogFile     string     `toml:"log_file,omitempty"`
	UI          UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultCategory    string `toml:"default_category"`
	MaxColumns         int    `toml:"max_columns"`
	ShowContentPreview bool   `toml:"show_content_preview"`
	AltScreen          bool   `toml:"alt_screen"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		LogLevel: "info",
		UI: UISettings{
			DefaultCategory:    string(domain.CategoryAll),
			MaxColumns:         3,
			ShowContentPreview: false,
			AltScreen:          true,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/kbase/config.toml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "kbase", "config.toml")
}

// DefaultLogPath returns $XDG_STATE_HOME/kbase/kbase.log
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "kbase", "kbase.log")
}

// LogPath returns the configured log file or the default location
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return DefaultLogPath()
}

// SlogLevel maps LogLevel onto slog levels, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// StartCategory returns the category selected when a session starts
func (c *Config) StartCategory() domain.Category {
	return domain.Category(c.UI.DefaultCategory)
}

// Columns returns the maximum number of card columns, at least one
func (c *Config) Columns() int {
	if c.UI.MaxColumns < 1 {
		return 1
	}
	return c.UI.MaxColumns
}

// Load reads the config at path, writing defaults there first if the file
// does not exist. The returned bool is true when defaults were written.
func Load(path string) (*Config, bool, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, false, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg := DefaultConfig()
		if err := Save(cfg, path); err != nil {
			// Non-fatal: run with defaults
			slog.Warn("could not write default config", "path", path, "err", err)
			return cfg, false, nil
		}
		return cfg, true, nil
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, false, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, false, nil
}

// Parse decodes TOML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating parent directories
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	if !cfg.StartCategory().IsKnown() {
		return fmt.Errorf("%w: ui.default_category %q is not a known category", ErrInvalidConfig, cfg.UI.DefaultCategory)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q (valid: debug, info, warn, error)", ErrInvalidConfig, cfg.LogLevel)
	}
	if cfg.UI.MaxColumns < 0 {
		return fmt.Errorf("%w: ui.max_columns must not be negative", ErrInvalidConfig)
	}
	return nil
}
