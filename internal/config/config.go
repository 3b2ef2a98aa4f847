package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage backends accepted by the storage key.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ThemeConfig holds TUI color overrides applied on top of a preset.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset" toml:"preset"`
	Primary       string `mapstructure:"primary" toml:"primary,omitempty"`
	Secondary     string `mapstructure:"secondary" toml:"secondary,omitempty"`
	Accent        string `mapstructure:"accent" toml:"accent,omitempty"`
	Muted         string `mapstructure:"muted" toml:"muted,omitempty"`
	Danger        string `mapstructure:"danger" toml:"danger,omitempty"`
	Success       string `mapstructure:"success" toml:"success,omitempty"`
	Background    string `mapstructure:"background" toml:"background,omitempty"`
	MarkdownStyle string `mapstructure:"markdown_style" toml:"markdown_style,omitempty"`
}

// ShellConfig holds shell integration configuration.
type ShellConfig struct {
	CacheTTL    string `mapstructure:"cache_ttl" toml:"cache_ttl"`
	DoneIcon    string `mapstructure:"done_icon" toml:"done_icon"`
	PendingIcon string `mapstructure:"pending_icon" toml:"pending_icon"`
	StreakIcon  string `mapstructure:"streak_icon" toml:"streak_icon"`
	WarningIcon string `mapstructure:"warning_icon" toml:"warning_icon"`
	ShowBackend bool   `mapstructure:"show_backend" toml:"show_backend"`
}

// Config holds the application configuration.
type Config struct {
	Storage  string      `mapstructure:"storage" toml:"storage"`
	DataDir  string      `mapstructure:"data_dir" toml:"data_dir"`
	LogLevel string      `mapstructure:"log_level" toml:"log_level"`
	LogFile  string      `mapstructure:"log_file" toml:"log_file"`
	Editor   string      `mapstructure:"editor" toml:"editor,omitempty"`
	MaxWidth int         `mapstructure:"max_width" toml:"max_width"`
	Theme    ThemeConfig `mapstructure:"theme" toml:"theme"`
	Shell    ShellConfig `mapstructure:"shell" toml:"shell"`
}

// DefaultDataDir returns the default data directory (~/.protocolctl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".protocolctl")
	}
	return filepath.Join(home, ".protocolctl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", BackendJSON)
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("editor", "")
	v.SetDefault("max_width", 100)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.secondary", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.danger", "")
	v.SetDefault("theme.success", "")
	v.SetDefault("theme.background", "")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("shell.cache_ttl", "5m")
	v.SetDefault("shell.done_icon", "✓")
	v.SetDefault("shell.pending_icon", "○")
	v.SetDefault("shell.streak_icon", "🔥")
	v.SetDefault("shell.warning_icon", "⚠")
	v.SetDefault("shell.show_backend", false)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "protocolctl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: PROTOCOLCTL_STORAGE, PROTOCOLCTL_DATA_DIR, etc.
	v.SetEnvPrefix("PROTOCOLCTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	switch c.Storage {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", c.Storage, BackendJSON, BackendSQLite)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("max_width must not be negative, got %d", c.MaxWidth)
	}
	return nil
}
