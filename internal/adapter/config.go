package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Screen names accepted by ui.default_screen
const (
	ScreenTodos = "todos"
	ScreenUsers = "users"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	UI      UIConfig      `mapstructure:"ui"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds backend configuration
type ServerConfig struct {
	URL     string        `mapstructure:"url"`     // Base API URL, e.g. http://localhost:3900/api
	Token   string        `mapstructure:"token"`   // Sent as x-auth-token
	Timeout time.Duration `mapstructure:"timeout"` // Per-request HTTP timeout
}

// UIConfig holds table configuration
type UIConfig struct {
	PageSize      int    `mapstructure:"page_size"`
	DefaultScreen string `mapstructure:"default_screen"` // "todos" or "users"
	TodoSort      string `mapstructure:"todo_sort"`      // "field:order"
	UserSort      string `mapstructure:"user_sort"`      // "field:order"
}

// CacheConfig holds collection cache configuration
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"` // Empty keeps the cache in memory only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "",
			Token:   "",
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			PageSize:      6,
			DefaultScreen: ScreenTodos,
			TodoSort:      "title:asc",
			UserSort:      "name:asc",
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCachePath(),
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "todoadmin", "todoadmin.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "todoadmin", "todoadmin.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "todoadmin")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "todoadmin")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "todoadmin", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "todoadmin", "cache")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper(), defaultConfigPath(), ".")
}

// LoadConfigFrom loads configuration into v from the given search paths.
// Environment variables prefixed TODOADMIN_ override file values
// (TODOADMIN_SERVER_URL, TODOADMIN_UI_PAGE_SIZE, ...).
func LoadConfigFrom(v *viper.Viper, paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Environment variable overrides
	v.SetEnvPrefix("TODOADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.UI.PageSize <= 0 {
		cfg.UI.PageSize = DefaultConfig().UI.PageSize
	}

	return cfg, nil
}

// bindEnvKeys registers every config key so AutomaticEnv applies to Unmarshal
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"server.url", "server.token", "server.timeout",
		"ui.page_size", "ui.default_screen", "ui.todo_sort", "ui.user_sort",
		"cache.enabled", "cache.dir",
		"logging.file", "logging.level",
	} {
		_ = v.BindEnv(key)
	}
}

// SaveConfig saves the configuration to the default config file
func SaveConfig(cfg *Config) error {
	return SaveConfigTo(viper.GetViper(), defaultConfigPath(), cfg)
}

// SaveConfigTo writes cfg as config.yaml inside dir
func SaveConfigTo(v *viper.Viper, dir string, cfg *Config) error {
	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("server.url", cfg.Server.URL)
	v.Set("server.token", cfg.Server.Token)
	v.Set("server.timeout", cfg.Server.Timeout.String())

	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.default_screen", cfg.UI.DefaultScreen)
	v.Set("ui.todo_sort", cfg.UI.TodoSort)
	v.Set("ui.user_sort", cfg.UI.UserSort)

	v.Set("cache.enabled", cfg.Cache.Enabled)
	v.Set("cache.dir", cfg.Cache.Dir)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the backend URL is set
func (c *Config) IsConfigured() bool {
	return c.Server.URL != ""
}

// CacheDir returns the directory for the persistent cache, or "" for memory-only
func (c *Config) CacheDir() string {
	if !c.Cache.Enabled {
		return ""
	}
	return c.Cache.Dir
}

// ClearCache removes all cached data
func ClearCache(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
