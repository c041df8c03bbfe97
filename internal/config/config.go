package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds user defaults: a timezone setting, the occurrence budget
// `expand` uses when a rule has neither COUNT nor UNTIL, and named cutoff
// presets for "expand from" style invocations. The timezone is stored
// and listed but not applied to rules; a bare DTSTART/UNTIL literal is
// read as UTC whatever it is set to.
type Config struct {
	Timezone      string            `mapstructure:"timezone" json:"timezone"`
	DefaultCount  int               `mapstructure:"default_count" json:"default_count"`
	OutputDir     string            `mapstructure:"output_dir" json:"output_dir"`
	CutoffPresets map[string]string `mapstructure:"cutoff_presets" json:"cutoff_presets"`
}

var defaultConfig = Config{
	Timezone:     "UTC",
	DefaultCount: 52,
	OutputDir:    ".",
	CutoffPresets: map[string]string{
		"from-now":      "now",
		"from-today":    "today",
		"from-next-week": "+168h",
	},
}

// Load loads configuration from file or creates defaults in memory. It
// reads ~/.config/rrule/config.yaml (or OS-specific dir) with a
// fallback to the current directory.
func Load() (*Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")

	viper.SetDefault("timezone", defaultConfig.Timezone)
	viper.SetDefault("default_count", defaultConfig.DefaultCount)
	viper.SetDefault("output_dir", defaultConfig.OutputDir)
	viper.SetDefault("cutoff_presets", defaultConfig.CutoffPresets)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found: continue with defaults.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Set sets a configuration value and persists it to disk.
func (c *Config) Set(key, value string) error {
	viper.Set(key, value)

	switch key {
	case "timezone":
		c.Timezone = value
	case "default_count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("default_count must be an integer: %w", err)
		}
		c.DefaultCount = n
	case "output_dir":
		c.OutputDir = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return c.Save()
}

// Get returns a configuration value by key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "timezone":
		return c.Timezone, nil
	case "default_count":
		return strconv.Itoa(c.DefaultCount), nil
	case "output_dir":
		return c.OutputDir, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// GetOrDefault returns the value for key, or def if empty/unknown.
func (c *Config) GetOrDefault(key, def string) string {
	v, err := c.Get(key)
	if err != nil || strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// List prints all configuration values to stdout.
func (c *Config) List() error {
	fmt.Printf("timezone: %s\n", c.Timezone)
	fmt.Printf("default_count: %d\n", c.DefaultCount)
	fmt.Printf("output_dir: %s\n", c.OutputDir)
	for name, cutoff := range c.CutoffPresets {
		fmt.Printf("cutoff_presets.%s: %s\n", name, cutoff)
	}
	return nil
}

// Save persists the current in-memory configuration to disk.
func (c *Config) Save() error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return err
	}
	configFile := filepath.Join(configDir, "config.yaml")
	return viper.WriteConfigAs(configFile)
}

// getConfigDir returns the platform-appropriate config directory:
//   - Linux/macOS: $XDG_CONFIG_HOME/rrule or ~/.config/rrule
//   - Windows: %AppData%\rrule
//
// Falls back to ~/.rrule if UserConfigDir is unavailable.
func getConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rrule"), nil
	}

	if base, err := os.UserConfigDir(); err == nil && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "rrule"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rrule"), nil
}

// ConfigDir returns the directory used to store configuration files.
func ConfigDir() (string, error) {
	return getConfigDir()
}

// CutoffPreset resolves a named cutoff preset to its raw expression
// ("now", "today", or a "+<duration>" offset from now). Returns false
// if the name isn't registered.
func (c *Config) CutoffPreset(name string) (string, bool) {
	if c.CutoffPresets == nil {
		return "", false
	}
	v, ok := c.CutoffPresets[name]
	return v, ok
}

// ListCutoffPresets returns all registered cutoff preset names.
func (c *Config) ListCutoffPresets() []string {
	if c.CutoffPresets == nil {
		return []string{}
	}
	names := make([]string, 0, len(c.CutoffPresets))
	for name := range c.CutoffPresets {
		names = append(names, name)
	}
	return names
}

// ValidateTimezone checks the TZ identifier using the system tz database.
func ValidateTimezone(tz string) error {
	if strings.TrimSpace(tz) == "" {
		return fmt.Errorf("timezone cannot be empty")
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return nil
}
