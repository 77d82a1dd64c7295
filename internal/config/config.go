package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/salesdesk/internal/form"
)

// Config holds salesdesk configuration stored at ~/.salesdesk/config.
type Config struct {
	DBPath     string `yaml:"db_path"`
	DateLayout string `yaml:"date_layout"`
	Decimals   *int   `yaml:"decimals,omitempty"`
	LogFile    string `yaml:"log_file"`
	LogLevel   string `yaml:"log_level"`
	VimKeys    bool   `yaml:"vim_keys"`
}

// Dir returns the salesdesk home directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".salesdesk")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	decimals := 2
	return &Config{
		DBPath:     filepath.Join(Dir(), "salesdesk.db"),
		DateLayout: form.DefaultFormat().DateLayout,
		Decimals:   &decimals,
		LogFile:    filepath.Join(Dir(), "salesdesk.log"),
		LogLevel:   "info",
	}
}

// Load reads and parses the config file. Returns error if missing, insecure
// or invalid. Unset fields take their default values.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault returns the saved config, or the default when none exists.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return nil, err
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.DateLayout == "" {
		c.DateLayout = def.DateLayout
	}
	if c.Decimals == nil {
		c.Decimals = def.Decimals
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

var layoutProbe = time.Date(2001, time.February, 3, 0, 0, 0, 0, time.UTC)

// Validate checks the values that feed the form formatter.
func (c *Config) Validate() error {
	if c.Decimals != nil && (*c.Decimals < 0 || *c.Decimals > 6) {
		return fmt.Errorf("config decimals must be between 0 and 6, got %d", *c.Decimals)
	}
	if c.DateLayout != "" {
		parsed, err := time.Parse(c.DateLayout, layoutProbe.Format(c.DateLayout))
		if err != nil || !parsed.Equal(layoutProbe) {
			return fmt.Errorf("config date_layout %q does not round-trip a full date", c.DateLayout)
		}
		if err := (form.Format{DateLayout: c.DateLayout}).CheckTypable(); err != nil {
			return fmt.Errorf("config date_layout: %w", err)
		}
	}
	return nil
}

// Format returns the display format the forms use.
func (c *Config) Format() form.Format {
	f := form.DefaultFormat()
	if c.DateLayout != "" {
		f.DateLayout = c.DateLayout
	}
	if c.Decimals != nil {
		f.Decimals = *c.Decimals
	}
	return f
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	return os.Chmod(path, 0600)
}
