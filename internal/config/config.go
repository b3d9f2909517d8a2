// Package config loads taskdeck's YAML configuration and environment
// overrides. The config file lives next to the data it describes and is
// written with defaults on first run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	FileName     = "config.yml"
	DatabaseName = "taskdeck.db"

	fileMode = 0o600
	dirMode  = 0o750
)

var ErrInvalid = errors.New("config: invalid")

// Config holds the user-tunable settings. Dir is resolved at load time and
// not serialized.
type Config struct {
	PageSize   int    `yaml:"page_size"`
	DateFormat string `yaml:"date_format"`
	Color      bool   `yaml:"color"`

	dir  string `yaml:"-"`
	file string `yaml:"-"`
}

func Default() Config {
	return Config{
		PageSize:   5,
		DateFormat: "2006-01-02",
		Color:      true,
	}
}

// Dir returns the data directory this config was loaded from.
func (c Config) Dir() string {
	return c.dir
}

// DatabasePath returns the slot database location inside the data directory.
func (c Config) DatabasePath() string {
	return filepath.Join(c.dir, DatabaseName)
}

func (c Config) path() string {
	if c.file != "" {
		return c.file
	}
	return filepath.Join(c.dir, FileName)
}

func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: page_size must be >= 1", ErrInvalid)
	}
	if strings.TrimSpace(c.DateFormat) == "" {
		return fmt.Errorf("%w: date_format is required", ErrInvalid)
	}
	return nil
}

// DefaultDir returns ~/.config/taskdeck.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".config", "taskdeck"), nil
}

// Load reads the config from dir, creating the directory and a default
// config file when none exists yet. Environment overrides are applied last.
func Load(dir string) (Config, error) {
	return load(dir, "")
}

// LoadFile reads the config from an explicit file path instead of the
// conventional <dir>/config.yml; dir still holds the database.
func LoadFile(dir, file string) (Config, error) {
	absFile, err := filepath.Abs(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve path: %w", err)
	}
	return load(dir, absFile)
}

func load(dir, file string) (Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve path: %w", err)
	}
	if err := os.MkdirAll(absDir, dirMode); err != nil {
		return Config{}, fmt.Errorf("config: create data directory: %w", err)
	}

	cfg := Default()
	cfg.dir = absDir
	cfg.file = file

	raw, err := os.ReadFile(cfg.path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", cfg.path(), err)
		}
		cfg.dir = absDir
		cfg.file = file
	case os.IsNotExist(err):
		if err := cfg.Save(); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", FileName, err)
	}

	cfg = fromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config file to its data directory.
func (c Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(c.path(), data, fileMode); err != nil {
		return fmt.Errorf("config: write %s: %w", FileName, err)
	}
	return nil
}

// fromEnv layers TASKDECK_* overrides over the file values.
func fromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvInt("TASKDECK_PAGE_SIZE"); ok && v > 0 {
		cfg.PageSize = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKDECK_DATE_FORMAT")); v != "" {
		cfg.DateFormat = v
	}
	if v, ok := getEnvBool("TASKDECK_COLOR"); ok {
		cfg.Color = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
