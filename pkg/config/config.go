package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPrompt is printed before every command read.
const DefaultPrompt = "edit> "

// HistoryConfig controls the persistent command history.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Size    int    `yaml:"size"` // entries listed by HISTORY without an argument
}

// Config holds user configuration values.
type Config struct {
	Prompt    string        `yaml:"prompt"`
	WrapWidth int           `yaml:"wrap_width"`
	History   HistoryConfig `yaml:"history"`
}

// Default returns a Config with builtin values.
func Default() *Config {
	path := defaultHistoryPath()
	return &Config{
		Prompt:    DefaultPrompt,
		WrapWidth: 80,
		History: HistoryConfig{
			Enabled: path != "",
			Path:    path,
			Size:    10,
		},
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.History.Path = expandHome(cfg.History.Path)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads the file named by LINEEDIT_CONFIG, or
// ~/.lineedit/config.yaml when the variable is unset.
func LoadDefault() (*Config, error) {
	if p := os.Getenv("LINEEDIT_CONFIG"); p != "" {
		return Load(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(home, ".lineedit", "config.yaml"))
}

func (c *Config) validate() error {
	if c.WrapWidth <= 0 {
		return fmt.Errorf("wrap_width must be positive, got %d", c.WrapWidth)
	}
	if c.History.Size <= 0 {
		return fmt.Errorf("history.size must be positive, got %d", c.History.Size)
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path is required when history is enabled")
	}
	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lineedit", "history.db")
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
