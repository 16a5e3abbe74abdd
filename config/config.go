package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bulga138/led/toml"
)

// Config holds the editor's startup settings. Values come from the config
// file when it exists; command-line flags override them afterwards.
type Config struct {
	BufferLength int  // initial line-buffer allocation hint
	LineWidth    int  // advisory input-record size, never a hard limit
	Prompt       bool // print the command prompt on interactive input
	EnableLogger bool // append diagnostics to led.log
}

func DefaultConfig() Config {
	return Config{
		BufferLength: 100,
		LineWidth:    80,
		Prompt:       true,
		EnableLogger: false,
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate config dir: %w", err)
	}
	return filepath.Join(dir, "led", "config.toml"), nil
}

// LoadConfig reads the config file from its default location. A missing or
// unreadable file silently yields the defaults; the editor must start
// regardless.
func LoadConfig() Config {
	path, err := Path()
	if err != nil {
		return DefaultConfig()
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads a config file at an explicit path.
func LoadConfigFrom(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	parsed, err := toml.ParseNative(string(data))
	if err != nil {
		return cfg
	}
	section, ok := parsed["editor"].(map[string]any)
	if !ok {
		return cfg
	}

	if v, ok := section["buffer_length"].(int); ok && v > 0 {
		cfg.BufferLength = v
	}
	if v, ok := section["line_width"].(int); ok && v > 0 {
		cfg.LineWidth = v
	}
	if v, ok := section["prompt"].(bool); ok {
		cfg.Prompt = v
	}
	if v, ok := section["enable_logger"].(bool); ok {
		cfg.EnableLogger = v
	}
	return cfg
}

// SaveConfig writes cfg to the default location, creating the directory if
// needed. Used by the -init-config flag.
func SaveConfig(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveConfigTo(cfg, path)
}

// SaveConfigTo writes cfg as TOML to an explicit path.
func SaveConfigTo(cfg Config, path string) error {
	data, err := toml.Encode(map[string]any{
		"editor": map[string]any{
			"buffer_length": cfg.BufferLength,
			"line_width":    cfg.LineWidth,
			"prompt":        cfg.Prompt,
			"enable_logger": cfg.EnableLogger,
		},
	})
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
