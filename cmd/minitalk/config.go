package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Config holds the REPL settings read from a configuration file.
type Config struct {
	// Prompt is printed before each line of input.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// HistoryFile is where line history persists between sessions. Empty
	// disables persistence. A leading ~/ refers to the home directory.
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	// Color is auto, on, or off.
	Color string `toml:"color" yaml:"color"`
	// Normalize converts input to Unicode NFC before lexing.
	Normalize bool `toml:"normalize" yaml:"normalize"`
	// Excerpt prints the offending source line under each diagnostic.
	Excerpt bool `toml:"excerpt" yaml:"excerpt"`
}

// configNames are the file names findConfig looks for, in order of
// preference.
var configNames = []string{"minitalk.toml", "minitalk.yaml", "minitalk.yml"}

func defaultConfig() Config {
	return Config{
		Prompt:      ">>> ",
		HistoryFile: "~/.minitalk_history",
		Color:       "auto",
		Normalize:   true,
	}
}

// findConfig searches start and each of its parents for a configuration
// file.
func findConfig(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve %s: %w", start, err)
	}
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err == nil && !info.IsDir() {
				return path, true, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %s: %w", path, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// loadConfig reads a configuration file over the defaults. The format is
// chosen by the file extension.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undec := meta.Undecoded(); len(undec) != 0 {
			return Config{}, fmt.Errorf("%s: unknown key %s", path, undec[0])
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%s: unsupported config format (want .toml, .yaml, or .yml)", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads the configuration named by path, or the nearest one
// above dir if path is empty, or the defaults if there is none.
func resolveConfig(path, dir string) (Config, error) {
	if path == "" {
		found, ok, err := findConfig(dir)
		if err != nil {
			return Config{}, err
		}
		if !ok {
			return defaultConfig(), nil
		}
		path = found
	}
	return loadConfig(path)
}

func (cfg Config) validate() error {
	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on, or off, not %q", cfg.Color)
	}
	return nil
}

// historyPath expands the history file location.
func (cfg Config) historyPath() (string, error) {
	p := cfg.HistoryFile
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to find home directory for history: %w", err)
		}
		p = filepath.Join(home, rest)
	}
	return p, nil
}
