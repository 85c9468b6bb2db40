package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings recetas reads at startup.
type Config struct {
	Theme         string
	LogFile       string
	Placeholder   string
	ShowEmptyHint bool
}

const (
	defaultConfigPath  = "~/.config/recetas/config.toml"
	defaultPlaceholder = "Buscar receta..."
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Placeholder: defaultPlaceholder, ShowEmptyHint: true}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	resolved, err := ExpandPath(path)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config path: %w", err)
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Theme         string `toml:"theme"`
		LogFile       string `toml:"log_file"`
		Placeholder   string `toml:"placeholder"`
		ShowEmptyHint *bool  `toml:"show_empty_hint"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Theme = strings.TrimSpace(raw.Theme)

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = logFile
		if expanded, err := ExpandPath(logFile); err == nil {
			cfg.LogFile = expanded
		}
	}

	if placeholder := strings.TrimSpace(raw.Placeholder); placeholder != "" {
		cfg.Placeholder = placeholder
	}

	if raw.ShowEmptyHint != nil {
		cfg.ShowEmptyHint = *raw.ShowEmptyHint
	}

	return cfg, nil
}

// ExpandPath resolves a leading "~" to the home directory and returns the
// absolute path. "~user" forms are left alone.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	switch {
	case path == "":
		return "", errors.New("path is empty")
	case path == "~" || strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}
