// Package prefs persists recetas user preferences.
// Preferences are stored in ~/.config/recetas/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/recetas/internal/config"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/recetas/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used when nothing has been saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// File reads and writes preferences at a fixed path.
type File struct {
	path string
}

// Open returns a File for path, or for the default location when path is blank.
func Open(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve prefs path: %w", err)
	}
	return &File{path: resolved}, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Load reads preferences. Missing or unreadable files yield Defaults.
func (f *File) Load() Prefs {
	p := Defaults()
	if f == nil {
		return p
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults()
	}

	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences, creating parent directories as needed. The file
// is replaced atomically.
func (f *File) Save(p Prefs) error {
	if f == nil {
		return fmt.Errorf("prefs file is nil")
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// ResolveTheme picks the first non-blank theme name: the explicit override,
// then the config file, then saved preferences.
func ResolveTheme(override, configured string, saved Prefs) string {
	for _, name := range []string{override, configured, saved.Theme} {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return defaultTheme
}
