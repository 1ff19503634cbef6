package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// ThemeKey is the preference key the theme is stored under.
const ThemeKey = "chromastudio-theme"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Theme is the editor colour scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme validates raw as a theme name.
func ParseTheme(raw string) (Theme, error) {
	if err := validatorInstance().Var(raw, "required,theme"); err != nil {
		return "", chromaerrors.NewValidationError(ThemeKey, fmt.Sprintf("unknown theme %q, expected light or dark", raw), err)
	}
	return Theme(raw), nil
}

// Preferences is a small string key-value store persisted as YAML. It is read
// once at startup and written whenever a value changes.
type Preferences struct {
	path   string
	values map[string]string
}

// DefaultPreferencesPath returns ~/.chromastudio/preferences.yaml.
func DefaultPreferencesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chromastudio", "preferences.yaml"), nil
}

// LoadPreferences reads the store at path. A missing file yields an empty
// store.
func LoadPreferences(path string) (*Preferences, error) {
	p := &Preferences{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, chromaerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &p.values); err != nil {
		return nil, chromaerrors.NewParseError(path, extractLine(err), err)
	}
	if p.values == nil {
		p.values = make(map[string]string)
	}
	return p, nil
}

// Path returns the backing file path.
func (p *Preferences) Path() string {
	return p.path
}

// Get returns the value stored under key.
func (p *Preferences) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set stores value under key in memory. Call Save to persist.
func (p *Preferences) Set(key, value string) {
	p.values[key] = value
}

// Theme returns the stored theme. Only an explicit "light" selects the light
// theme; anything else, including a missing key, is dark.
func (p *Preferences) Theme() Theme {
	if v, ok := p.Get(ThemeKey); ok && Theme(v) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// SetTheme validates and persists the theme.
func (p *Preferences) SetTheme(t Theme) error {
	parsed, err := ParseTheme(string(t))
	if err != nil {
		return err
	}
	p.Set(ThemeKey, string(parsed))
	return p.Save()
}

// ToggleTheme flips and persists the theme, returning the new value.
func (p *Preferences) ToggleTheme() (Theme, error) {
	next := p.Theme().Toggle()
	if err := p.SetTheme(next); err != nil {
		return p.Theme(), err
	}
	return next, nil
}

// Save writes the store to disk atomically.
func (p *Preferences) Save() error {
	if p.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(p.values)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := p.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, p.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
