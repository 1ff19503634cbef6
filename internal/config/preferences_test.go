package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

func TestLoadPreferencesMissingFileDefaultsToDark(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	prefs, err := LoadPreferences(path)
	require.NoError(t, err)
	require.Equal(t, ThemeDark, prefs.Theme())
	_, ok := prefs.Get(ThemeKey)
	require.False(t, ok)
	require.Equal(t, path, prefs.Path())
}

func TestPreferencesToggleThemePersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	prefs, err := LoadPreferences(path)
	require.NoError(t, err)

	theme, err := prefs.ToggleTheme()
	require.NoError(t, err)
	require.Equal(t, ThemeLight, theme)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "chromastudio-theme: light")

	reloaded, err := LoadPreferences(path)
	require.NoError(t, err)
	require.Equal(t, ThemeLight, reloaded.Theme())

	theme, err = reloaded.ToggleTheme()
	require.NoError(t, err)
	require.Equal(t, ThemeDark, theme)
}

func TestPreferencesUnknownStoredThemeReadsAsDark(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chromastudio-theme: neon\nother: value\n"), 0o644))

	prefs, err := LoadPreferences(path)
	require.NoError(t, err)
	require.Equal(t, ThemeDark, prefs.Theme())

	v, ok := prefs.Get("other")
	require.True(t, ok)
	require.Equal(t, "value", v)

	require.NoError(t, prefs.SetTheme(ThemeLight))
	reloaded, err := LoadPreferences(path)
	require.NoError(t, err)
	require.Equal(t, ThemeLight, reloaded.Theme())
	v, ok = reloaded.Get("other")
	require.True(t, ok)
	require.Equal(t, "value", v)
}

func TestPreferencesRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chromastudio-theme: [light\n"), 0o644))

	_, err := LoadPreferences(path)
	var parseErr *chromaerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestSetThemeValidates(t *testing.T) {
	t.Parallel()

	prefs, err := LoadPreferences(filepath.Join(t.TempDir(), "preferences.yaml"))
	require.NoError(t, err)

	err = prefs.SetTheme(Theme("sepia"))
	var validationErr *chromaerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, ThemeKey, validationErr.Field)
	require.Equal(t, ThemeDark, prefs.Theme())

	require.NoError(t, prefs.SetTheme(ThemeLight))
	require.Equal(t, ThemeLight, prefs.Theme())
}

func TestThemeHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, ThemeLight, ThemeDark.Toggle())
	require.Equal(t, ThemeDark, ThemeLight.Toggle())
	require.True(t, ThemeLight.Valid())
	require.False(t, Theme("").Valid())

	theme, err := ParseTheme("light")
	require.NoError(t, err)
	require.Equal(t, ThemeLight, theme)

	_, err = ParseTheme("")
	require.Error(t, err)
}

func TestSaveWithoutPathIsNoop(t *testing.T) {
	t.Parallel()

	prefs := &Preferences{values: map[string]string{}}
	require.NoError(t, prefs.SetTheme(ThemeLight))
	require.Equal(t, ThemeLight, prefs.Theme())
}
