package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempSettingsFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.json")
	old := filename
	filename = path
	t.Cleanup(func() { filename = old })
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	useTempSettingsFile(t)

	s := Load()
	assert.Equal(t, defaultSettings, s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempSettingsFile(t)

	in := Settings{
		PaletteOverride: 2,
		ShowLabels:      false,
		EffectsEnabled:  true,
		TargetFPS:       30,
	}
	require.NoError(t, Save(in))

	out := Load()
	assert.Equal(t, in, out)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := useTempSettingsFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Load()
	assert.Equal(t, defaultSettings, s)
}

func TestLoadBackfillsBadValues(t *testing.T) {
	path := useTempSettingsFile(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"paletteOverride": 99, "targetFps": -5}`), 0o644))

	s := Load()
	assert.Equal(t, defaultSettings.PaletteOverride, s.PaletteOverride)
	assert.Equal(t, defaultSettings.TargetFPS, s.TargetFPS)
}
