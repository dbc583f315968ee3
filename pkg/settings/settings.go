package settings

import (
	"encoding/json"
	"os"
)

// Settings represents user-tunable configuration that should persist across
// application restarts. Add additional fields here as new settings are
// introduced.
type Settings struct {
	// PaletteOverride forces one label palette for every station; -1 keeps
	// the per-station palette assignment.
	PaletteOverride int  `json:"paletteOverride"`
	ShowLabels      bool `json:"showLabels"`
	EffectsEnabled  bool `json:"effectsEnabled"`
	TargetFPS       int  `json:"targetFps"`
}

var defaultSettings = Settings{
	PaletteOverride: -1,
	ShowLabels:      true,
	EffectsEnabled:  true,
	TargetFPS:       60,
}

var filename = "settings.json"

// Load reads the settings file from disk. When the file is missing or cannot
// be parsed, sane defaults are returned instead so the application can
// continue running.
func Load() Settings {
	f, err := os.Open(filename)
	if err != nil {
		// No existing file, return defaults
		return defaultSettings
	}
	defer f.Close()

	s := defaultSettings
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		// Malformed file, fall back to defaults
		return defaultSettings
	}

	// Ensure nonsense values are replaced by defaults so that a hand-edited
	// configuration file does not break the frame limiter or palette lookup.
	if s.TargetFPS <= 0 {
		s.TargetFPS = defaultSettings.TargetFPS
	}
	if s.PaletteOverride < -1 || s.PaletteOverride > 2 {
		s.PaletteOverride = defaultSettings.PaletteOverride
	}

	return s
}

// Save writes the provided settings to disk, creating the file when
// necessary. Any error is returned to the caller so it can be logged.
func Save(s Settings) error {
	// Create will truncate an existing file or create a new one.
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
