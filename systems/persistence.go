package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/arena/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings are the preferences the options panel changes at runtime.
// The options file is never rewritten, so these live in the per-user data
// directory instead. Every other option keeps its value from the file.
type SavedSettings struct {
	TargetFPS   int     `json:"targetFps"`
	MusicVolume float64 `json:"musicVolume"`
	SoundVolume float64 `json:"soundVolume"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "arena",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved
// or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the persisted subset of opts
func CurrentSettings(opts *cfg.Options) *SavedSettings {
	return &SavedSettings{
		TargetFPS:   opts.TargetFPS(),
		MusicVolume: opts.MusicVolume(),
		SoundVolume: opts.SoundVolume(),
	}
}

// SaveCurrentSettings saves the runtime-changeable values of opts
func SaveCurrentSettings(opts *cfg.Options) {
	_ = SaveSettings(CurrentSettings(opts))
}

// ApplySavedSettings copies saved preferences into opts through its setters.
// Out-of-range values are clamped by the setters.
func ApplySavedSettings(opts *cfg.Options, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.TargetFPS > 0 {
		opts.SetTargetFPS(saved.TargetFPS)
	}
	opts.SetMusicVolume(saved.MusicVolume)
	opts.SetSoundVolume(saved.SoundVolume)
}
