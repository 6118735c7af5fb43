package config

// SettingsMenuConfig contains options screen value steps
type SettingsMenuConfig struct {
	VolumeSteps []float64
	// Rows below the FPS row, in original-resolution pixels
	RowSpacing int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		RowSpacing:  20,
	}
}
