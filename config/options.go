package config

// Target frame rate bounds. The frame rate is not part of the options file; it
// starts at DefaultFPS and is changed from the options panel.
const (
	DefaultFPS = 60
	MinFPS     = 15
)

// Options holds the user's settings. Fields are read through getters and only
// changed through explicit setters so every mutation is visible at call sites.
type Options struct {
	dataPath      string
	screenWidth   int
	screenHeight  int
	fullscreen    bool
	verticalFOV   float64
	hSensitivity  float64
	vSensitivity  float64
	soundfont     string
	musicVolume   float64
	soundVolume   float64
	soundChannels int
	skipIntro     bool
	targetFPS     int
}

// OptionsValues is the literal content of an options file.
type OptionsValues struct {
	DataPath              string
	ScreenWidth           int
	ScreenHeight          int
	Fullscreen            bool
	VerticalFieldOfView   float64
	HorizontalSensitivity float64
	VerticalSensitivity   float64
	Soundfont             string
	MusicVolume           float64
	SoundVolume           float64
	SoundChannels         int
	SkipIntro             bool
}

// NewOptions creates an options value from parsed file values.
func NewOptions(v OptionsValues) *Options {
	return &Options{
		dataPath:      v.DataPath,
		screenWidth:   v.ScreenWidth,
		screenHeight:  v.ScreenHeight,
		fullscreen:    v.Fullscreen,
		verticalFOV:   v.VerticalFieldOfView,
		hSensitivity:  v.HorizontalSensitivity,
		vSensitivity:  v.VerticalSensitivity,
		soundfont:     v.Soundfont,
		musicVolume:   v.MusicVolume,
		soundVolume:   v.SoundVolume,
		soundChannels: v.SoundChannels,
		skipIntro:     v.SkipIntro,
		targetFPS:     DefaultFPS,
	}
}

// Values returns a copy of the file-backed fields.
func (o *Options) Values() OptionsValues {
	return OptionsValues{
		DataPath:              o.dataPath,
		ScreenWidth:           o.screenWidth,
		ScreenHeight:          o.screenHeight,
		Fullscreen:            o.fullscreen,
		VerticalFieldOfView:   o.verticalFOV,
		HorizontalSensitivity: o.hSensitivity,
		VerticalSensitivity:   o.vSensitivity,
		Soundfont:             o.soundfont,
		MusicVolume:           o.musicVolume,
		SoundVolume:           o.soundVolume,
		SoundChannels:         o.soundChannels,
		SkipIntro:             o.skipIntro,
	}
}

func (o *Options) DataPath() string               { return o.dataPath }
func (o *Options) ScreenWidth() int               { return o.screenWidth }
func (o *Options) ScreenHeight() int              { return o.screenHeight }
func (o *Options) Fullscreen() bool               { return o.fullscreen }
func (o *Options) VerticalFOV() float64           { return o.verticalFOV }
func (o *Options) HorizontalSensitivity() float64 { return o.hSensitivity }
func (o *Options) VerticalSensitivity() float64   { return o.vSensitivity }
func (o *Options) Soundfont() string              { return o.soundfont }
func (o *Options) MusicVolume() float64           { return o.musicVolume }
func (o *Options) SoundVolume() float64           { return o.soundVolume }
func (o *Options) SoundChannels() int             { return o.soundChannels }
func (o *Options) SkipIntro() bool                { return o.skipIntro }
func (o *Options) TargetFPS() int                 { return o.targetFPS }

// SetTargetFPS sets the frame rate limit, clamped to MinFPS.
func (o *Options) SetTargetFPS(fps int) {
	o.targetFPS = max(fps, MinFPS)
}

// SetMusicVolume sets the music volume, clamped to [0, 1].
func (o *Options) SetMusicVolume(v float64) {
	o.musicVolume = clampUnit(v)
}

// SetSoundVolume sets the sound effect volume, clamped to [0, 1].
func (o *Options) SetSoundVolume(v float64) {
	o.soundVolume = clampUnit(v)
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
