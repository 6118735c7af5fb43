package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	// Directory under the data path holding converted music tracks
	MusicDir string
	// Extensions tried, in order, for a legacy music filename
	MusicExtensions []string
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		MusicDir:        "music",
		MusicExtensions: []string{".ogg", ".wav"},
	}
}
