package config

// TextureConfig contains texture loading values
type TextureConfig struct {
	// Maximum number of decoded images kept alive at once
	CacheSize int
	// Converted file extensions tried, in order, for a legacy image filename
	ImageExtensions []string
	// Converted file extensions tried for a legacy animation filename
	SequenceExtensions []string
	// Size of the stand-in drawn for a texture whose file is missing
	PlaceholderSize int
}

var Textures TextureConfig

func init() {
	Textures = TextureConfig{
		CacheSize:          64,
		ImageExtensions:    []string{".png", ".bmp", ".gif"},
		SequenceExtensions: []string{".gif"},
		PlaceholderSize:    8,
	}
}
