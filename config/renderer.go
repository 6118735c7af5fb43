package config

import "image/color"

// RendererConfig contains letterbox values
type RendererConfig struct {
	// Original pixels were displayed taller than wide on 4:3 monitors
	PixelAspect float64
	// Fill for the bars around the scaled frame
	LetterboxColor color.RGBA
	// Scale the original frame with linear filtering instead of nearest
	Smooth bool
}

var Renderer RendererConfig

func init() {
	Renderer = RendererConfig{
		PixelAspect:    1.2,
		LetterboxColor: Black,
		Smooth:         false,
	}
}
