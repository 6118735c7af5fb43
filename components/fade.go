package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData is a full-frame color overlay whose opacity follows a tween
type FadeData struct {
	Tween    *gween.Tween
	Color    color.RGBA
	Alpha    float32 // 0 = transparent, 1 = opaque
	Finished bool
}

var Fade = donburi.NewComponentType[FadeData]()
