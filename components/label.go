package components

import (
	"image"
	"image/color"

	"github.com/automoto/arena/fonts"
	"github.com/yohamta/donburi"
)

// LabelData is a line (or lines) of text drawn into the original frame
type LabelData struct {
	Text     string
	Font     fonts.FontName
	Color    color.RGBA
	Position image.Point // top-left, or center when Centered
	Centered bool
	Hidden   bool
}

var Label = donburi.NewComponentType[LabelData]()
