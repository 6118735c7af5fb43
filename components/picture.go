package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PictureData is an image drawn into the original frame
type PictureData struct {
	Image    *ebiten.Image
	Position image.Point // top-left, or center when Centered
	Centered bool
	Hidden   bool
}

var Picture = donburi.NewComponentType[PictureData]()
