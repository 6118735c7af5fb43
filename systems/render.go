package systems

import (
	"image"
	"strings"

	"github.com/automoto/arena/components"
	"github.com/automoto/arena/fonts"
	"github.com/automoto/arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	backgroundQuery = donburi.NewQuery(filter.Contains(tags.Background, components.Picture))
	pictureQuery    = donburi.NewQuery(filter.And(
		filter.Contains(components.Picture),
		filter.Not(filter.Contains(tags.Background)),
	))
	labelQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Label),
		filter.Not(filter.Contains(tags.Tooltip)),
	))
)

// DrawBackgrounds renders full-screen background pictures first.
func DrawBackgrounds(ecs *ecs.ECS, screen *ebiten.Image) {
	backgroundQuery.Each(ecs.World, func(e *donburi.Entry) {
		drawPicture(screen, components.Picture.Get(e))
	})
}

// DrawPictures renders every non-background picture.
func DrawPictures(ecs *ecs.ECS, screen *ebiten.Image) {
	pictureQuery.Each(ecs.World, func(e *donburi.Entry) {
		drawPicture(screen, components.Picture.Get(e))
	})
}

func drawPicture(screen *ebiten.Image, p *components.PictureData) {
	if p.Hidden || p.Image == nil {
		return
	}
	pos := p.Position
	if p.Centered {
		b := p.Image.Bounds()
		pos = pos.Sub(image.Pt(b.Dx()/2, b.Dy()/2))
	}
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(float64(pos.X), float64(pos.Y))
	screen.DrawImage(p.Image, drawOp)
}

// DrawLabels renders every visible text label.
func DrawLabels(ecs *ecs.ECS, screen *ebiten.Image) {
	labelQuery.Each(ecs.World, func(e *donburi.Entry) {
		l := components.Label.Get(e)
		if l.Hidden || l.Text == "" {
			return
		}
		drawLabel(screen, l, LabelOrigin(l))
	})
}

func drawLabel(screen *ebiten.Image, l *components.LabelData, origin image.Point) {
	text.Draw(screen, l.Text, l.Font.Get(), origin.X, origin.Y+fonts.Ascent(l.Font), l.Color)
}

// LabelSize returns the pixel size of a label's text block.
func LabelSize(l *components.LabelData) image.Point {
	lines := strings.Split(l.Text, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, fonts.Measure(l.Font, line))
	}
	return image.Pt(w, len(lines)*fonts.LineHeight(l.Font))
}

// LabelOrigin returns the top-left corner a label is drawn from.
func LabelOrigin(l *components.LabelData) image.Point {
	if !l.Centered {
		return l.Position
	}
	size := LabelSize(l)
	return l.Position.Sub(image.Pt(size.X/2, size.Y/2))
}
