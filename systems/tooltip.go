package systems

import (
	"image"

	"github.com/automoto/arena/components"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TooltipPosition places a tooltip of the given size beside the cursor,
// flipping to the other side when it would leave the original frame.
func TooltipPosition(cursor, size image.Point) image.Point {
	x := cursor.X + 4
	if cursor.X+size.X >= cfg.OriginalWidth {
		x = cursor.X + 4 - size.X
	}
	y := cursor.Y - 1
	if cursor.Y+size.Y >= cfg.OriginalHeight {
		y = cursor.Y - size.Y
	}
	return image.Pt(x, y)
}

// TooltipBox returns the rectangle a tooltip label's background covers.
func TooltipBox(l *components.LabelData) image.Rectangle {
	size := LabelSize(l)
	pad := cfg.Tooltip.Padding
	return image.Rectangle{Min: l.Position, Max: l.Position.Add(size).Add(image.Pt(0, pad))}
}

// DrawTooltips renders tooltip labels over a solid box, text inset by one
// pixel from the top.
func DrawTooltips(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Tooltip.Each(ecs.World, func(e *donburi.Entry) {
		l := components.Label.Get(e)
		if l.Hidden || l.Text == "" {
			return
		}
		box := TooltipBox(l)
		vector.FillRect(screen,
			float32(box.Min.X), float32(box.Min.Y),
			float32(box.Dx()), float32(box.Dy()),
			cfg.Tooltip.Background, false)
		drawLabel(screen, l, l.Position.Add(image.Pt(0, 1)))
	})
}
