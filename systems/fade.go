package systems

import (
	"image/color"

	"github.com/automoto/arena/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFades steps every fade tween by the current tick's time.
func UpdateFades(ecs *ecs.ECS) {
	dt := float32(GetOrCreateClock(ecs).DT)
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fade.Get(e)
		if f.Finished || f.Tween == nil {
			return
		}
		f.Alpha, f.Finished = f.Tween.Update(dt)
	})
}

// DrawFades covers the frame with each fade's color at its current opacity.
func DrawFades(ecs *ecs.ECS, screen *ebiten.Image) {
	b := screen.Bounds()
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fade.Get(e)
		if f.Alpha <= 0 {
			return
		}
		a := min(f.Alpha, 1)
		clr := color.RGBA{
			R: uint8(float32(f.Color.R) * a),
			G: uint8(float32(f.Color.G) * a),
			B: uint8(float32(f.Color.B) * a),
			A: uint8(255 * a),
		}
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), clr, false)
	})
}
