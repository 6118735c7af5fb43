package panels

import (
	"image"

	"github.com/automoto/arena/components"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// widgets is the world of labels, pictures and fades a panel draws from.
type widgets struct {
	ecs *ecs.ECS
}

func newWidgets() *widgets {
	w := &widgets{ecs: ecs.NewECS(donburi.NewWorld())}

	w.ecs.AddSystem(systems.UpdateFades)

	w.ecs.AddRenderer(cfg.LayerBackground, systems.DrawBackgrounds)
	w.ecs.AddRenderer(cfg.LayerWidgets, systems.DrawPictures)
	w.ecs.AddRenderer(cfg.LayerText, systems.DrawLabels)
	w.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawTooltips)
	w.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawFades)
	return w
}

func (w *widgets) tick(dt float64) {
	systems.AdvanceClock(w.ecs, dt)
	w.ecs.Update()
}

func (w *widgets) draw(r *renderer.Renderer) {
	w.ecs.Draw(r.Original())
}

func setText(entry *donburi.Entry, text string) {
	components.Label.Get(entry).Text = text
}

func labelText(entry *donburi.Entry) string {
	return components.Label.Get(entry).Text
}

// showTooltip fills in a tooltip label and places it beside the cursor.
func showTooltip(entry *donburi.Entry, text string, cursor image.Point) {
	l := components.Label.Get(entry)
	l.Text = text
	l.Hidden = false
	size := systems.LabelSize(l).Add(image.Pt(0, cfg.Tooltip.Padding))
	l.Position = systems.TooltipPosition(cursor, size)
}

func hideTooltip(entry *donburi.Entry) {
	components.Label.Get(entry).Hidden = true
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}
