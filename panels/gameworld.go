package panels

import (
	"image"

	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/fonts"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems/factory"
)

// GameWorldPanel is the in-game view. Only construct it while a session is
// running.
type GameWorldPanel struct {
	ctx     Context
	widgets *widgets

	pauseButton *Button
}

func NewGameWorldPanel(ctx Context) *GameWorldPanel {
	ctx.Audio().PlayMusic(assets.SunnyDay)

	p := &GameWorldPanel{
		ctx:     ctx,
		widgets: newWidgets(),
	}
	w := p.widgets.ecs

	iface := ctx.Textures().Texture(assets.GameWorldInterface)
	y := cfg.OriginalHeight
	if iface != nil {
		y -= iface.Bounds().Dy()
	}
	factory.CreatePicture(w, iface, image.Pt(0, y))
	factory.CreateLabel(w, ctx.GameData().Player.Summary(), fonts.Arena, cfg.GameWorld.TextColor, cfg.GameWorld.StatusOrigin)

	p.pauseButton = NewHotkeyButton(func() {
		ctx.SetPanel(NewPauseMenuPanel(ctx))
	})
	return p
}

func (p *GameWorldPanel) HandleEvent(e input.Event) {
	if e.Is(cfg.ActionBack) {
		p.pauseButton.Click()
	}
}

func (p *GameWorldPanel) Tick(dt float64) {
	p.widgets.tick(dt)
}

func (p *GameWorldPanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	r.SetCursor(cursor(p.ctx))
}
