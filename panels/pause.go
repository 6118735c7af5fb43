package panels

import (
	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/fonts"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems/factory"
	"github.com/leonelquinteros/gotext"
)

// PauseMenuPanel is reached from the game world. The session stays active
// unless a new game is started.
type PauseMenuPanel struct {
	ctx     Context
	widgets *widgets

	resumeButton  *Button
	optionsButton *Button
	newGameButton *Button
	exitButton    *Button
}

func NewPauseMenuPanel(ctx Context) *PauseMenuPanel {
	p := &PauseMenuPanel{
		ctx:     ctx,
		widgets: newWidgets(),
	}
	l := cfg.Pause
	w := p.widgets.ecs
	factory.CreateBackground(w, ctx.Textures().Texture(assets.PauseBackground))
	factory.CreateTitle(w, gotext.Get("Resume"), fonts.Arena, l.TextColor, center(l.ResumeButton))
	factory.CreateTitle(w, gotext.Get("Options"), fonts.Arena, l.TextColor, center(l.OptionsButton))
	factory.CreateTitle(w, gotext.Get("New Game"), fonts.Arena, l.TextColor, center(l.NewGameButton))
	factory.CreateTitle(w, gotext.Get("Exit"), fonts.Arena, l.TextColor, center(l.ExitButton))

	p.resumeButton = NewRectButton(l.ResumeButton, func() {
		ctx.SetPanel(NewGameWorldPanel(ctx))
	})
	p.optionsButton = NewRectButton(l.OptionsButton, func() {
		ctx.SetPanel(NewOptionsPanel(ctx))
	})
	p.newGameButton = NewRectButton(l.NewGameButton, func() {
		ctx.SetGameData(nil)
		ctx.SetPanel(NewMainMenuPanel(ctx))
	})
	p.exitButton = NewRectButton(l.ExitButton, ctx.Quit)
	return p
}

func (p *PauseMenuPanel) HandleEvent(e input.Event) {
	if e.Is(cfg.ActionBack) {
		p.resumeButton.Click()
		return
	}
	if !e.IsLeftClick() {
		return
	}
	for _, b := range []*Button{p.resumeButton, p.optionsButton, p.newGameButton, p.exitButton} {
		if b.Contains(e.Point) {
			b.Click()
			return
		}
	}
}

func (p *PauseMenuPanel) Tick(dt float64) {
	p.widgets.tick(dt)
}

func (p *PauseMenuPanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	r.SetCursor(cursor(p.ctx))
}
