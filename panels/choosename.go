package panels

import (
	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/entities"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems/factory"
	"github.com/automoto/arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

// ChooseNamePanel asks for the character's name.
type ChooseNamePanel struct {
	ctx     Context
	widgets *widgets
	class   *entities.CharacterClass

	entry *ui.NameEntryUI
	// last rejection message, empty after a valid name
	status string

	backButton *Button
}

func NewChooseNamePanel(ctx Context, class *entities.CharacterClass) *ChooseNamePanel {
	p := &ChooseNamePanel{
		ctx:     ctx,
		widgets: newWidgets(),
		class:   class,
	}
	factory.CreateBackground(p.widgets.ecs, ctx.Textures().Texture(assets.CharacterCreation))

	p.backButton = NewHotkeyButton(func() {
		ctx.SetPanel(NewChooseClassPanel(ctx))
	})
	return p
}

// Submit accepts name if it is usable and moves on to gender selection.
// It reports whether the name was accepted.
func (p *ChooseNamePanel) Submit(name string) bool {
	name, ok := entities.NormalizeName(name, cfg.Name.MaxLength)
	if !ok {
		p.status = gotext.Get("Names must be 1 to %d printable characters.", cfg.Name.MaxLength)
		if p.entry != nil {
			p.entry.SetStatus(p.status)
		}
		return false
	}
	p.status = ""
	p.ctx.SetPanel(NewChooseGenderPanel(p.ctx, p.class, name))
	return true
}

func (p *ChooseNamePanel) HandleEvent(e input.Event) {
	switch {
	case e.Is(cfg.ActionBack):
		p.backButton.Click()
	case e.Is(cfg.ActionAccept) && p.entry != nil:
		p.Submit(p.entry.Text())
	}
}

func (p *ChooseNamePanel) Tick(dt float64) {
	if p.entry == nil {
		p.entry = ui.NewNameEntryUI(ui.NameEntryText{
			Title:       gotext.Get("What will be thy name, %s?", p.class.Name),
			Placeholder: gotext.Get("Name"),
			Accept:      gotext.Get("Accept"),
			Back:        gotext.Get("Back"),
		}, func(name string) { p.Submit(name) }, p.backButton.Click)
	}
	p.entry.Update()
	p.widgets.tick(dt)
}

func (p *ChooseNamePanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	if p.entry != nil {
		r.DrawNative(func(screen *ebiten.Image) {
			p.entry.Draw(screen)
		})
	}
	r.SetCursor(cursor(p.ctx))
}
