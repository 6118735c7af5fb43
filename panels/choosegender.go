package panels

import (
	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/entities"
	"github.com/automoto/arena/fonts"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems/factory"
	"github.com/leonelquinteros/gotext"
)

// ChooseGenderPanel picks the character's gender.
type ChooseGenderPanel struct {
	ctx     Context
	widgets *widgets

	class *entities.CharacterClass
	name  string

	backButton   *Button
	maleButton   *Button
	femaleButton *Button
}

func NewChooseGenderPanel(ctx Context, class *entities.CharacterClass, name string) *ChooseGenderPanel {
	p := &ChooseGenderPanel{
		ctx:     ctx,
		widgets: newWidgets(),
		class:   class,
		name:    name,
	}
	l := cfg.Gender
	w := p.widgets.ecs
	factory.CreateBackground(w, ctx.Textures().Texture(assets.CharacterCreation))
	factory.CreateCenteredPicture(w, ctx.Textures().Texture(assets.PopUp), l.TitleCenter)
	factory.CreateTitle(w, gotext.Get("Choose thy gender..."), fonts.C, l.TextColor, l.TitleCenter)
	factory.CreateCenteredPicture(w, ctx.Textures().Texture(assets.PopUp2), l.MaleCenter)
	factory.CreateTitle(w, gotext.Get("Male"), fonts.A, l.TextColor, l.MaleCenter)
	factory.CreateCenteredPicture(w, ctx.Textures().Texture(assets.PopUp2), l.FemaleCenter)
	factory.CreateTitle(w, gotext.Get("Female"), fonts.A, l.TextColor, l.FemaleCenter)

	p.backButton = NewHotkeyButton(func() {
		ctx.SetPanel(NewChooseNamePanel(ctx, class))
	})
	p.maleButton = NewCenteredButton(l.MaleCenter, l.ButtonWidth, l.ButtonHeight, func() {
		p.choose(entities.Male)
	})
	p.femaleButton = NewCenteredButton(l.FemaleCenter, l.ButtonWidth, l.ButtonHeight, func() {
		p.choose(entities.Female)
	})
	return p
}

func (p *ChooseGenderPanel) choose(g entities.Gender) {
	p.ctx.SetPanel(NewChooseRacePanel(p.ctx, entities.Player{
		Name:   p.name,
		Gender: g,
		Class:  p.class,
	}))
}

func (p *ChooseGenderPanel) HandleEvent(e input.Event) {
	if e.Is(cfg.ActionBack) {
		p.backButton.Click()
		return
	}
	if !e.IsLeftClick() {
		return
	}
	if p.maleButton.Contains(e.Point) {
		p.maleButton.Click()
	} else if p.femaleButton.Contains(e.Point) {
		p.femaleButton.Click()
	}
}

func (p *ChooseGenderPanel) Tick(dt float64) {
	p.widgets.tick(dt)
}

func (p *ChooseGenderPanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.Black)
	p.widgets.draw(r)
	r.SetCursor(cursor(p.ctx))
}
