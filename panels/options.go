package panels

import (
	"image"
	"strconv"

	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/fonts"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/automoto/arena/systems"
	"github.com/automoto/arena/systems/factory"
	"github.com/leonelquinteros/gotext"
	"github.com/yohamta/donburi"
)

// OptionsPanel edits the shared options in place. Every change shows up in
// its label immediately; leaving the panel persists the preferences.
type OptionsPanel struct {
	ctx     Context
	widgets *widgets

	fpsText   *donburi.Entry
	musicText *donburi.Entry
	soundText *donburi.Entry

	backButton *Button
	buttons    []*Button
}

func NewOptionsPanel(ctx Context) *OptionsPanel {
	p := &OptionsPanel{
		ctx:     ctx,
		widgets: newWidgets(),
	}
	l := cfg.OptionsMenu
	w := p.widgets.ecs
	opts := ctx.Options()

	factory.CreateTitle(w, gotext.Get("Options"), fonts.A, l.TextColor, l.TitleCenter)

	row := func(i int, value string) *donburi.Entry {
		offset := image.Pt(0, i*cfg.SettingsMenu.RowSpacing)
		factory.CreatePicture(w, ctx.Textures().Texture(assets.UpDown), l.FPSUpButton.Min.Add(offset))
		return factory.CreateLabel(w, value, fonts.Arena, l.TextColor, l.FPSTextOrigin.Add(offset))
	}
	p.fpsText = row(0, fpsText(opts.TargetFPS()))
	p.musicText = row(1, musicText(opts.MusicVolume()))
	p.soundText = row(2, soundText(opts.SoundVolume()))

	p.buttons = append(p.buttons, p.rowButtons(0,
		func() { p.setFPS(opts.TargetFPS() + l.FPSStep) },
		func() { p.setFPS(max(opts.TargetFPS()-l.FPSStep, cfg.MinFPS)) },
	)...)
	p.buttons = append(p.buttons, p.rowButtons(1,
		func() { p.setMusicVolume(stepVolume(opts.MusicVolume(), 1)) },
		func() { p.setMusicVolume(stepVolume(opts.MusicVolume(), -1)) },
	)...)
	p.buttons = append(p.buttons, p.rowButtons(2,
		func() { p.setSoundVolume(stepVolume(opts.SoundVolume(), 1)) },
		func() { p.setSoundVolume(stepVolume(opts.SoundVolume(), -1)) },
	)...)

	p.backButton = NewHotkeyButton(func() {
		systems.SaveCurrentSettings(opts)
		ctx.SetPanel(NewPauseMenuPanel(ctx))
	})
	return p
}

// rowButtons returns the up and down arrows of row i. The down arrow sits
// directly below the up arrow.
func (p *OptionsPanel) rowButtons(i int, up, down func()) []*Button {
	upRect := cfg.OptionsMenu.FPSUpButton.Add(image.Pt(0, i*cfg.SettingsMenu.RowSpacing))
	downRect := upRect.Add(image.Pt(0, upRect.Dy()))
	return []*Button{NewRectButton(upRect, up), NewRectButton(downRect, down)}
}

func (p *OptionsPanel) setFPS(fps int) {
	opts := p.ctx.Options()
	opts.SetTargetFPS(fps)
	setText(p.fpsText, fpsText(opts.TargetFPS()))
}

func (p *OptionsPanel) setMusicVolume(v float64) {
	opts := p.ctx.Options()
	opts.SetMusicVolume(v)
	p.ctx.Audio().SetMusicVolume(opts.MusicVolume())
	setText(p.musicText, musicText(opts.MusicVolume()))
}

func (p *OptionsPanel) setSoundVolume(v float64) {
	opts := p.ctx.Options()
	opts.SetSoundVolume(v)
	p.ctx.Audio().SetSoundVolume(opts.SoundVolume())
	setText(p.soundText, soundText(opts.SoundVolume()))
}

func fpsText(fps int) string {
	return gotext.Get("FPS Limit: ") + strconv.Itoa(fps)
}

func musicText(v float64) string {
	return gotext.Get("Music Volume: ") + strconv.Itoa(int(v*100+0.5)) + "%"
}

func soundText(v float64) string {
	return gotext.Get("Sound Volume: ") + strconv.Itoa(int(v*100+0.5)) + "%"
}

// stepVolume moves v to the next configured volume step in direction dir.
// At either end it stays put.
func stepVolume(v float64, dir int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	if dir > 0 {
		for _, s := range steps {
			if s > v {
				return s
			}
		}
		return v
	}
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < v {
			return steps[i]
		}
	}
	return v
}

func (p *OptionsPanel) HandleEvent(e input.Event) {
	if e.Is(cfg.ActionBack) {
		p.backButton.Click()
		return
	}
	if !e.IsLeftClick() {
		return
	}
	for _, b := range p.buttons {
		if b.Contains(e.Point) {
			b.Click()
			return
		}
	}
}

func (p *OptionsPanel) Tick(dt float64) {
	p.widgets.tick(dt)
}

func (p *OptionsPanel) Render(r *renderer.Renderer) {
	r.ClearOriginal(cfg.OptionsMenu.BackgroundColor)
	p.widgets.draw(r)
	r.SetCursor(cursor(p.ctx))
}
