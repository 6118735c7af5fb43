package game

import (
	"image"

	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/entities"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/panels"
	"github.com/automoto/arena/renderer"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextureService is the texture manager as the game owns it.
type TextureService interface {
	panels.Textures
	Close()
}

// AudioService is the music player as the game owns it.
type AudioService interface {
	panels.Music
	Close()
}

// Game owns the active panel and the services panels share. Panel changes
// requested while events are dispatched or the panel ticks take effect at
// the end of the step.
type Game struct {
	panel     panels.Panel
	nextPanel panels.Panel

	options  *cfg.Options
	textures TextureService
	audio    AudioService
	renderer *renderer.Renderer
	poller   input.Poller

	gameData *entities.GameData

	mouse       image.Point // original resolution
	nativeMouse image.Point
	tps         int
	quit        bool
	closed      bool
}

// New creates a game that starts on the intro. The game takes ownership of
// textures and audio and closes them on shutdown.
func New(opts *cfg.Options, textures TextureService, audio AudioService) *Game {
	g := &Game{
		options:  opts,
		textures: textures,
		audio:    audio,
		renderer: renderer.New(opts.ScreenWidth(), opts.ScreenHeight()),
		mouse:    image.Pt(-1, -1),
	}
	g.panel = panels.NewIntroPanel(g)
	return g
}

// SetPanel queues p to replace the active panel at the end of the current
// step. Only the last request in a step is kept.
func (g *Game) SetPanel(p panels.Panel) {
	g.nextPanel = p
}

// Panel returns the active panel.
func (g *Game) Panel() panels.Panel {
	return g.panel
}

func (g *Game) Options() *cfg.Options {
	return g.options
}

func (g *Game) Textures() panels.Textures {
	return g.textures
}

func (g *Game) Audio() panels.Music {
	return g.audio
}

// GameData returns the running session, or nil in menus and character
// creation.
func (g *Game) GameData() *entities.GameData {
	return g.gameData
}

func (g *Game) SetGameData(gd *entities.GameData) {
	g.gameData = gd
}

// Quit ends the loop after the current step.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) MousePosition() image.Point {
	return g.mouse
}

// Running reports whether the game has not been asked to quit.
func (g *Game) Running() bool {
	return !g.quit
}

// Step dispatches events to the active panel, ticks it by dt and then swaps
// in any panel requested meanwhile. A quit event stops dispatch.
func (g *Game) Step(events []input.Event, dt float64) {
	for _, e := range events {
		if e.Kind == input.Quit {
			g.Quit()
			break
		}
		g.mouse = e.Point
		g.panel.HandleEvent(e)
	}

	g.panel.Tick(dt)

	if g.nextPanel != nil {
		closePanel(g.panel)
		g.panel, g.nextPanel = g.nextPanel, nil
	}
}

func closePanel(p panels.Panel) {
	if c, ok := p.(panels.Closer); ok {
		c.Close()
	}
}

func (g *Game) Update() error {
	if fps := g.options.TargetFPS(); fps != g.tps {
		ebiten.SetTPS(fps)
		g.tps = fps
	}

	events, cursor := g.poller.Poll(g.renderer.NativeToOriginal)
	g.mouse = cursor
	g.nativeMouse = image.Pt(ebiten.CursorPosition())

	g.Step(events, 1/float64(g.tps))

	if g.quit {
		g.Shutdown()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.panel.Render(g.renderer)
	g.renderer.Present(screen, g.nativeMouse)
}

// Layout keeps the screen at window size; the renderer letterboxes the
// original frame inside it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.renderer.SetNativeSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Shutdown closes the active panel and then the services in reverse order of
// acquisition. It is safe to call more than once.
func (g *Game) Shutdown() {
	if g.closed {
		return
	}
	g.closed = true

	closePanel(g.panel)
	g.panel = nil
	g.nextPanel = nil

	g.renderer.Close()
	g.audio.Close()
	g.textures.Close()
}
