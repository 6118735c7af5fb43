package game

import (
	"image"
	"slices"
	"testing"

	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/entities"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/panels"
	"github.com/automoto/arena/renderer"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeTextures struct{ closed *[]string }

func (fakeTextures) Texture(assets.TextureName) *ebiten.Image            { return nil }
func (fakeTextures) Sequence(assets.TextureSequenceName) []*ebiten.Image { return nil }
func (t fakeTextures) Close()                                            { *t.closed = append(*t.closed, "textures") }

type fakeAudio struct{ closed *[]string }

func (fakeAudio) PlayMusic(assets.MusicName) {}
func (fakeAudio) SetMusicVolume(float64)     {}
func (fakeAudio) SetSoundVolume(float64)     {}
func (a fakeAudio) Close()                   { *a.closed = append(*a.closed, "audio") }

// recordingPanel logs what the game calls on it.
type recordingPanel struct {
	name    string
	log     *[]string
	onEvent func(e input.Event)
	onTick  func()
}

func (p *recordingPanel) HandleEvent(e input.Event) {
	*p.log = append(*p.log, p.name+".event")
	if p.onEvent != nil {
		p.onEvent(e)
	}
}

func (p *recordingPanel) Tick(float64) {
	*p.log = append(*p.log, p.name+".tick")
	if p.onTick != nil {
		p.onTick()
	}
}

func (p *recordingPanel) Render(*renderer.Renderer) {}

func (p *recordingPanel) Close() {
	*p.log = append(*p.log, p.name+".close")
}

func newTestGame(t *testing.T) (*Game, *[]string) {
	t.Helper()
	log := &[]string{}
	opts := cfg.NewOptions(cfg.OptionsValues{ScreenWidth: 1280, ScreenHeight: 960, SkipIntro: true})
	g := New(opts, fakeTextures{closed: log}, fakeAudio{closed: log})
	if _, ok := g.Panel().(*panels.MainMenuPanel); !ok {
		t.Fatalf("initial panel = %T, want *panels.MainMenuPanel with SkipIntro", g.Panel())
	}
	return g, log
}

// install makes p the active panel.
func install(g *Game, p panels.Panel) {
	g.SetPanel(p)
	g.Step(nil, 0)
}

func keyEvent(k ebiten.Key) input.Event {
	return input.Event{Kind: input.KeyDown, Key: k}
}

func TestStepOrder(t *testing.T) {
	g, log := newTestGame(t)
	a := &recordingPanel{name: "a", log: log}
	install(g, a)
	*log = nil

	g.Step([]input.Event{keyEvent(ebiten.KeyA), keyEvent(ebiten.KeyB)}, 1.0/60)
	want := []string{"a.event", "a.event", "a.tick"}
	if !slices.Equal(*log, want) {
		t.Errorf("calls = %v, want %v", *log, want)
	}
}

func TestTransitionDeferredUntilAfterHandler(t *testing.T) {
	g, log := newTestGame(t)
	b := &recordingPanel{name: "b", log: log}
	a := &recordingPanel{name: "a", log: log}
	a.onEvent = func(input.Event) {
		g.SetPanel(b)
		if g.Panel() != a {
			t.Error("active panel changed inside its own event handler")
		}
	}
	install(g, a)
	*log = nil

	g.Step([]input.Event{keyEvent(ebiten.KeyA), keyEvent(ebiten.KeyB)}, 0)

	want := []string{"a.event", "a.event", "a.tick", "a.close"}
	if !slices.Equal(*log, want) {
		t.Errorf("calls = %v, want %v", *log, want)
	}
	if g.Panel() != b {
		t.Errorf("active panel = %v, want b", g.Panel())
	}
}

func TestTransitionLastWins(t *testing.T) {
	g, log := newTestGame(t)
	b := &recordingPanel{name: "b", log: log}
	c := &recordingPanel{name: "c", log: log}
	a := &recordingPanel{name: "a", log: log}
	a.onEvent = func(input.Event) { g.SetPanel(b) }
	a.onTick = func() { g.SetPanel(c) }
	install(g, a)

	g.Step([]input.Event{keyEvent(ebiten.KeyA)}, 0)
	if g.Panel() != c {
		t.Errorf("active panel = %v, want c", g.Panel())
	}

	*log = nil
	g.Step(nil, 0)
	if want := []string{"c.tick"}; !slices.Equal(*log, want) {
		t.Errorf("calls after swap = %v, want %v", *log, want)
	}
}

func TestQuitEventStopsDispatch(t *testing.T) {
	g, log := newTestGame(t)
	a := &recordingPanel{name: "a", log: log}
	install(g, a)
	*log = nil

	g.Step([]input.Event{{Kind: input.Quit}, keyEvent(ebiten.KeyA)}, 0)
	if g.Running() {
		t.Error("Running() = true after a quit event")
	}
	for _, call := range *log {
		if call == "a.event" {
			t.Error("event dispatched after quit")
		}
	}
}

func TestStepTracksMouse(t *testing.T) {
	g, log := newTestGame(t)
	install(g, &recordingPanel{name: "a", log: log})

	g.Step([]input.Event{{Kind: input.MouseDown, Point: image.Pt(12, 34)}}, 0)
	if got := g.MousePosition(); got != image.Pt(12, 34) {
		t.Errorf("MousePosition() = %v, want (12,34)", got)
	}
}

func TestShutdownOrder(t *testing.T) {
	g, log := newTestGame(t)
	install(g, &recordingPanel{name: "a", log: log})
	*log = nil

	g.Shutdown()
	g.Shutdown()

	want := []string{"a.close", "audio", "textures"}
	if !slices.Equal(*log, want) {
		t.Errorf("shutdown calls = %v, want %v", *log, want)
	}
}

func TestSessionData(t *testing.T) {
	g, _ := newTestGame(t)
	if g.GameData() != nil {
		t.Fatal("session running at startup")
	}
	g.SetGameData(entities.NewGameData(entities.Player{Name: "Talin"}))
	if g.GameData() == nil || g.GameData().Player.Name != "Talin" {
		t.Errorf("GameData() = %+v after SetGameData", g.GameData())
	}
}
