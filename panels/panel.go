package panels

import (
	"image"

	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/entities"
	"github.com/automoto/arena/input"
	"github.com/automoto/arena/renderer"
	"github.com/hajimehoshi/ebiten/v2"
)

// Panel is one interactive screen. The game owns exactly one active panel and
// calls HandleEvent for each input event, then Tick, then Render.
type Panel interface {
	HandleEvent(e input.Event)
	Tick(dt float64)
	Render(r *renderer.Renderer)
}

// Closer is implemented by panels that hold resources beyond their own
// lifetime. Close is called once the panel has been replaced.
type Closer interface {
	Close()
}

// Textures loads images by legacy name.
type Textures interface {
	Texture(name assets.TextureName) *ebiten.Image
	Sequence(name assets.TextureSequenceName) []*ebiten.Image
}

// Music plays tracks by legacy name.
type Music interface {
	PlayMusic(name assets.MusicName)
	SetMusicVolume(volume float64)
	SetSoundVolume(volume float64)
}

// Context is everything a panel may reach on the game that owns it.
type Context interface {
	// SetPanel queues p to replace the active panel once the current frame's
	// events and tick are done. A later call in the same frame wins.
	SetPanel(p Panel)
	Options() *cfg.Options
	Textures() Textures
	Audio() Music
	// GameData is nil unless a session is running.
	GameData() *entities.GameData
	SetGameData(gd *entities.GameData)
	Quit()
	// MousePosition is the cursor in original-resolution coordinates.
	MousePosition() image.Point
}

func cursor(ctx Context) *ebiten.Image {
	return ctx.Textures().Texture(assets.SwordCursor)
}
