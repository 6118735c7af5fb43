package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/arena/assets"
	"github.com/automoto/arena/config"
	"github.com/automoto/arena/fonts"
	"github.com/automoto/arena/game"
	"github.com/automoto/arena/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

func main() {
	optionsPath := flag.String("options", config.DefaultOptionsPath, "path to the options file")
	lang := flag.String("lang", "en_US", "language of the interface text")
	flag.Parse()

	opts, err := config.LoadOptions(*optionsPath)
	if err != nil {
		log.Fatalf("Failed to load options: %v", err)
	}

	locales := filepath.Join(opts.DataPath(), "locales")
	if info, err := os.Stat(locales); err == nil && info.IsDir() {
		gotext.Configure(locales, *lang, "default")
	}

	fonts.LoadDefaults()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(opts, saved)
	}

	ebiten.SetWindowTitle(config.C.Title)
	width, height := opts.ScreenWidth(), opts.ScreenHeight()
	if width <= 0 || height <= 0 {
		width, height = config.C.Width, config.C.Height
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(opts.TargetFPS())

	data := os.DirFS(opts.DataPath())
	textures := assets.NewTextureManager(data, assets.StdDecoder{})
	audio := systems.NewAudio(data, opts.MusicVolume(), opts.SoundVolume())

	if err := ebiten.RunGame(game.New(opts, textures, audio)); err != nil {
		log.Fatal(err)
	}
}
