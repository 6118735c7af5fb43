package systems

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/arena/assets"
	cfg "github.com/automoto/arena/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// The audio context can only be created once per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func audioContext() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalAudioContext
}

// Audio plays music tracks by name. Tracks without a converted file are
// skipped with a warning; the context is only created once a track is found.
type Audio struct {
	fsys   fs.FS
	loader *assets.AudioLoader

	player      *audio.Player
	current     assets.MusicName
	playing     bool
	musicVolume float64
	soundVolume float64
	warned      map[assets.MusicName]bool
}

// NewAudio creates an audio manager reading tracks from fsys.
func NewAudio(fsys fs.FS, musicVolume, soundVolume float64) *Audio {
	return &Audio{
		fsys:        fsys,
		musicVolume: musicVolume,
		soundVolume: soundVolume,
		warned:      make(map[assets.MusicName]bool),
	}
}

// PlayMusic starts a looping track, replacing the current one. Asking for the
// track that is already playing does nothing.
func (a *Audio) PlayMusic(name assets.MusicName) {
	if a.playing && a.current == name {
		return
	}

	p, err := assets.FindMusic(a.fsys, name)
	if err != nil {
		if !a.warned[name] {
			a.warned[name] = true
			log.Printf("Warning: [audio] music %d unavailable: %v", int(name), err)
		}
		return
	}

	if a.loader == nil {
		a.loader = assets.NewAudioLoader(a.fsys, audioContext())
	}
	player, err := a.loader.LoadMusic(p)
	if err != nil {
		log.Printf("Warning: [audio] %v", err)
		return
	}

	a.StopMusic()
	player.SetVolume(a.musicVolume)
	player.Play()
	a.player = player
	a.current = name
	a.playing = true
}

// StopMusic immediately stops the current track
func (a *Audio) StopMusic() {
	if a.player != nil {
		_ = a.player.Close()
		a.player = nil
	}
	a.playing = false
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func (a *Audio) SetMusicVolume(volume float64) {
	a.musicVolume = volume
	if a.player != nil {
		a.player.SetVolume(volume)
	}
}

// SetSoundVolume changes the sound effect volume (0.0 - 1.0)
func (a *Audio) SetSoundVolume(volume float64) {
	a.soundVolume = volume
}

func (a *Audio) MusicVolume() float64 { return a.musicVolume }
func (a *Audio) SoundVolume() float64 { return a.soundVolume }

// Close stops playback. The shared context stays alive for the process.
func (a *Audio) Close() {
	a.StopMusic()
}
