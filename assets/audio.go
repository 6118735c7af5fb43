package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/arena/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader decodes converted music tracks from the data directory
type AudioLoader struct {
	fsys    fs.FS
	context *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(fsys fs.FS, ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		fsys:    fsys,
		context: ctx,
	}
}

// FindMusic returns the path of the converted track for a music name. Legacy
// XMI tracks are not played directly; an .ogg or .wav with the same stem in
// the music directory stands in for them.
func FindMusic(fsys fs.FS, name MusicName) (string, error) {
	filename, err := MusicFile(name)
	if err != nil {
		return "", err
	}
	stem := strings.TrimSuffix(filename, path.Ext(filename))
	for _, ext := range config.Audio.MusicExtensions {
		for _, s := range []string{stem, strings.ToLower(stem)} {
			p := path.Join(config.Audio.MusicDir, s+ext)
			if _, err := fs.Stat(fsys, p); err == nil {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("no converted track for %s: %w", filename, fs.ErrNotExist)
}

// LoadMusic returns a looping player for the track at path.
func (l *AudioLoader) LoadMusic(p string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", p, err)
	}

	stream, err := l.decode(p, data)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(p string, data []byte) (lengthStream, error) {
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", p, err)
		}
		return stream, nil

	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
		}
		return stream, nil

	default:
		return nil, errors.New("unsupported audio format: " + ext)
	}
}
