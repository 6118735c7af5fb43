package config

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/agnivade/levenshtein"
	"gopkg.in/ini.v1"
)

// Default options file location, relative to the working directory.
var DefaultOptionsPath = filepath.Join("options", "options.txt")

// Recognized options file keys
const (
	ScreenWidthKey   = "ScreenWidth"
	ScreenHeightKey  = "ScreenHeight"
	FullscreenKey    = "Fullscreen"
	VerticalFOVKey   = "VerticalFieldOfView"
	HSensitivityKey  = "HorizontalSensitivity"
	VSensitivityKey  = "VerticalSensitivity"
	MusicVolumeKey   = "MusicVolume"
	SoundVolumeKey   = "SoundVolume"
	SoundfontKey     = "Soundfont"
	SoundChannelsKey = "SoundChannels"
	DataPathKey      = "DataPath"
	SkipIntroKey     = "SkipIntro"
)

var optionsKeys = []string{
	ScreenWidthKey, ScreenHeightKey, FullscreenKey, VerticalFOVKey,
	HSensitivityKey, VSensitivityKey, MusicVolumeKey, SoundVolumeKey,
	SoundfontKey, SoundChannelsKey, DataPathKey, SkipIntroKey,
}

var (
	ErrMissingKey     = errors.New("missing options key")
	ErrMalformedValue = errors.New("malformed options value")
)

// Options files are flat key=value text; '#' and ';' start comment lines.
var optionsLoadOptions = ini.LoadOptions{
	Insensitive:         false,
	IgnoreInlineComment: true,
	KeyValueDelimiters:  "=",
}

// LoadOptions reads and parses the options file at path. Every recognized key
// must be present and well formed; there is no default substitution.
func LoadOptions(path string) (*Options, error) {
	f, err := ini.LoadSources(optionsLoadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}
	return parseOptions(f)
}

// ParseOptions parses options file content.
func ParseOptions(src []byte) (*Options, error) {
	f, err := ini.LoadSources(optionsLoadOptions, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}
	return parseOptions(f)
}

func parseOptions(f *ini.File) (*Options, error) {
	r := &optionsReader{sec: f.Section("")}
	warnUnknownKeys(r.sec)

	v := OptionsValues{
		// Graphics.
		ScreenWidth:  r.integer(ScreenWidthKey),
		ScreenHeight: r.integer(ScreenHeightKey),
		Fullscreen:   r.boolean(FullscreenKey),

		VerticalFieldOfView: r.double(VerticalFOVKey),

		// Input.
		HorizontalSensitivity: r.double(HSensitivityKey),
		VerticalSensitivity:   r.double(VSensitivityKey),

		// Sound.
		MusicVolume:   r.double(MusicVolumeKey),
		SoundVolume:   r.double(SoundVolumeKey),
		Soundfont:     r.str(SoundfontKey),
		SoundChannels: r.integer(SoundChannelsKey),

		// Miscellaneous.
		DataPath:  r.str(DataPathKey),
		SkipIntro: r.boolean(SkipIntroKey),
	}
	if r.err != nil {
		return nil, r.err
	}
	return NewOptions(v), nil
}

// optionsReader keeps the first error so parsing reads like a flat list.
type optionsReader struct {
	sec *ini.Section
	err error
}

func (r *optionsReader) key(name string) *ini.Key {
	if r.err != nil {
		return nil
	}
	if !r.sec.HasKey(name) {
		r.err = fmt.Errorf("%w: %s", ErrMissingKey, name)
		return nil
	}
	return r.sec.Key(name)
}

func (r *optionsReader) malformed(k *ini.Key, err error) {
	r.err = fmt.Errorf("%w: %s=%q: %v", ErrMalformedValue, k.Name(), k.String(), err)
}

func (r *optionsReader) integer(name string) int {
	k := r.key(name)
	if k == nil {
		return 0
	}
	v, err := k.Int()
	if err != nil {
		r.malformed(k, err)
	}
	return v
}

func (r *optionsReader) double(name string) float64 {
	k := r.key(name)
	if k == nil {
		return 0
	}
	v, err := k.Float64()
	if err != nil {
		r.malformed(k, err)
	}
	return v
}

func (r *optionsReader) boolean(name string) bool {
	k := r.key(name)
	if k == nil {
		return false
	}
	v, err := k.Bool()
	if err != nil {
		r.malformed(k, err)
	}
	return v
}

func (r *optionsReader) str(name string) string {
	k := r.key(name)
	if k == nil {
		return ""
	}
	return k.String()
}

func warnUnknownKeys(sec *ini.Section) {
	for _, name := range sec.KeyStrings() {
		if isOptionsKey(name) {
			continue
		}
		if s := SuggestOptionsKey(name); s != "" {
			log.Printf("Warning: unrecognized options key %q (did you mean %q?)", name, s)
		} else {
			log.Printf("Warning: unrecognized options key %q", name)
		}
	}
}

func isOptionsKey(name string) bool {
	for _, k := range optionsKeys {
		if k == name {
			return true
		}
	}
	return false
}

// SuggestOptionsKey returns the recognized key closest to name, or "" when
// nothing is within a few edits.
func SuggestOptionsKey(name string) string {
	type scored struct {
		key  string
		dist int
	}
	candidates := make([]scored, 0, len(optionsKeys))
	for _, k := range optionsKeys {
		d := levenshtein.ComputeDistance(name, k)
		if d <= 3 {
			candidates = append(candidates, scored{k, d})
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	return candidates[0].key
}
