package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullOptions = `# Graphics
ScreenWidth=640
ScreenHeight=480
Fullscreen=false
VerticalFieldOfView=60.0

# Input
HorizontalSensitivity=0.5
VerticalSensitivity=0.25

# Sound
MusicVolume=0.75
SoundVolume=1.0
Soundfont=data/eawpats/timidity.cfg
SoundChannels=32

# Miscellaneous
DataPath=data/ARENA/
SkipIntro=true
`

func TestParseOptions_FullKeySet(t *testing.T) {
	opts, err := ParseOptions([]byte(fullOptions))
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}

	want := OptionsValues{
		ScreenWidth:           640,
		ScreenHeight:          480,
		Fullscreen:            false,
		VerticalFieldOfView:   60.0,
		HorizontalSensitivity: 0.5,
		VerticalSensitivity:   0.25,
		MusicVolume:           0.75,
		SoundVolume:           1.0,
		Soundfont:             "data/eawpats/timidity.cfg",
		SoundChannels:         32,
		DataPath:              "data/ARENA/",
		SkipIntro:             true,
	}
	if got := opts.Values(); got != want {
		t.Errorf("Values() = %+v, want %+v", got, want)
	}
	if opts.TargetFPS() != DefaultFPS {
		t.Errorf("TargetFPS() = %d, want %d", opts.TargetFPS(), DefaultFPS)
	}
}

func TestParseOptions_MissingKey(t *testing.T) {
	for _, key := range optionsKeys {
		t.Run(key, func(t *testing.T) {
			src := removeLine(fullOptions, key+"=")
			_, err := ParseOptions([]byte(src))
			if !errors.Is(err, ErrMissingKey) {
				t.Fatalf("ParseOptions without %s: err = %v, want ErrMissingKey", key, err)
			}
			if !strings.Contains(err.Error(), key) {
				t.Errorf("error %q does not name key %s", err, key)
			}
		})
	}
}

func TestParseOptions_Malformed(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{ScreenWidthKey, "wide"},
		{FullscreenKey, "maybe"},
		{MusicVolumeKey, "loud"},
		{SoundChannelsKey, "3.5"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			src := removeLine(fullOptions, tt.key+"=") + tt.key + "=" + tt.value + "\n"
			_, err := ParseOptions([]byte(src))
			if !errors.Is(err, ErrMalformedValue) {
				t.Errorf("ParseOptions with %s=%s: err = %v, want ErrMalformedValue", tt.key, tt.value, err)
			}
		})
	}
}

func TestParseOptions_UnknownKeyIgnored(t *testing.T) {
	src := fullOptions + "ScreenWidht=800\n"
	opts, err := ParseOptions([]byte(src))
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	if opts.ScreenWidth() != 640 {
		t.Errorf("ScreenWidth() = %d, want 640", opts.ScreenWidth())
	}
}

func TestLoadOptions_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.txt")
	if err := os.WriteFile(path, []byte(fullOptions), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.DataPath() != "data/ARENA/" {
		t.Errorf("DataPath() = %q, want %q", opts.DataPath(), "data/ARENA/")
	}

	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("LoadOptions(missing file) = nil error, want error")
	}
}

func TestSuggestOptionsKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ScreenWidht", ScreenWidthKey},
		{"skipintro", SkipIntroKey},
		{"SkipIntr", SkipIntroKey},
		{"Totally", ""},
	}
	for _, tt := range tests {
		if got := SuggestOptionsKey(tt.in); got != tt.want {
			t.Errorf("SuggestOptionsKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOptionsSetters(t *testing.T) {
	opts := NewOptions(OptionsValues{MusicVolume: 0.5})

	opts.SetTargetFPS(5)
	if opts.TargetFPS() != MinFPS {
		t.Errorf("SetTargetFPS(5): TargetFPS() = %d, want %d", opts.TargetFPS(), MinFPS)
	}
	opts.SetTargetFPS(90)
	if opts.TargetFPS() != 90 {
		t.Errorf("SetTargetFPS(90): TargetFPS() = %d, want 90", opts.TargetFPS())
	}

	opts.SetMusicVolume(1.5)
	if opts.MusicVolume() != 1 {
		t.Errorf("SetMusicVolume(1.5): MusicVolume() = %v, want 1", opts.MusicVolume())
	}
	opts.SetSoundVolume(-1)
	if opts.SoundVolume() != 0 {
		t.Errorf("SetSoundVolume(-1): SoundVolume() = %v, want 0", opts.SoundVolume())
	}
}

func removeLine(src, prefix string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(src, "\n") {
		if strings.HasPrefix(line, prefix) {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}
