package assets

import (
	"errors"
	"image"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

// countingDecoder returns fixed images without touching the GPU.
type countingDecoder struct {
	decodes    int
	decodeAlls int
	frames     int
}

func (d *countingDecoder) Decode(r io.Reader) (image.Image, error) {
	d.decodes++
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (d *countingDecoder) DecodeAll(r io.Reader) ([]image.Image, error) {
	d.decodeAlls++
	out := make([]image.Image, d.frames)
	for i := range out {
		out[i] = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return out, nil
}

func newTestManager(t *testing.T, files fs.FS, dec Decoder) *TextureManager {
	t.Helper()
	m := NewTextureManager(files, dec)
	m.newImage = func(image.Image) *ebiten.Image { return nil }
	return m
}

func TestTextureManager_CacheHit(t *testing.T) {
	dec := &countingDecoder{}
	m := newTestManager(t, fstest.MapFS{
		"TITLE.png": {Data: []byte("png")},
	}, dec)

	for i := 0; i < 3; i++ {
		if _, err := m.LoadTexture(IntroTitle); err != nil {
			t.Fatalf("LoadTexture(IntroTitle): %v", err)
		}
	}
	if dec.decodes != 1 {
		t.Errorf("decodes = %d, want 1", dec.decodes)
	}
}

func TestTextureManager_LowercaseStem(t *testing.T) {
	dec := &countingDecoder{}
	m := newTestManager(t, fstest.MapFS{
		"quote.bmp": {Data: []byte("bmp")},
	}, dec)

	if _, err := m.LoadTexture(IntroQuote); err != nil {
		t.Fatalf("LoadTexture(IntroQuote): %v", err)
	}
}

func TestTextureManager_MissingFile(t *testing.T) {
	m := newTestManager(t, fstest.MapFS{}, &countingDecoder{})

	_, err := m.LoadTexture(MainMenu)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadTexture(missing) err = %v, want fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrUnknownAsset) {
		t.Error("missing file reported as unknown asset")
	}
	// Falls back to the placeholder instead of panicking.
	m.Texture(MainMenu)
}

// countingFS counts every Open call on the wrapped file system.
type countingFS struct {
	fs.FS
	opens int
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens++
	return c.FS.Open(name)
}

func TestTextureManager_MissingFileRemembered(t *testing.T) {
	files := &countingFS{FS: fstest.MapFS{}}
	m := newTestManager(t, files, &countingDecoder{})

	m.Texture(SwordCursor)
	opens := files.opens
	if opens == 0 {
		t.Fatal("first lookup did not touch the file system")
	}
	for i := 0; i < 5; i++ {
		m.Texture(SwordCursor)
	}
	if files.opens != opens {
		t.Errorf("opens = %d after repeated lookups, want %d", files.opens, opens)
	}

	frames := &countingFS{FS: fstest.MapFS{}}
	m = newTestManager(t, frames, &countingDecoder{frames: 2})
	m.LoadSequence(OpeningScroll)
	opens = frames.opens
	if _, err := m.LoadSequence(OpeningScroll); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSequence(missing) err = %v, want fs.ErrNotExist", err)
	}
	if frames.opens != opens {
		t.Errorf("sequence opens = %d after a repeated lookup, want %d", frames.opens, opens)
	}
}

func TestTextureManager_UnknownNamePanics(t *testing.T) {
	m := newTestManager(t, fstest.MapFS{}, &countingDecoder{})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownAsset) {
			t.Errorf("Texture(unmapped) panic = %v, want ErrUnknownAsset", r)
		}
	}()
	m.Texture(TextureName(-5))
}

func TestTextureManager_Sequence(t *testing.T) {
	dec := &countingDecoder{frames: 4}
	m := newTestManager(t, fstest.MapFS{
		"SCROLL.gif": {Data: []byte("gif")},
	}, dec)

	frames, err := m.LoadSequence(OpeningScroll)
	if err != nil {
		t.Fatalf("LoadSequence(OpeningScroll): %v", err)
	}
	if len(frames) != 4 {
		t.Errorf("len(frames) = %d, want 4", len(frames))
	}
	m.LoadSequence(OpeningScroll)
	if dec.decodeAlls != 1 {
		t.Errorf("decodeAlls = %d, want 1", dec.decodeAlls)
	}

	if got := m.Sequence(King); len(got) != 1 {
		t.Errorf("Sequence(missing) frames = %d, want 1 placeholder", len(got))
	}
}

func TestFindMusic(t *testing.T) {
	files := fstest.MapFS{
		"music/sheet.ogg": {Data: []byte("ogg")},
		"music/EVIL.wav":  {Data: []byte("wav")},
	}
	tests := []struct {
		name MusicName
		want string
	}{
		{Sheet, "music/sheet.ogg"},
		{Evil, "music/EVIL.wav"},
	}
	for _, tt := range tests {
		got, err := FindMusic(files, tt.name)
		if err != nil {
			t.Errorf("FindMusic(%d) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FindMusic(%d) = %q, want %q", tt.name, got, tt.want)
		}
	}
	if _, err := FindMusic(files, Tavern); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("FindMusic(Tavern) err = %v, want fs.ErrNotExist", err)
	}
}
