package assets

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/automoto/arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zyedidia/generic/cache"
	_ "golang.org/x/image/bmp"
)

// Decoder turns converted asset files into images. Legacy formats are
// expected to have been converted ahead of time.
type Decoder interface {
	Decode(r io.Reader) (image.Image, error)
	DecodeAll(r io.Reader) ([]image.Image, error)
}

// StdDecoder decodes any registered image format. Sequences are animated GIFs.
type StdDecoder struct{}

func (StdDecoder) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// DecodeAll composites every GIF frame onto a full canvas so partial frames
// come out whole.
func (StdDecoder) DecodeAll(r io.Reader) ([]image.Image, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	canvas := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))
	for _, frame := range g.Image {
		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		snapshot := image.NewRGBA(bounds)
		copy(snapshot.Pix, canvas.Pix)
		frames = append(frames, snapshot)
	}
	return frames, nil
}

// TextureManager loads textures by name from the data directory and keeps the
// most recently used ones alive.
type TextureManager struct {
	fsys      fs.FS
	decoder   Decoder
	images    *cache.Cache[string, *ebiten.Image]
	sequences *cache.Cache[string, []*ebiten.Image]

	// newImage uploads a decoded image to the GPU
	newImage func(image.Image) *ebiten.Image

	// load failures by legacy filename; the data directory is not rescanned
	missing     map[string]error
	placeholder *ebiten.Image
	warned      map[string]bool
}

// NewTextureManager creates a texture manager reading from fsys.
func NewTextureManager(fsys fs.FS, decoder Decoder) *TextureManager {
	m := &TextureManager{
		fsys:      fsys,
		decoder:   decoder,
		images:    cache.New[string, *ebiten.Image](config.Textures.CacheSize),
		sequences: cache.New[string, []*ebiten.Image](config.Textures.CacheSize),
		newImage:  ebiten.NewImageFromImage,
		missing:   make(map[string]error),
		warned:    make(map[string]bool),
	}
	m.images.SetEvictCallback(func(_ string, img *ebiten.Image) {
		deallocate(img)
	})
	m.sequences.SetEvictCallback(func(_ string, frames []*ebiten.Image) {
		for _, img := range frames {
			deallocate(img)
		}
	})
	return m
}

func deallocate(img *ebiten.Image) {
	if img != nil {
		img.Deallocate()
	}
}

// LoadTexture returns the image for a texture name.
func (m *TextureManager) LoadTexture(name TextureName) (*ebiten.Image, error) {
	filename, err := TextureFile(name)
	if err != nil {
		return nil, err
	}
	return m.LoadFile(filename)
}

// LoadFile returns the image for a legacy filename, decoding it on a cache miss.
func (m *TextureManager) LoadFile(filename string) (*ebiten.Image, error) {
	if img, ok := m.images.Get(filename); ok {
		return img, nil
	}
	if err, ok := m.missing[filename]; ok {
		return nil, err
	}

	decoded, err := m.decodeFile(filename)
	if err != nil {
		m.missing[filename] = err
		return nil, err
	}

	img := m.newImage(decoded)
	m.images.Put(filename, img)
	return img, nil
}

// LoadSequence returns every frame of a texture sequence.
func (m *TextureManager) LoadSequence(name TextureSequenceName) ([]*ebiten.Image, error) {
	filename, err := SequenceFile(name)
	if err != nil {
		return nil, err
	}
	if frames, ok := m.sequences.Get(filename); ok {
		return frames, nil
	}
	if err, ok := m.missing[filename]; ok {
		return nil, err
	}

	decoded, err := m.decodeSequence(filename)
	if err != nil {
		m.missing[filename] = err
		return nil, err
	}

	frames := make([]*ebiten.Image, len(decoded))
	for i, img := range decoded {
		frames[i] = m.newImage(img)
	}
	m.sequences.Put(filename, frames)
	return frames, nil
}

func (m *TextureManager) decodeFile(filename string) (image.Image, error) {
	f, err := m.open(filename, config.Textures.ImageExtensions)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := m.decoder.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	return img, nil
}

func (m *TextureManager) decodeSequence(filename string) ([]image.Image, error) {
	f, err := m.open(filename, config.Textures.SequenceExtensions)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frames, err := m.decoder.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("sequence %s has no frames", filename)
	}
	return frames, nil
}

// Texture returns the image for name. An unmapped name panics; a missing or
// unreadable file logs a warning once and yields a placeholder.
func (m *TextureManager) Texture(name TextureName) *ebiten.Image {
	img, err := m.LoadTexture(name)
	if errors.Is(err, ErrUnknownAsset) {
		panic(err)
	}
	if err != nil {
		m.warn(name.String(), err)
		return m.placeholderImage()
	}
	return img
}

// Sequence is the texture sequence counterpart of Texture. A missing file
// yields a single placeholder frame.
func (m *TextureManager) Sequence(name TextureSequenceName) []*ebiten.Image {
	frames, err := m.LoadSequence(name)
	if errors.Is(err, ErrUnknownAsset) {
		panic(err)
	}
	if err != nil {
		m.warn(name.String(), err)
		return []*ebiten.Image{m.placeholderImage()}
	}
	return frames
}

// Close releases every cached image.
func (m *TextureManager) Close() {
	capacity := m.images.Capacity()
	m.images.Resize(0)
	m.images.Resize(capacity)

	capacity = m.sequences.Capacity()
	m.sequences.Resize(0)
	m.sequences.Resize(capacity)

	deallocate(m.placeholder)
	m.placeholder = nil
}

func (m *TextureManager) warn(name string, err error) {
	if m.warned[name] {
		return
	}
	m.warned[name] = true
	log.Printf("Warning: [textures] %s unavailable: %v", name, err)
}

func (m *TextureManager) placeholderImage() *ebiten.Image {
	if m.placeholder == nil {
		size := config.Textures.PlaceholderSize
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: config.Magenta}, image.Point{}, draw.Src)
		m.placeholder = m.newImage(img)
	}
	return m.placeholder
}

// ConvertedNames lists the files tried for a legacy filename, in order: its
// stem with each extension in upper and lower case, then the name itself.
func ConvertedNames(filename string, exts []string) []string {
	stem := strings.TrimSuffix(filename, path.Ext(filename))
	candidates := make([]string, 0, 2*len(exts)+1)
	for _, ext := range exts {
		candidates = append(candidates, stem+ext, strings.ToLower(stem)+ext)
	}
	return append(candidates, filename)
}

func (m *TextureManager) open(filename string, exts []string) (fs.File, error) {
	for _, c := range ConvertedNames(filename, exts) {
		f, err := m.fsys.Open(c)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to open %s: %w", c, err)
		}
	}
	return nil, fmt.Errorf("no converted file for %s: %w", filename, fs.ErrNotExist)
}
