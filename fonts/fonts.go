package fonts

import (
	"bytes"
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontName is the legacy font file a face stands in for.
type FontName string

const (
	A     FontName = "FONT_A.DAT"
	Arena FontName = "ARENAFNT.DAT"
	B     FontName = "FONT_B.DAT"
	C     FontName = "FONT_C.DAT"
	Char  FontName = "CHARFNT.DAT"
	D     FontName = "FONT_D.DAT"
	Four  FontName = "FONT4.DAT"
	S     FontName = "FONT_S.DAT"
	Teeny FontName = "TEENYFNT.DAT"
)

// Point sizes in original-resolution pixels, close to the legacy glyph heights.
var sizes = map[FontName]float64{
	A:     11,
	Arena: 9,
	B:     8,
	C:     13,
	Char:  8,
	D:     10,
	Four:  7,
	S:     6,
	Teeny: 6,
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads every font from the bundled Go regular typeface.
func LoadDefaults() {
	for name, size := range sizes {
		LoadFontWithSize(name, goregular.TTF, size)
	}
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Fatalf("failed to parse font %s: %v", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// Measure returns the advance width of s in pixels.
func Measure(name FontName, s string) int {
	return font.MeasureString(getFont(name), s).Ceil()
}

// LineHeight returns the distance between baselines in pixels.
func LineHeight(name FontName) int {
	return getFont(name).Metrics().Height.Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(name FontName) int {
	return getFont(name).Metrics().Ascent.Ceil()
}

// UIFace returns a text/v2 face for ebitenui widgets.
func UIFace(size float64) text.Face {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: size}
}
