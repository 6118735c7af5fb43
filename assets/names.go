package assets

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAsset is returned when a symbolic name has no legacy filename.
var ErrUnknownAsset = errors.New("unknown asset name")

// PaletteName identifies a color palette in the original game data.
type PaletteName int

const (
	DefaultPalette PaletteName = iota
	CharSheetPalette
	DaytimePalette
	DrearyPalette
)

// MusicName identifies a music track in the original game data.
type MusicName int

const (
	ArabCityEnter MusicName = iota
	ArabTownEnter
	ArabVillageEnter
	CityEnter
	Combat
	Credits
	Dungeon1
	Dungeon2
	Dungeon3
	Dungeon4
	Dungeon5
	Equipment
	Evil
	EvilIntro
	Magic
	Night
	Overcast
	OverSnow
	Palace
	PercIntro
	Raining
	Sheet
	Sneaking
	Snowing
	Square
	SunnyDay
	Swimming
	Tavern
	Temple
	TownEnter
	VillageEnter
	Vision
	WinGame
)

var paletteFiles = map[PaletteName]string{
	DefaultPalette:   "PAL.COL",
	CharSheetPalette: "CHARSHT.COL",
	DaytimePalette:   "DAYTIME.COL",
	DrearyPalette:    "DREARY.COL",
}

var musicFiles = map[MusicName]string{
	ArabCityEnter:    "ARABCITY.XMI",
	ArabTownEnter:    "ARABTOWN.XMI",
	ArabVillageEnter: "ARAB_VLG.XMI",
	CityEnter:        "CITY.XMI",
	Combat:           "COMBAT.XMI",
	Credits:          "CREDITS.XMI",
	Dungeon1:         "DUNGEON1.XMI",
	Dungeon2:         "DUNGEON2.XMI",
	Dungeon3:         "DUNGEON3.XMI",
	Dungeon4:         "DUNGEON4.XMI",
	Dungeon5:         "DUNGEON5.XMI",
	Equipment:        "EQUIPMNT.XMI",
	Evil:             "EVIL.XMI",
	EvilIntro:        "EVLINTRO.XMI",
	Magic:            "MAGIC_2.XMI",
	Night:            "NIGHT.XMI",
	Overcast:         "OVERCAST.XMI",
	OverSnow:         "OVERSNOW.XMI",
	Palace:           "PALACE.XMI",
	PercIntro:        "PERCNTRO.XMI",
	Raining:          "RAINING.XMI",
	Sheet:            "SHEET.XMI",
	Sneaking:         "SNEAKING.XMI",
	Snowing:          "SNOWING.XMI",
	Square:           "SQUARE.XMI",
	SunnyDay:         "SUNNYDAY.XMI",
	Swimming:         "SWIMMING.XMI",
	Tavern:           "TAVERN.XMI",
	Temple:           "TEMPLE.XMI",
	TownEnter:        "TOWN.XMI",
	VillageEnter:     "VILLAGE.XMI",
	Vision:           "VISION.XMI",
	WinGame:          "WINGAME.XMI",
}

var paletteLabels = [...]string{
	DefaultPalette:   "DefaultPalette",
	CharSheetPalette: "CharSheetPalette",
	DaytimePalette:   "DaytimePalette",
	DrearyPalette:    "DrearyPalette",
}

var musicLabels = [...]string{
	ArabCityEnter:    "ArabCityEnter",
	ArabTownEnter:    "ArabTownEnter",
	ArabVillageEnter: "ArabVillageEnter",
	CityEnter:        "CityEnter",
	Combat:           "Combat",
	Credits:          "Credits",
	Dungeon1:         "Dungeon1",
	Dungeon2:         "Dungeon2",
	Dungeon3:         "Dungeon3",
	Dungeon4:         "Dungeon4",
	Dungeon5:         "Dungeon5",
	Equipment:        "Equipment",
	Evil:             "Evil",
	EvilIntro:        "EvilIntro",
	Magic:            "Magic",
	Night:            "Night",
	Overcast:         "Overcast",
	OverSnow:         "OverSnow",
	Palace:           "Palace",
	PercIntro:        "PercIntro",
	Raining:          "Raining",
	Sheet:            "Sheet",
	Sneaking:         "Sneaking",
	Snowing:          "Snowing",
	Square:           "Square",
	SunnyDay:         "SunnyDay",
	Swimming:         "Swimming",
	Tavern:           "Tavern",
	Temple:           "Temple",
	TownEnter:        "TownEnter",
	VillageEnter:     "VillageEnter",
	Vision:           "Vision",
	WinGame:          "WinGame",
}

func (n TextureName) String() string {
	if n >= 0 && int(n) < len(textureLabels) {
		return textureLabels[n]
	}
	return fmt.Sprintf("TextureName(%d)", int(n))
}

func (n TextureSequenceName) String() string {
	if n >= 0 && int(n) < len(sequenceLabels) {
		return sequenceLabels[n]
	}
	return fmt.Sprintf("TextureSequenceName(%d)", int(n))
}

func (n PaletteName) String() string {
	if n >= 0 && int(n) < len(paletteLabels) {
		return paletteLabels[n]
	}
	return fmt.Sprintf("PaletteName(%d)", int(n))
}

func (n MusicName) String() string {
	if n >= 0 && int(n) < len(musicLabels) {
		return musicLabels[n]
	}
	return fmt.Sprintf("MusicName(%d)", int(n))
}

// TextureFile returns the legacy filename of a texture.
func TextureFile(name TextureName) (string, error) {
	f, ok := textureFiles[name]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownAsset, name)
	}
	return f, nil
}

// SequenceFile returns the legacy filename of a texture sequence.
func SequenceFile(name TextureSequenceName) (string, error) {
	f, ok := sequenceFiles[name]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownAsset, name)
	}
	return f, nil
}

// PaletteFile returns the legacy filename of a palette.
func PaletteFile(name PaletteName) (string, error) {
	f, ok := paletteFiles[name]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownAsset, name)
	}
	return f, nil
}

// MusicFile returns the legacy filename of a music track.
func MusicFile(name MusicName) (string, error) {
	f, ok := musicFiles[name]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownAsset, name)
	}
	return f, nil
}

// MustTextureFile is like TextureFile but panics on an unmapped name.
func MustTextureFile(name TextureName) string {
	f, err := TextureFile(name)
	if err != nil {
		panic(err)
	}
	return f
}

// MustSequenceFile is like SequenceFile but panics on an unmapped name.
func MustSequenceFile(name TextureSequenceName) string {
	f, err := SequenceFile(name)
	if err != nil {
		panic(err)
	}
	return f
}

// TextureNames returns every mapped texture name in ascending order.
func TextureNames() []TextureName {
	names := make([]TextureName, 0, len(textureFiles))
	for n := range textureFiles {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// SequenceNames returns every mapped sequence name in ascending order.
func SequenceNames() []TextureSequenceName {
	names := make([]TextureSequenceName, 0, len(sequenceFiles))
	for n := range sequenceFiles {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// PaletteNames returns every mapped palette name in ascending order.
func PaletteNames() []PaletteName {
	names := make([]PaletteName, 0, len(paletteFiles))
	for n := range paletteFiles {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// MusicNames returns every mapped music name in ascending order.
func MusicNames() []MusicName {
	names := make([]MusicName, 0, len(musicFiles))
	for n := range musicFiles {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
