package config

import (
	"image"
	"image/color"
)

// Original game resolution. Every panel lays itself out in this space and the
// renderer scales the result onto the window.
const (
	OriginalWidth  = 320
	OriginalHeight = 200
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CursorConfig contains mouse cursor drawing values
type CursorConfig struct {
	// Cursor size relative to the letterbox scale (1.0 = original pixels)
	Scale float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	NewGameButton image.Rectangle
	ExitButton    image.Rectangle
}

// IntroConfig contains intro image timings
type IntroConfig struct {
	TitleSeconds float64
	QuoteSeconds float64
	FadeSeconds  float32
}

// CinematicConfig contains image sequence playback values
type CinematicConfig struct {
	OpeningScrollSecondsPerImage float64
}

// ClassCreationConfig contains the "how do you wish to select your class" screen layout
type ClassCreationConfig struct {
	TitleCenter    image.Point
	GenerateCenter image.Point
	SelectCenter   image.Point
	ButtonWidth    int
	ButtonHeight   int
	TitleColor     color.RGBA
}

// TooltipConfig contains hover tooltip drawing values
type TooltipConfig struct {
	Padding    int
	Background color.RGBA
	TextColor  color.RGBA
}

// ClassListConfig contains class selection list configuration
type ClassListConfig struct {
	TitleCenter    image.Point
	TitleColor     color.RGBA
	ListOrigin     image.Point
	ListWidth      int
	RowHeight      int
	MaxDisplayed   int
	TextColor      color.RGBA
	UpButton       image.Rectangle
	DownButton     image.Rectangle
	MaxTooltipLine int // characters before an item list wraps
}

// NameConfig contains name entry configuration
type NameConfig struct {
	MaxLength int
}

// GenderConfig contains gender selection layout
type GenderConfig struct {
	TitleCenter  image.Point
	MaleCenter   image.Point
	FemaleCenter image.Point
	ButtonWidth  int
	ButtonHeight int
	TextColor    color.RGBA
}

// RaceConfig contains the province map hit regions
type RaceConfig struct {
	TitleCenter image.Point
	TextColor   color.RGBA
	Provinces   map[int]image.Rectangle
}

// GameWorldConfig contains the in-game interface layout
type GameWorldConfig struct {
	StatusOrigin image.Point
	TextColor    color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	ResumeButton  image.Rectangle
	OptionsButton image.Rectangle
	NewGameButton image.Rectangle
	ExitButton    image.Rectangle
}

// OptionsMenuConfig contains options screen configuration values
type OptionsMenuConfig struct {
	TitleCenter     image.Point
	FPSTextOrigin   image.Point
	FPSUpButton     image.Rectangle
	FPSStep         int
	BackgroundColor color.RGBA
	TextColor       color.RGBA
}

// Global configuration instances
var C *Config
var Cursor CursorConfig
var Menu MenuConfig
var Intro IntroConfig
var Cinematic CinematicConfig
var ClassCreation ClassCreationConfig
var Tooltip TooltipConfig
var ClassList ClassListConfig
var Name NameConfig
var Gender GenderConfig
var Race RaceConfig
var GameWorld GameWorldConfig
var Pause PauseConfig
var OptionsMenu OptionsMenuConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Parchment   = color.RGBA{R: 48, G: 12, B: 12, A: 255}
	Gold        = color.RGBA{R: 190, G: 113, B: 0, A: 255}
	Slate       = color.RGBA{R: 70, G: 70, B: 78, A: 255}
	TooltipGray = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 800,
		Title:  "OpenTESArena",
	}

	Cursor = CursorConfig{
		Scale: 1.0,
	}

	Menu = MenuConfig{
		NewGameButton: image.Rect(168, 58, 168+112, 58+15),
		ExitButton:    image.Rect(168, 158, 168+112, 158+15),
	}

	Intro = IntroConfig{
		TitleSeconds: 5.0,
		QuoteSeconds: 5.0,
		FadeSeconds:  1.0,
	}

	Cinematic = CinematicConfig{
		OpeningScrollSecondsPerImage: 0.042,
	}

	ClassCreation = ClassCreationConfig{
		TitleCenter:    image.Pt(160, 80),
		GenerateCenter: image.Pt(160, 120),
		SelectCenter:   image.Pt(160, 160),
		ButtonWidth:    175,
		ButtonHeight:   35,
		TitleColor:     Parchment,
	}

	Tooltip = TooltipConfig{
		Padding:    3,
		Background: TooltipGray,
		TextColor:  White,
	}

	ClassList = ClassListConfig{
		TitleCenter:    image.Pt(160, 56),
		TitleColor:     Parchment,
		ListOrigin:     image.Pt((OriginalWidth/2)-58, OriginalHeight/2),
		ListWidth:      116,
		RowHeight:      9,
		MaxDisplayed:   6,
		TextColor:      Gold,
		UpButton:       image.Rect((OriginalWidth/2)-71, (OriginalHeight/2)-7, (OriginalWidth/2)-71+8, (OriginalHeight/2)-7+8),
		DownButton:     image.Rect((OriginalWidth/2)-71, (OriginalHeight/2)+62, (OriginalWidth/2)-71+8, (OriginalHeight/2)+62+8),
		MaxTooltipLine: 14,
	}

	Name = NameConfig{
		MaxLength: 25,
	}

	Gender = GenderConfig{
		TitleCenter:  image.Pt(160, 80),
		MaleCenter:   image.Pt(160, 120),
		FemaleCenter: image.Pt(160, 150),
		ButtonWidth:  120,
		ButtonHeight: 24,
		TextColor:    Parchment,
	}

	// Province regions on the 320x200 world map, keyed by province ID.
	Race = RaceConfig{
		TitleCenter: image.Pt(160, 12),
		TextColor:   White,
		Provinces: map[int]image.Rectangle{
			0: image.Rect(52, 51, 96, 86),     // High Rock
			1: image.Rect(43, 89, 110, 130),   // Hammerfell
			2: image.Rect(98, 30, 176, 74),    // Skyrim
			3: image.Rect(180, 51, 250, 98),   // Morrowind
			4: image.Rect(40, 134, 92, 180),   // Summerset Isle
			5: image.Rect(96, 123, 140, 168),  // Valenwood
			6: image.Rect(140, 123, 200, 160), // Elsweyr
			7: image.Rect(200, 110, 252, 158), // Black Marsh
		},
	}

	GameWorld = GameWorldConfig{
		StatusOrigin: image.Pt(8, 8),
		TextColor:    White,
	}

	Pause = PauseConfig{
		ResumeButton:  image.Rect(92, 116, 92+48, 116+20),
		OptionsButton: image.Rect(162, 88, 162+48, 88+20),
		NewGameButton: image.Rect(92, 88, 92+48, 88+20),
		ExitButton:    image.Rect(162, 116, 162+48, 116+20),
		TextColor:     White,
	}

	OptionsMenu = OptionsMenuConfig{
		TitleCenter:     image.Pt(160, 30),
		FPSTextOrigin:   image.Pt(20, 45),
		FPSUpButton:     image.Rect(85, 41, 85+8, 41+8),
		FPSStep:         5,
		BackgroundColor: Slate,
		TextColor:       White,
	}
}
