package entities

import (
	"fmt"
	"strings"
	"unicode"
)

// Gender of the player character
type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Female {
		return "Female"
	}
	return "Male"
}

// Province is a selectable home province, keyed by its map region ID
type Province int

const (
	HighRock Province = iota
	Hammerfell
	Skyrim
	Morrowind
	SummersetIsle
	Valenwood
	Elsweyr
	BlackMarsh
	ProvinceCount
)

var provinceNames = [...]string{
	HighRock:      "High Rock",
	Hammerfell:    "Hammerfell",
	Skyrim:        "Skyrim",
	Morrowind:     "Morrowind",
	SummersetIsle: "Summerset Isle",
	Valenwood:     "Valenwood",
	Elsweyr:       "Elsweyr",
	BlackMarsh:    "Black Marsh",
}

var raceNames = [...]string{
	HighRock:      "Breton",
	Hammerfell:    "Redguard",
	Skyrim:        "Nord",
	Morrowind:     "Dark Elf",
	SummersetIsle: "High Elf",
	Valenwood:     "Wood Elf",
	Elsweyr:       "Khajiit",
	BlackMarsh:    "Argonian",
}

func (p Province) Valid() bool {
	return p >= 0 && p < ProvinceCount
}

func (p Province) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Province(%d)", int(p))
	}
	return provinceNames[p]
}

// Race returns the name of the race native to the province.
func (p Province) Race() string {
	if !p.Valid() {
		return ""
	}
	return raceNames[p]
}

// Player is the character created at the start of a session.
type Player struct {
	Name     string
	Gender   Gender
	Province Province
	Class    *CharacterClass
}

// GameData holds everything that only exists while a session is running.
type GameData struct {
	Player Player
}

// NewGameData starts a session for player.
func NewGameData(player Player) *GameData {
	return &GameData{Player: player}
}

// Summary is a one-line description of the player.
func (p Player) Summary() string {
	className := "?"
	if p.Class != nil {
		className = p.Class.Name
	}
	return fmt.Sprintf("%s, %s %s %s of %s", p.Name, p.Gender, p.Province.Race(), className, p.Province)
}

// NormalizeName trims a candidate player name and reports whether it is
// usable: non-empty, at most maxLen runes, printable characters only.
func NormalizeName(name string, maxLen int) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > maxLen {
		return name, false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return name, false
		}
	}
	return name, true
}
