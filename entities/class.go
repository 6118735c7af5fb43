package entities

import "slices"

// ClassCategory groups classes by playstyle
type ClassCategory int

const (
	CategoryMage ClassCategory = iota
	CategoryThief
	CategoryWarrior
)

func (c ClassCategory) String() string {
	switch c {
	case CategoryMage:
		return "Mage"
	case CategoryThief:
		return "Thief"
	case CategoryWarrior:
		return "Warrior"
	}
	return "Unknown"
}

// ArmorMaterial values are ordered lightest first
type ArmorMaterial int

const (
	ArmorLeather ArmorMaterial = iota
	ArmorChain
	ArmorPlate
)

func (a ArmorMaterial) String() string {
	switch a {
	case ArmorLeather:
		return "Leather"
	case ArmorChain:
		return "Chain"
	case ArmorPlate:
		return "Plate"
	}
	return "Unknown"
}

// ShieldType values are ordered smallest first
type ShieldType int

const (
	ShieldBuckler ShieldType = iota
	ShieldRound
	ShieldKite
	ShieldTower
)

func (s ShieldType) String() string {
	switch s {
	case ShieldBuckler:
		return "Buckler"
	case ShieldRound:
		return "Round"
	case ShieldKite:
		return "Kite"
	case ShieldTower:
		return "Tower"
	}
	return "Unknown"
}

// WeaponType values are ordered alphabetically by display name
type WeaponType int

const (
	WeaponBattleAxe WeaponType = iota
	WeaponBroadsword
	WeaponClaymore
	WeaponDagger
	WeaponDaiKatana
	WeaponFlail
	WeaponKatana
	WeaponLongBow
	WeaponLongsword
	WeaponMace
	WeaponSaber
	WeaponShortBow
	WeaponShortsword
	WeaponStaff
	WeaponTanto
	WeaponWakizashi
	WeaponWarAxe
	WeaponWarHammer
)

var weaponNames = [...]string{
	WeaponBattleAxe:  "Battle Axe",
	WeaponBroadsword: "Broadsword",
	WeaponClaymore:   "Claymore",
	WeaponDagger:     "Dagger",
	WeaponDaiKatana:  "Dai-Katana",
	WeaponFlail:      "Flail",
	WeaponKatana:     "Katana",
	WeaponLongBow:    "Long Bow",
	WeaponLongsword:  "Longsword",
	WeaponMace:       "Mace",
	WeaponSaber:      "Saber",
	WeaponShortBow:   "Short Bow",
	WeaponShortsword: "Shortsword",
	WeaponStaff:      "Staff",
	WeaponTanto:      "Tanto",
	WeaponWakizashi:  "Wakizashi",
	WeaponWarAxe:     "War Axe",
	WeaponWarHammer:  "War Hammer",
}

func (w WeaponType) String() string {
	if w >= 0 && int(w) < len(weaponNames) {
		return weaponNames[w]
	}
	return "Unknown"
}

// CharacterClass describes a playable class and what it may equip.
type CharacterClass struct {
	Name           string
	Category       ClassCategory
	CastsMagic     bool
	StartingHealth int
	HealthDice     int
	Armors         []ArmorMaterial
	Shields        []ShieldType
	Weapons        []WeaponType
}

// Clone returns a deep copy.
func (c *CharacterClass) Clone() *CharacterClass {
	out := *c
	out.Armors = slices.Clone(c.Armors)
	out.Shields = slices.Clone(c.Shields)
	out.Weapons = slices.Clone(c.Weapons)
	return &out
}

var (
	allShields = []ShieldType{ShieldBuckler, ShieldRound, ShieldKite, ShieldTower}
	allArmors  = []ArmorMaterial{ArmorLeather, ArmorChain, ArmorPlate}
	allWeapons = []WeaponType{
		WeaponBattleAxe, WeaponBroadsword, WeaponClaymore, WeaponDagger,
		WeaponDaiKatana, WeaponFlail, WeaponKatana, WeaponLongBow,
		WeaponLongsword, WeaponMace, WeaponSaber, WeaponShortBow,
		WeaponShortsword, WeaponStaff, WeaponTanto, WeaponWakizashi,
		WeaponWarAxe, WeaponWarHammer,
	}
)

// classes is the compiled-in roster, in roster order rather than sorted.
var classes = []CharacterClass{
	// Mage
	{"Mage", CategoryMage, true, 20, 6, nil, nil,
		[]WeaponType{WeaponDagger, WeaponStaff}},
	{"Spellsword", CategoryMage, true, 20, 8,
		[]ArmorMaterial{ArmorLeather, ArmorChain},
		[]ShieldType{ShieldBuckler, ShieldRound},
		[]WeaponType{WeaponBroadsword, WeaponDagger, WeaponLongsword, WeaponMace, WeaponSaber, WeaponShortsword, WeaponStaff}},
	{"Battlemage", CategoryMage, true, 20, 8,
		[]ArmorMaterial{ArmorLeather},
		[]ShieldType{ShieldBuckler},
		[]WeaponType{WeaponBroadsword, WeaponDagger, WeaponMace, WeaponShortsword, WeaponStaff}},
	{"Sorcerer", CategoryMage, true, 20, 6,
		[]ArmorMaterial{ArmorLeather, ArmorChain}, nil,
		[]WeaponType{WeaponDagger, WeaponMace, WeaponStaff}},
	{"Healer", CategoryMage, true, 20, 6,
		[]ArmorMaterial{ArmorLeather},
		[]ShieldType{ShieldBuckler},
		[]WeaponType{WeaponFlail, WeaponMace, WeaponStaff}},
	{"Nightblade", CategoryMage, true, 20, 8,
		[]ArmorMaterial{ArmorLeather},
		[]ShieldType{ShieldBuckler},
		[]WeaponType{WeaponDagger, WeaponLongBow, WeaponSaber, WeaponShortBow, WeaponShortsword}},

	// Thief
	{"Bard", CategoryThief, true, 20, 10,
		[]ArmorMaterial{ArmorLeather, ArmorChain},
		[]ShieldType{ShieldBuckler, ShieldRound},
		[]WeaponType{WeaponBroadsword, WeaponDagger, WeaponSaber, WeaponShortBow, WeaponShortsword}},
	{"Burglar", CategoryThief, false, 25, 10,
		[]ArmorMaterial{ArmorLeather},
		[]ShieldType{ShieldBuckler},
		[]WeaponType{WeaponDagger, WeaponShortBow, WeaponShortsword}},
	{"Rogue", CategoryThief, false, 25, 12,
		[]ArmorMaterial{ArmorLeather, ArmorChain},
		[]ShieldType{ShieldBuckler, ShieldRound},
		[]WeaponType{WeaponBroadsword, WeaponDagger, WeaponLongsword, WeaponMace, WeaponSaber, WeaponShortBow, WeaponShortsword, WeaponWarAxe}},
	{"Acrobat", CategoryThief, false, 25, 10,
		[]ArmorMaterial{ArmorLeather},
		[]ShieldType{ShieldBuckler},
		[]WeaponType{WeaponDagger, WeaponSaber, WeaponShortBow, WeaponShortsword}},
	{"Thief", CategoryThief, false, 25, 10,
		[]ArmorMaterial{ArmorLeather},
		[]ShieldType{ShieldBuckler},
		[]WeaponType{WeaponDagger, WeaponSaber, WeaponShortBow, WeaponShortsword}},
	{"Assassin", CategoryThief, false, 25, 12,
		[]ArmorMaterial{ArmorLeather, ArmorChain},
		[]ShieldType{ShieldBuckler},
		[]WeaponType{WeaponDagger, WeaponKatana, WeaponLongBow, WeaponSaber, WeaponShortBow, WeaponShortsword, WeaponTanto, WeaponWakizashi}},

	// Warrior
	{"Monk", CategoryWarrior, false, 25, 10, nil, nil, nil},
	{"Archer", CategoryWarrior, false, 25, 12,
		[]ArmorMaterial{ArmorLeather, ArmorChain},
		[]ShieldType{ShieldBuckler},
		[]WeaponType{WeaponDagger, WeaponLongBow, WeaponShortBow, WeaponShortsword}},
	{"Ranger", CategoryWarrior, false, 25, 14,
		[]ArmorMaterial{ArmorLeather, ArmorChain},
		[]ShieldType{ShieldBuckler, ShieldRound},
		[]WeaponType{WeaponBattleAxe, WeaponBroadsword, WeaponDagger, WeaponLongBow, WeaponShortBow, WeaponShortsword, WeaponWarAxe}},
	{"Barbarian", CategoryWarrior, false, 25, 14,
		[]ArmorMaterial{ArmorLeather},
		[]ShieldType{ShieldBuckler, ShieldRound, ShieldKite},
		[]WeaponType{WeaponBattleAxe, WeaponBroadsword, WeaponClaymore, WeaponDagger, WeaponFlail, WeaponLongsword, WeaponMace, WeaponShortBow, WeaponWarAxe, WeaponWarHammer}},
	{"Warrior", CategoryWarrior, false, 25, 15, allArmors, allShields, allWeapons},
	{"Knight", CategoryWarrior, false, 25, 16, allArmors, allShields, allWeapons},
}

// Classes returns a fresh copy of every class, in roster order.
func Classes() []*CharacterClass {
	out := make([]*CharacterClass, len(classes))
	for i := range classes {
		out[i] = classes[i].Clone()
	}
	return out
}
