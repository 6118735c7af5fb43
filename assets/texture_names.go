package assets

// TextureName identifies a single image in the original game data.
type TextureName int

const (
	// Character sheet heads
	FemaleArgonianHeads TextureName = iota
	FemaleBretonHeads
	FemaleDarkElfHeads
	FemaleHighElfHeads
	FemaleKhajiitHeads
	FemaleNordHeads
	FemaleRedguardHeads
	FemaleWoodElfHeads
	MaleArgonianHeads
	MaleBretonHeads
	MaleDarkElfHeads
	MaleHighElfHeads
	MaleKhajiitHeads
	MaleNordHeads
	MaleRedguardHeads
	MaleWoodElfHeads

	// In-game interface heads
	FemaleArgonianTrimmedHeads
	FemaleBretonTrimmedHeads
	FemaleDarkElfTrimmedHeads
	FemaleHighElfTrimmedHeads
	FemaleKhajiitTrimmedHeads
	FemaleNordTrimmedHeads
	FemaleRedguardTrimmedHeads
	FemaleWoodElfTrimmedHeads
	MaleArgonianTrimmedHeads
	MaleBretonTrimmedHeads
	MaleDarkElfTrimmedHeads
	MaleHighElfTrimmedHeads
	MaleKhajiitTrimmedHeads
	MaleNordTrimmedHeads
	MaleRedguardTrimmedHeads
	MaleWoodElfTrimmedHeads

	// Character backgrounds
	FemaleArgonianBackground
	FemaleBretonBackground
	FemaleDarkElfBackground
	FemaleHighElfBackground
	FemaleKhajiitBackground
	FemaleNordBackground
	FemaleRedguardBackground
	FemaleWoodElfBackground
	MaleArgonianBackground
	MaleBretonBackground
	MaleDarkElfBackground
	MaleHighElfBackground
	MaleKhajiitBackground
	MaleNordBackground
	MaleRedguardBackground
	MaleWoodElfBackground

	// Cursors
	ArrowCursors
	QuillCursor
	SwordCursor

	// Equipment overlays
	FemaleEquipment
	FemaleHelmet
	FemaleNonMagicShirt
	FemaleMagicShirt
	FemaleDemoTop
	FemalePants
	MaleEquipment
	MaleHelmet
	MaleNonMagicShirt
	MaleMagicShirt
	MalePants

	// Interface
	AcceptReject
	AcceptCounterReject
	AddJobStatusCancel
	BarterBackground
	BonusPointsText
	Brass
	Brass2
	CharacterCreation
	CharacterEquipment
	CharacterStats
	CompassFrame
	CompassSlider
	GameWorldInterface
	IntroTitle
	IntroQuote
	LoadSave
	Logbook
	MainMenu
	Marble
	Marble2
	NextPage
	NoExit
	NoSpell
	Parchment
	ParchmentBig
	PauseBackground
	PopUp
	PopUp2
	PopUp11
	RaceSelect
	Scroll
	SpellbookText
	StatusGradients
	UpDown
	YesNoCancel

	// Main quest splash screens
	CryptOfHeartsSplash
	CrystalTowerSplash
	DagothUrSplash
	EldenGroveSplash
	FangLairSplash
	HallsOfColossusSplash
	LabyrinthianSplash
	MurkwoodSplash

	// Maps
	Automap
	BlackMarshMap
	ElsweyrMap
	HammerfellMap
	HighRockMap
	ImperialProvinceMap
	MorrowindMap
	SkyrimMap
	SummersetIsleMap
	ValenwoodMap
	WorldMap

	// Map icons
	CityStateIcon
	DungeonIcon
	TownIcon
	VillageIcon

	// Spellbook and spellmaker
	BuySpellBackground
	Form1
	Form2
	Form3
	Form4
	Form4A
	Form5
	Form6
	Form6A
	Form7
	Form8
	Form9
	Form10
	Form11
	Form12
	Form13
	Form14
	Form15
	SpellMakerBackground

	// Weapon animations
	ArrowsAnimation
	AxeAnimation
	ChainAnimation
	FistsAnimation
	FlailAnimation
	HammerAnimation
	MaceAnimation
	PlateAnimation
	StaffAnimation
	SwordAnimation
)

// TextureSequenceName identifies an animation or cinematic in the original game data.
type TextureSequenceName int

const (
	ChaosVision TextureSequenceName = iota
	End01
	End02
	Jagar
	JagarDeath
	JagarShield
	King
	Mage
	Morph
	OpeningScroll
	Rogue
	Silmane
	Warhaft
	Warrior
)

var textureFiles = map[TextureName]string{
	// Character sheet heads
	FemaleArgonianHeads: "FACESF17.CIF",
	FemaleBretonHeads:   "FACESF10.CIF",
	FemaleDarkElfHeads:  "FACESF13.CIF",
	FemaleHighElfHeads:  "FACESF14.CIF",
	FemaleKhajiitHeads:  "FACESF16.CIF",
	FemaleNordHeads:     "FACESF12.CIF",
	FemaleRedguardHeads: "FACESF11.CIF",
	FemaleWoodElfHeads:  "FACESF15.CIF",
	MaleArgonianHeads:   "FACES17.CIF",
	MaleBretonHeads:     "FACES10.CIF",
	MaleDarkElfHeads:    "FACES13.CIF",
	MaleHighElfHeads:    "FACES14.CIF",
	MaleKhajiitHeads:    "FACES16.CIF",
	MaleNordHeads:       "FACES12.CIF",
	MaleRedguardHeads:   "FACES11.CIF",
	MaleWoodElfHeads:    "FACES15.CIF",

	// In-game interface heads
	FemaleArgonianTrimmedHeads: "FACESF07.CIF",
	FemaleBretonTrimmedHeads:   "FACESF00.CIF",
	FemaleDarkElfTrimmedHeads:  "FACESF03.CIF",
	FemaleHighElfTrimmedHeads:  "FACESF04.CIF",
	FemaleKhajiitTrimmedHeads:  "FACESF06.CIF",
	FemaleNordTrimmedHeads:     "FACESF02.CIF",
	FemaleRedguardTrimmedHeads: "FACESF01.CIF",
	FemaleWoodElfTrimmedHeads:  "FACESF05.CIF",
	MaleArgonianTrimmedHeads:   "FACES07.CIF",
	MaleBretonTrimmedHeads:     "FACES00.CIF",
	MaleDarkElfTrimmedHeads:    "FACES03.CIF",
	MaleHighElfTrimmedHeads:    "FACES04.CIF",
	MaleKhajiitTrimmedHeads:    "FACES06.CIF",
	MaleNordTrimmedHeads:       "FACES02.CIF",
	MaleRedguardTrimmedHeads:   "FACES01.CIF",
	MaleWoodElfTrimmedHeads:    "FACES05.CIF",

	// Character backgrounds
	FemaleArgonianBackground: "CHRBKF07.IMG",
	FemaleBretonBackground:   "CHRBKF00.IMG",
	FemaleDarkElfBackground:  "CHRBKF03.IMG",
	FemaleHighElfBackground:  "CHRBKF04.IMG",
	FemaleKhajiitBackground:  "CHRBKF06.IMG",
	FemaleNordBackground:     "CHRBKF02.IMG",
	FemaleRedguardBackground: "CHRBKF01.IMG",
	FemaleWoodElfBackground:  "CHRBKF05.IMG",
	MaleArgonianBackground:   "CHARBK07.IMG",
	MaleBretonBackground:     "CHARBK00.IMG",
	MaleDarkElfBackground:    "CHARBK03.IMG",
	MaleHighElfBackground:    "CHARBK04.IMG",
	MaleKhajiitBackground:    "CHARBK06.IMG",
	MaleNordBackground:       "CHARBK02.IMG",
	MaleRedguardBackground:   "CHARBK01.IMG",
	MaleWoodElfBackground:    "CHARBK05.IMG",

	// Cursors
	ArrowCursors: "ARROWS.CIF",
	QuillCursor:  "POINTER.IMG",
	SwordCursor:  "ARENARW.IMG",

	// Equipment overlays
	FemaleEquipment:     "1EQUIP.CIF",
	FemaleHelmet:        "1ARGHELM.IMG",
	FemaleNonMagicShirt: "FSSHIRT.IMG",
	FemaleMagicShirt:    "FRSHIRT.IMG",
	FemaleDemoTop:       "TOP.IMG",
	FemalePants:         "FPANTS.IMG",
	MaleEquipment:       "0EQUIP.CIF",
	MaleHelmet:          "0ARGHELM.IMG",
	MaleNonMagicShirt:   "MSSHIRT.IMG",
	MaleMagicShirt:      "MRSHIRT.IMG",
	MalePants:           "MPANTS.IMG",

	// Interface
	AcceptReject:        "ACCPREJT.IMG",
	AcceptCounterReject: "NEGOTBUT.IMG",
	AddJobStatusCancel:  "NEWOLD.IMG",
	BarterBackground:    "MENUSCRN.IMG",
	BonusPointsText:     "BONUS.IMG",
	Brass:               "BRASS.CIF",
	Brass2:              "BRASS2.CIF",
	CharacterCreation:   "STARTGAM.MNU",
	CharacterEquipment:  "EQUIP.IMG",
	CharacterStats:      "CHARSTAT.IMG",
	CompassFrame:        "COMPASS.IMG",
	CompassSlider:       "SLIDER.IMG",
	GameWorldInterface:  "P1.IMG",
	IntroTitle:          "TITLE.IMG",
	IntroQuote:          "QUOTE.IMG",
	LoadSave:            "LOADSAVE.IMG",
	Logbook:             "LOGBOOK.IMG",
	MainMenu:            "MENU.IMG",
	Marble:              "MARBLE.CIF",
	Marble2:             "MARBLE2.CIF",
	NextPage:            "PAGE2.IMG",
	NoExit:              "NOEXIT.IMG",
	NoSpell:             "NOSPELL.IMG",
	Parchment:           "PARCH.CIF",
	ParchmentBig:        "PARCH.IMG",
	PauseBackground:     "OP.IMG",
	PopUp:               "POPUP.IMG",
	PopUp2:              "POPUP2.IMG",
	PopUp11:             "POPUP11.IMG",
	RaceSelect:          "TAMRIEL.MNU",
	Scroll:              "SCROLL.CIF",
	SpellbookText:       "SPELLBK.IMG",
	StatusGradients:     "STATUS.CIF",
	UpDown:              "UPDOWN.IMG",
	YesNoCancel:         "YESNO.IMG",

	// Main quest splash screens
	CryptOfHeartsSplash:   "CRYPT.IMG",
	CrystalTowerSplash:    "TOWER.IMG",
	DagothUrSplash:        "DAGOTHUR.IMG",
	EldenGroveSplash:      "GROVE.IMG",
	FangLairSplash:        "FANGLAIR.IMG",
	HallsOfColossusSplash: "COLOSSUS.IMG",
	LabyrinthianSplash:    "LABRINTH.IMG",
	MurkwoodSplash:        "MIRKWOOD.IMG",

	// Maps
	Automap:             "AUTOMAP.IMG",
	BlackMarshMap:       "BLAKMRSH.IMG",
	ElsweyrMap:          "ELSWEYR.IMG",
	HammerfellMap:       "HAMERFEL.IMG",
	HighRockMap:         "HIGHROCK.IMG",
	ImperialProvinceMap: "IMPERIAL.IMG",
	MorrowindMap:        "MOROWIND.IMG",
	SkyrimMap:           "SKYRIM.IMG",
	SummersetIsleMap:    "SUMERSET.IMG",
	ValenwoodMap:        "VALNWOOD.IMG",
	WorldMap:            "TAMRIEL.MNU",

	// Map icons
	CityStateIcon: "CITY.IMG",
	DungeonIcon:   "DUNGEON.IMG",
	TownIcon:      "TOWN.IMG",
	VillageIcon:   "VILLAGE.IMG",

	// Spellbook and spellmaker
	BuySpellBackground:   "BUYSPELL.IMG",
	Form1:                "FORM1.IMG",
	Form2:                "FORM2.IMG",
	Form3:                "FORM3.IMG",
	Form4:                "FORM4.IMG",
	Form4A:               "FORM4A.IMG",
	Form5:                "FORM5.IMG",
	Form6:                "FORM6.IMG",
	Form6A:               "FORM6A.IMG",
	Form7:                "FORM7.IMG",
	Form8:                "FORM8.IMG",
	Form9:                "FORM9.IMG",
	Form10:               "FORM10.IMG",
	Form11:               "FORM11.IMG",
	Form12:               "FORM12.IMG",
	Form13:               "FORM13.IMG",
	Form14:               "FORM14.IMG",
	Form15:               "FORM15.IMG",
	SpellMakerBackground: "SPELLMKR.IMG",

	// Weapon animations
	ArrowsAnimation: "ARROWHLF.CFA",
	AxeAnimation:    "AXE.CIF",
	ChainAnimation:  "CHAIN.CIF",
	FistsAnimation:  "HAND.CIF",
	FlailAnimation:  "STAR.CIF",
	HammerAnimation: "HAMMER.CIF",
	MaceAnimation:   "MACE.CIF",
	PlateAnimation:  "PLATE.CIF",
	StaffAnimation:  "STAFF.CIF",
	SwordAnimation:  "SWORD.CIF",
}

var sequenceFiles = map[TextureSequenceName]string{
	ChaosVision:   "CHAOSVSN.FLC",
	End01:         "END01.FLC",
	End02:         "END02.FLC",
	Jagar:         "JAGAR.FLC",
	JagarDeath:    "JAGARDTH.FLC",
	JagarShield:   "JAGRSHLD.FLC",
	King:          "KING.FLC",
	Mage:          "MAGE.CEL",
	Morph:         "MORPH.FLC",
	OpeningScroll: "SCROLL.FLC",
	Rogue:         "ROGUE.CEL",
	Silmane:       "VISION.FLC",
	Warhaft:       "WARHAFT.FLC",
	Warrior:       "WARRIOR.CEL",
}

var textureLabels = [...]string{
	FemaleArgonianHeads:        "FemaleArgonianHeads",
	FemaleBretonHeads:          "FemaleBretonHeads",
	FemaleDarkElfHeads:         "FemaleDarkElfHeads",
	FemaleHighElfHeads:         "FemaleHighElfHeads",
	FemaleKhajiitHeads:         "FemaleKhajiitHeads",
	FemaleNordHeads:            "FemaleNordHeads",
	FemaleRedguardHeads:        "FemaleRedguardHeads",
	FemaleWoodElfHeads:         "FemaleWoodElfHeads",
	MaleArgonianHeads:          "MaleArgonianHeads",
	MaleBretonHeads:            "MaleBretonHeads",
	MaleDarkElfHeads:           "MaleDarkElfHeads",
	MaleHighElfHeads:           "MaleHighElfHeads",
	MaleKhajiitHeads:           "MaleKhajiitHeads",
	MaleNordHeads:              "MaleNordHeads",
	MaleRedguardHeads:          "MaleRedguardHeads",
	MaleWoodElfHeads:           "MaleWoodElfHeads",
	FemaleArgonianTrimmedHeads: "FemaleArgonianTrimmedHeads",
	FemaleBretonTrimmedHeads:   "FemaleBretonTrimmedHeads",
	FemaleDarkElfTrimmedHeads:  "FemaleDarkElfTrimmedHeads",
	FemaleHighElfTrimmedHeads:  "FemaleHighElfTrimmedHeads",
	FemaleKhajiitTrimmedHeads:  "FemaleKhajiitTrimmedHeads",
	FemaleNordTrimmedHeads:     "FemaleNordTrimmedHeads",
	FemaleRedguardTrimmedHeads: "FemaleRedguardTrimmedHeads",
	FemaleWoodElfTrimmedHeads:  "FemaleWoodElfTrimmedHeads",
	MaleArgonianTrimmedHeads:   "MaleArgonianTrimmedHeads",
	MaleBretonTrimmedHeads:     "MaleBretonTrimmedHeads",
	MaleDarkElfTrimmedHeads:    "MaleDarkElfTrimmedHeads",
	MaleHighElfTrimmedHeads:    "MaleHighElfTrimmedHeads",
	MaleKhajiitTrimmedHeads:    "MaleKhajiitTrimmedHeads",
	MaleNordTrimmedHeads:       "MaleNordTrimmedHeads",
	MaleRedguardTrimmedHeads:   "MaleRedguardTrimmedHeads",
	MaleWoodElfTrimmedHeads:    "MaleWoodElfTrimmedHeads",
	FemaleArgonianBackground:   "FemaleArgonianBackground",
	FemaleBretonBackground:     "FemaleBretonBackground",
	FemaleDarkElfBackground:    "FemaleDarkElfBackground",
	FemaleHighElfBackground:    "FemaleHighElfBackground",
	FemaleKhajiitBackground:    "FemaleKhajiitBackground",
	FemaleNordBackground:       "FemaleNordBackground",
	FemaleRedguardBackground:   "FemaleRedguardBackground",
	FemaleWoodElfBackground:    "FemaleWoodElfBackground",
	MaleArgonianBackground:     "MaleArgonianBackground",
	MaleBretonBackground:       "MaleBretonBackground",
	MaleDarkElfBackground:      "MaleDarkElfBackground",
	MaleHighElfBackground:      "MaleHighElfBackground",
	MaleKhajiitBackground:      "MaleKhajiitBackground",
	MaleNordBackground:         "MaleNordBackground",
	MaleRedguardBackground:     "MaleRedguardBackground",
	MaleWoodElfBackground:      "MaleWoodElfBackground",
	ArrowCursors:               "ArrowCursors",
	QuillCursor:                "QuillCursor",
	SwordCursor:                "SwordCursor",
	FemaleEquipment:            "FemaleEquipment",
	FemaleHelmet:               "FemaleHelmet",
	FemaleNonMagicShirt:        "FemaleNonMagicShirt",
	FemaleMagicShirt:           "FemaleMagicShirt",
	FemaleDemoTop:              "FemaleDemoTop",
	FemalePants:                "FemalePants",
	MaleEquipment:              "MaleEquipment",
	MaleHelmet:                 "MaleHelmet",
	MaleNonMagicShirt:          "MaleNonMagicShirt",
	MaleMagicShirt:             "MaleMagicShirt",
	MalePants:                  "MalePants",
	AcceptReject:               "AcceptReject",
	AcceptCounterReject:        "AcceptCounterReject",
	AddJobStatusCancel:         "AddJobStatusCancel",
	BarterBackground:           "BarterBackground",
	BonusPointsText:            "BonusPointsText",
	Brass:                      "Brass",
	Brass2:                     "Brass2",
	CharacterCreation:          "CharacterCreation",
	CharacterEquipment:         "CharacterEquipment",
	CharacterStats:             "CharacterStats",
	CompassFrame:               "CompassFrame",
	CompassSlider:              "CompassSlider",
	GameWorldInterface:         "GameWorldInterface",
	IntroTitle:                 "IntroTitle",
	IntroQuote:                 "IntroQuote",
	LoadSave:                   "LoadSave",
	Logbook:                    "Logbook",
	MainMenu:                   "MainMenu",
	Marble:                     "Marble",
	Marble2:                    "Marble2",
	NextPage:                   "NextPage",
	NoExit:                     "NoExit",
	NoSpell:                    "NoSpell",
	Parchment:                  "Parchment",
	ParchmentBig:               "ParchmentBig",
	PauseBackground:            "PauseBackground",
	PopUp:                      "PopUp",
	PopUp2:                     "PopUp2",
	PopUp11:                    "PopUp11",
	RaceSelect:                 "RaceSelect",
	Scroll:                     "Scroll",
	SpellbookText:              "SpellbookText",
	StatusGradients:            "StatusGradients",
	UpDown:                     "UpDown",
	YesNoCancel:                "YesNoCancel",
	CryptOfHeartsSplash:        "CryptOfHeartsSplash",
	CrystalTowerSplash:         "CrystalTowerSplash",
	DagothUrSplash:             "DagothUrSplash",
	EldenGroveSplash:           "EldenGroveSplash",
	FangLairSplash:             "FangLairSplash",
	HallsOfColossusSplash:      "HallsOfColossusSplash",
	LabyrinthianSplash:         "LabyrinthianSplash",
	MurkwoodSplash:             "MurkwoodSplash",
	Automap:                    "Automap",
	BlackMarshMap:              "BlackMarshMap",
	ElsweyrMap:                 "ElsweyrMap",
	HammerfellMap:              "HammerfellMap",
	HighRockMap:                "HighRockMap",
	ImperialProvinceMap:        "ImperialProvinceMap",
	MorrowindMap:               "MorrowindMap",
	SkyrimMap:                  "SkyrimMap",
	SummersetIsleMap:           "SummersetIsleMap",
	ValenwoodMap:               "ValenwoodMap",
	WorldMap:                   "WorldMap",
	CityStateIcon:              "CityStateIcon",
	DungeonIcon:                "DungeonIcon",
	TownIcon:                   "TownIcon",
	VillageIcon:                "VillageIcon",
	BuySpellBackground:         "BuySpellBackground",
	Form1:                      "Form1",
	Form2:                      "Form2",
	Form3:                      "Form3",
	Form4:                      "Form4",
	Form4A:                     "Form4A",
	Form5:                      "Form5",
	Form6:                      "Form6",
	Form6A:                     "Form6A",
	Form7:                      "Form7",
	Form8:                      "Form8",
	Form9:                      "Form9",
	Form10:                     "Form10",
	Form11:                     "Form11",
	Form12:                     "Form12",
	Form13:                     "Form13",
	Form14:                     "Form14",
	Form15:                     "Form15",
	SpellMakerBackground:       "SpellMakerBackground",
	ArrowsAnimation:            "ArrowsAnimation",
	AxeAnimation:               "AxeAnimation",
	ChainAnimation:             "ChainAnimation",
	FistsAnimation:             "FistsAnimation",
	FlailAnimation:             "FlailAnimation",
	HammerAnimation:            "HammerAnimation",
	MaceAnimation:              "MaceAnimation",
	PlateAnimation:             "PlateAnimation",
	StaffAnimation:             "StaffAnimation",
	SwordAnimation:             "SwordAnimation",
}

var sequenceLabels = [...]string{
	ChaosVision:   "ChaosVision",
	End01:         "End01",
	End02:         "End02",
	Jagar:         "Jagar",
	JagarDeath:    "JagarDeath",
	JagarShield:   "JagarShield",
	King:          "King",
	Mage:          "Mage",
	Morph:         "Morph",
	OpeningScroll: "OpeningScroll",
	Rogue:         "Rogue",
	Silmane:       "Silmane",
	Warhaft:       "Warhaft",
	Warrior:       "Warrior",
}
