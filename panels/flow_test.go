package panels

import (
	"image"
	"testing"

	"github.com/automoto/arena/assets"
	"github.com/automoto/arena/components"
	cfg "github.com/automoto/arena/config"
	"github.com/automoto/arena/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestIntroSkipped(t *testing.T) {
	ctx := newFakeContext(t)
	ctx.opts = cfg.NewOptions(cfg.OptionsValues{SkipIntro: true})
	if _, ok := NewIntroPanel(ctx).(*MainMenuPanel); !ok {
		t.Error("NewIntroPanel with SkipIntro did not return the main menu")
	}
}

func TestIntroSequence(t *testing.T) {
	ctx := newFakeContext(t)
	title, ok := NewIntroPanel(ctx).(*ImagePanel)
	if !ok {
		t.Fatal("NewIntroPanel did not return an image panel")
	}

	title.Tick(cfg.Intro.TitleSeconds / 2)
	if ctx.next != nil {
		t.Fatal("title ended before its display time")
	}
	title.Tick(cfg.Intro.TitleSeconds)
	quote, ok := ctx.next.(*ImagePanel)
	if !ok {
		t.Fatalf("after the title: next = %T, want *ImagePanel", ctx.next)
	}

	quote.HandleEvent(click(1, 1))
	if _, ok := ctx.next.(*MainMenuPanel); !ok {
		t.Fatalf("after the quote: next = %T, want *MainMenuPanel", ctx.next)
	}
	// a second skip in the same frame must not queue another panel
	quote.HandleEvent(key(ebiten.KeySpace))
	if ctx.requests != 2 {
		t.Errorf("SetPanel calls = %d, want 2", ctx.requests)
	}
}

func TestMainMenu(t *testing.T) {
	ctx := newFakeContext(t)
	p := NewMainMenuPanel(ctx)

	nb := cfg.Menu.NewGameButton
	p.HandleEvent(click(nb.Min.X, nb.Min.Y))
	cinematic, ok := ctx.next.(*CinematicPanel)
	if !ok {
		t.Fatalf("New game: next = %T, want *CinematicPanel", ctx.next)
	}
	cinematic.HandleEvent(key(ebiten.KeyEscape))
	if _, ok := ctx.next.(*ChooseClassCreationPanel); !ok {
		t.Errorf("after the opening scroll: next = %T, want *ChooseClassCreationPanel", ctx.next)
	}

	p.HandleEvent(key(ebiten.KeyQ))
	if !ctx.quit {
		t.Error("Q did not quit")
	}
}

func TestChooseClassSorted(t *testing.T) {
	p := NewChooseClassPanel(newFakeContext(t))
	classes := p.Classes()
	if len(classes) != 18 {
		t.Fatalf("len(Classes()) = %d, want 18", len(classes))
	}
	for i := 1; i < len(classes); i++ {
		if classes[i-1].Name > classes[i].Name {
			t.Errorf("classes out of order: %q before %q", classes[i-1].Name, classes[i].Name)
		}
	}
	if classes[0].Name != "Acrobat" || classes[17].Name != "Warrior" {
		t.Errorf("first, last = %q, %q; want Acrobat, Warrior", classes[0].Name, classes[17].Name)
	}
}

func TestChooseClassClick(t *testing.T) {
	ctx := newFakeContext(t)
	p := NewChooseClassPanel(ctx)
	origin := cfg.ClassList.ListOrigin

	p.HandleEvent(wheel(origin, -1))
	p.HandleEvent(click(origin.X+1, origin.Y+1))
	next, ok := ctx.next.(*ChooseNamePanel)
	if !ok {
		t.Fatalf("next = %T, want *ChooseNamePanel", ctx.next)
	}
	if next.class.Name != "Archer" {
		t.Errorf("chosen class = %q, want Archer", next.class.Name)
	}
	if next.class == p.Classes()[1] {
		t.Error("chosen class is the list's own value, want a copy")
	}
}

func TestChooseClassScrollClamped(t *testing.T) {
	p := NewChooseClassPanel(newFakeContext(t))
	for i := 0; i < 30; i++ {
		p.HandleEvent(wheel(cfg.ClassList.ListOrigin, -1))
	}
	if want := 18 - cfg.ClassList.MaxDisplayed; p.list.ScrollIndex() != want {
		t.Errorf("ScrollIndex() = %d, want %d", p.list.ScrollIndex(), want)
	}
	if got := labelText(p.rows[0]); got != p.Classes()[18-cfg.ClassList.MaxDisplayed].Name {
		t.Errorf("top row = %q after scrolling", got)
	}
	for i := 0; i < 30; i++ {
		p.HandleEvent(key(ebiten.KeyUp))
	}
	if p.list.ScrollIndex() != 0 {
		t.Errorf("ScrollIndex() = %d, want 0", p.list.ScrollIndex())
	}
}

func TestChooseClassWheelOutsideList(t *testing.T) {
	p := NewChooseClassPanel(newFakeContext(t))
	outside := p.list.Bounds().Max.Add(image.Pt(10, 0))

	p.HandleEvent(wheel(outside, -1))
	if p.list.ScrollIndex() != 0 {
		t.Errorf("ScrollIndex() = %d after wheel outside the list, want 0", p.list.ScrollIndex())
	}
	p.HandleEvent(wheel(p.list.Bounds().Min, -1))
	if p.list.ScrollIndex() != 1 {
		t.Errorf("ScrollIndex() = %d after wheel over the list, want 1", p.list.ScrollIndex())
	}
}

func TestChooseClassTooltipCache(t *testing.T) {
	ctx := newFakeContext(t)
	p := NewChooseClassPanel(ctx)
	origin := cfg.ClassList.ListOrigin

	ctx.mouse = origin
	for i := 0; i < 5; i++ {
		p.Tick(1.0 / 60)
	}
	if len(p.tooltips) != 1 {
		t.Errorf("cached tooltips = %d, want 1", len(p.tooltips))
	}
	if labelText(p.tooltip) != p.tooltips[0] {
		t.Errorf("tooltip text = %q, want cached %q", labelText(p.tooltip), p.tooltips[0])
	}

	ctx.mouse = origin.Add(image.Pt(0, cfg.ClassList.RowHeight))
	p.Tick(1.0 / 60)
	if len(p.tooltips) != 2 {
		t.Errorf("cached tooltips = %d, want 2", len(p.tooltips))
	}

	ctx.mouse = image.Pt(0, 0)
	p.Tick(1.0 / 60)
	if !components.Label.Get(p.tooltip).Hidden {
		t.Error("tooltip still shown with the cursor outside the list")
	}
}

func TestClassTooltip(t *testing.T) {
	var mage *entities.CharacterClass
	for _, c := range entities.Classes() {
		if c.Name == "Mage" {
			mage = c
		}
	}
	want := "Mage\n\nMage class\nCan cast magic\nHealth: 20 + d6\n" +
		"Armors: None.\nShields: None.\nWeapons: Dagger, Staff."
	if got := classTooltip(mage, 14); got != want {
		t.Errorf("classTooltip(Mage) =\n%q\nwant\n%q", got, want)
	}
}

func TestWrappedList(t *testing.T) {
	rogue := []entities.WeaponType{
		entities.WeaponWarAxe, entities.WeaponDagger, entities.WeaponBroadsword,
		entities.WeaponLongsword, entities.WeaponMace, entities.WeaponSaber,
		entities.WeaponShortBow, entities.WeaponShortsword,
	}
	want := "Broadsword, Dagger, \n   Longsword, Mace, Saber, \n   Short Bow, Shortsword, \n   War Axe."
	if got := wrappedList(rogue, 14); got != want {
		t.Errorf("wrappedList =\n%q\nwant\n%q", got, want)
	}
	if rogue[0] != entities.WeaponWarAxe {
		t.Errorf("wrappedList reordered its input: rogue[0] = %v", rogue[0])
	}
	if got := wrappedList([]entities.ShieldType{}, 14); got != "None." {
		t.Errorf("wrappedList(empty) = %q, want %q", got, "None.")
	}
}

func TestChooseName(t *testing.T) {
	ctx := newFakeContext(t)
	class := entities.Classes()[0]
	p := NewChooseNamePanel(ctx, class)

	for _, bad := range []string{"", "   ", "abcdefghijklmnopqrstuvwxyz"} {
		if p.Submit(bad) {
			t.Errorf("Submit(%q) = true, want false", bad)
		}
	}
	if ctx.next != nil {
		t.Fatalf("rejected names queued %T", ctx.next)
	}
	if p.status == "" {
		t.Error("no message after a rejected name")
	}

	if !p.Submit("  Talin ") {
		t.Fatal(`Submit("  Talin ") = false, want true`)
	}
	next, ok := ctx.next.(*ChooseGenderPanel)
	if !ok {
		t.Fatalf("next = %T, want *ChooseGenderPanel", ctx.next)
	}
	if next.name != "Talin" || next.class != class {
		t.Errorf("gender panel got %q, %v; want Talin, the chosen class", next.name, next.class.Name)
	}

	p.HandleEvent(key(ebiten.KeyEscape))
	if _, ok := ctx.next.(*ChooseClassPanel); !ok {
		t.Errorf("Esc: next = %T, want *ChooseClassPanel", ctx.next)
	}
}

func TestChooseGenderAndRace(t *testing.T) {
	ctx := newFakeContext(t)
	class := entities.Classes()[0]
	gender := NewChooseGenderPanel(ctx, class, "Talin")

	fc := cfg.Gender.FemaleCenter
	gender.HandleEvent(click(fc.X, fc.Y))
	race, ok := ctx.next.(*ChooseRacePanel)
	if !ok {
		t.Fatalf("next = %T, want *ChooseRacePanel", ctx.next)
	}
	if race.player.Gender != entities.Female {
		t.Errorf("Gender = %v, want Female", race.player.Gender)
	}
	if ctx.GameData() != nil {
		t.Fatal("session started before a province was chosen")
	}

	skyrim := cfg.Race.Provinces[int(entities.Skyrim)]
	race.HandleEvent(click(skyrim.Min.X+1, skyrim.Min.Y+1))
	if _, ok := ctx.next.(*GameWorldPanel); !ok {
		t.Fatalf("next = %T, want *GameWorldPanel", ctx.next)
	}
	gd := ctx.GameData()
	if gd == nil {
		t.Fatal("GameData() = nil after choosing a province")
	}
	want := "Talin, Female Nord Mage of Skyrim"
	if got := gd.Player.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if last := ctx.music.played[len(ctx.music.played)-1]; last != assets.SunnyDay {
		t.Errorf("last track = %v, want SunnyDay", last)
	}
}

func TestPauseMenu(t *testing.T) {
	ctx := newFakeContext(t)
	ctx.data = entities.NewGameData(testPlayer())
	p := NewPauseMenuPanel(ctx)

	p.HandleEvent(key(ebiten.KeyEscape))
	if _, ok := ctx.next.(*GameWorldPanel); !ok {
		t.Errorf("Esc: next = %T, want *GameWorldPanel", ctx.next)
	}

	ob := cfg.Pause.OptionsButton
	p.HandleEvent(click(ob.Min.X, ob.Min.Y))
	if _, ok := ctx.next.(*OptionsPanel); !ok {
		t.Errorf("Options: next = %T, want *OptionsPanel", ctx.next)
	}

	nb := cfg.Pause.NewGameButton
	p.HandleEvent(click(nb.Min.X, nb.Min.Y))
	if _, ok := ctx.next.(*MainMenuPanel); !ok {
		t.Errorf("New game: next = %T, want *MainMenuPanel", ctx.next)
	}
	if ctx.GameData() != nil {
		t.Error("New game left the session running")
	}
}

func TestOptionsFPS(t *testing.T) {
	ctx := newFakeContext(t)
	p := NewOptionsPanel(ctx)
	up := cfg.OptionsMenu.FPSUpButton
	down := up.Add(image.Pt(0, up.Dy()))

	p.HandleEvent(click(up.Min.X, up.Min.Y))
	if ctx.opts.TargetFPS() != cfg.DefaultFPS+cfg.OptionsMenu.FPSStep {
		t.Errorf("TargetFPS() = %d, want %d", ctx.opts.TargetFPS(), cfg.DefaultFPS+cfg.OptionsMenu.FPSStep)
	}
	if got, want := labelText(p.fpsText), fpsText(ctx.opts.TargetFPS()); got != want {
		t.Errorf("FPS label = %q, want %q", got, want)
	}

	for i := 0; i < 20; i++ {
		p.HandleEvent(click(down.Min.X, down.Min.Y))
	}
	if ctx.opts.TargetFPS() != cfg.MinFPS {
		t.Errorf("TargetFPS() = %d, want clamp to %d", ctx.opts.TargetFPS(), cfg.MinFPS)
	}
	if got := labelText(p.fpsText); got != fpsText(cfg.MinFPS) {
		t.Errorf("FPS label = %q, want %q", got, fpsText(cfg.MinFPS))
	}

	p.HandleEvent(key(ebiten.KeyEscape))
	if _, ok := ctx.next.(*PauseMenuPanel); !ok {
		t.Errorf("Esc: next = %T, want *PauseMenuPanel", ctx.next)
	}
}

func TestOptionsVolume(t *testing.T) {
	ctx := newFakeContext(t)
	p := NewOptionsPanel(ctx)
	musicUp := cfg.OptionsMenu.FPSUpButton.Min.Y + cfg.SettingsMenu.RowSpacing

	p.HandleEvent(click(cfg.OptionsMenu.FPSUpButton.Min.X, musicUp))
	if ctx.opts.MusicVolume() != 0.75 || ctx.music.musicVolume != 0.75 {
		t.Errorf("music volume = %v (player %v), want 0.75", ctx.opts.MusicVolume(), ctx.music.musicVolume)
	}
	if got := labelText(p.musicText); got != musicText(0.75) {
		t.Errorf("music label = %q, want %q", got, musicText(0.75))
	}
}

func TestStepVolume(t *testing.T) {
	tests := []struct {
		v    float64
		dir  int
		want float64
	}{
		{0.5, 1, 0.75},
		{0.5, -1, 0.25},
		{1, 1, 1},
		{0, -1, 0},
		{0.6, 1, 0.75},
		{0.6, -1, 0.5},
	}
	for _, tt := range tests {
		if got := stepVolume(tt.v, tt.dir); got != tt.want {
			t.Errorf("stepVolume(%v, %d) = %v, want %v", tt.v, tt.dir, got, tt.want)
		}
	}
}
