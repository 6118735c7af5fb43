package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()
	for name := range sizes {
		if name.Get() == nil {
			t.Errorf("%s.Get() = nil", name)
		}
		if LineHeight(name) <= 0 {
			t.Errorf("LineHeight(%s) = %d, want > 0", name, LineHeight(name))
		}
	}
}

func TestMeasure(t *testing.T) {
	LoadDefaults()
	if got := Measure(Arena, ""); got != 0 {
		t.Errorf("Measure(\"\") = %d, want 0", got)
	}
	short, long := Measure(Arena, "Mage"), Measure(Arena, "Nightblade")
	if short <= 0 || long <= short {
		t.Errorf("Measure(Mage) = %d, Measure(Nightblade) = %d; want 0 < Mage < Nightblade", short, long)
	}
	if Measure(C, "Mage") <= Measure(Teeny, "Mage") {
		t.Error("larger font measured no wider than smaller font")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get(unknown) did not panic")
		}
	}()
	FontName("NOPE.DAT").Get()
}
