package panels

import (
	"image"
	"testing"
)

func newTestList(n, k int) *ListBox {
	elements := make([]string, n)
	for i := range elements {
		elements[i] = string(rune('a' + i))
	}
	return NewListBox(image.Pt(100, 50), 80, 10, k, elements)
}

func TestListBoxScrollBounds(t *testing.T) {
	l := newTestList(10, 6)

	l.ScrollUp()
	if l.ScrollIndex() != 0 {
		t.Errorf("ScrollUp at top: ScrollIndex() = %d, want 0", l.ScrollIndex())
	}

	for i := 0; i < 20; i++ {
		l.ScrollDown()
	}
	if l.ScrollIndex() != 4 {
		t.Errorf("after scrolling past the end: ScrollIndex() = %d, want 4", l.ScrollIndex())
	}

	l.ScrollDown()
	if l.ScrollIndex() != 4 {
		t.Errorf("ScrollDown at bottom: ScrollIndex() = %d, want 4", l.ScrollIndex())
	}

	got := l.Visible()
	if len(got) != 6 || got[0] != "e" || got[5] != "j" {
		t.Errorf("Visible() = %v, want [e..j]", got)
	}
}

func TestListBoxShorterThanWindow(t *testing.T) {
	l := newTestList(3, 6)
	l.ScrollDown()
	if l.ScrollIndex() != 0 {
		t.Errorf("ScrollIndex() = %d, want 0 for a list shorter than its window", l.ScrollIndex())
	}
	if got := len(l.Visible()); got != 3 {
		t.Errorf("len(Visible()) = %d, want 3", got)
	}
	if idx := l.ClickedIndex(image.Pt(110, 95)); idx < l.Len() {
		t.Errorf("ClickedIndex below the last entry = %d, want >= %d", idx, l.Len())
	}
}

func TestListBoxClickedIndex(t *testing.T) {
	l := newTestList(10, 6)
	l.ScrollDown()
	l.ScrollDown()

	tests := []struct {
		p    image.Point
		want int
	}{
		{image.Pt(100, 50), 2},
		{image.Pt(150, 59), 2},
		{image.Pt(150, 60), 3},
		{image.Pt(179, 109), 7},
	}
	for _, tt := range tests {
		if !l.Contains(tt.p) {
			t.Errorf("Contains(%v) = false, want true", tt.p)
		}
		if got := l.ClickedIndex(tt.p); got != tt.want {
			t.Errorf("ClickedIndex(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
	for _, p := range []image.Point{{99, 50}, {180, 50}, {100, 110}, {100, 49}} {
		if l.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}
