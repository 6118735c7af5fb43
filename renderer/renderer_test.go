package renderer

import (
	"image"
	"testing"
)

func TestLetterbox(t *testing.T) {
	tests := []struct {
		native image.Point
		want   image.Rectangle
	}{
		{image.Pt(1280, 960), image.Rect(0, 0, 1280, 960)},
		{image.Pt(1600, 960), image.Rect(160, 0, 1440, 960)},
		{image.Pt(1280, 1200), image.Rect(0, 120, 1280, 1080)},
		{image.Pt(320, 240), image.Rect(0, 0, 320, 240)},
		{image.Pt(0, 0), image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := Letterbox(tt.native); got != tt.want {
			t.Errorf("Letterbox(%v) = %v, want %v", tt.native, got, tt.want)
		}
	}
}

func TestNativeToOriginal(t *testing.T) {
	r := New(1600, 960)
	tests := []struct {
		in   image.Point
		want image.Point
	}{
		{image.Pt(160, 0), image.Pt(0, 0)},
		{image.Pt(800, 480), image.Pt(160, 100)},
		{image.Pt(1439, 959), image.Pt(319, 199)},
		{image.Pt(159, 0), image.Pt(-1, 0)},
		{image.Pt(1440, 0), image.Pt(320, 0)},
	}
	for _, tt := range tests {
		if got := r.NativeToOriginal(tt.in); got != tt.want {
			t.Errorf("NativeToOriginal(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNativeToOriginal_EmptyWindow(t *testing.T) {
	r := New(0, 0)
	if got := r.NativeToOriginal(image.Pt(10, 10)); got != image.Pt(-1, -1) {
		t.Errorf("NativeToOriginal on empty window = %v, want (-1,-1)", got)
	}
}
