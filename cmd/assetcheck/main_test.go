package main

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gookit/color"
)

func TestCheck(t *testing.T) {
	fsys := fstest.MapFS{
		"TITLE.png":          {Data: []byte("x")},
		"menu.bmp":           {Data: []byte("x")},
		"scrol.gif":          {Data: []byte("x")},
		"music/SHEET.ogg":    {Data: []byte("x")},
		"music/sunnyday.wav": {Data: []byte("x")},
	}
	results, err := check(fsys)
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	byName := map[string]result{}
	for _, r := range results {
		byName[r.kind+"/"+r.name] = r
	}

	tests := []struct {
		key        string
		found      string
		suggestion string
	}{
		{"texture/IntroTitle", "TITLE.png", ""},
		{"texture/MainMenu", "menu.bmp", ""},
		{"sequence/OpeningScroll", "", "scrol.gif"},
		{"music/Sheet", "music/SHEET.ogg", ""},
		{"music/SunnyDay", "music/sunnyday.wav", ""},
	}
	for _, tt := range tests {
		r, ok := byName[tt.key]
		if !ok {
			t.Errorf("%s: no result", tt.key)
			continue
		}
		if r.found != tt.found {
			t.Errorf("%s: found = %q, want %q", tt.key, r.found, tt.found)
		}
		if r.suggestion != tt.suggestion {
			t.Errorf("%s: suggestion = %q, want %q", tt.key, r.suggestion, tt.suggestion)
		}
	}
}

func TestReport(t *testing.T) {
	color.Disable()
	results := []result{
		{kind: "texture", name: "IntroTitle", legacy: "TITLE.IMG", found: "TITLE.png"},
		{kind: "texture", name: "MainMenu", legacy: "MENU.IMG", suggestion: "menus.png"},
		{kind: "music", name: "Sheet", legacy: "SHEET.XMI"},
	}

	var buf bytes.Buffer
	if missing := report(&buf, results, true); missing != 2 {
		t.Errorf("missing = %d, want 2", missing)
	}
	out := buf.String()
	if strings.Contains(out, "IntroTitle") {
		t.Error("quiet report listed a found asset")
	}
	if !strings.Contains(out, "did you mean menus.png?") {
		t.Errorf("report lacks the suggestion:\n%s", out)
	}
	if !strings.Contains(out, "2 of 3 assets missing") {
		t.Errorf("report lacks the summary:\n%s", out)
	}
}
