package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/example/stickerpad/internal/sketch"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
glyph_font = "/usr/share/fonts/emoji.ttf"

[canvas]
width = 320
height: 200

[tools]
markers = 1.5, 4, 9
stickers = ⭐, 🐙

[theme.my_custom_theme]
Background = #111111
Ink: #FF0000
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.GlyphFont != "/usr/share/fonts/emoji.ttf" {
		t.Errorf("glyph_font = %q", cfg.GlyphFont)
	}
	if cfg.Canvas != (Canvas{Width: 320, Height: 200}) {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if !reflect.DeepEqual(cfg.Tools.Markers, []float64{1.5, 4, 9}) {
		t.Errorf("markers = %v", cfg.Tools.Markers)
	}
	if !reflect.DeepEqual(cfg.Tools.Stickers, []string{"⭐", "🐙"}) {
		t.Errorf("stickers = %q", cfg.Tools.Stickers)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
	if th.Ink.R != 0xFF || th.Ink.G != 0 {
		t.Errorf("Unexpected Ink color: %+v", th.Ink)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"width", "[canvas]\nwidth = wide\n", "line 2"},
		{"negative", "[canvas]\n\nheight = -3\n", "line 3"},
		{"marker", "[tools]\nmarkers = 2, x\n", "invalid marker"},
		{"colour", "[theme.x]\nInk = red\n", "section [theme.x]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark

[canvas]
width = 128
height = 96

[tools]
markers = 3
stickers = 🌮, 🎨

[theme.custom]
Name = custom
Background = #000000
Shadow = #00000040
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}
	if !reflect.DeepEqual(cfg.Tools, cfg2.Tools) {
		t.Errorf("Tools mismatch: %+v vs %+v", cfg.Tools, cfg2.Tools)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestCatalog(t *testing.T) {
	cfg := New()
	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cat, sketch.DefaultCatalog()) {
		t.Errorf("default catalog = %+v", cat)
	}

	cfg.Tools = Tools{}
	if _, err := cfg.Catalog(); err == nil {
		t.Error("expected empty catalog to fail")
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected Validate to fail")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := New()
	cfg.Theme = "from_file"
	cfg.GlyphFont = "/file.ttf"

	err := applyEnv(cfg, env.Options{Environment: map[string]string{
		"STICKERPAD_THEME":        "dark",
		"STICKERPAD_CANVAS_WIDTH": "640",
		"STICKERPAD_MARKERS":      "1,8",
		"STICKERPAD_STICKERS":     "🐙, 🦀",
	}})
	if err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.GlyphFont != "/file.ttf" {
		t.Errorf("unset variable overwrote glyph font: %q", cfg.GlyphFont)
	}
	if cfg.Canvas != (Canvas{Width: 640, Height: 256}) {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if !reflect.DeepEqual(cfg.Tools.Markers, []float64{1, 8}) {
		t.Errorf("markers = %v", cfg.Tools.Markers)
	}
	if !reflect.DeepEqual(cfg.Tools.Stickers, []string{"🐙", "🦀"}) {
		t.Errorf("stickers = %q", cfg.Tools.Stickers)
	}
}

func TestApplyEnvRejectsBadSize(t *testing.T) {
	err := applyEnv(New(), env.Options{Environment: map[string]string{
		"STICKERPAD_CANVAS_HEIGHT": "0",
	}})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoaderPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(path, []byte("theme = from_file\n[canvas]\nwidth = 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STICKERPAD_THEME", "from_env")

	cfg, err := NewLoader("v1.0.0", path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "from_env" {
		t.Errorf("theme = %q, env should win over file", cfg.Theme)
	}
	if cfg.Canvas.Width != 100 {
		t.Errorf("width = %d, file should win over defaults", cfg.Canvas.Width)
	}

	missing := NewLoader("v1.0.0", filepath.Join(dir, "nope.rc"))
	if got := missing.GetConfigPath(); got != "" {
		t.Errorf("GetConfigPath = %q, want empty", got)
	}
}
