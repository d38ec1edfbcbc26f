package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOverlay mirrors the settings that may come from the environment.
// Fields are seeded from the file config so unset variables keep their value.
type envOverlay struct {
	Theme     string    `env:"STICKERPAD_THEME"`
	GlyphFont string    `env:"STICKERPAD_GLYPH_FONT"`
	Width     int       `env:"STICKERPAD_CANVAS_WIDTH"`
	Height    int       `env:"STICKERPAD_CANVAS_HEIGHT"`
	Markers   []float64 `env:"STICKERPAD_MARKERS" envSeparator:","`
	Stickers  []string  `env:"STICKERPAD_STICKERS" envSeparator:","`
}

// ApplyEnv overlays STICKERPAD_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, env.Options{})
}

func applyEnv(cfg *Config, opts env.Options) error {
	o := envOverlay{
		Theme:     cfg.Theme,
		GlyphFont: cfg.GlyphFont,
		Width:     cfg.Canvas.Width,
		Height:    cfg.Canvas.Height,
		Markers:   cfg.Tools.Markers,
		Stickers:  cfg.Tools.Stickers,
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("parse env: canvas size %dx%d must be positive", o.Width, o.Height)
	}
	cfg.Theme = o.Theme
	cfg.GlyphFont = o.GlyphFont
	cfg.Canvas = Canvas{Width: o.Width, Height: o.Height}
	cfg.Tools = Tools{Markers: o.Markers, Stickers: splitList(strings.Join(o.Stickers, ","))}
	return nil
}
