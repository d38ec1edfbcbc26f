package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/stickerpad/internal/sketch"
	"github.com/example/stickerpad/internal/theme"
)

// Canvas holds the drawing area size in pixels.
type Canvas struct {
	Width  int
	Height int
}

// Tools holds the tool catalog as configured.
type Tools struct {
	Markers  []float64
	Stickers []string
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	GlyphFont string
	Canvas    Canvas
	Tools     Tools
	Themes    map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	cat := sketch.DefaultCatalog()
	return &Config{
		Canvas: Canvas{Width: 256, Height: 256},
		Tools: Tools{
			Markers:  cat.Markers,
			Stickers: cat.Stickers,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Catalog returns the configured tools as a sketch catalog.
func (c *Config) Catalog() (sketch.Catalog, error) {
	cat := sketch.Catalog{
		Markers:  append([]float64(nil), c.Tools.Markers...),
		Stickers: append([]string(nil), c.Tools.Stickers...),
	}
	if err := cat.Validate(); err != nil {
		return sketch.Catalog{}, err
	}
	return cat, nil
}

// Validate checks the canvas size and tool catalog.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	_, err := c.Catalog()
	return err
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.GlyphFont != "" {
		fmt.Fprintf(&sb, "glyph_font = %s\n", c.GlyphFont)
	}
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	sb.WriteString("\n")

	sb.WriteString("[tools]\n")
	fmt.Fprintf(&sb, "markers = %s\n", formatMarkers(c.Tools.Markers))
	fmt.Fprintf(&sb, "stickers = %s\n", strings.Join(c.Tools.Stickers, ", "))
	sb.WriteString("\n")

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatMarkers(ms []float64) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = strconv.FormatFloat(m, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
