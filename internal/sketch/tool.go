package sketch

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidTool is returned when a tool selection cannot be honoured.
var ErrInvalidTool = errors.New("invalid tool")

// Kind identifies which family of commands a tool produces.
type Kind int

const (
	KindMarker Kind = iota
	KindSticker
)

func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindSticker:
		return "sticker"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Tool is the current drawing selection. Markers use Thickness, stickers use
// Glyph; the other field is ignored.
type Tool struct {
	Kind      Kind
	Thickness float64
	Glyph     string
}

// Marker returns a freehand stroke tool of the given thickness.
func Marker(thickness float64) Tool { return Tool{Kind: KindMarker, Thickness: thickness} }

// Sticker returns a stamp tool for glyph.
func Sticker(glyph string) Tool { return Tool{Kind: KindSticker, Glyph: glyph} }

func (t Tool) String() string {
	if t.Kind == KindSticker {
		return fmt.Sprintf("sticker(%s)", t.Glyph)
	}
	return fmt.Sprintf("marker(%g)", t.Thickness)
}

// Validate reports whether the tool can build commands.
func (t Tool) Validate() error {
	switch t.Kind {
	case KindMarker:
		if t.Thickness <= 0 {
			return fmt.Errorf("%w: marker thickness %g must be positive", ErrInvalidTool, t.Thickness)
		}
	case KindSticker:
		if t.Glyph == "" {
			return fmt.Errorf("%w: sticker glyph is empty", ErrInvalidTool)
		}
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidTool, t.Kind)
	}
	return nil
}

// NewCommand builds the display command a press at p starts.
func (t Tool) NewCommand(p Point) Drag {
	if t.Kind == KindSticker {
		return NewStamp(p, t.Glyph)
	}
	return NewStroke(p, t.Thickness)
}

// NewPreview builds the cursor preview for this tool at p.
func (t Tool) NewPreview(p Point) Preview {
	if t.Kind == KindSticker {
		return &StampPreview{pos: p, glyph: t.Glyph}
	}
	return &StrokePreview{pos: p, thickness: t.Thickness}
}

// Catalog is the fixed set of selectable tools.
type Catalog struct {
	Markers  []float64
	Stickers []string
}

// DefaultCatalog returns the thin/thick markers and the stock stickers.
func DefaultCatalog() Catalog {
	return Catalog{
		Markers:  []float64{2, 6},
		Stickers: []string{"⭐", "🌮", "🎨"},
	}
}

// Tools lists markers first, then stickers.
func (c Catalog) Tools() []Tool {
	out := make([]Tool, 0, len(c.Markers)+len(c.Stickers))
	for _, m := range c.Markers {
		out = append(out, Marker(m))
	}
	for _, s := range c.Stickers {
		out = append(out, Sticker(s))
	}
	return out
}

// Default is the tool selected when a session starts.
func (c Catalog) Default() Tool {
	if len(c.Markers) > 0 {
		return Marker(c.Markers[0])
	}
	if len(c.Stickers) > 0 {
		return Sticker(c.Stickers[0])
	}
	return Marker(DefaultCatalog().Markers[0])
}

// Label returns the toolbar caption for the i-th entry of Tools. The two
// markers of a two-marker catalog are called thin and thick.
func (c Catalog) Label(i int) string {
	if i < 0 || i >= len(c.Markers)+len(c.Stickers) {
		return ""
	}
	if i < len(c.Markers) {
		if len(c.Markers) == 2 {
			if i == 0 {
				return "thin"
			}
			return "thick"
		}
		return strconv.FormatFloat(c.Markers[i], 'g', -1, 64) + "px"
	}
	return c.Stickers[i-len(c.Markers)]
}

// Lookup resolves a toolbar caption ("thin", "thick") to a tool.
func (c Catalog) Lookup(label string) (Tool, bool) {
	tools := c.Tools()
	for i := range tools {
		if c.Label(i) == label {
			return tools[i], true
		}
	}
	return Tool{}, false
}

// Contains reports whether t is one of the catalog's tools.
func (c Catalog) Contains(t Tool) bool {
	for _, ct := range c.Tools() {
		if ct == t {
			return true
		}
	}
	return false
}

// With returns a copy of c that also offers t. c is returned unchanged when
// it already holds t.
func (c Catalog) With(t Tool) Catalog {
	if c.Contains(t) {
		return c
	}
	out := Catalog{
		Markers:  append([]float64(nil), c.Markers...),
		Stickers: append([]string(nil), c.Stickers...),
	}
	if t.Kind == KindSticker {
		out.Stickers = append(out.Stickers, t.Glyph)
	} else {
		out.Markers = append(out.Markers, t.Thickness)
	}
	return out
}

// Validate checks every catalog entry.
func (c Catalog) Validate() error {
	if len(c.Markers)+len(c.Stickers) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidTool)
	}
	for _, t := range c.Tools() {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
