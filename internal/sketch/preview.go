package sketch

import (
	"fmt"
	"math"
)

// previewAlpha is the opacity of sticker previews.
const previewAlpha = 0.5

// Preview is the ephemeral cursor indicator for the current tool.
//
// Move must only be called with a tool of the preview's own Kind; the
// session replaces the preview whenever the kind changes.
type Preview interface {
	Kind() Kind
	Position() Point
	Move(p Point, t Tool)
	Display(s Surface)
}

// StrokePreview is a ring whose diameter matches the marker thickness.
type StrokePreview struct {
	pos       Point
	thickness float64
}

func (p *StrokePreview) Kind() Kind      { return KindMarker }
func (p *StrokePreview) Position() Point { return p.pos }

func (p *StrokePreview) Move(at Point, t Tool) {
	mustKind(p, t)
	p.pos = at
	p.thickness = t.Thickness
}

func (p *StrokePreview) Display(dst Surface) {
	dst.Save()
	defer dst.Restore()
	dst.SetLineWidth(1)
	dst.BeginPath()
	dst.Arc(p.pos.X, p.pos.Y, p.thickness/2, 0, 2*math.Pi)
	dst.Stroke()
}

// StampPreview is a translucent copy of the sticker glyph.
type StampPreview struct {
	pos   Point
	glyph string
}

func (p *StampPreview) Kind() Kind      { return KindSticker }
func (p *StampPreview) Position() Point { return p.pos }

func (p *StampPreview) Move(at Point, t Tool) {
	mustKind(p, t)
	p.pos = at
	p.glyph = t.Glyph
}

func (p *StampPreview) Display(dst Surface) {
	dst.Save()
	defer dst.Restore()
	dst.SetAlpha(previewAlpha)
	dst.FillText(p.glyph, p.pos.X, p.pos.Y)
}

func mustKind(p Preview, t Tool) {
	if p.Kind() != t.Kind {
		panic(fmt.Sprintf("sketch: %v preview moved with %v", p.Kind(), t))
	}
}
