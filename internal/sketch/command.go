package sketch

import (
	"fmt"

	"github.com/google/uuid"
)

// Command is one replayable unit of drawing history.
type Command interface {
	ID() uuid.UUID
	Display(s Surface)
}

// Drag is a command whose geometry follows the pointer while the button that
// created it is held.
type Drag interface {
	Command
	Drag(p Point)
}

// Stroke is a freehand line.
type Stroke struct {
	id        uuid.UUID
	points    []Point
	thickness float64
}

var _ Drag = (*Stroke)(nil)

// NewStroke starts a stroke at p.
func NewStroke(p Point, thickness float64) *Stroke {
	return &Stroke{id: uuid.New(), points: []Point{p}, thickness: thickness}
}

func (s *Stroke) ID() uuid.UUID { return s.id }

// Drag appends p to the stroke.
func (s *Stroke) Drag(p Point) { s.points = append(s.points, p) }

// Points returns a copy of the recorded points.
func (s *Stroke) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Stroke) Thickness() float64 { return s.thickness }

func (s *Stroke) Display(dst Surface) {
	if len(s.points) < 2 {
		return
	}
	dst.Save()
	defer dst.Restore()
	dst.SetLineWidth(s.thickness)
	dst.SetLineCap(LineCapRound)
	dst.BeginPath()
	dst.MoveTo(s.points[0].X, s.points[0].Y)
	for _, p := range s.points[1:] {
		dst.LineTo(p.X, p.Y)
	}
	dst.Stroke()
}

func (s *Stroke) String() string {
	return fmt.Sprintf("stroke %v thickness=%g", s.points, s.thickness)
}

// Stamp is a sticker glyph placed at a single position.
type Stamp struct {
	id    uuid.UUID
	pos   Point
	glyph string
}

var _ Drag = (*Stamp)(nil)

// NewStamp places glyph at p.
func NewStamp(p Point, glyph string) *Stamp {
	return &Stamp{id: uuid.New(), pos: p, glyph: glyph}
}

func (s *Stamp) ID() uuid.UUID { return s.id }

// Drag moves the stamp to p. No history of positions is kept.
func (s *Stamp) Drag(p Point) { s.pos = p }

func (s *Stamp) Position() Point { return s.pos }

func (s *Stamp) Glyph() string { return s.glyph }

func (s *Stamp) Display(dst Surface) {
	dst.Save()
	defer dst.Restore()
	dst.FillText(s.glyph, s.pos.X, s.pos.Y)
}

func (s *Stamp) String() string {
	return fmt.Sprintf("stamp %s at %v", s.glyph, s.pos)
}
