package surface

import (
	"strconv"
	"strings"

	"github.com/example/stickerpad/internal/sketch"
)

// Op is one recorded surface call.
type Op struct {
	Name string
	Args []float64
	Text string
}

func (o Op) String() string {
	var sb strings.Builder
	sb.WriteString(o.Name)
	for _, a := range o.Args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
	}
	if o.Text != "" {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(o.Text))
	}
	return sb.String()
}

// Trace is a Surface that records calls instead of drawing. It also tracks
// the style state so tests can check Save/Restore scoping.
type Trace struct {
	width, height float64
	ops           []Op
	style         traceStyle
	saved         []traceStyle
}

type traceStyle struct {
	lineWidth float64
	lineCap   sketch.LineCap
	alpha     float64
}

var _ sketch.Surface = (*Trace)(nil)

// NewTrace returns a recorder reporting the given bounds.
func NewTrace(width, height float64) *Trace {
	return &Trace{width: width, height: height, style: traceStyle{lineWidth: 1, alpha: 1}}
}

// Ops returns the calls recorded since the last Reset.
func (t *Trace) Ops() []Op {
	out := make([]Op, len(t.ops))
	copy(out, t.ops)
	return out
}

// Reset forgets recorded calls. Style state is kept.
func (t *Trace) Reset() { t.ops = t.ops[:0] }

// Count returns how many recorded calls have the given name.
func (t *Trace) Count(name string) int {
	n := 0
	for _, op := range t.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Depth is the number of unmatched Save calls.
func (t *Trace) Depth() int { return len(t.saved) }

// LineWidth, LineCap and Alpha report the current style.
func (t *Trace) LineWidth() float64       { return t.style.lineWidth }
func (t *Trace) LineCap() sketch.LineCap { return t.style.lineCap }
func (t *Trace) Alpha() float64           { return t.style.alpha }

func (t *Trace) String() string {
	var sb strings.Builder
	for _, op := range t.ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t *Trace) record(name string, args ...float64) {
	t.ops = append(t.ops, Op{Name: name, Args: args})
}

func (t *Trace) Bounds() (float64, float64) { return t.width, t.height }

func (t *Trace) ClearRect(x, y, w, h float64) { t.record("clearRect", x, y, w, h) }

func (t *Trace) Save() {
	t.saved = append(t.saved, t.style)
	t.record("save")
}

func (t *Trace) Restore() {
	if n := len(t.saved); n > 0 {
		t.style = t.saved[n-1]
		t.saved = t.saved[:n-1]
	}
	t.record("restore")
}

func (t *Trace) SetLineWidth(w float64) {
	t.style.lineWidth = w
	t.record("lineWidth", w)
}

func (t *Trace) SetLineCap(c sketch.LineCap) {
	t.style.lineCap = c
	t.record("lineCap", float64(c))
}

func (t *Trace) SetAlpha(a float64) {
	t.style.alpha = a
	t.record("alpha", a)
}

func (t *Trace) BeginPath()          { t.record("beginPath") }
func (t *Trace) MoveTo(x, y float64) { t.record("moveTo", x, y) }
func (t *Trace) LineTo(x, y float64) { t.record("lineTo", x, y) }

func (t *Trace) Arc(x, y, r, start, end float64) { t.record("arc", x, y, r, start, end) }

func (t *Trace) Stroke() { t.record("stroke", t.style.lineWidth) }

func (t *Trace) FillText(text string, x, y float64) {
	t.ops = append(t.ops, Op{Name: "fillText", Args: []float64{x, y, t.style.alpha}, Text: text})
}
