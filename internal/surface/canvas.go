package surface

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/stickerpad/internal/sketch"
)

// DefaultGlyphSize is the point size stickers are rendered at.
const DefaultGlyphSize = 32

// Canvas is a raster Surface backed by a gg drawing context.
type Canvas struct {
	ctx    *gg.Context
	face   text.Face
	ink    color.RGBA
	paper  color.RGBA
	logger *slog.Logger

	style canvasStyle
	saved []canvasStyle
}

// gg's Push/Pop only cover transform, clip and mask, so paint state is
// scoped here.
type canvasStyle struct {
	lineWidth float64
	lineCap   sketch.LineCap
	alpha     float64
}

var _ sketch.Surface = (*Canvas)(nil)

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithInk sets the colour strokes, rings and glyphs are drawn in.
func WithInk(c color.RGBA) CanvasOption { return func(cv *Canvas) { cv.ink = c } }

// WithPaper sets the colour ClearRect fills with.
func WithPaper(c color.RGBA) CanvasOption { return func(cv *Canvas) { cv.paper = c } }

// WithFace sets the font face used for FillText.
func WithFace(f text.Face) CanvasOption { return func(cv *Canvas) { cv.face = f } }

// WithCanvasLogger sets where backend failures are reported.
func WithCanvasLogger(l *slog.Logger) CanvasOption {
	return func(cv *Canvas) {
		if l != nil {
			cv.logger = l
		}
	}
}

// NewCanvas creates a width x height canvas cleared to the paper colour.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		ctx:    gg.NewContext(width, height),
		ink:    color.RGBA{0x22, 0x22, 0x22, 0xff},
		paper:  color.RGBA{0xff, 0xff, 0xff, 0xff},
		logger: slog.Default(),
		style:  canvasStyle{lineWidth: 1, alpha: 1},
	}
	for _, o := range opts {
		o(c)
	}
	c.ctx.ClearWithColor(gg.FromColor(c.paper))
	return c
}

// LoadGlyphFace builds a face for sticker glyphs. An empty path selects the
// embedded Go Regular font, which has no emoji outlines; point this at a
// colour emoji font to see real stickers.
func LoadGlyphFace(path string, size float64) (text.Face, error) {
	if size <= 0 {
		size = DefaultGlyphSize
	}
	var (
		src *text.FontSource
		err error
	)
	if path == "" {
		src, err = text.NewFontSource(goregular.TTF)
	} else {
		src, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load glyph font %q: %w", path, err)
	}
	return src.Face(size), nil
}

// Image returns a snapshot of the canvas pixels.
func (c *Canvas) Image() image.Image { return c.ctx.Image() }

func (c *Canvas) Bounds() (float64, float64) {
	return float64(c.ctx.Width()), float64(c.ctx.Height())
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	cw, ch := c.Bounds()
	if x <= 0 && y <= 0 && x+w >= cw && y+h >= ch {
		c.ctx.ClearWithColor(gg.FromColor(c.paper))
		return
	}
	c.ctx.ClearPath()
	c.ctx.SetColor(c.paper)
	c.ctx.DrawRectangle(x, y, w, h)
	if err := c.ctx.Fill(); err != nil {
		c.logger.Warn("clear rect", "err", err)
	}
}

func (c *Canvas) Save() {
	c.saved = append(c.saved, c.style)
	c.ctx.Push()
}

func (c *Canvas) Restore() {
	if n := len(c.saved); n > 0 {
		c.style = c.saved[n-1]
		c.saved = c.saved[:n-1]
	}
	c.ctx.Pop()
}

func (c *Canvas) SetLineWidth(w float64)      { c.style.lineWidth = w }
func (c *Canvas) SetLineCap(lc sketch.LineCap) { c.style.lineCap = lc }
func (c *Canvas) SetAlpha(a float64)           { c.style.alpha = a }

func (c *Canvas) BeginPath()          { c.ctx.ClearPath() }
func (c *Canvas) MoveTo(x, y float64) { c.ctx.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.ctx.LineTo(x, y) }

func (c *Canvas) Arc(x, y, r, start, end float64) {
	c.ctx.DrawArc(x, y, r, start, end)
}

func (c *Canvas) Stroke() {
	c.ctx.SetLineWidth(c.style.lineWidth)
	if c.style.lineCap == sketch.LineCapRound {
		c.ctx.SetLineCap(gg.LineCapRound)
		c.ctx.SetLineJoin(gg.LineJoinRound)
	} else {
		c.ctx.SetLineCap(gg.LineCapButt)
		c.ctx.SetLineJoin(gg.LineJoinMiter)
	}
	c.applyInk()
	if err := c.ctx.Stroke(); err != nil {
		c.logger.Warn("stroke", "err", err)
	}
}

func (c *Canvas) FillText(s string, x, y float64) {
	if c.face == nil {
		return
	}
	c.ctx.SetFont(c.face)
	c.applyInk()
	c.ctx.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

func (c *Canvas) applyInk() {
	a := c.style.alpha
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.ctx.SetRGBA(
		float64(c.ink.R)/255,
		float64(c.ink.G)/255,
		float64(c.ink.B)/255,
		float64(c.ink.A)/255*a,
	)
}
