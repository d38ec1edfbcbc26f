package render

import (
	"image"
	"image/color"
	"image/draw"
)

// StageOptions configures how the drawing canvas is presented in the window.
type StageOptions struct {
	// Radius is the box blur radius of the drop shadow.
	Radius int
	// Offset moves the shadow relative to the canvas.
	Offset image.Point
	// Shadow is the shadow colour; its alpha is the shadow strength.
	Shadow color.RGBA
}

// DefaultStageOptions returns a soft shadow in the given colour.
func DefaultStageOptions(shadow color.RGBA) StageOptions {
	return StageOptions{
		Radius: 10,
		Offset: image.Pt(5, 6),
		Shadow: shadow,
	}
}

// Stage composites the canvas image over a blurred drop shadow. The blurred
// mask depends only on the canvas size, so it is computed once per size.
type Stage struct {
	opts StageOptions
	size image.Point
	mask *image.Alpha
}

// NewStage returns a Stage using opts.
func NewStage(opts StageOptions) *Stage {
	if opts.Radius < 0 {
		opts.Radius = 0
	}
	return &Stage{opts: opts}
}

// Options reports the stage configuration.
func (s *Stage) Options() StageOptions { return s.opts }

// Margin is the space around the canvas that the shadow may cover.
func (s *Stage) Margin() int {
	m := s.opts.Radius
	dx, dy := abs(s.opts.Offset.X), abs(s.opts.Offset.Y)
	return m + max(dx, dy)
}

// Draw paints the shadow for r into dst and then copies src into r.
// src is aligned so its bounds minimum lands on r.Min.
func (s *Stage) Draw(dst draw.Image, r image.Rectangle, src image.Image) {
	if r.Empty() {
		return
	}
	if s.opts.Shadow.A > 0 {
		mask := s.shadowMask(r.Size())
		origin := r.Min.Add(s.opts.Offset).Sub(image.Pt(s.opts.Radius, s.opts.Radius))
		shadow := image.NewUniform(color.RGBA{
			R: s.opts.Shadow.R,
			G: s.opts.Shadow.G,
			B: s.opts.Shadow.B,
			A: 255,
		})
		// Scale the mask by the shadow alpha while compositing.
		scaled := scaleAlpha(mask, s.opts.Shadow.A)
		draw.DrawMask(dst, mask.Bounds().Add(origin), shadow, image.Point{}, scaled, image.Point{}, draw.Over)
	}
	if src != nil {
		draw.Draw(dst, r, src, src.Bounds().Min, draw.Src)
	}
}

func (s *Stage) shadowMask(size image.Point) *image.Alpha {
	if s.mask != nil && s.size == size {
		return s.mask
	}
	radius := s.opts.Radius
	padded := image.Rect(0, 0, size.X+2*radius, size.Y+2*radius)
	solid := image.NewAlpha(padded)
	draw.Draw(solid, image.Rect(radius, radius, radius+size.X, radius+size.Y), image.Opaque, image.Point{}, draw.Src)
	s.mask = blurAlpha(solid, radius)
	s.size = size
	return s.mask
}

func scaleAlpha(src *image.Alpha, a uint8) *image.Alpha {
	if a == 255 {
		return src
	}
	out := image.NewAlpha(src.Bounds())
	for i, v := range src.Pix {
		out.Pix[i] = uint8(uint32(v) * uint32(a) / 255)
	}
	return out
}

// blurAlpha applies a separable box blur using running prefix sums.
func blurAlpha(src *image.Alpha, radius int) *image.Alpha {
	out := image.NewAlpha(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewAlpha(src.Bounds())

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for x, v := range row {
			prefix[x+1] = prefix[x] + int(v)
		}
		for x := 0; x < w; x++ {
			x0, x1 := max(x-radius, 0), min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0, y1 := max(y-radius, 0), min(y+radius, h-1)
			out.Pix[y*out.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
