package sketch

// LineCap is the shape used at the ends of stroked lines.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
)

// Surface is the raster target that commands and previews render onto.
//
// Style state (line width, cap, alpha) set between Save and Restore must not
// be visible after Restore. FillText draws text centred on (x, y).
type Surface interface {
	Bounds() (w, h float64)
	ClearRect(x, y, w, h float64)

	Save()
	Restore()
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetAlpha(a float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, start, end float64)
	Stroke()

	FillText(text string, x, y float64)
}
