package appstate

import (
	"image"
	"image/color"
	"image/draw"
	"unicode"

	"github.com/example/stickerpad/internal/sketch"
	"github.com/example/stickerpad/internal/surface"
	"github.com/example/stickerpad/internal/theme"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
)

const (
	titleHeight  = 24
	bottomHeight = 28
	toolbarWidth = 64

	toolButtonHeight = 32
	toolButtonGap    = 4
	controlWidth     = 56
	controlHeight    = 20
)

// KeyShortcut describes a keyboard combination that triggers an action.
// A shortcut matches on Rune (case-insensitive) or on Code when set.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

func (k KeyShortcut) matches(e key.Event) bool {
	if k.Modifiers != e.Modifiers {
		return false
	}
	if k.Rune != 0 && unicode.ToLower(e.Rune) == k.Rune {
		return true
	}
	return k.Code != 0 && k.Code == e.Code
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
	StateDisabled
	numStates
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [numStates]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [numStates]*image.RGBA{}
	}
}

// buttonColors picks background and text colours for state.
func buttonColors(th *theme.Theme, state ButtonState) (bg, fg color.RGBA) {
	switch state {
	case StateHover:
		return th.ButtonBackgroundHover, th.ButtonText
	case StatePressed:
		return th.ButtonBackgroundPress, th.ButtonText
	case StateDisabled:
		return th.ButtonBackgroundDimmed, th.ButtonTextDimmed
	}
	return th.ButtonBackground, th.ButtonText
}

func drawButtonFrame(dst *image.RGBA, r image.Rectangle, th *theme.Theme, state ButtonState) color.RGBA {
	bg, fg := buttonColors(th, state)
	draw.Draw(dst, r, &image.Uniform{bg}, image.Point{}, draw.Src)
	drawRect(dst, r, th.ButtonBorder, 1)
	return fg
}

// ToolButton selects one catalog tool.
type ToolButton struct {
	label string
	tool  sketch.Tool
	theme *theme.Theme
	face  text.Face
	rect  image.Rectangle
	// onSelect is called when the button is activated.
	onSelect func(sketch.Tool)
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	fg := drawButtonFrame(dst, tb.rect, tb.theme, state)
	if tb.tool.Kind == sketch.KindSticker && tb.face != nil {
		bg, _ := buttonColors(tb.theme, state)
		inner := tb.rect.Inset(1)
		cv := surface.NewCanvas(inner.Dx(), inner.Dy(), surface.WithPaper(bg), surface.WithInk(fg), surface.WithFace(tb.face))
		w, h := cv.Bounds()
		cv.ClearRect(0, 0, w, h)
		cv.FillText(tb.tool.Glyph, w/2, h/2)
		draw.Draw(dst, inner, cv.Image(), image.Point{}, draw.Src)
		return
	}
	drawLabel(dst, tb.rect.Min.X+4, tb.rect.Min.Y+13, tb.label, fg)
	if tb.tool.Kind == sketch.KindMarker {
		thick := max(int(tb.tool.Thickness+0.5), 1)
		y := tb.rect.Max.Y - 8 - thick/2
		line := image.Rect(tb.rect.Min.X+6, y, tb.rect.Max.X-6, y+thick)
		draw.Draw(dst, line, &image.Uniform{fg}, image.Point{}, draw.Src)
	}
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) { tb.rect = r }

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect(tb.tool)
	}
}

// ActionButton runs an action when clicked, unless it is disabled.
type ActionButton struct {
	label      string
	theme      *theme.Theme
	rect       image.Rectangle
	enabled    func() bool
	onActivate func()
}

func (ab *ActionButton) Draw(dst *image.RGBA, state ButtonState) {
	fg := drawButtonFrame(dst, ab.rect, ab.theme, state)
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := d.MeasureString(ab.label).Ceil()
	drawLabel(dst, ab.rect.Min.X+(ab.rect.Dx()-w)/2, ab.rect.Min.Y+14, ab.label, fg)
}

func (ab *ActionButton) Rect() image.Rectangle { return ab.rect }

func (ab *ActionButton) SetRect(r image.Rectangle) { ab.rect = r }

// Enabled reports whether activation does anything.
func (ab *ActionButton) Enabled() bool { return ab.enabled == nil || ab.enabled() }

func (ab *ActionButton) Activate() {
	if !ab.Enabled() || ab.onActivate == nil {
		return
	}
	ab.onActivate()
}

// toolbar holds one button per catalog tool. Exactly one button is
// highlighted: the one whose tool equals the selected tool.
type toolbar struct {
	buttons     []*CacheButton
	highlighted []bool
	hover       int
}

func newToolbar(cat sketch.Catalog, th *theme.Theme, face text.Face, onSelect func(sketch.Tool)) *toolbar {
	tools := cat.Tools()
	tb := &toolbar{
		buttons:     make([]*CacheButton, len(tools)),
		highlighted: make([]bool, len(tools)),
		hover:       -1,
	}
	for i, t := range tools {
		tb.buttons[i] = &CacheButton{Button: &ToolButton{
			label:    cat.Label(i),
			tool:     t,
			theme:    th,
			face:     face,
			onSelect: onSelect,
		}}
	}
	return tb
}

// Select moves the highlight to the button for t. A tool with no button
// leaves the current highlight in place.
func (tb *toolbar) Select(t sketch.Tool) {
	for i, b := range tb.buttons {
		if b.Button.(*ToolButton).tool != t {
			continue
		}
		for j := range tb.highlighted {
			tb.highlighted[j] = j == i
		}
		return
	}
}

func (tb *toolbar) layout(top int) {
	y := top + toolButtonGap
	for _, b := range tb.buttons {
		b.SetRect(image.Rect(toolButtonGap, y, toolbarWidth-toolButtonGap, y+toolButtonHeight))
		y += toolButtonHeight + toolButtonGap
	}
}

func (tb *toolbar) hit(p image.Point) int {
	for i, b := range tb.buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}

func (tb *toolbar) draw(dst *image.RGBA) {
	for i, b := range tb.buttons {
		state := StateDefault
		if tb.highlighted[i] {
			state = StatePressed
		} else if i == tb.hover {
			state = StateHover
		}
		b.Draw(dst, state)
	}
}

func drawLabel(dst *image.RGBA, x, y int, label string, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13,
		Dot: fixed.P(x, y)}
	d.DrawString(label)
}

func drawRect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	u := &image.Uniform{col}
	draw.Draw(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thick), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Min.X, rect.Max.Y-thick, rect.Max.X, rect.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+thick, rect.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Max.X-thick, rect.Min.Y, rect.Max.X, rect.Max.Y), u, image.Point{}, draw.Src)
}
