package appstate

import (
	"image"
	"image/draw"
	"log"

	"github.com/example/stickerpad/internal/render"
	"github.com/example/stickerpad/internal/sketch"
	"github.com/example/stickerpad/internal/surface"
	"github.com/example/stickerpad/internal/theme"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

const windowTitle = "Sticker Sketchpad"

// frame is the window layout for one size.
type frame struct {
	width, height int
	title         image.Rectangle
	toolbar       image.Rectangle
	bottom        image.Rectangle
	canvas        image.Rectangle
}

func layoutFrame(width, height int, canvas image.Point) frame {
	f := frame{
		width:   width,
		height:  height,
		title:   image.Rect(0, 0, width, titleHeight),
		toolbar: image.Rect(0, titleHeight, toolbarWidth, height-bottomHeight),
		bottom:  image.Rect(0, height-bottomHeight, width, height),
	}
	stage := image.Rect(toolbarWidth, titleHeight, width, height-bottomHeight)
	origin := stage.Min.Add(image.Pt((stage.Dx()-canvas.X)/2, (stage.Dy()-canvas.Y)/2))
	f.canvas = image.Rectangle{Min: origin, Max: origin.Add(canvas)}
	return f
}

// ui is the window contents independent of the shiny screen: a session
// drawing into a gg canvas, plus the toolbar and control bar around it.
type ui struct {
	theme    *theme.Theme
	session  *sketch.Session
	canvas   *surface.Canvas
	stage    *render.Stage
	frame    frame
	tools    *toolbar
	controls []*CacheButton
	hoverCtl int
	tracker  *pointerTracker
	keys     []keyBinding
	state    sketch.Controls
}

type keyBinding struct {
	name string
	keys KeyboardShortcuts
	fn   func()
}

func (a *AppState) newUI() *ui {
	u := &ui{theme: a.Theme, hoverCtl: -1}
	u.stage = render.NewStage(render.DefaultStageOptions(a.Theme.Shadow))
	u.canvas = surface.NewCanvas(a.CanvasSize.X, a.CanvasSize.Y,
		surface.WithPaper(a.Theme.Paper),
		surface.WithInk(a.Theme.Ink),
		surface.WithFace(a.Face),
		surface.WithCanvasLogger(a.logger))

	u.tools = newToolbar(a.Catalog, a.Theme, a.Face, u.selectTool)

	opts := []sketch.Option{
		sketch.WithCatalog(a.Catalog),
		sketch.WithLogger(a.logger),
		sketch.WithControlsListener(u.onControls),
	}
	if a.Tool != nil {
		opts = append(opts, sketch.WithTool(*a.Tool))
	}
	u.session = sketch.New(u.canvas, opts...)
	u.tracker = &pointerTracker{target: u.session}

	u.controls = []*CacheButton{
		{Button: &ActionButton{label: "Clear", theme: a.Theme, onActivate: u.session.Clear}},
		{Button: &ActionButton{label: "Undo", theme: a.Theme,
			enabled: func() bool { return u.state.UndoEnabled }, onActivate: func() { u.session.Undo() }}},
		{Button: &ActionButton{label: "Redo", theme: a.Theme,
			enabled: func() bool { return u.state.RedoEnabled }, onActivate: func() { u.session.Redo() }}},
	}
	u.registerKeys()

	m := u.stage.Margin() + 8
	stageH := max(a.CanvasSize.Y+2*m, len(u.tools.buttons)*(toolButtonHeight+toolButtonGap)+toolButtonGap)
	width := max(toolbarWidth+a.CanvasSize.X+2*m, toolbarWidth+8+len(u.controls)*(controlWidth+8))
	u.resize(width, titleHeight+stageH+bottomHeight)
	return u
}

func (u *ui) onControls(c sketch.Controls) {
	u.state = c
	u.tools.Select(c.Selected)
}

func (u *ui) selectTool(t sketch.Tool) {
	if err := u.session.SelectTool(t); err != nil {
		log.Printf("select tool: %v", err)
	}
}

func (u *ui) resize(width, height int) {
	u.frame = layoutFrame(width, height, u.canvas.Image().Bounds().Size())
	u.tracker.canvas = u.frame.canvas
	u.tools.layout(u.frame.toolbar.Min.Y)
	x := toolbarWidth + 8
	y := u.frame.bottom.Min.Y + (bottomHeight-controlHeight)/2
	for _, c := range u.controls {
		c.SetRect(image.Rect(x, y, x+controlWidth, y+controlHeight))
		x += controlWidth + 8
	}
}

func (u *ui) registerKeys() {
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		u.keys = append(u.keys, keyBinding{name: name, keys: keys, fn: fn})
	}
	register("redo", shortcutList{
		{Rune: 'z', Code: key.CodeZ, Modifiers: key.ModControl | key.ModShift},
		{Rune: 'y', Code: key.CodeY, Modifiers: key.ModControl},
	}, func() { u.session.Redo() })
	register("undo", shortcutList{{Rune: 'z', Code: key.CodeZ, Modifiers: key.ModControl}}, func() { u.session.Undo() })
	register("clear", shortcutList{{Rune: 'l', Code: key.CodeL, Modifiers: key.ModControl}}, u.session.Clear)
	register("quit", shortcutList{{Rune: 'q', Code: key.CodeQ}}, nil)

	digits := []key.Code{key.Code1, key.Code2, key.Code3, key.Code4, key.Code5, key.Code6, key.Code7, key.Code8, key.Code9}
	tools := u.session.Catalog().Tools()
	for i := 0; i < len(tools) && i < len(digits); i++ {
		t := tools[i]
		register("tool", shortcutList{{Rune: rune('1' + i), Code: digits[i]}}, func() { u.selectTool(t) })
	}
}

// handleKey runs the bound action for e. It returns the action name, or ""
// when nothing matched.
func (u *ui) handleKey(e key.Event) string {
	if e.Direction != key.DirPress {
		return ""
	}
	for _, b := range u.keys {
		for _, sc := range b.keys.KeyboardShortcuts() {
			if !sc.matches(e) {
				continue
			}
			if b.fn != nil {
				b.fn()
			}
			return b.name
		}
	}
	return ""
}

// handleMouse routes e to the canvas or the buttons and reports whether
// the window needs repainting.
func (u *ui) handleMouse(e mouse.Event) bool {
	changed := u.tracker.handle(e)
	p := image.Pt(int(e.X), int(e.Y))
	if u.tracker.capturing() || p.In(u.frame.canvas) {
		return changed
	}

	hoverTool := u.tools.hit(p)
	hoverCtl := -1
	for i, c := range u.controls {
		if p.In(c.Rect()) {
			hoverCtl = i
			break
		}
	}
	if hoverTool != u.tools.hover || hoverCtl != u.hoverCtl {
		u.tools.hover, u.hoverCtl = hoverTool, hoverCtl
		changed = true
	}
	if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
		switch {
		case hoverTool >= 0:
			u.tools.buttons[hoverTool].Activate()
			changed = true
		case hoverCtl >= 0:
			u.controls[hoverCtl].Activate()
			changed = true
		}
	}
	return changed
}

// paint composes the whole window into dst.
func (u *ui) paint(dst *image.RGBA) {
	th := u.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	draw.Draw(dst, u.frame.title, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	drawLabel(dst, 8, 16, windowTitle, th.Foreground)

	draw.Draw(dst, u.frame.toolbar, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	u.tools.draw(dst)

	u.stage.Draw(dst, u.frame.canvas, u.canvas.Image())

	draw.Draw(dst, u.frame.bottom, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	for i, c := range u.controls {
		state := StateDefault
		if !c.Button.(*ActionButton).Enabled() {
			state = StateDisabled
		} else if i == u.hoverCtl {
			state = StateHover
		}
		c.Draw(dst, state)
	}
}
