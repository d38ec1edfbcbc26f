package appstate

import (
	"image"
	"log"
	"log/slog"
	"sync"

	"github.com/example/stickerpad/internal/sketch"
	"github.com/example/stickerpad/internal/theme"
	"github.com/gogpu/gg/text"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// AppState holds application configuration for the UI.
type AppState struct {
	Theme      *theme.Theme
	Catalog    sketch.Catalog
	Tool       *sketch.Tool
	CanvasSize image.Point
	Face       text.Face

	logger    *slog.Logger
	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithTheme sets the window colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithCatalog sets the tools offered in the toolbar.
func WithCatalog(c sketch.Catalog) Option { return func(a *AppState) { a.Catalog = c } }

// WithTool sets the initially selected tool.
func WithTool(t sketch.Tool) Option { return func(a *AppState) { a.Tool = &t } }

// WithCanvasSize sets the drawing area size in pixels.
func WithCanvasSize(w, h int) Option { return func(a *AppState) { a.CanvasSize = image.Pt(w, h) } }

// WithGlyphFace sets the face used to render sticker glyphs.
func WithGlyphFace(f text.Face) Option { return func(a *AppState) { a.Face = f } }

// WithLogger sets the logger handed to the drawing session.
func WithLogger(l *slog.Logger) Option { return func(a *AppState) { a.logger = l } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Theme:      theme.Default(),
		Catalog:    sketch.DefaultCatalog(),
		CanvasSize: image.Pt(256, 256),
	}
	for _, o := range opts {
		o(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	// The toolbar must always have a button to highlight.
	if a.Tool != nil && a.Tool.Validate() == nil && !a.Catalog.Contains(*a.Tool) {
		a.Catalog = a.Catalog.With(*a.Tool)
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run opens the window and blocks until it is closed.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the event loop on s. Every session call and every paint happens
// on this goroutine, so the canvas is never read while it is being drawn.
func (a *AppState) Main(s screen.Screen) {
	u := a.newUI()

	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  u.frame.width,
		Height: u.frame.height,
		Title:  windowTitle,
	})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	var buf screen.Buffer
	defer func() {
		if buf != nil {
			buf.Release()
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			if e.WidthPx > 0 && e.HeightPx > 0 {
				u.resize(e.WidthPx, e.HeightPx)
			}
			w.Send(paint.Event{})
		case paint.Event:
			want := image.Pt(u.frame.width, u.frame.height)
			if buf == nil || buf.Size() != want {
				if buf != nil {
					buf.Release()
				}
				buf, err = s.NewBuffer(want)
				if err != nil {
					log.Printf("new buffer: %v", err)
					buf = nil
					continue
				}
			}
			u.paint(buf.RGBA())
			w.Upload(image.Point{}, buf, buf.Bounds())
			w.Publish()
		case mouse.Event:
			if u.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			switch u.handleKey(e) {
			case "":
			case "quit":
				return
			default:
				w.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		}
	}
}
