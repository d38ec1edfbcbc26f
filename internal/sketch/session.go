package sketch

import (
	"log/slog"
)

// Phase is the pointer interaction state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDrawing
)

func (p Phase) String() string {
	if p == PhaseDrawing {
		return "drawing"
	}
	return "idle"
}

// Controls is the enabled/selected state the host UI reflects.
type Controls struct {
	UndoEnabled bool
	RedoEnabled bool
	Selected    Tool
}

// Session is one sketchpad: the history, the current tool, the pointer
// state machine and the surface everything is replayed onto. All methods
// must be called from a single goroutine.
type Session struct {
	surface Surface
	history *History
	catalog Catalog
	tool    Tool

	phase   Phase
	active  Drag
	preview Preview
	inside  bool
	hover   Point

	controls   Controls
	onControls func(Controls)
	signals    dispatcher
	logger     *slog.Logger
}

// Option configures a Session during creation.
type Option func(*Session)

// WithCatalog replaces the default tool catalog. The session starts with
// the catalog's default tool unless WithTool is also given.
func WithCatalog(c Catalog) Option { return func(s *Session) { s.catalog = c } }

// WithTool sets the initially selected tool.
func WithTool(t Tool) Option { return func(s *Session) { s.tool = t } }

// WithLogger sets the logger used for debug tracing of intents.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithControlsListener registers fn to receive the control state after
// every redraw.
func WithControlsListener(fn func(Controls)) Option {
	return func(s *Session) { s.onControls = fn }
}

// New creates a session drawing onto surface and renders the initial, empty
// frame.
func New(surface Surface, opts ...Option) *Session {
	s := &Session{
		surface: surface,
		catalog: DefaultCatalog(),
		logger:  newNopLogger(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.tool.Validate() != nil {
		s.tool = s.catalog.Default()
	}
	s.history = NewHistory(func() { s.signals.emit(HistoryChanged) })
	s.signals.subscribe(HistoryChanged, s.redraw)
	s.signals.subscribe(ToolMoved, s.redraw)
	s.redraw(0)
	return s
}

// Subscribe registers fn to run, synchronously, after the session's own
// redraw whenever sig is raised.
func (s *Session) Subscribe(sig Signal, fn func(Signal)) {
	s.signals.subscribe(sig, fn)
}

// History returns a read-only view of the session's history. Mutations go
// through Press, Undo, Redo and Clear so the live command stays in step.
func (s *Session) History() HistoryView { return s.history.View() }

func (s *Session) Catalog() Catalog   { return s.catalog }
func (s *Session) Tool() Tool         { return s.tool }
func (s *Session) Phase() Phase       { return s.phase }
func (s *Session) Drawing() bool      { return s.phase == PhaseDrawing }
func (s *Session) Inside() bool       { return s.inside }
func (s *Session) Hover() Point       { return s.hover }
func (s *Session) Controls() Controls { return s.controls }

// Preview returns the live preview, if the pointer is over the surface.
func (s *Session) Preview() (Preview, bool) {
	return s.preview, s.preview != nil
}

// Active returns the command currently following the pointer.
func (s *Session) Active() (Drag, bool) {
	return s.active, s.active != nil
}

// Enter handles the pointer entering the surface at (x, y).
func (s *Session) Enter(x, y float64) {
	p := Pt(x, y)
	s.inside = true
	s.hover = p
	s.preview = s.tool.NewPreview(p)
	s.signals.emit(ToolMoved)
}

// Leave handles the pointer leaving the surface. A command being drawn
// stays live; only the preview goes away.
func (s *Session) Leave() {
	s.inside = false
	s.preview = nil
	s.signals.emit(ToolMoved)
}

// Move handles pointer motion. While drawing it grows the live command,
// otherwise it moves the preview.
func (s *Session) Move(x, y float64) {
	p := Pt(x, y)
	s.hover = p
	if s.phase == PhaseDrawing {
		s.active.Drag(p)
		if s.inside {
			s.refreshPreview(p)
		}
		s.signals.emit(HistoryChanged)
		return
	}
	s.inside = true
	s.refreshPreview(p)
	s.signals.emit(ToolMoved)
}

// Press starts a new command from the current tool at (x, y).
func (s *Session) Press(x, y float64) {
	p := Pt(x, y)
	if s.active != nil {
		s.logger.Debug("press while drawing, freezing live command", "id", s.active.ID())
		s.freeze()
	}
	s.inside = true
	s.hover = p
	s.refreshPreview(p)
	cmd := s.tool.NewCommand(p)
	s.active = cmd
	s.phase = PhaseDrawing
	s.logger.Debug("command started", "id", cmd.ID(), "tool", s.tool.String(), "at", p.String())
	s.history.Append(cmd)
	s.signals.emit(ToolMoved)
}

// Release ends the live command. It is a no-op when nothing is being drawn.
func (s *Session) Release() {
	if s.phase != PhaseDrawing {
		return
	}
	s.logger.Debug("command finished", "id", s.active.ID())
	s.freeze()
	s.signals.emit(HistoryChanged)
	s.signals.emit(ToolMoved)
}

// SelectTool makes t the current tool. It never touches history.
func (s *Session) SelectTool(t Tool) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.tool = t
	if s.preview != nil {
		s.refreshPreview(s.preview.Position())
	}
	s.logger.Debug("tool selected", "tool", t.String())
	s.signals.emit(ToolMoved)
	return nil
}

// Undo moves the newest command to the redo buffer. It reports whether
// anything changed.
func (s *Session) Undo() bool {
	s.freeze()
	ok := s.history.Undo()
	s.logger.Debug("undo", "changed", ok, "committed", s.history.Len())
	return ok
}

// Redo recommits the most recently undone command.
func (s *Session) Redo() bool {
	s.freeze()
	ok := s.history.Redo()
	s.logger.Debug("redo", "changed", ok, "committed", s.history.Len())
	return ok
}

// Clear erases the drawing and its redo history.
func (s *Session) Clear() {
	s.freeze()
	s.history.Clear()
	s.logger.Debug("clear")
}

// Redraw repaints the surface from the current state.
func (s *Session) Redraw() { s.redraw(0) }

// freeze drops the handle on the live command; the history keeps it.
func (s *Session) freeze() {
	s.active = nil
	s.phase = PhaseIdle
}

// refreshPreview moves the preview in place, or rebuilds it when the tool
// kind no longer matches.
func (s *Session) refreshPreview(p Point) {
	if s.preview == nil || s.preview.Kind() != s.tool.Kind {
		s.preview = s.tool.NewPreview(p)
		return
	}
	s.preview.Move(p, s.tool)
}
