package script

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/example/stickerpad/internal/sketch"
)

// Runner executes instructions against a session.
type Runner struct {
	session *sketch.Session
	out     io.Writer
	logger  *slog.Logger
}

// NewRunner returns a Runner writing "state" output to out.
func NewRunner(s *sketch.Session, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{session: s, out: out, logger: logger}
}

// Exec performs one instruction.
func (r *Runner) Exec(in Instruction) error {
	s := r.session
	r.logger.Debug("exec", "line", in.Line, "op", in.Op.String(), "at", in.At.String(), "tool", in.ToolArgs)
	switch in.Op {
	case OpEnter:
		s.Enter(in.At.X, in.At.Y)
	case OpMove:
		s.Move(in.At.X, in.At.Y)
	case OpPress:
		s.Press(in.At.X, in.At.Y)
	case OpRelease:
		s.Release()
	case OpLeave:
		s.Leave()
	case OpTool:
		t, err := ResolveTool(s.Catalog(), in.ToolArgs)
		if err != nil {
			return err
		}
		return s.SelectTool(t)
	case OpUndo:
		s.Undo()
	case OpRedo:
		s.Redo()
	case OpClear:
		s.Clear()
	case OpState:
		return Describe(r.out, s)
	default:
		return fmt.Errorf("%w: unhandled instruction %v", ErrSyntax, in.Op)
	}
	return nil
}

// Run parses the whole of src, then executes it, stopping at the first
// error. A syntax error anywhere means nothing runs.
func (r *Runner) Run(src io.Reader) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}
	for _, in := range prog {
		if err := r.Exec(in); err != nil {
			return fmt.Errorf("line %d: %w", in.Line, err)
		}
	}
	return nil
}

// ExecLine parses and executes one line, prefixing errors with its number.
func (r *Runner) ExecLine(n int, line string) error {
	in, ok, err := ParseLine(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", n, err)
	}
	if !ok {
		return nil
	}
	in.Line = n
	if err := r.Exec(in); err != nil {
		return fmt.Errorf("line %d: %w", n, err)
	}
	return nil
}

// Describe prints the session's tool, phase, history and control flags.
func Describe(w io.Writer, s *sketch.Session) error {
	bw := bufio.NewWriter(w)
	h := s.History()
	c := s.Controls()
	fmt.Fprintf(bw, "tool: %s\n", s.Tool())
	fmt.Fprintf(bw, "phase: %s\n", s.Phase())
	fmt.Fprintf(bw, "committed: %d\n", h.Len())
	for i, cmd := range h.Commands() {
		fmt.Fprintf(bw, "  %d %v\n", i+1, cmd)
	}
	fmt.Fprintf(bw, "redo: %d\n", h.RedoLen())
	for i, cmd := range h.RedoBuffer() {
		fmt.Fprintf(bw, "  %d %v\n", i+1, cmd)
	}
	fmt.Fprintf(bw, "undo enabled: %t, redo enabled: %t\n", c.UndoEnabled, c.RedoEnabled)
	return bw.Flush()
}
