// Package script drives a sketch session from a line-oriented text
// protocol, one intent per line. It backs the replay and interactive
// commands.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/stickerpad/internal/sketch"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

// Op names a script instruction.
type Op int

const (
	OpEnter Op = iota + 1
	OpMove
	OpPress
	OpRelease
	OpLeave
	OpTool
	OpUndo
	OpRedo
	OpClear
	OpState
)

var opNames = map[string]Op{
	"enter":   OpEnter,
	"move":    OpMove,
	"press":   OpPress,
	"release": OpRelease,
	"leave":   OpLeave,
	"tool":    OpTool,
	"undo":    OpUndo,
	"redo":    OpRedo,
	"clear":   OpClear,
	"state":   OpState,
}

func (o Op) String() string {
	for name, op := range opNames {
		if op == o {
			return name
		}
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Instruction is one parsed script line.
type Instruction struct {
	Line int
	Op   Op
	At   sketch.Point
	// Tool arguments: "marker 3", "sticker ⭐", "thin" or "2".
	ToolArgs []string
}

// ParseLine parses a single instruction. Blank and comment lines yield
// ok == false with a nil error.
func ParseLine(line string) (Instruction, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Instruction{}, false, nil
	}
	fields := strings.Fields(line)
	op, found := opNames[strings.ToLower(fields[0])]
	if !found {
		return Instruction{}, false, fmt.Errorf("%w: unknown instruction %q", ErrSyntax, fields[0])
	}
	in := Instruction{Op: op}
	args := fields[1:]
	switch op {
	case OpEnter, OpMove, OpPress:
		p, err := parsePoint(args)
		if err != nil {
			return Instruction{}, false, fmt.Errorf("%s: %w", op, err)
		}
		in.At = p
	case OpTool:
		if len(args) == 0 {
			return Instruction{}, false, fmt.Errorf("%w: tool needs an argument", ErrSyntax)
		}
		in.ToolArgs = args
	default:
		if len(args) != 0 {
			return Instruction{}, false, fmt.Errorf("%w: %s takes no arguments", ErrSyntax, op)
		}
	}
	return in, true, nil
}

func parsePoint(args []string) (sketch.Point, error) {
	if len(args) != 2 {
		return sketch.Point{}, fmt.Errorf("%w: want X Y, got %d arguments", ErrSyntax, len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return sketch.Point{}, fmt.Errorf("%w: bad X %q", ErrSyntax, args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return sketch.Point{}, fmt.Errorf("%w: bad Y %q", ErrSyntax, args[1])
	}
	return sketch.Pt(x, y), nil
}

// Parse reads a whole script. Errors carry the line number.
func Parse(r io.Reader) ([]Instruction, error) {
	var out []Instruction
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		in, ok, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if ok {
			in.Line = n
			out = append(out, in)
		}
	}
	return out, scanner.Err()
}

// ResolveTool turns tool arguments into a tool from the catalog, or a
// free-form marker or sticker.
func ResolveTool(c sketch.Catalog, args []string) (sketch.Tool, error) {
	switch strings.ToLower(args[0]) {
	case "marker":
		if len(args) != 2 {
			return sketch.Tool{}, fmt.Errorf("%w: tool marker THICKNESS", ErrSyntax)
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return sketch.Tool{}, fmt.Errorf("%w: bad thickness %q", ErrSyntax, args[1])
		}
		return sketch.Marker(v), nil
	case "sticker":
		if len(args) != 2 {
			return sketch.Tool{}, fmt.Errorf("%w: tool sticker GLYPH", ErrSyntax)
		}
		return sketch.Sticker(args[1]), nil
	}
	if len(args) != 1 {
		return sketch.Tool{}, fmt.Errorf("%w: unexpected tool arguments %q", ErrSyntax, args)
	}
	if n, err := strconv.Atoi(args[0]); err == nil {
		tools := c.Tools()
		if n < 1 || n > len(tools) {
			return sketch.Tool{}, fmt.Errorf("%w: tool %d out of range 1..%d", sketch.ErrInvalidTool, n, len(tools))
		}
		return tools[n-1], nil
	}
	if t, ok := c.Lookup(args[0]); ok {
		return t, nil
	}
	return sketch.Tool{}, fmt.Errorf("%w: no tool labelled %q", sketch.ErrInvalidTool, args[0])
}
