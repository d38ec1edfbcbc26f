package sketch

import "strconv"

// Signal names a change the redraw coordinator reacts to.
type Signal int

const (
	HistoryChanged Signal = iota + 1
	ToolMoved
)

func (s Signal) String() string {
	switch s {
	case HistoryChanged:
		return "history-changed"
	case ToolMoved:
		return "tool-moved"
	default:
		return "Signal(" + strconv.Itoa(int(s)) + ")"
	}
}

// dispatcher delivers signals synchronously, in subscription order, before
// emit returns.
type dispatcher struct {
	handlers map[Signal][]func(Signal)
}

func (d *dispatcher) subscribe(sig Signal, fn func(Signal)) {
	if d.handlers == nil {
		d.handlers = make(map[Signal][]func(Signal))
	}
	d.handlers[sig] = append(d.handlers[sig], fn)
}

func (d *dispatcher) emit(sig Signal) {
	for _, fn := range d.handlers[sig] {
		fn(sig)
	}
}
