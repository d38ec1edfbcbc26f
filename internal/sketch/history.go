package sketch

// History owns the committed drawing and the redo buffer.
//
// committed is oldest-first; redo holds undone commands with the most
// recently undone last. A command is never in both.
type History struct {
	committed []Command
	redo      []Command
	onChange  func()
}

// NewHistory returns an empty history. onChange, if non-nil, runs after
// every mutation that changed either sequence.
func NewHistory(onChange func()) *History {
	return &History{onChange: onChange}
}

func (h *History) changed() {
	if h.onChange != nil {
		h.onChange()
	}
}

// Append commits c and discards any redo history.
func (h *History) Append(c Command) {
	h.committed = append(h.committed, c)
	clear(h.redo)
	h.redo = h.redo[:0]
	h.changed()
}

// Undo moves the newest committed command to the redo buffer. It reports
// false, and does nothing, when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.committed) == 0 {
		return false
	}
	last := h.committed[len(h.committed)-1]
	h.committed[len(h.committed)-1] = nil
	h.committed = h.committed[:len(h.committed)-1]
	h.redo = append(h.redo, last)
	h.changed()
	return true
}

// Redo recommits the most recently undone command.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	last := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]
	h.committed = append(h.committed, last)
	h.changed()
	return true
}

// Clear drops both sequences.
func (h *History) Clear() {
	h.committed = nil
	h.redo = nil
	h.changed()
}

func (h *History) IsEmpty() bool { return len(h.committed) == 0 }
func (h *History) HasRedo() bool { return len(h.redo) > 0 }
func (h *History) Len() int      { return len(h.committed) }
func (h *History) RedoLen() int  { return len(h.redo) }

// Commands returns the committed commands, oldest first.
func (h *History) Commands() []Command {
	out := make([]Command, len(h.committed))
	copy(out, h.committed)
	return out
}

// RedoBuffer returns the undone commands, most recently undone last.
func (h *History) RedoBuffer() []Command {
	out := make([]Command, len(h.redo))
	copy(out, h.redo)
	return out
}

// HistoryView is a read-only handle on a History.
type HistoryView struct{ h *History }

// View returns a read-only handle on h.
func (h *History) View() HistoryView { return HistoryView{h: h} }

func (v HistoryView) IsEmpty() bool         { return v.h.IsEmpty() }
func (v HistoryView) HasRedo() bool         { return v.h.HasRedo() }
func (v HistoryView) Len() int              { return v.h.Len() }
func (v HistoryView) RedoLen() int          { return v.h.RedoLen() }
func (v HistoryView) Commands() []Command   { return v.h.Commands() }
func (v HistoryView) RedoBuffer() []Command { return v.h.RedoBuffer() }
