package sketch

// redraw clears the surface, replays the committed commands oldest first and
// overlays the preview unless a command is being drawn. It then recomputes
// the control state.
func (s *Session) redraw(Signal) {
	w, h := s.surface.Bounds()
	s.surface.ClearRect(0, 0, w, h)
	for _, c := range s.history.committed {
		c.Display(s.surface)
	}
	if s.phase != PhaseDrawing && s.preview != nil {
		s.preview.Display(s.surface)
	}

	s.controls = Controls{
		UndoEnabled: !s.history.IsEmpty(),
		RedoEnabled: s.history.HasRedo(),
		Selected:    s.tool,
	}
	if s.onControls != nil {
		s.onControls(s.controls)
	}
}
