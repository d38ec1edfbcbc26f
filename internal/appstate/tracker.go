package appstate

import (
	"image"

	"golang.org/x/mobile/event/mouse"
)

// pointerTarget receives canvas-local pointer intents. *sketch.Session
// implements it.
type pointerTarget interface {
	Enter(x, y float64)
	Leave()
	Move(x, y float64)
	Press(x, y float64)
	Release()
}

// pointerTracker turns window mouse events into pointer intents for the
// canvas. Crossing the canvas edge synthesises Enter and Leave. Once the
// left button is pressed on the canvas, motion keeps flowing to the target
// until the button is released anywhere in the window.
type pointerTracker struct {
	canvas image.Rectangle
	target pointerTarget
	inside bool
	held   bool
}

// handle forwards e and reports whether the target was called.
func (t *pointerTracker) handle(e mouse.Event) bool {
	x := float64(e.X) - float64(t.canvas.Min.X)
	y := float64(e.Y) - float64(t.canvas.Min.Y)
	in := image.Pt(int(e.X), int(e.Y)).In(t.canvas)

	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		if !in {
			return false
		}
		if !t.inside {
			t.inside = true
			t.target.Enter(x, y)
		}
		t.held = true
		t.target.Press(x, y)
		return true

	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		if !t.held {
			return false
		}
		t.held = false
		t.target.Release()
		return true

	case e.Direction == mouse.DirNone:
		changed := false
		switch {
		case in && !t.inside:
			t.inside = true
			t.target.Enter(x, y)
			if !t.held {
				return true
			}
			changed = true
		case !in && t.inside:
			t.inside = false
			t.target.Leave()
			changed = true
		}
		if in || t.held {
			t.target.Move(x, y)
			changed = true
		}
		return changed
	}
	return false
}

// capturing reports whether events belong to the canvas regardless of
// where the pointer is.
func (t *pointerTracker) capturing() bool { return t.held }
