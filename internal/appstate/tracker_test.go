package appstate

import (
	"fmt"
	"image"
	"reflect"
	"testing"

	"golang.org/x/mobile/event/mouse"
)

type recorder struct{ calls []string }

func (r *recorder) Enter(x, y float64) { r.calls = append(r.calls, fmt.Sprintf("enter %g %g", x, y)) }
func (r *recorder) Leave()             { r.calls = append(r.calls, "leave") }
func (r *recorder) Move(x, y float64)  { r.calls = append(r.calls, fmt.Sprintf("move %g %g", x, y)) }
func (r *recorder) Press(x, y float64) { r.calls = append(r.calls, fmt.Sprintf("press %g %g", x, y)) }
func (r *recorder) Release()           { r.calls = append(r.calls, "release") }

func motion(x, y float32) mouse.Event { return mouse.Event{X: x, Y: y} }

func press(x, y float32) mouse.Event {
	return mouse.Event{X: x, Y: y, Button: mouse.ButtonLeft, Direction: mouse.DirPress}
}

func release(x, y float32) mouse.Event {
	return mouse.Event{X: x, Y: y, Button: mouse.ButtonLeft, Direction: mouse.DirRelease}
}

func TestPointerTrackerDragOutAndBack(t *testing.T) {
	rec := &recorder{}
	tr := &pointerTracker{canvas: image.Rect(10, 10, 110, 110), target: rec}

	events := []mouse.Event{
		motion(5, 5),
		motion(20, 30),
		motion(25, 30),
		press(25, 30),
		motion(200, 30),
		motion(210, 30),
		motion(30, 30),
		release(30, 30),
	}
	for _, e := range events {
		tr.handle(e)
	}
	want := []string{
		"enter 10 20",
		"move 15 20",
		"press 15 20",
		"leave",
		"move 190 20",
		"move 200 20",
		"enter 20 20",
		"move 20 20",
		"release",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %q\nwant %q", rec.calls, want)
	}
}

func TestPointerTrackerReleaseOutside(t *testing.T) {
	rec := &recorder{}
	tr := &pointerTracker{canvas: image.Rect(0, 0, 50, 50), target: rec}

	tr.handle(press(10, 10))
	if !tr.capturing() {
		t.Fatal("expected capture after press on canvas")
	}
	tr.handle(motion(80, 10))
	if !tr.handle(release(300, 300)) {
		t.Fatal("release outside the canvas was not forwarded")
	}
	if tr.capturing() {
		t.Fatal("capture should end on release")
	}
	want := []string{"enter 10 10", "press 10 10", "leave", "move 80 10", "release"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %q\nwant %q", rec.calls, want)
	}
}

func TestPointerTrackerIgnoresOutsideEvents(t *testing.T) {
	rec := &recorder{}
	tr := &pointerTracker{canvas: image.Rect(0, 0, 50, 50), target: rec}

	if tr.handle(press(70, 70)) {
		t.Error("press outside the canvas was consumed")
	}
	if tr.handle(release(70, 70)) {
		t.Error("release without a press was consumed")
	}
	if tr.handle(motion(60, 60)) {
		t.Error("motion outside was consumed")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("unexpected calls %q", rec.calls)
	}
}
