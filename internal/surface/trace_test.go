package surface

import (
	"testing"

	"github.com/example/stickerpad/internal/sketch"
)

func TestTraceRecordsAndScopesStyle(t *testing.T) {
	tr := NewTrace(10, 20)
	tr.Save()
	tr.SetLineWidth(3)
	tr.SetAlpha(0.5)
	tr.SetLineCap(sketch.LineCapRound)
	tr.Stroke()
	tr.Restore()
	tr.Stroke()

	want := "save\nlineWidth 3\nalpha 0.5\nlineCap 1\nstroke 3\nrestore\nstroke 1\n"
	if got := tr.String(); got != want {
		t.Fatalf("trace:\n%s\nwant:\n%s", got, want)
	}
	if tr.Depth() != 0 {
		t.Fatalf("depth = %d", tr.Depth())
	}
	if tr.Count("stroke") != 2 {
		t.Fatalf("stroke count = %d", tr.Count("stroke"))
	}
	tr.Reset()
	if len(tr.Ops()) != 0 {
		t.Fatal("reset kept ops")
	}
	if w, h := tr.Bounds(); w != 10 || h != 20 {
		t.Fatalf("bounds = %gx%g", w, h)
	}
}
