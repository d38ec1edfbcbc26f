package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/stickerpad/internal/script"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"STICKERPAD_THEME", "STICKERPAD_CANVAS_WIDTH", "STICKERPAD_CANVAS_HEIGHT", "STICKERPAD_MARKERS", "STICKERPAD_STICKERS", "STICKERPAD_GLYPH_FONT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	var out, errOut bytes.Buffer
	r := newRoot(strings.NewReader(stdin), &out, &errOut)
	err := r.Run(args)
	return out.String(), errOut.String(), err
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNoCommandIsUsageError(t *testing.T) {
	_, _, err := runCLI(t, "")
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	help := uerr.Error()
	for _, want := range []string{"Usage: stickerpad", "replay", "-width"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := runCLI(t, "", "paint")
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestReplayRequiresFile(t *testing.T) {
	_, _, err := runCLI(t, "", "replay")
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "stickerpad replay -file") {
		t.Fatalf("help = %s", uerr.Error())
	}
}

func TestReplayPrintsState(t *testing.T) {
	path := writeScript(t, "press 1 1\nmove 2 2\nrelease\ntool 3\npress 5 5\nrelease\nundo\n")
	out, _, err := runCLI(t, "", "replay", "-file", path)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	for _, want := range []string{
		"committed: 1\n",
		"stroke [(1,1) (2,2)] thickness=2",
		"redo: 1\n",
		"stamp ⭐ at (5,5)",
		"undo enabled: true, redo enabled: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReplayTrace(t *testing.T) {
	path := writeScript(t, "press 1 1\nmove 2 2\nrelease\n")
	out, _, err := runCLI(t, "", "-width", "40", "-height", "30", "replay", "-trace", "-file", path)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out, "clearRect 0 0 40 30\n") {
		t.Errorf("trace missing sized clear:\n%s", out)
	}
	if !strings.Contains(out, "stroke 2\n") {
		t.Errorf("trace missing stroke:\n%s", out)
	}
}

func TestReplayScriptErrorHasLine(t *testing.T) {
	path := writeScript(t, "press 1 1\nwiggle\n")
	_, _, err := runCLI(t, "", "replay", "-file", path)
	if !errors.Is(err, script.ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2:") {
		t.Fatalf("error lacks line number: %v", err)
	}
}

func TestInteractiveContinuesAfterErrors(t *testing.T) {
	in := "press 1 1\nbogus\nrelease\nstate\nexit\npress 9 9\n"
	out, _, err := runCLI(t, in, "interactive", "-q")
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.Contains(out, "line 2: syntax error") {
		t.Errorf("missing error report:\n%s", out)
	}
	if !strings.Contains(out, "committed: 1\n") {
		t.Errorf("missing state:\n%s", out)
	}
}

func TestToolsHonoursStickersFlag(t *testing.T) {
	out, _, err := runCLI(t, "", "-stickers", "🐙, 🦀", "tools")
	if err != nil {
		t.Fatalf("tools: %v", err)
	}
	for _, want := range []string{"thin", "thick", "sticker(🐙)", "sticker(🦀)"} {
		if !strings.Contains(out, want) {
			t.Errorf("tools output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "⭐") {
		t.Errorf("default stickers still listed:\n%s", out)
	}
}

func TestInvalidCanvasSize(t *testing.T) {
	_, _, err := runCLI(t, "", "-width", "0", "tools")
	if err == nil || !strings.Contains(err.Error(), "invalid settings") {
		t.Fatalf("expected invalid settings error, got %v", err)
	}
}

func TestConfigPrintAndSave(t *testing.T) {
	out, _, err := runCLI(t, "", "-width", "320", "config", "print")
	if err != nil {
		t.Fatalf("config print: %v", err)
	}
	if !strings.Contains(out, "width = 320") {
		t.Errorf("config print:\n%s", out)
	}

	dest := filepath.Join(t.TempDir(), "nested", "out.rc")
	if _, _, err := runCLI(t, "", "config", "-o", dest, "save"); err != nil {
		t.Fatalf("config save: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[tools]") {
		t.Errorf("saved config:\n%s", data)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "stickerpad version dev\n" {
		t.Fatalf("version output %q", out)
	}
}
