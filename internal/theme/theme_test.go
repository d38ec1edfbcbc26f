package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	input := `
# comment
Name: mine
ink: #112233
Shadow: #00000080
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "mine" {
		t.Errorf("name = %q", th.Name)
	}
	if th.Ink != (color.RGBA{0x11, 0x22, 0x33, 0xff}) {
		t.Errorf("ink = %+v", th.Ink)
	}
	if th.Shadow.A != 0x80 {
		t.Errorf("shadow alpha = %d", th.Shadow.A)
	}
	if th.Paper != Default().Paper {
		t.Errorf("paper should keep default, got %+v", th.Paper)
	}
}

func TestParseBadColor(t *testing.T) {
	_, err := Parse(strings.NewReader("Name: x\nInk: 123456\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line-numbered error, got %v", err)
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xAA, 0xBB, 0xCC, 0x10}} {
		got, err := ParseColor(FormatColor(c))
		if err != nil || got != c {
			t.Fatalf("round trip %v -> %v, %v", c, got, err)
		}
	}
}

func TestLoaderEmbeddedAndFiles(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{ConfigDir: dir}

	dark, err := l.Load("dark")
	if err != nil {
		t.Fatalf("load dark: %v", err)
	}
	if dark.Name != "dark" {
		t.Errorf("dark name = %q", dark.Name)
	}

	if err := os.WriteFile(filepath.Join(dir, "mint.theme"), []byte("Name: mint\nPaper: #E0FFE0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	mint, err := l.Load("mint")
	if err != nil {
		t.Fatalf("load mint: %v", err)
	}
	if mint.Paper != (color.RGBA{0xE0, 0xFF, 0xE0, 0xFF}) {
		t.Errorf("mint paper = %+v", mint.Paper)
	}

	if _, err := l.Load("nope"); err == nil {
		t.Fatal("expected error for missing theme")
	}
	def, err := l.Load("")
	if err != nil || def.Name != "Default" {
		t.Fatalf("empty name = %v, %v", def, err)
	}

	names := l.Names()
	if strings.Join(names, ",") != "dark,default,high_contrast" {
		t.Fatalf("names = %v", names)
	}
}

func TestFieldsCoverColours(t *testing.T) {
	fields := Fields(Default())
	if len(fields) != 13 {
		t.Fatalf("fields = %d", len(fields))
	}
	if fields[0].Name != "Background" {
		t.Fatalf("first field = %s", fields[0].Name)
	}
}
