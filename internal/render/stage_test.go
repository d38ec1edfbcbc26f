package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestStageDrawsShadowOutsideCanvas(t *testing.T) {
	bg := color.RGBA{200, 200, 200, 255}
	dst := filled(60, 60, bg)
	paper := filled(20, 20, color.RGBA{255, 255, 255, 255})
	stage := NewStage(StageOptions{Radius: 3, Offset: image.Pt(6, 6), Shadow: color.RGBA{A: 200}})

	r := image.Rect(10, 10, 30, 30)
	stage.Draw(dst, r, paper)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if got := dst.RGBAAt(x, y); got != (color.RGBA{255, 255, 255, 255}) {
				t.Fatalf("canvas pixel (%d,%d) = %+v", x, y, got)
			}
		}
	}
	if got := dst.RGBAAt(33, 33); got.R >= bg.R {
		t.Fatalf("expected shadow darkening at (33,33), got %+v", got)
	}
	if got := dst.RGBAAt(2, 2); got != bg {
		t.Fatalf("pixel far from canvas changed: %+v", got)
	}
}

func TestStageNoShadowWhenTransparent(t *testing.T) {
	bg := color.RGBA{10, 20, 30, 255}
	dst := filled(40, 40, bg)
	stage := NewStage(StageOptions{Radius: 4, Offset: image.Pt(8, 8)})
	stage.Draw(dst, image.Rect(5, 5, 15, 15), filled(10, 10, color.RGBA{255, 0, 0, 255}))

	if got := dst.RGBAAt(20, 20); got != bg {
		t.Fatalf("shadow drawn with zero alpha: %+v", got)
	}
	if got := dst.RGBAAt(5, 5); got.R != 255 {
		t.Fatalf("canvas not copied: %+v", got)
	}
}

func TestStageMaskCachedPerSize(t *testing.T) {
	stage := NewStage(DefaultStageOptions(color.RGBA{A: 100}))
	a := stage.shadowMask(image.Pt(8, 8))
	if b := stage.shadowMask(image.Pt(8, 8)); a != b {
		t.Fatal("mask recomputed for the same size")
	}
	if c := stage.shadowMask(image.Pt(9, 8)); c == a {
		t.Fatal("mask reused across sizes")
	}
}

func TestStageMargin(t *testing.T) {
	stage := NewStage(StageOptions{Radius: 4, Offset: image.Pt(-2, 7)})
	if got := stage.Margin(); got != 11 {
		t.Fatalf("Margin = %d, want 11", got)
	}
}

func TestBlurAlphaSpreads(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 9, 9))
	src.SetAlpha(4, 4, color.Alpha{A: 255})

	out := blurAlpha(src, 1)
	if out.AlphaAt(4, 4).A == 0 {
		t.Fatal("expected alpha at centre")
	}
	if out.AlphaAt(5, 5).A == 0 {
		t.Fatal("expected blur to reach diagonal neighbour")
	}
	if out.AlphaAt(7, 4).A != 0 {
		t.Fatal("blur spread beyond radius")
	}

	same := blurAlpha(src, 0)
	if same.AlphaAt(4, 4).A != 255 || same == src {
		t.Fatal("zero radius should return a copy")
	}
}
