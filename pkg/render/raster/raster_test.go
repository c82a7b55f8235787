package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/flower"
	"github.com/matzehuels/bloom/pkg/render"
)

func countColor(t *testing.T, size int, want color.RGBA) int {
	t.Helper()
	img, err := RenderLogo(flower.Build(flower.DefaultParams()), size)
	if err != nil {
		t.Fatalf("RenderLogo: %v", err)
	}
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestRenderLogo(t *testing.T) {
	const size = 128
	img, err := RenderLogo(flower.Build(flower.DefaultParams()), size)
	if err != nil {
		t.Fatalf("RenderLogo: %v", err)
	}
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		t.Fatalf("bounds = %v, want %dx%d", b, size, size)
	}
	if c := img.RGBAAt(0, 0); c.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", c)
	}
	if c := img.RGBAAt(size-1, size-1); c.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", c)
	}

	petal, _ := render.ParseColor(render.DefaultPalette().Petal)
	dark, _ := render.ParseColor(render.DefaultPalette().Dark)
	if n := countColor(t, size, petal); n < 100 {
		t.Errorf("petal pixels = %d, want a filled flower", n)
	}
	if n := countColor(t, size, dark); n == 0 {
		t.Error("no overlap pixels")
	}
}

func TestRenderLogoPalette(t *testing.T) {
	p := render.DefaultPalette()
	p.Petal = "#ff0000"
	img, err := RenderLogo(flower.Build(flower.DefaultParams()), 64, WithPalette(p))
	if err != nil {
		t.Fatalf("RenderLogo: %v", err)
	}
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{0xff, 0, 0, 0xff}) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("custom petal colour not used")
	}

	p.Dark = "nope"
	if _, err := RenderLogo(flower.Build(flower.DefaultParams()), 64, WithPalette(p)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad colour error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderLogoSize(t *testing.T) {
	f := flower.Build(flower.DefaultParams())
	for _, size := range []int{0, -1, MaxSize + 1} {
		if _, err := RenderLogo(f, size); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("size %d: error = %v, want INVALID_INPUT", size, err)
		}
	}
}

func TestRenderLogoPNG(t *testing.T) {
	data, err := RenderLogoPNG(flower.Build(flower.DefaultParams()), 32)
	if err != nil {
		t.Fatalf("RenderLogoPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("decoded bounds = %v, want 32x32", b)
	}
}

func TestWithPadding(t *testing.T) {
	f := flower.Build(flower.DefaultParams())
	tight, _ := RenderLogo(f, 64, WithPadding(0))
	loose, _ := RenderLogo(f, 64, WithPadding(300))
	opaque := func(img interface{ RGBAAt(x, y int) color.RGBA }) int {
		n := 0
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				if img.RGBAAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if opaque(tight) <= opaque(loose) {
		t.Error("more padding should shrink the drawn flower")
	}
}
