// Package raster fills the logo geometry into bitmaps.
//
// Paths are flattened to polylines and filled with an anti-aliasing
// rasterizer; vein strokes become one quad per polyline segment. The result
// matches the SVG logo closely enough for favicon sizes.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/jbeda/geom"
	"golang.org/x/image/vector"

	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/flower"
	"github.com/matzehuels/bloom/pkg/geometry"
	"github.com/matzehuels/bloom/pkg/render"
)

const (
	// DefaultPadding matches the SVG logo margin.
	DefaultPadding = 10.0
	// MaxSize bounds the output edge in pixels.
	MaxSize = 4096

	dotSegments = 48
)

// Option configures rasterization.
type Option func(*rasterizer)

// WithPalette replaces render.DefaultPalette().
func WithPalette(p render.Palette) Option { return func(r *rasterizer) { r.palette = p } }

// WithPadding overrides the margin around the circles.
func WithPadding(p float64) Option { return func(r *rasterizer) { r.padding = p } }

type rasterizer struct {
	palette render.Palette
	padding float64

	dst    *image.RGBA
	z      *vector.Rasterizer
	origin geometry.Point
	scale  float64
}

// RenderLogo draws the fully grown flower into a size x size image with a
// transparent background.
func RenderLogo(f *flower.Flower, size int, opts ...Option) (*image.RGBA, error) {
	if size <= 0 || size > MaxSize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "size must be between 1 and %d, got %d", MaxSize, size)
	}
	r := &rasterizer{palette: render.DefaultPalette(), padding: DefaultPadding}
	for _, opt := range opts {
		opt(r)
	}

	petal, err := render.ParseColor(r.palette.Petal)
	if err != nil {
		return nil, err
	}
	vein, err := render.ParseColor(r.palette.LogoVein)
	if err != nil {
		return nil, err
	}
	dark, err := render.ParseColor(r.palette.Dark)
	if err != nil {
		return nil, err
	}

	vb := f.ViewBox(r.padding)
	r.setup(vb, size)

	veinWidth := render.LogoVeinWidth * r.scale
	for _, p := range f.Petals {
		r.fill(petal, p.Lens.Flatten(0))
		for _, v := range p.Veins {
			r.stroke(vein, v.Flatten(0), veinWidth)
		}
	}
	for _, o := range f.Overlaps {
		if !o.Path.IsEmpty() {
			r.fill(dark, o.Path.Flatten(0))
		}
	}
	r.fill(dark, circle(f.Center, render.LogoDotRadius))
	return r.dst, nil
}

// RenderLogoPNG encodes RenderLogo as PNG.
func RenderLogoPNG(f *flower.Flower, size int, opts ...Option) ([]byte, error) {
	img, err := RenderLogo(f, size, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (r *rasterizer) setup(vb geom.Rect, size int) {
	r.dst = image.NewRGBA(image.Rect(0, 0, size, size))
	r.z = vector.NewRasterizer(size, size)
	r.origin = vb.Min
	r.scale = float64(size) / math.Max(vb.Width(), vb.Height())
}

func (r *rasterizer) px(p geometry.Point) (float32, float32) {
	return float32((p.X - r.origin.X) * r.scale), float32((p.Y - r.origin.Y) * r.scale)
}

func (r *rasterizer) begin() {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *rasterizer) polygon(pts []geometry.Point) {
	if len(pts) < 3 {
		return
	}
	r.z.MoveTo(r.px(pts[0]))
	for _, p := range pts[1:] {
		r.z.LineTo(r.px(p))
	}
	r.z.ClosePath()
}

func (r *rasterizer) draw(c color.RGBA) {
	r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *rasterizer) fill(c color.RGBA, pts []geometry.Point) {
	r.begin()
	r.polygon(pts)
	r.draw(c)
}

// stroke draws pts as a polyline of the given pixel width.
func (r *rasterizer) stroke(c color.RGBA, pts []geometry.Point, width float64) {
	if len(pts) < 2 {
		return
	}
	half := width / 2 / r.scale
	r.begin()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Minus(a)
		if d.Magnitude() == 0 {
			continue
		}
		n := geometry.Point{X: -d.Y, Y: d.X}.Unit().Times(half)
		r.polygon([]geometry.Point{a.Plus(n), b.Plus(n), b.Minus(n), a.Minus(n)})
	}
	r.draw(c)
}

func circle(c geometry.Point, radius float64) []geometry.Point {
	pts := make([]geometry.Point, dotSegments)
	for i := range pts {
		pts[i] = geometry.Polar(c, 2*math.Pi*float64(i)/dotSegments, radius)
	}
	return pts
}
