package svg

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"

	"github.com/google/uuid"
	"github.com/jbeda/geom"

	"github.com/matzehuels/bloom/pkg/anim"
	"github.com/matzehuels/bloom/pkg/caption"
	"github.com/matzehuels/bloom/pkg/flower"
	"github.com/matzehuels/bloom/pkg/geometry"
	"github.com/matzehuels/bloom/pkg/render"
)

const (
	// DefaultPadding surrounds the scene so captions beside the tips fit.
	DefaultPadding = 220.0
	// DefaultLogoPadding is the margin around the logo.
	DefaultLogoPadding = 10.0
)

// clipNamespace seeds the overlap clip ids. Ids derive from the overlap
// index only, so identical states produce identical documents.
var clipNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/bloom/clip"))

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	palette  render.Palette
	profile  caption.Profile
	rounds   []caption.Round
	anchors  [caption.BlocksPerRound]caption.Anchor
	padding  float64
	size     int
	captions bool
}

// WithPalette replaces render.DefaultPalette().
func WithPalette(p render.Palette) Option { return func(r *renderer) { r.palette = p } }

// WithProfile sets the caption layout profile (default caption.Standard).
func WithProfile(p caption.Profile) Option { return func(r *renderer) { r.profile = p } }

// WithRounds replaces caption.DefaultRounds.
func WithRounds(rounds []caption.Round) Option { return func(r *renderer) { r.rounds = rounds } }

// WithAnchors replaces caption.DefaultAnchors.
func WithAnchors(a [caption.BlocksPerRound]caption.Anchor) Option {
	return func(r *renderer) { r.anchors = a }
}

// WithPadding overrides the margin around the circles.
func WithPadding(p float64) Option { return func(r *renderer) { r.padding = p } }

// WithSize sets the width and height attributes in pixels. Without it the
// document only carries a viewBox and scales to its container.
func WithSize(px int) Option { return func(r *renderer) { r.size = px } }

// WithoutCaptions leaves the caption groups out of frames.
func WithoutCaptions() Option { return func(r *renderer) { r.captions = false } }

func newRenderer(padding float64, opts ...Option) renderer {
	r := renderer{
		palette:  render.DefaultPalette(),
		profile:  caption.Standard,
		rounds:   caption.DefaultRounds,
		anchors:  caption.DefaultAnchors,
		padding:  padding,
		captions: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	// Colours land in attribute values; unvalidated ones must not break out.
	p := &r.palette
	for _, c := range []*string{&p.Petal, &p.Vein, &p.LogoVein, &p.Dark, &p.Text} {
		*c = escape(*c)
	}
	return r
}

// ClipID returns the clip-path id used for overlap i.
func ClipID(i int) string {
	return "clip-dark-" + uuid.NewSHA1(clipNamespace, fmt.Appendf(nil, "overlap-%d", i)).String()
}

// RenderFrame draws the scene of f as it looks in state.
func RenderFrame(f *flower.Flower, state anim.VisualState, opts ...Option) []byte {
	r := newRenderer(DefaultPadding, opts...)

	var buf bytes.Buffer
	r.open(&buf, f.ViewBox(r.padding))

	buf.WriteString("<defs>\n")
	for i := range f.Petals {
		writeClip(&buf, fmt.Sprintf("clip-petal-%d", i), f.Center, state.Radii[i])
	}
	for i, o := range state.Overlaps {
		if o.Opacity > 0 && !f.Overlaps[i].Path.IsEmpty() {
			writeClip(&buf, ClipID(i), f.Center, o.Radius)
		}
	}
	buf.WriteString("</defs>\n")

	fmt.Fprintf(&buf, `<g transform-origin="%s %s" opacity="%s">`+"\n",
		num(f.Center.X), num(f.Center.Y), num(state.Opacity))

	for i, p := range f.Petals {
		fmt.Fprintf(&buf, `<g clip-path="url(#clip-petal-%d)">`+"\n", i)
		writePetal(&buf, p, r.palette.Petal, r.palette.Vein, render.VeinWidth)
		buf.WriteString("</g>\n")
	}

	for i, o := range f.Overlaps {
		if o.Path.IsEmpty() {
			continue
		}
		vis := state.Overlaps[i]
		if vis.Opacity > 0 {
			fmt.Fprintf(&buf, `<path d="%s" fill="%s" stroke="none" opacity="%s" clip-path="url(#%s)"/>`+"\n",
				o.Path.SVG(), r.palette.Dark, num(vis.Opacity), ClipID(i))
		} else {
			fmt.Fprintf(&buf, `<path d="%s" fill="%s" stroke="none" opacity="0"/>`+"\n", o.Path.SVG(), r.palette.Dark)
		}
	}

	dot := 0.0
	if state.CenterVisible {
		dot = 1
	}
	fmt.Fprintf(&buf, `<circle cx="%s" cy="%s" r="%s" fill="%s" opacity="%s"/>`+"\n",
		num(f.Center.X), num(f.Center.Y), num(render.DotRadius), r.palette.Dark, num(dot))

	if r.captions && len(r.rounds) > 0 {
		round := r.rounds[state.Round%len(r.rounds)]
		blocks := caption.Place(round, f.Tips(), r.anchors, r.profile)
		for i, lines := range blocks {
			r.writeCaption(&buf, lines, state.Captions[i].Opacity)
		}
	}

	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes()
}

// RenderLogo draws the fully grown flower without captions or clipping.
func RenderLogo(f *flower.Flower, opts ...Option) []byte {
	r := newRenderer(DefaultLogoPadding, opts...)

	var buf bytes.Buffer
	r.open(&buf, f.ViewBox(r.padding))
	for _, p := range f.Petals {
		writePetal(&buf, p, r.palette.Petal, r.palette.LogoVein, render.LogoVeinWidth)
	}
	for _, o := range f.Overlaps {
		if !o.Path.IsEmpty() {
			fmt.Fprintf(&buf, `<path d="%s" fill="%s" stroke="none"/>`+"\n", o.Path.SVG(), r.palette.Dark)
		}
	}
	fmt.Fprintf(&buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
		num(f.Center.X), num(f.Center.Y), num(render.LogoDotRadius), r.palette.Dark)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// DataURI encodes an SVG document as a base64 data URI.
func DataURI(svg []byte) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)
}

func (r renderer) open(buf *bytes.Buffer, vb geom.Rect) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s"`,
		num(vb.Min.X), num(vb.Min.Y), num(vb.Width()), num(vb.Height()))
	if r.size > 0 {
		fmt.Fprintf(buf, ` width="%d" height="%d"`, r.size, r.size)
	}
	buf.WriteString(">\n")
}

func writeClip(buf *bytes.Buffer, id string, c geometry.Point, radius float64) {
	fmt.Fprintf(buf, `<clipPath id="%s"><circle cx="%s" cy="%s" r="%s"/></clipPath>`+"\n",
		id, num(c.X), num(c.Y), num(radius))
}

func writePetal(buf *bytes.Buffer, p flower.Petal, fill, vein string, width float64) {
	fmt.Fprintf(buf, `<path d="%s" fill="%s" stroke="none"/>`+"\n", p.Lens.SVG(), fill)
	for _, v := range p.Veins {
		fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
			v.SVG(), vein, num(width))
	}
}

func (r renderer) writeCaption(buf *bytes.Buffer, lines []caption.Line, opacity float64) {
	fmt.Fprintf(buf, `<g opacity="%s">`+"\n", num(opacity))
	for _, l := range lines {
		fmt.Fprintf(buf, `<text font-family="%s" font-size="%s" fill="%s" text-anchor="middle" direction="%s" x="%s" y="%s"`,
			escape(render.FontFamily), num(r.profile.FontSize), r.palette.Text, l.Direction, num(l.X), num(l.Y))
		if l.Bold {
			buf.WriteString(` font-weight="bold"`)
		}
		fmt.Fprintf(buf, ">%s</text>\n", escape(l.Text))
	}
	buf.WriteString("</g>\n")
}

func num(v float64) string { return geometry.FormatFloat(v) }

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
