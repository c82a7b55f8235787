package geometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
)

// SegmentKind identifies how a [Segment] reaches its end point.
type SegmentKind uint8

const (
	// SegmentLine is a straight line.
	SegmentLine SegmentKind = iota
	// SegmentArc is the short arc of a circle.
	SegmentArc
)

// Segment is one drawing step of a [Path]. Arc fields are zero for lines.
type Segment struct {
	Kind   SegmentKind
	To     Point
	Center Point
	Radius float64
	Sweep  bool // SVG sweep-flag: true draws in the positive-angle direction
}

// Path is an outline made of lines and short circular arcs. The zero value
// is the empty path.
type Path struct {
	Start    Point
	Segments []Segment
	Closed   bool
}

// Polyline returns an open path through pts. It is empty for fewer than two
// points.
func Polyline(pts []Point) Path {
	if len(pts) < 2 {
		return Path{}
	}
	p := Path{Start: pts[0], Segments: make([]Segment, 0, len(pts)-1)}
	for _, pt := range pts[1:] {
		p.Segments = append(p.Segments, Segment{Kind: SegmentLine, To: pt})
	}
	return p
}

// IsEmpty reports whether the path draws nothing.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// End returns the last point reached by the path.
func (p Path) End() Point {
	if p.IsEmpty() {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].To
}

// Points returns the start point followed by every segment end point.
func (p Path) Points() []Point {
	if p.IsEmpty() {
		return nil
	}
	pts := make([]Point, 0, len(p.Segments)+1)
	pts = append(pts, p.Start)
	for _, s := range p.Segments {
		pts = append(pts, s.To)
	}
	return pts
}

// SVG returns the path as SVG path data, e.g. "M 1 2 A 160 160 0 0 1 3 4 Z".
// The empty path yields "".
func (p Path) SVG() string {
	if p.IsEmpty() {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, p.Start)
	for _, s := range p.Segments {
		switch s.Kind {
		case SegmentArc:
			b.WriteString(" A ")
			b.WriteString(FormatFloat(s.Radius))
			b.WriteByte(' ')
			b.WriteString(FormatFloat(s.Radius))
			b.WriteString(" 0 0 ")
			if s.Sweep {
				b.WriteString("1 ")
			} else {
				b.WriteString("0 ")
			}
		default:
			b.WriteString(" L ")
		}
		writePoint(&b, s.To)
	}
	if p.Closed {
		b.WriteString(" Z")
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(FormatFloat(pt.X))
	b.WriteByte(' ')
	b.WriteString(FormatFloat(pt.Y))
}

// FormatFloat formats v with at most three decimals and no trailing zeros.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Flatten approximates the path by a polyline. Arcs are split so that no
// chord spans more than maxAngle radians; maxAngle <= 0 selects 5 degrees.
// A closed path repeats its start point at the end.
func (p Path) Flatten(maxAngle float64) []Point {
	if p.IsEmpty() {
		return nil
	}
	if maxAngle <= 0 {
		maxAngle = Radians(5)
	}
	pts := []Point{p.Start}
	cur := p.Start
	for _, s := range p.Segments {
		if s.Kind == SegmentArc {
			pts = append(pts, flattenArc(s, cur, maxAngle)...)
		} else {
			pts = append(pts, s.To)
		}
		cur = s.To
	}
	if p.Closed && cur != p.Start {
		pts = append(pts, p.Start)
	}
	return pts
}

// flattenArc returns the points after from along the arc s, ending at s.To.
func flattenArc(s Segment, from Point, maxAngle float64) []Point {
	if from == s.To {
		return []Point{s.To}
	}
	a0 := math.Atan2(from.Y-s.Center.Y, from.X-s.Center.X)
	a1 := math.Atan2(s.To.Y-s.Center.Y, s.To.X-s.Center.X)
	delta := a1 - a0
	if s.Sweep {
		for delta <= 0 {
			delta += 2 * math.Pi
		}
	} else {
		for delta >= 0 {
			delta -= 2 * math.Pi
		}
	}
	n := int(math.Ceil(math.Abs(delta) / maxAngle))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n)
	for i := 1; i < n; i++ {
		pts = append(pts, Polar(s.Center, a0+delta*float64(i)/float64(n), s.Radius))
	}
	return append(pts, s.To)
}

// Bounds returns the bounding rectangle of the flattened path. The empty
// path yields the zero rectangle.
func (p Path) Bounds() geom.Rect {
	pts := p.Flatten(0)
	if len(pts) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		r.ExpandToContainCoord(pt)
	}
	return r
}
