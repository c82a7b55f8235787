package geometry

import "math"

// coincidentEpsilon is the center distance below which two circles are
// treated as the same circle.
const coincidentEpsilon = 1e-9

// Intersect returns the two points where equal circles of radius r centered
// at c1 and c2 cross. ok is false when the circles are more than 2r apart or
// coincide.
//
// The points sit on the radical line, offset from the midpoint of c1-c2 by
// h = sqrt(r² - (d/2)²) on either side. When the circles touch (d == 2r)
// both points are the same.
func Intersect(c1, c2 Point, r float64) (pts [2]Point, ok bool) {
	dx := c2.X - c1.X
	dy := c2.Y - c1.Y
	d := math.Hypot(dx, dy)
	if d > 2*r || d < coincidentEpsilon {
		return pts, false
	}
	a := d / 2
	h := math.Sqrt(math.Max(r*r-a*a, 0))
	mid := c1.Plus(c2).Times(0.5)
	off := Point{X: -dy / d * h, Y: dx / d * h}
	pts[0] = mid.Plus(off)
	pts[1] = mid.Minus(off)
	return pts, true
}

// LensPath returns the closed outline of the region shared by the circles of
// radius r at c1 and c2: an arc around c1 from the first intersection point
// to the second, then an arc around c2 back to the first. The result is empty
// when the circles do not intersect.
func LensPath(c1, c2 Point, r float64) Path {
	pts, ok := Intersect(c1, c2, r)
	if !ok {
		return Path{}
	}
	p1, p2 := pts[0], pts[1]
	return Path{
		Start: p1,
		Segments: []Segment{
			arcTo(c1, r, p1, p2),
			arcTo(c2, r, p2, p1),
		},
		Closed: true,
	}
}

func arcTo(center Point, r float64, from, to Point) Segment {
	return Segment{
		Kind:   SegmentArc,
		To:     to,
		Center: center,
		Radius: r,
		Sweep:  sweepFlag(center, from, to),
	}
}
