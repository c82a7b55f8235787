package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Point is a 2D coordinate in SVG user space (y grows downward).
type Point = geom.Coord

// insideTolerance is added to the squared radius so points computed on a
// circle boundary still count as inside it.
const insideTolerance = 0.01

// IsInside reports whether p lies inside the circle of radius r centered at c.
// Points exactly on the boundary are inside.
func IsInside(p, c Point, r float64) bool {
	dx := p.X - c.X
	dy := p.Y - c.Y
	return dx*dx+dy*dy <= r*r+insideTolerance
}

// Polar returns the point at distance dist from origin along angle (radians).
func Polar(origin Point, angle, dist float64) Point {
	return Point{
		X: origin.X + math.Cos(angle)*dist,
		Y: origin.Y + math.Sin(angle)*dist,
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// cross is the z component of the 2D cross product of the vectors
// center->from and center->to.
func cross(center, from, to Point) float64 {
	v1 := from.Minus(center)
	v2 := to.Minus(center)
	return v1.X*v2.Y - v1.Y*v2.X
}

// sweepFlag picks the SVG sweep flag for the short arc around center from
// from to to.
func sweepFlag(center, from, to Point) bool {
	return cross(center, from, to) > 0
}
