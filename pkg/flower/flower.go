package flower

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/matzehuels/bloom/pkg/geometry"
)

// NumPetals is the number of petals and of arranged circles.
const NumPetals = 5

const (
	// circleAngleOffset rotates the circle ring so the petals point at
	// -90, -18, 54, 126 and 198 degrees.
	circleAngleOffset = -126.0
	petalAngleOffset  = -90.0
	angleStep         = 360.0 / NumPetals

	// extentMarchSteps is the number of 1-unit steps taken along a petal
	// axis when measuring its clip extent.
	extentMarchSteps = 350
	// extentPadding is added to the measured extent so a fully grown clip
	// circle never shaves the lens tip.
	extentPadding = 5
)

// Params fixes the circle arrangement.
type Params struct {
	Center geometry.Point
	Offset float64 // distance from Center to each circle center
	Radius float64 // shared circle radius
}

// DefaultParams returns the arrangement the flower was tuned for.
func DefaultParams() Params {
	return Params{
		Center: geometry.Point{X: 250, Y: 250},
		Offset: 158,
		Radius: 160,
	}
}

// Petal is one lens-shaped petal.
type Petal struct {
	Index     int
	Angle     float64 // axis direction in radians
	Circles   [2]int  // indices into Flower.Circles
	Lens      geometry.Path
	Veins     []geometry.Path // midrib first
	MaxExtent float64         // clip radius of the fully grown petal
	Tip       geometry.Point  // farthest point of the petal along its axis
}

// Overlap is the darker region where petals Petals[0] and Petals[1] cover
// each other.
type Overlap struct {
	Petals  [2]int
	Circles [3]int
	Path    geometry.Path // empty when the circles share no region
}

// Flower is the complete static geometry. It is built once by [Build] and
// must not be modified afterwards.
type Flower struct {
	Params
	Circles  [NumPetals]geometry.Point
	Petals   [NumPetals]Petal
	Overlaps [NumPetals]Overlap
}

// Build computes circle centers, petal lenses, veins, extents, tips and the
// overlap regions for p.
func Build(p Params) *Flower {
	f := &Flower{Params: p}
	for i := range f.Circles {
		deg := float64(i)*angleStep + circleAngleOffset
		f.Circles[i] = geometry.Polar(p.Center, geometry.Radians(deg), p.Offset)
	}

	for i := range f.Petals {
		a, b := i, (i+1)%NumPetals
		angle := PetalAngle(i)
		ca, cb := f.Circles[a], f.Circles[b]
		f.Petals[i] = Petal{
			Index:     i,
			Angle:     angle,
			Circles:   [2]int{a, b},
			Lens:      geometry.LensPath(ca, cb, p.Radius),
			Veins:     Veins(p.Center, angle, ca, cb, p.Radius),
			MaxExtent: maxExtent(p.Center, angle, ca, cb, p.Radius),
			Tip:       geometry.Polar(p.Center, angle, axisExtent(p.Center, angle, ca, cb, p.Radius)),
		}
	}

	for i := range f.Overlaps {
		c1, c2, c3 := i, (i+1)%NumPetals, (i+2)%NumPetals
		f.Overlaps[i] = Overlap{
			Petals:  [2]int{i, (i + 1) % NumPetals},
			Circles: [3]int{c1, c2, c3},
			Path:    geometry.TripleOverlap(f.Circles[c1], f.Circles[c2], f.Circles[c3], p.Radius),
		}
	}
	return f
}

// PetalAngle returns the axis direction of petal i in radians.
func PetalAngle(i int) float64 {
	return geometry.Radians(float64(i)*angleStep + petalAngleOffset)
}

// Extents returns every petal's MaxExtent.
func (f *Flower) Extents() [NumPetals]float64 {
	var out [NumPetals]float64
	for i, p := range f.Petals {
		out[i] = p.MaxExtent
	}
	return out
}

// Tips returns every petal's Tip, indexed by petal.
func (f *Flower) Tips() []geometry.Point {
	out := make([]geometry.Point, len(f.Petals))
	for i, p := range f.Petals {
		out[i] = p.Tip
	}
	return out
}

// ViewBox returns a square around the center large enough for every circle
// plus padding on each side.
func (f *Flower) ViewBox(padding float64) geom.Rect {
	half := f.Offset + f.Radius + padding
	return geom.Rect{
		Min: geometry.Point{X: f.Center.X - half, Y: f.Center.Y - half},
		Max: geometry.Point{X: f.Center.X + half, Y: f.Center.Y + half},
	}
}

// maxExtent is the largest distance from center to a point inside both
// circles, taken over their intersection points and a march along the
// petal axis, plus extentPadding.
func maxExtent(center geometry.Point, angle float64, a, b geometry.Point, r float64) float64 {
	var best float64
	if pts, ok := geometry.Intersect(a, b, r); ok {
		for _, p := range pts {
			best = math.Max(best, p.DistanceFrom(center))
		}
	}
	for t := 0; t <= extentMarchSteps; t++ {
		p := geometry.Polar(center, angle, float64(t))
		if inLens(p, a, b, r) {
			best = math.Max(best, p.DistanceFrom(center))
		}
	}
	return best + extentPadding
}

func inLens(p, a, b geometry.Point, r float64) bool {
	return geometry.IsInside(p, a, r) && geometry.IsInside(p, b, r)
}
