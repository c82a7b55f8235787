package flower

import (
	"math"

	"github.com/matzehuels/bloom/pkg/geometry"
)

// Vein constants are tuned by eye for a radius of 160 and are not derived
// from anything.
const (
	axisStep  = 0.7
	axisSteps = 300

	midribStart = 3.0
	midribRatio = 0.6

	branchCount      = 3
	branchStartRatio = 0.15
	branchEndRatio   = 0.85
	branchMaxLen     = 38
	branchLenShrink  = 5
	branchSampleStep = 2
	branchAngle      = 0.50
	branchCurvature  = 0.008
	spineClearance   = 1.5

	subBranchCount  = 2
	subBranchFirst  = 10
	subBranchGap    = 14
	subBranchMargin = 3
	subBranchLen    = 12
	subBranchAngle  = 0.9
)

// axisExtent marches from center along angle in axisStep increments and
// returns the farthest distance still inside both circles.
func axisExtent(center geometry.Point, angle float64, a, b geometry.Point, r float64) float64 {
	var along float64
	for t := 0; t <= axisSteps; t++ {
		dist := float64(t) * axisStep
		if inLens(geometry.Polar(center, angle, dist), a, b, r) {
			along = dist
		}
	}
	return along
}

// veinFrame maps (along, side offset) coordinates of a petal onto the plane.
type veinFrame struct {
	center   geometry.Point
	cos, sin float64
	a, b     geometry.Point
	r        float64
}

func (f veinFrame) at(along, side, perp float64) geometry.Point {
	return geometry.Point{
		X: f.center.X + f.cos*along - f.sin*side*perp,
		Y: f.center.Y + f.sin*along + f.cos*side*perp,
	}
}

func (f veinFrame) inside(p geometry.Point) bool {
	return inLens(p, f.a, f.b, f.r)
}

// Veins returns the vein strokes of the petal whose axis points along angle
// and whose lens is bounded by the circles at a and b. The midrib comes
// first, followed by each branch and its sub-branches, left side before
// right. Circles that do not intersect yield no veins.
func Veins(center geometry.Point, angle float64, a, b geometry.Point, r float64) []geometry.Path {
	if _, ok := geometry.Intersect(a, b, r); !ok {
		return nil
	}
	f := veinFrame{center: center, cos: math.Cos(angle), sin: math.Sin(angle), a: a, b: b, r: r}

	midribEnd := axisExtent(center, angle, a, b, r) * midribRatio
	veins := []geometry.Path{geometry.Polyline([]geometry.Point{
		geometry.Polar(center, angle, midribStart),
		geometry.Polar(center, angle, midribEnd),
	})}

	start := midribEnd * branchStartRatio
	spacing := (midribEnd*branchEndRatio - start) / branchCount
	for v := 0; v < branchCount; v++ {
		origin := start + float64(v)*spacing
		maxLen := branchMaxLen - v*branchLenShrink
		for _, side := range [2]float64{-1, 1} {
			if p := branch(f, origin, maxLen, side); !p.IsEmpty() {
				veins = append(veins, p)
			}
			for sv := 0; sv < subBranchCount; sv++ {
				subOrigin := subBranchFirst + sv*subBranchGap
				if subOrigin >= maxLen-subBranchMargin {
					continue
				}
				if p := subBranch(f, origin, float64(subOrigin), side); !p.IsEmpty() {
					veins = append(veins, p)
				}
			}
		}
	}
	return veins
}

// branchOffset is the distance of a branch from the midrib t units past its
// origin. The branch bends further away the longer it gets.
func branchOffset(t float64) float64 {
	return t * math.Tan(branchAngle+branchCurvature*t)
}

func branch(f veinFrame, origin float64, maxLen int, side float64) geometry.Path {
	var pts []geometry.Point
	for t := 0; t <= maxLen; t += branchSampleStep {
		perp := branchOffset(float64(t))
		if perp < spineClearance {
			continue
		}
		if p := f.at(origin+float64(t), side, perp); f.inside(p) {
			pts = append(pts, p)
		}
	}
	return geometry.Polyline(pts)
}

func subBranch(f veinFrame, origin, subOrigin, side float64) geometry.Path {
	base := branchOffset(subOrigin)
	slope := math.Tan(subBranchAngle)
	var pts []geometry.Point
	for st := 0; st <= subBranchLen; st += branchSampleStep {
		p := f.at(origin+subOrigin+float64(st), side, base+float64(st)*slope)
		if f.inside(p) {
			pts = append(pts, p)
		}
	}
	return geometry.Polyline(pts)
}
