package flower

import (
	"math"
	"testing"

	"github.com/matzehuels/bloom/pkg/geometry"
)

func TestVeinsInsideLens(t *testing.T) {
	f := Build(DefaultParams())
	for _, p := range f.Petals {
		a, b := f.Circles[p.Circles[0]], f.Circles[p.Circles[1]]
		for vi, v := range p.Veins {
			for _, pt := range v.Points() {
				if !geometry.IsInside(pt, a, f.Radius) || !geometry.IsInside(pt, b, f.Radius) {
					t.Errorf("petal %d vein %d point %v outside the lens", p.Index, vi, pt)
				}
			}
		}
	}
}

func TestVeinsMidrib(t *testing.T) {
	f := Build(DefaultParams())
	p := f.Petals[0]
	if len(p.Veins) < 1+2*branchCount {
		t.Fatalf("veins = %d, want at least midrib plus %d branches", len(p.Veins), 2*branchCount)
	}
	mid := p.Veins[0]
	if len(mid.Segments) != 1 || mid.Closed {
		t.Fatalf("midrib should be a single open segment, got %q", mid.SVG())
	}
	if d := mid.Start.DistanceFrom(f.Center); math.Abs(d-midribStart) > 1e-9 {
		t.Errorf("midrib starts at distance %v, want %v", d, midribStart)
	}
	want := axisExtent(f.Center, p.Angle, f.Circles[0], f.Circles[1], f.Radius) * midribRatio
	if d := mid.End().DistanceFrom(f.Center); math.Abs(d-want) > 1e-9 {
		t.Errorf("midrib ends at distance %v, want %v", d, want)
	}
}

func TestVeinsKeepClearOfSpine(t *testing.T) {
	f := Build(DefaultParams())
	p := f.Petals[2]
	axis := geometry.Point{X: math.Cos(p.Angle), Y: math.Sin(p.Angle)}
	for vi, v := range p.Veins[1:] {
		for _, pt := range v.Points() {
			d := pt.Minus(f.Center)
			perp := math.Abs(d.X*axis.Y - d.Y*axis.X)
			if perp < spineClearance-1e-9 {
				t.Errorf("vein %d point %v is %v from the midrib", vi+1, pt, perp)
			}
		}
	}
}

func TestVeinsBothSides(t *testing.T) {
	f := Build(DefaultParams())
	p := f.Petals[1]
	axis := geometry.Point{X: math.Cos(p.Angle), Y: math.Sin(p.Angle)}
	var left, right int
	for _, v := range p.Veins[1:] {
		d := v.End().Minus(f.Center)
		if d.X*axis.Y-d.Y*axis.X > 0 {
			left++
		} else {
			right++
		}
	}
	if left != right {
		t.Errorf("left veins = %d, right veins = %d, want mirrored counts", left, right)
	}
}

func TestVeinsDeterministic(t *testing.T) {
	p := DefaultParams()
	a := Veins(p.Center, PetalAngle(3), geometry.Point{X: 100, Y: 300}, geometry.Point{X: 180, Y: 420}, p.Radius)
	b := Veins(p.Center, PetalAngle(3), geometry.Point{X: 100, Y: 300}, geometry.Point{X: 180, Y: 420}, p.Radius)
	if len(a) != len(b) {
		t.Fatalf("vein counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].SVG() != b[i].SVG() {
			t.Errorf("vein %d differs", i)
		}
	}
}

func TestVeinsNoIntersection(t *testing.T) {
	if v := Veins(geometry.Point{}, 0, geometry.Point{X: -500}, geometry.Point{X: 500}, 160); v != nil {
		t.Errorf("Veins() = %d strokes, want none", len(v))
	}
}
