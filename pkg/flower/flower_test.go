package flower

import (
	"math"
	"testing"

	"github.com/matzehuels/bloom/pkg/geometry"
)

func TestBuildCircles(t *testing.T) {
	f := Build(DefaultParams())
	for i, c := range f.Circles {
		if d := c.DistanceFrom(f.Center); math.Abs(d-f.Offset) > 1e-9 {
			t.Errorf("circle %d at distance %v, want %v", i, d, f.Offset)
		}
	}
	// Circle 0 sits at -126 degrees: upper left of the center.
	if c := f.Circles[0]; c.X >= f.Center.X || c.Y >= f.Center.Y {
		t.Errorf("circle 0 = %v, want upper-left of center", c)
	}
}

func TestBuildPetals(t *testing.T) {
	f := Build(DefaultParams())
	for i, p := range f.Petals {
		if p.Index != i {
			t.Errorf("petal %d Index = %d", i, p.Index)
		}
		if want := [2]int{i, (i + 1) % NumPetals}; p.Circles != want {
			t.Errorf("petal %d Circles = %v, want %v", i, p.Circles, want)
		}
		if p.Lens.IsEmpty() {
			t.Errorf("petal %d has an empty lens", i)
		}
		if want := geometry.Radians(float64(72*i - 90)); math.Abs(p.Angle-want) > 1e-12 {
			t.Errorf("petal %d Angle = %v, want %v", i, p.Angle, want)
		}
	}
}

func TestPetalAxisBisectsCircles(t *testing.T) {
	f := Build(DefaultParams())
	for _, p := range f.Petals {
		a, b := f.Circles[p.Circles[0]], f.Circles[p.Circles[1]]
		axis := geometry.Polar(f.Center, p.Angle, 100)
		if da, db := axis.DistanceFrom(a), axis.DistanceFrom(b); math.Abs(da-db) > 1e-9 {
			t.Errorf("petal %d axis is not equidistant from its circles: %v vs %v", p.Index, da, db)
		}
	}
}

func TestMaxExtent(t *testing.T) {
	f := Build(DefaultParams())
	extents := f.Extents()
	for i, e := range extents {
		if math.Abs(e-extents[0]) > 1e-6 {
			t.Errorf("extent %d = %v, want %v (5-fold symmetry)", i, e, extents[0])
		}
	}
	// The outer intersection point lies on the axis at ~258.11.
	if math.Abs(extents[0]-263.113) > 0.01 {
		t.Errorf("extent = %v, want ~263.113", extents[0])
	}
}

func TestTips(t *testing.T) {
	f := Build(DefaultParams())
	for _, p := range f.Petals {
		a, b := f.Circles[p.Circles[0]], f.Circles[p.Circles[1]]
		if !geometry.IsInside(p.Tip, a, f.Radius) || !geometry.IsInside(p.Tip, b, f.Radius) {
			t.Errorf("petal %d tip %v is outside its lens", p.Index, p.Tip)
		}
		if d := p.Tip.DistanceFrom(f.Center); math.Abs(d-axisSteps*axisStep) > 1e-6 {
			t.Errorf("petal %d tip distance = %v, want %v", p.Index, d, axisSteps*axisStep)
		}
	}
	tips := f.Tips()
	if len(tips) != NumPetals || tips[3] != f.Petals[3].Tip {
		t.Errorf("Tips() = %v, want the petal tips in order", tips)
	}
}

func TestOverlaps(t *testing.T) {
	f := Build(DefaultParams())
	for i, o := range f.Overlaps {
		if want := [2]int{i, (i + 1) % NumPetals}; o.Petals != want {
			t.Errorf("overlap %d Petals = %v, want %v", i, o.Petals, want)
		}
		if o.Path.IsEmpty() {
			t.Errorf("overlap %d is empty", i)
			continue
		}
		if n := len(o.Path.Segments); n != 3 {
			t.Errorf("overlap %d vertices = %d, want 3", i, n)
		}
		for _, pt := range o.Path.Points() {
			for _, c := range o.Circles {
				if !geometry.IsInside(pt, f.Circles[c], f.Radius) {
					t.Errorf("overlap %d vertex %v outside circle %d", i, pt, c)
				}
			}
		}
	}
}

func TestViewBox(t *testing.T) {
	f := Build(DefaultParams())
	vb := f.ViewBox(220)
	if vb.Min.X != -288 || vb.Min.Y != -288 || vb.Width() != 1076 || vb.Height() != 1076 {
		t.Errorf("ViewBox(220) = %+v", vb)
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := Build(DefaultParams())
	b := Build(DefaultParams())
	for i := range a.Petals {
		if a.Petals[i].Lens.SVG() != b.Petals[i].Lens.SVG() {
			t.Errorf("petal %d lens differs between builds", i)
		}
		if len(a.Petals[i].Veins) != len(b.Petals[i].Veins) {
			t.Errorf("petal %d vein count differs between builds", i)
		}
	}
}
