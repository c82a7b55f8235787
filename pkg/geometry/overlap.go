package geometry

import (
	"math"
	"sort"
)

// overlapPairs lists the circle pairs of a triple, and overlapThird the
// circle not in each pair.
var (
	overlapPairs = [3][2]int{{0, 1}, {1, 2}, {0, 2}}
	overlapThird = [3]int{2, 0, 1}
)

type overlapVertex struct {
	p     Point
	angle float64
	pair  int // index into overlapPairs
}

// TripleOverlap returns the outline of the region common to the three
// circles of radius r at c1, c2 and c3.
//
// Every pairwise intersection point that also lies inside the remaining
// circle is a corner of the region. Corners are ordered by angle around
// their centroid and joined by arcs of the circle both corners lie on. Fewer
// than three corners yields an empty path.
func TripleOverlap(c1, c2, c3 Point, r float64) Path {
	circles := [3]Point{c1, c2, c3}

	var verts []overlapVertex
	for pi, pair := range overlapPairs {
		pts, ok := Intersect(circles[pair[0]], circles[pair[1]], r)
		if !ok {
			continue
		}
		third := circles[overlapThird[pi]]
		for _, p := range pts {
			if IsInside(p, third, r) {
				verts = append(verts, overlapVertex{p: p, pair: pi})
			}
		}
	}
	if len(verts) < 3 {
		return Path{}
	}

	var centroid Point
	for _, v := range verts {
		centroid = centroid.Plus(v.p)
	}
	centroid = centroid.Times(1 / float64(len(verts)))
	for i := range verts {
		d := verts[i].p.Minus(centroid)
		verts[i].angle = math.Atan2(d.Y, d.X)
	}
	sort.SliceStable(verts, func(i, j int) bool { return verts[i].angle < verts[j].angle })

	path := Path{Start: verts[0].p, Closed: true}
	for i, cur := range verts {
		next := verts[(i+1)%len(verts)]
		center := circles[sharedCircle(cur.pair, next.pair)]
		path.Segments = append(path.Segments, arcTo(center, r, cur.p, next.p))
	}
	return path
}

// sharedCircle returns the index of the first circle that appears at least
// twice across the two generating pairs. That circle carries the arc between
// the corners the pairs produced.
func sharedCircle(pairA, pairB int) int {
	a, b := overlapPairs[pairA], overlapPairs[pairB]
	for c := 0; c < 3; c++ {
		n := 0
		for _, idx := range [4]int{a[0], a[1], b[0], b[1]} {
			if idx == c {
				n++
			}
		}
		if n >= 2 {
			return c
		}
	}
	return 0
}
