// Package flower builds the static geometry of the five-petal flower.
//
// Five circles of equal radius sit on a ring around a shared center. Each
// petal is the lens shared by two neighbouring circles, and each pair of
// neighbouring petals overlaps in the region common to three consecutive
// circles. [Build] computes all of it once and returns a [Flower], which is
// then handed to the animation and rendering packages and never recomputed.
//
//	f := flower.Build(flower.DefaultParams())
//	for _, p := range f.Petals {
//	    fmt.Println(p.Index, p.Lens.SVG(), len(p.Veins))
//	}
//
// # Veins
//
// Every petal carries decorative vein strokes: a straight midrib along the
// petal axis and curved branches on both sides, each with up to two short
// sub-branches. [Veins] derives them from fixed constants, so the same petal
// always gets the same strokes.
package flower
