package geometry_test

import (
	"fmt"

	"github.com/matzehuels/bloom/pkg/geometry"
)

func ExampleIntersect() {
	pts, ok := geometry.Intersect(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 6, Y: 0}, 5)
	fmt.Println(ok)
	for _, p := range pts {
		fmt.Println(geometry.FormatFloat(p.X), geometry.FormatFloat(p.Y))
	}

	_, ok = geometry.Intersect(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 11, Y: 0}, 5)
	fmt.Println(ok)
	// Output:
	// true
	// 3 4
	// 3 -4
	// false
}

func ExampleIsInside() {
	c := geometry.Point{X: 0, Y: 0}
	fmt.Println(geometry.IsInside(geometry.Point{X: 5, Y: 0}, c, 5))
	fmt.Println(geometry.IsInside(geometry.Point{X: 5.1, Y: 0}, c, 5))
	// Output:
	// true
	// false
}
