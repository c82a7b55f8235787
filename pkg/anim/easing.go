package anim

import "math"

// EasingFunc maps linear progress in [0,1] to eased progress.
type EasingFunc func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// EaseOutQuad decelerates to a stop: 1 - (1-t)².
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// CubicBezier returns the timing function of a CSS cubic-bezier(x1, y1,
// x2, y2) curve. x1 and x2 must lie in [0,1].
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	bez := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	dbez := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
	}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		// Newton first, bisection when the slope is too flat.
		t := x
		for i := 0; i < 8; i++ {
			dx := bez(t, x1, x2) - x
			if math.Abs(dx) < 1e-7 {
				return bez(t, y1, y2)
			}
			d := dbez(t, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}
		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < 40; i++ {
			if bez(t, x1, x2) < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return bez(t, y1, y2)
	}
}

// Ease is the CSS "ease" timing function, used for caption fades.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1)

// fraction returns elapsed/d clamped to [0,1]. A non-positive d is already
// complete.
func fraction(elapsed, d float64) float64 {
	if d <= 0 {
		return 1
	}
	return math.Min(math.Max(elapsed/d, 0), 1)
}
