package animation

import "math"

// AnimationCurve maps time in the range 0..1 to progress in a range "around"
// 0..1. Progress may undershoot and overshoot; elastic and back curves
// legitimately leave the unit interval mid-animation.
//
// The zero value is the linear curve. Curves built from functions or bezier
// parameters copy cheaply and can be shared freely.
//
// The named curves are inspired by Robert Penner's easing functions
// (http://robertpenner.com/easing/).
type AnimationCurve struct {
	fn    func(float64) float64
	cubic *CubicBezierCurve
}

// CurveFunc creates a curve from an arbitrary function or closure.
func CurveFunc(f func(float64) float64) AnimationCurve {
	return AnimationCurve{fn: f}
}

// Cubic creates a cubic-bezier curve with control points (x1,y1) and (x2,y2),
// matching CSS cubic-bezier(). The curve starts at (0,0) and ends at (1,1).
func Cubic(x1, y1, x2, y2 float64) AnimationCurve {
	return AnimationCurve{cubic: &CubicBezierCurve{X1: x1, Y1: y1, X2: x2, Y2: y2}}
}

// Translate returns the value of the curve at point t.
func (c AnimationCurve) Translate(t float64) float64 {
	switch {
	case c.cubic != nil:
		return c.cubic.Translate(t)
	case c.fn != nil:
		return c.fn(t)
	default:
		return t
	}
}

// CubicBezierCurve is a cubic bezier curve where P0 is (0,0) and P3 is (1,1).
type CubicBezierCurve struct {
	// X1, Y1 are the coordinates of control point P1.
	X1, Y1 float64
	// X2, Y2 are the coordinates of control point P2.
	X2, Y2 float64
}

// cubicErrorBound is the tolerance for the bisection solve in Translate.
const cubicErrorBound = 0.001

func evaluateCubic(a, b, m float64) float64 {
	inv := 1 - m
	return 3*a*inv*inv*m + 3*b*inv*m*m + m*m*m
}

// Translate returns the value of the curve at point t.
//
// The bezier's X component is solved for t by bisection until it falls
// within cubicErrorBound, then the Y component at that midpoint is returned.
// There is no closed-form inverse; the iteration count is unbounded but
// converges quickly for t in the unit interval.
func (c *CubicBezierCurve) Translate(t float64) float64 {
	start := 0.0
	end := 1.0

	for {
		midpoint := (start + end) / 2
		estimate := evaluateCubic(c.X1, c.X2, midpoint)
		if math.Abs(t-estimate) < cubicErrorBound {
			return evaluateCubic(c.Y1, c.Y2, midpoint)
		}
		if estimate < t {
			start = midpoint
		} else {
			end = midpoint
		}
	}
}

// Named curves. Each anchors at Translate(0) == 0 and Translate(1) == 1
// (within cubicErrorBound for the bezier-parameterized back family).
var (
	// Linear is F(t) -> t.
	Linear = AnimationCurve{}

	// EaseIn is F(t) -> t².
	EaseIn = CurveFunc(easeIn)
	// EaseOut is the flipped EaseIn.
	EaseOut = CurveFunc(func(t float64) float64 { return flipCurve(easeIn, t) })
	// EaseInOut combines EaseIn and EaseOut.
	EaseInOut = CurveFunc(func(t float64) float64 { return combineInOut(easeIn, t) })

	// EaseInElastic oscillates with growing magnitude while overshooting.
	EaseInElastic = CurveFunc(func(t float64) float64 { return flipCurve(easeOutElastic, t) })
	// EaseOutElastic oscillates with shrinking magnitude while overshooting.
	EaseOutElastic = CurveFunc(easeOutElastic)
	// EaseInOutElastic grows and then shrinks in magnitude while overshooting.
	EaseInOutElastic = CurveFunc(func(t float64) float64 { return combineInOutRev(easeOutElastic, t) })

	// EaseInSine is F(t) -> 1 - cos(tπ/2).
	EaseInSine = CurveFunc(func(t float64) float64 { return 1.0 - math.Cos(t*math.Pi*0.5) })
	// EaseOutSine is F(t) -> sin(tπ/2).
	EaseOutSine = CurveFunc(func(t float64) float64 { return math.Sin(t * math.Pi * 0.5) })
	// EaseInOutSine combines EaseInSine and EaseOutSine.
	EaseInOutSine = CurveFunc(func(t float64) float64 { return -0.5*math.Cos(t*math.Pi) + 0.5 })

	// EaseInExpo is F(t) -> 2^(10(t-1)).
	EaseInExpo = CurveFunc(easeInExpo)
	// EaseOutExpo is the flipped EaseInExpo.
	EaseOutExpo = CurveFunc(func(t float64) float64 { return flipCurve(easeInExpo, t) })
	// EaseInOutExpo combines EaseInExpo and EaseOutExpo.
	EaseInOutExpo = CurveFunc(func(t float64) float64 { return combineInOut(easeInExpo, t) })

	// EaseInBack undershoots slowly at the start and ends quickly.
	EaseInBack = Cubic(0.36, 0.0, 0.66, -0.56)
	// EaseOutBack starts quickly and ends slowly with an overshoot at the end.
	EaseOutBack = Cubic(0.34, 1.56, 0.64, 1.0)
	// EaseInOutBack combines EaseInBack and EaseOutBack.
	EaseInOutBack = Cubic(0.68, -0.6, 0.32, 1.6)

	// BounceIn mimics a bounce effect with growing oscillation.
	BounceIn = CurveFunc(func(t float64) float64 { return flipCurve(bounce, t) })
	// BounceOut is the flipped BounceIn.
	BounceOut = CurveFunc(bounce)
	// BounceInOut combines BounceIn and BounceOut.
	BounceInOut = CurveFunc(func(t float64) float64 { return combineInOutRev(bounce, t) })
)

func easeIn(t float64) float64 {
	return t * t
}

func easeInExpo(t float64) float64 {
	return math.Pow(2.0, 10.0*(t-1.0))
}

func easeOutElastic(t float64) float64 {
	p := 0.4
	s := p / 4.0

	if t < 0.001 {
		return 0
	}
	if t > 0.999 {
		return 1
	}
	return math.Pow(2.0, -10.0*t)*math.Sin((t-s)*(2.0*math.Pi)/p) + 1.0
}

// bounce is a piecewise polynomial approximating a damped bounce.
func bounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

func flipCurve(f func(float64) float64, t float64) float64 {
	return 1.0 - f(1.0-t)
}

func combineInOut(f func(float64) float64, t float64) float64 {
	if t < 0.5 {
		return 0.5 * f(t*2.0)
	}
	return 0.5*flipCurve(f, t*2.0-1.0) + 0.5
}

func combineInOutRev(f func(float64) float64, t float64) float64 {
	if t < 0.5 {
		return 0.5 * flipCurve(f, t*2.0)
	}
	return 0.5*f(t*2.0-1.0) + 0.5
}

// ClampUnit clamps a fraction to the unit interval.
func ClampUnit(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
