package animation

import "github.com/go-drift/motion/pkg/geometry"

// Lerp linearly blends between a and b. Receives the start value, the end
// value, and a fraction t; t of 0 yields a, t of 1 yields b. Implementations
// must tolerate t outside the unit interval (overshooting curves).
//
// This is the blending contract used by [Animated]; composite types
// interpolate each component independently. Custom aggregate types supply
// their own Lerp (see ExampleNewAnimated_customType).
type Lerp[T any] func(a, b T, t float64) T

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b geometry.Offset, t float64) geometry.Offset {
	return geometry.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b geometry.Size, t float64) geometry.Size {
	return geometry.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// LerpRect interpolates rectangles by blending origin and size independently.
func LerpRect(a, b geometry.Rect, t float64) geometry.Rect {
	return geometry.RectFromOriginSize(
		LerpOffset(a.Origin(), b.Origin(), t),
		LerpSize(a.Size(), b.Size(), t),
	)
}

// LerpInsets linearly interpolates between two Insets values.
func LerpInsets(a, b geometry.Insets, t float64) geometry.Insets {
	return geometry.Insets{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// LerpRadius linearly interpolates between two Radius values.
func LerpRadius(a, b geometry.Radius, t float64) geometry.Radius {
	return geometry.Radius{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor interpolates colors channel-wise in RGBA space.
// This is not perceptually uniform; it matches what CSS transitions do.
func LerpColor(a, b geometry.Color, t float64) geometry.Color {
	aA, aR, aG, aB := a.Components()
	bA, bR, bG, bB := b.Components()

	return geometry.RGBA8(
		lerpByte(aR, bR, t),
		lerpByte(aG, bG, t),
		lerpByte(aB, bB, t),
		lerpByte(aA, bA, t),
	)
}

// Pair groups two values that animate together with one controller.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// LerpPair builds a [Lerp] for a [Pair] out of the component lerps. Both
// components receive the same fraction.
func LerpPair[A, B comparable](first Lerp[A], second Lerp[B]) Lerp[Pair[A, B]] {
	return func(a, b Pair[A, B], t float64) Pair[A, B] {
		return Pair[A, B]{
			First:  first(a.First, b.First, t),
			Second: second(a.Second, b.Second, t),
		}
	}
}

// lerpByte blends two channel bytes, clamping to the representable range so
// overshooting curves cannot wrap around.
func lerpByte(a, b uint8, t float64) uint8 {
	v := LerpFloat64(float64(a), float64(b), t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
