// Package geometry provides the small set of value types that motion knows
// how to interpolate: offsets, sizes, rectangles, insets, radii and colors.
//
// The types are plain comparable structs so they can be used directly with
// [github.com/go-drift/motion/pkg/animation.Animated].
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOriginSize constructs a Rect from an origin point and a size.
func RectFromOriginSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Insets represents padding or margins around the four edges of a rectangle.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UniformInsets creates insets with the same value on all four edges.
func UniformInsets(value float64) Insets {
	return Insets{Left: value, Top: value, Right: value, Bottom: value}
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// ApproxEqual returns true if the two offsets are approximately equal.
func (o Offset) ApproxEqual(other Offset) bool {
	return floatEqual(o.X, other.X) && floatEqual(o.Y, other.Y)
}

// ApproxEqual returns true if the two sizes are approximately equal.
func (s Size) ApproxEqual(other Size) bool {
	return floatEqual(s.Width, other.Width) && floatEqual(s.Height, other.Height)
}
