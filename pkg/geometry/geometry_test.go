package geometry

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	if r.Right != 110 || r.Bottom != 70 {
		t.Errorf("RectFromLTWH edges = (%v, %v), want (110, 70)", r.Right, r.Bottom)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("dimensions = (%v, %v), want (100, 50)", r.Width(), r.Height())
	}
	if got := r.Origin(); got != (Offset{X: 10, Y: 20}) {
		t.Errorf("Origin() = %v", got)
	}
	if got := r.Center(); got != (Offset{X: 60, Y: 45}) {
		t.Errorf("Center() = %v", got)
	}
	if got := r.Size(); got != (Size{Width: 100, Height: 50}) {
		t.Errorf("Size() = %v", got)
	}
}

func TestRectFromOriginSize(t *testing.T) {
	r := RectFromOriginSize(Offset{X: 5, Y: 5}, Size{Width: 10, Height: 20})
	if r != (Rect{Left: 5, Top: 5, Right: 15, Bottom: 25}) {
		t.Errorf("RectFromOriginSize = %v", r)
	}
}

func TestUniformConstructors(t *testing.T) {
	if got := UniformInsets(8); got != (Insets{Left: 8, Top: 8, Right: 8, Bottom: 8}) {
		t.Errorf("UniformInsets(8) = %v", got)
	}
	if got := CircularRadius(4); got != (Radius{X: 4, Y: 4}) {
		t.Errorf("CircularRadius(4) = %v", got)
	}
}

func TestApproxEqual(t *testing.T) {
	a := Offset{X: 1, Y: 2}
	b := Offset{X: 1.00005, Y: 2}
	if !a.ApproxEqual(b) {
		t.Error("offsets within epsilon should compare equal")
	}
	if a.ApproxEqual(Offset{X: 1.1, Y: 2}) {
		t.Error("offsets outside epsilon should not compare equal")
	}
	if !(Size{Width: 3, Height: 4}).ApproxEqual(Size{Width: 3.00005, Height: 4}) {
		t.Error("sizes within epsilon should compare equal")
	}
}
