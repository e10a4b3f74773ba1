package geometry

import "testing"

func TestColorConstructors(t *testing.T) {
	if got := RGB(0xff, 0x88, 0x00); got != 0xffff8800 {
		t.Errorf("RGB = %08x, want ffff8800", uint32(got))
	}
	if got := RGBA8(0x10, 0x20, 0x30, 0x40); got != 0x40102030 {
		t.Errorf("RGBA8 = %08x, want 40102030", uint32(got))
	}
	if got := RGBA(0xff, 0x00, 0x00, 0.5); got != 0x80ff0000 {
		t.Errorf("RGBA = %08x, want 80ff0000", uint32(got))
	}
}

func TestColorComponents(t *testing.T) {
	a, r, g, b := Color(0x40102030).Components()
	if a != 0x40 || r != 0x10 || g != 0x20 || b != 0x30 {
		t.Errorf("Components = %02x %02x %02x %02x", a, r, g, b)
	}

	rf, gf, bf, af := Color(0xffff0000).RGBAF()
	if rf != 1 || gf != 0 || bf != 0 || af != 1 {
		t.Errorf("RGBAF = %v %v %v %v", rf, gf, bf, af)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := RGB(0x11, 0x22, 0x33)
	if got := c.WithAlpha(0); got != 0x00112233 {
		t.Errorf("WithAlpha(0) = %08x", uint32(got))
	}
	if got := c.WithAlpha8(0x80); got != 0x80112233 {
		t.Errorf("WithAlpha8(0x80) = %08x", uint32(got))
	}
	if got := c.WithAlpha(2.0); got != c {
		t.Errorf("WithAlpha clamps above 1, got %08x", uint32(got))
	}
	if Transparent.Alpha() != 0 {
		t.Error("Transparent should have zero alpha")
	}
}
