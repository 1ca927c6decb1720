package color

import "testing"

func abs8(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestPremultiplyUnpremultiplyRoundTrip(t *testing.T) {
	p := Premultiply(0.2, 0.6, 0.9, 0.5)
	r, g, b, a := Unpremultiply(p)
	back := Premultiply(r, g, b, a)
	if abs8(back.R, p.R) > 1 || abs8(back.G, p.G) > 1 || abs8(back.B, p.B) > 1 || abs8(back.A, p.A) > 1 {
		t.Errorf("round trip drifted: got %+v, want close to %+v", back, p)
	}
}

func TestUnpremultiplyZeroAlpha(t *testing.T) {
	r, g, b, a := Unpremultiply(Pixel{})
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("fully transparent pixel should unpremultiply to zero, got (%v,%v,%v,%v)", r, g, b, a)
	}
}

func TestSRGBLinearRoundTrip(t *testing.T) {
	p := Premultiply(0.4, 0.7, 0.1, 1.0)
	linear := ToLinearRGB(p)
	back := ToSRGBFromLinear(linear)
	if abs8(back.R, p.R) > 1 || abs8(back.G, p.G) > 1 || abs8(back.B, p.B) > 1 {
		t.Errorf("sRGB<->linear round trip drifted beyond 1 per channel: got %+v, want close to %+v", back, p)
	}
}

func TestToLinearRGBZeroAlpha(t *testing.T) {
	if got := ToLinearRGB(Pixel{}); got != (Pixel{}) {
		t.Errorf("zero-alpha pixel should stay zero, got %+v", got)
	}
}

func TestSRGB8ToLinear8TableMonotonic(t *testing.T) {
	prev := uint8(0)
	for i := 1; i < 256; i++ {
		v := SRGB8ToLinear8(uint8(i))
		if v < prev {
			t.Fatalf("conversion table not monotonic at %d: %d < %d", i, v, prev)
		}
		prev = v
	}
}
