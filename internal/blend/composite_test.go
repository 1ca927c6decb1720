package blend

import (
	"testing"

	"github.com/svgraster/filterengine/internal/color"
)

func abs8(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestCompositeOver(t *testing.T) {
	dst := color.Pixel{R: 255, G: 0, B: 0, A: 255}
	src := color.Pixel{R: 0, G: 255, B: 0, A: 255}
	got := Composite(CompositeOver, dst, src, Arithmetic{})
	want := color.Pixel{R: 0, G: 255, B: 0, A: 255}
	for i, pair := range [][2]uint8{{got.R, want.R}, {got.G, want.G}, {got.B, want.B}, {got.A, want.A}} {
		if abs8(pair[0], pair[1]) > 1 {
			t.Errorf("component %d: got %d, want %d", i, pair[0], pair[1])
		}
	}
}

func TestCompositeOps(t *testing.T) {
	red := color.Pixel{R: 255, G: 0, B: 0, A: 255}
	green := color.Pixel{R: 0, G: 255, B: 0, A: 255}

	tests := []struct {
		name string
		op   CompositeOp
		dst  color.Pixel
		src  color.Pixel
		want color.Pixel
	}{
		{"in-opaque-dst", CompositeIn, red, green, green},
		{"out-opaque-dst", CompositeOut, red, green, color.Pixel{}},
		{"atop-opaque-dst", CompositeAtop, red, green, green},
		{"xor-opaque-both", CompositeXor, red, green, color.Pixel{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Composite(tt.op, tt.dst, tt.src, Arithmetic{})
			for i, pair := range [][2]uint8{{got.R, tt.want.R}, {got.G, tt.want.G}, {got.B, tt.want.B}, {got.A, tt.want.A}} {
				if abs8(pair[0], pair[1]) > 2 {
					t.Errorf("component %d: got %d, want %d", i, pair[0], pair[1])
				}
			}
		})
	}
}

func TestCompositeArithmeticPassthrough(t *testing.T) {
	dst := color.Pixel{R: 10, G: 20, B: 30, A: 255}
	src := color.Pixel{}
	// k1=0 k2=0 k3=1 k4=0 reproduces the destination unchanged.
	got := Composite(CompositeArithmetic, dst, src, Arithmetic{K3: 1})
	if abs8(got.R, dst.R) > 1 || abs8(got.G, dst.G) > 1 || abs8(got.B, dst.B) > 1 {
		t.Errorf("arithmetic k3=1 passthrough: got %+v, want %+v", got, dst)
	}
}

func TestBlendNormalEqualsSource(t *testing.T) {
	backdrop := color.Pixel{R: 255, G: 0, B: 0, A: 255}
	source := color.Pixel{R: 0, G: 255, B: 0, A: 255}
	got := Blend(Normal, backdrop, source)
	if abs8(got.R, 0) > 1 || abs8(got.G, 255) > 1 {
		t.Errorf("normal blend over opaque backdrop should equal source, got %+v", got)
	}
}

func TestBlendMultiplyWithWhite(t *testing.T) {
	backdrop := color.Pixel{R: 128, G: 64, B: 192, A: 255}
	white := color.Pixel{R: 255, G: 255, B: 255, A: 255}
	got := Blend(Multiply, backdrop, white)
	if abs8(got.R, backdrop.R) > 2 || abs8(got.G, backdrop.G) > 2 || abs8(got.B, backdrop.B) > 2 {
		t.Errorf("multiply with white should preserve backdrop, got %+v want %+v", got, backdrop)
	}
}

func TestBlendScreenWithBlack(t *testing.T) {
	backdrop := color.Pixel{R: 128, G: 64, B: 192, A: 255}
	black := color.Pixel{R: 0, G: 0, B: 0, A: 255}
	got := Blend(Screen, backdrop, black)
	if abs8(got.R, backdrop.R) > 2 || abs8(got.G, backdrop.G) > 2 || abs8(got.B, backdrop.B) > 2 {
		t.Errorf("screen with black should preserve backdrop, got %+v want %+v", got, backdrop)
	}
}

func TestBlendZeroAlphaSourceIsIdentity(t *testing.T) {
	backdrop := color.Pixel{R: 255, G: 0, B: 0, A: 255}
	transparent := color.Pixel{}
	for _, m := range []Mode{Normal, Multiply, Screen, HardLight, Hue, Luminosity} {
		got := Blend(m, backdrop, transparent)
		if got != backdrop {
			t.Errorf("mode %d: transparent source should be identity, got %+v want %+v", m, got, backdrop)
		}
	}
}

func TestSetSatGrayHasZeroSaturation(t *testing.T) {
	c := setSat([3]float64{0.5, 0.5, 0.5}, 1.0)
	if c != [3]float64{0, 0, 0} {
		t.Errorf("setSat on a gray input with zero spread must stay zero, got %v", c)
	}
}
