package surface

import (
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
)

// ExtractAlpha returns a canvas the same size as s holding only the alpha
// channel, zeroed outside rect.
func (s *Surface) ExtractAlpha(rect geom.RectI) *Surface {
	out := NewExclusive(s.width, s.height, color.AlphaOnly)
	clipped, ok := geom.Intersect(rect, s.Bounds())
	if ok {
		for y := clipped.Y1; y < clipped.Y2; y++ {
			for x := clipped.X1; x < clipped.X2; x++ {
				out.Set(x, y, color.Pixel{A: s.At(x, y).A})
			}
		}
	}
	return out.Share()
}

// ToSRGB returns s converted to sRGB within rect, or s unchanged if already sRGB.
func (s *Surface) ToSRGB(rect geom.RectI) *Surface {
	if s.tag != color.Linear {
		return s
	}
	return s.convertWithin(rect, color.ToSRGBFromLinear, color.SRGB)
}

// ToLinearRGB returns s converted to linearRGB within rect, or s unchanged if already linear.
func (s *Surface) ToLinearRGB(rect geom.RectI) *Surface {
	if s.tag != color.SRGB {
		return s
	}
	return s.convertWithin(rect, color.ToLinearRGB, color.Linear)
}

func (s *Surface) convertWithin(rect geom.RectI, conv func(color.Pixel) color.Pixel, tag color.Space) *Surface {
	out := NewExclusive(s.width, s.height, tag)
	clip, ok := geom.Intersect(rect, s.Bounds())
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p := s.At(x, y)
			if ok && x >= clip.X1 && x < clip.X2 && y >= clip.Y1 && y < clip.Y2 {
				p = conv(p)
			}
			out.Set(x, y, p)
		}
	}
	return out.Share()
}
