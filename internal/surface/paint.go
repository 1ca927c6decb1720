package surface

import (
	stdimage "image"
	stdcolor "image/color"

	"golang.org/x/image/draw"

	"github.com/svgraster/filterengine/internal/blend"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
)

// toRGBA copies s into a stdlib premultiplied-alpha image, the representation
// golang.org/x/image/draw's scalers operate on.
func toRGBA(s *Surface) *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p := s.At(x, y)
			img.SetRGBA(x, y, stdcolor.RGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}

// Interpolation selects the resampling quality used when placement rescales other.
type Interpolation int

const (
	InterpolationAuto Interpolation = iota
	InterpolationNearest
	InterpolationBilinear
)

// PaintImage composites other into a copy of s within rect using source-over,
// optionally resampling other into placement first (feImage's preserveAspectRatio
// box); a nil placement paints other at its own size anchored at rect's origin.
func (s *Surface) PaintImage(rect geom.RectI, other *Surface, placement *geom.RectD, interp Interpolation) *Surface {
	out := s.Clone(geom.RectI{X2: s.width, Y2: s.height})

	if placement == nil {
		for y := 0; y < other.height; y++ {
			for x := 0; x < other.width; x++ {
				dx, dy := rect.X1+x, rect.Y1+y
				if dx >= rect.X2 || dy >= rect.Y2 {
					continue
				}
				out.Set(dx, dy, blend.Composite(blend.CompositeOver, out.At(dx, dy), other.At(x, y), blend.Arithmetic{}))
			}
		}
		return out.Share()
	}

	dst := geom.OutwardInt(*placement)
	dst, ok := geom.Intersect(dst, rect)
	if !ok {
		return out.Share()
	}

	placedW, placedH := geom.IRound(placement.Width()), geom.IRound(placement.Height())
	if placedW < 1 {
		placedW = 1
	}
	if placedH < 1 {
		placedH = 1
	}
	scaler := draw.NearestNeighbor
	if interp == InterpolationBilinear || interp == InterpolationAuto {
		scaler = draw.BiLinear
	}
	scaled := stdimage.NewRGBA(stdimage.Rect(0, 0, placedW, placedH))
	scaler.Scale(scaled, scaled.Bounds(), toRGBA(other), stdimage.Rect(0, 0, other.width, other.height), draw.Src, nil)

	ox, oy := geom.IRound(placement.X1), geom.IRound(placement.Y1)
	for y := dst.Y1; y < dst.Y2; y++ {
		for x := dst.X1; x < dst.X2; x++ {
			sx, sy := x-ox, y-oy
			if sx < 0 {
				sx = 0
			}
			if sy < 0 {
				sy = 0
			}
			if sx >= placedW {
				sx = placedW - 1
			}
			if sy >= placedH {
				sy = placedH - 1
			}
			c := scaled.RGBAAt(sx, sy)
			p := color.Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
			out.Set(x, y, blend.Composite(blend.CompositeOver, out.At(x, y), p, blend.Arithmetic{}))
		}
	}
	return out.Share()
}
