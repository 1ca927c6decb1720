package surface

import (
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
)

// Scale resamples rect by (sx, sy), returning the new surface and the
// scaled rectangle in the new surface's coordinate space. Used to implement
// kernelUnitLength: filters run their kernel at a coarser or finer grid
// than the device pixel grid, then rescale back with ScaleTo.
func (s *Surface) Scale(rect geom.RectI, sx, sy float64) (*Surface, geom.RectD) {
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	newRect := geom.RectD{
		X1: float64(rect.X1) * sx, Y1: float64(rect.Y1) * sy,
		X2: float64(rect.X2) * sx, Y2: float64(rect.Y2) * sy,
	}
	w := max(int(newRect.X2-newRect.X1+0.5), 1)
	h := max(int(newRect.Y2-newRect.Y1+0.5), 1)
	out := NewExclusive(w, h, s.tag)
	for y := 0; y < h; y++ {
		srcY := rect.Y1 + int(float64(y)/sy)
		for x := 0; x < w; x++ {
			srcX := rect.X1 + int(float64(x)/sx)
			out.Set(x, y, s.At(srcX, srcY))
		}
	}
	return out.Share(), newRect
}

// ScaleTo resamples s (sized to cover originalRect scaled down) back up to
// (targetW, targetH) using the inverse scale factors, undoing a prior Scale.
func (s *Surface) ScaleTo(targetW, targetH int, originalRect geom.RectD, invSx, invSy float64) *Surface {
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}
	out := NewExclusive(targetW, targetH, s.tag)
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			sx := float64(x)/invSx - originalRect.X1
			sy := float64(y)/invSy - originalRect.Y1
			out.Set(x, y, s.sampleBilinearAbs(sx, sy))
		}
	}
	return out.Share()
}

// SampleBilinear reads a bilinearly interpolated pixel at floating-point
// coordinates, used by feDisplacementMap. Out-of-bounds taps use edge.
func (s *Surface) SampleBilinear(x, y float64, edge EdgeMode) color.Pixel {
	x0 := floor(x)
	y0 := floor(y)
	fx := x - float64(x0)
	fy := y - float64(y0)

	p00 := s.Sample(x0, y0, edge)
	p10 := s.Sample(x0+1, y0, edge)
	p01 := s.Sample(x0, y0+1, edge)
	p11 := s.Sample(x0+1, y0+1, edge)

	return lerp2D(p00, p10, p01, p11, fx, fy)
}

func (s *Surface) sampleBilinearAbs(x, y float64) color.Pixel {
	return s.SampleBilinear(x, y, EdgeDuplicate)
}

func lerp2D(p00, p10, p01, p11 color.Pixel, fx, fy float64) color.Pixel {
	top := lerpPixel(p00, p10, fx)
	bot := lerpPixel(p01, p11, fx)
	return lerpPixel(top, bot, fy)
}

func lerpPixel(a, b color.Pixel, t float64) color.Pixel {
	l := func(x, y uint8) uint8 { return uint8(float64(x)*(1-t) + float64(y)*t + 0.5) }
	return color.Pixel{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		return i - 1
	}
	return i
}
