package surface

import (
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
)

// Direction selects the axis a single box-blur pass runs along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// BoxBlur runs one box-filter pass of the given width along direction,
// sampling width/2 pixels on either side of offset from center using
// EdgeDuplicate, matching the GaussianBlur large-sigma approximation.
func (s *Surface) BoxBlur(direction Direction, rect geom.RectI, width, offset int) *Surface {
	if width < 1 {
		width = 1
	}
	out := s.Clone(geom.RectI{X2: s.width, Y2: s.height})
	lo := -(width / 2) + offset
	switch direction {
	case Horizontal:
		for y := 0; y < s.height; y++ {
			for x := rect.X1; x < rect.X2 && x < s.width; x++ {
				out.Set(x, y, boxAverage(func(i int) color.Pixel { return s.Sample(x+i, y, EdgeDuplicate) }, lo, width))
			}
		}
	case Vertical:
		for x := 0; x < s.width; x++ {
			for y := rect.Y1; y < rect.Y2 && y < s.height; y++ {
				out.Set(x, y, boxAverage(func(i int) color.Pixel { return s.Sample(x, y+i, EdgeDuplicate) }, lo, width))
			}
		}
	}
	return out.Share()
}

func boxAverage(at func(int) color.Pixel, lo, width int) color.Pixel {
	var r, g, b, a float64
	for i := 0; i < width; i++ {
		p := at(lo + i)
		r += float64(p.R)
		g += float64(p.G)
		b += float64(p.B)
		a += float64(p.A)
	}
	n := float64(width)
	round := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v + 0.5)
	}
	return color.Pixel{R: round(r / n), G: round(g / n), B: round(b / n), A: round(a / n)}
}

// ConvolveH runs a 1-D convolution along rows with the given kernel and
// target tap index, operating directly on premultiplied pixels; valid for
// any kernel whose weights sum to 1 (GaussianBlur's explicit small-sigma path).
func (s *Surface) ConvolveH(rect geom.RectI, kernel []float64, target int, edge EdgeMode) *Surface {
	out := s.Clone(geom.RectI{X2: s.width, Y2: s.height})
	for y := 0; y < s.height; y++ {
		for x := rect.X1; x < rect.X2 && x < s.width; x++ {
			out.Set(x, y, convolve1D(func(i int) color.Pixel { return s.Sample(x+i-target, y, edge) }, kernel))
		}
	}
	return out.Share()
}

// ConvolveV is the column-wise counterpart of ConvolveH.
func (s *Surface) ConvolveV(rect geom.RectI, kernel []float64, target int, edge EdgeMode) *Surface {
	out := s.Clone(geom.RectI{X2: s.width, Y2: s.height})
	for x := 0; x < s.width; x++ {
		for y := rect.Y1; y < rect.Y2 && y < s.height; y++ {
			out.Set(x, y, convolve1D(func(i int) color.Pixel { return s.Sample(x, y+i-target, edge) }, kernel))
		}
	}
	return out.Share()
}

func convolve1D(at func(int) color.Pixel, kernel []float64) color.Pixel {
	var r, g, b, a float64
	for i, k := range kernel {
		p := at(i)
		r += float64(p.R) * k
		g += float64(p.G) * k
		b += float64(p.B) * k
		a += float64(p.A) * k
	}
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v + 0.5)
	}
	return color.Pixel{R: clamp(r), G: clamp(g), B: clamp(b), A: clamp(a)}
}
