// Package surface implements the shared pixel raster that flows between
// filter primitives: premultiplied 32-bit pixels tagged with a color space,
// split into an immutable shared form and a mutable exclusive builder.
package surface

import (
	"errors"
	"iter"

	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
)

// ErrInvalidSize is returned when a surface is constructed with non-positive dimensions.
var ErrInvalidSize = errors.New("surface: invalid size")

// EdgeMode governs how out-of-bounds samples are resolved during
// convolution, morphology and displacement sampling.
type EdgeMode int

const (
	EdgeNone EdgeMode = iota
	EdgeDuplicate
	EdgeWrap
)

// Surface is an immutable, freely shared raster. Once built it is never
// mutated; primitives that want to write a new surface build an Exclusive
// and call Share to seal it.
type Surface struct {
	width, height, stride int
	pix                    []color.Pixel
	tag                    color.Space
}

// Exclusive is a surface under construction by exactly one producer.
type Exclusive struct {
	width, height, stride int
	pix                    []color.Pixel
	tag                    color.Space
}

// Empty returns a surface of the given size with all pixels zeroed.
func Empty(w, h int, tag color.Space) *Surface {
	if w <= 0 || h <= 0 {
		w, h = max(w, 1), max(h, 1)
	}
	return &Surface{width: w, height: h, stride: w, pix: make([]color.Pixel, w*h), tag: tag}
}

// Wrap takes ownership of externally produced pixel data laid out row-major
// with the given stride (in pixels, stride >= width).
func Wrap(pix []color.Pixel, w, h, stride int, tag color.Space) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	if stride < w {
		stride = w
	}
	return &Surface{width: w, height: h, stride: stride, pix: pix, tag: tag}, nil
}

// NewExclusive allocates a fresh writable surface.
func NewExclusive(w, h int, tag color.Space) *Exclusive {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Exclusive{width: w, height: h, stride: w, pix: make([]color.Pixel, w*h), tag: tag}
}

// Share seals e into an immutable Surface. e must not be used afterward.
func (e *Exclusive) Share() *Surface {
	s := &Surface{width: e.width, height: e.height, stride: e.stride, pix: e.pix, tag: e.tag}
	e.pix = nil
	return s
}

func (e *Exclusive) Width() int        { return e.width }
func (e *Exclusive) Height() int       { return e.height }
func (e *Exclusive) Tag() color.Space  { return e.tag }

// Set writes a pixel; out-of-bounds writes are ignored.
func (e *Exclusive) Set(x, y int, p color.Pixel) {
	if x < 0 || y < 0 || x >= e.width || y >= e.height {
		return
	}
	e.pix[y*e.stride+x] = p
}

// At reads a pixel, returning the zero pixel if out of bounds.
func (e *Exclusive) At(x, y int) color.Pixel {
	if x < 0 || y < 0 || x >= e.width || y >= e.height {
		return color.Pixel{}
	}
	return e.pix[y*e.stride+x]
}

func (s *Surface) Width() int       { return s.width }
func (s *Surface) Height() int      { return s.height }
func (s *Surface) Stride() int      { return s.stride }
func (s *Surface) Tag() color.Space { return s.tag }

// Bounds returns the surface's full integer extent.
func (s *Surface) Bounds() geom.RectI {
	return geom.RectI{X2: s.width, Y2: s.height}
}

// At reads a pixel, returning the zero pixel outside the surface and at any
// position governed by an explicit EdgeMode via Sample.
func (s *Surface) At(x, y int) color.Pixel {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return color.Pixel{}
	}
	return s.pix[y*s.stride+x]
}

// Sample reads a pixel applying an edge-handling policy to out-of-bounds
// coordinates, used by convolution, morphology and displacement mapping.
func (s *Surface) Sample(x, y int, edge EdgeMode) color.Pixel {
	switch edge {
	case EdgeDuplicate:
		x = geom.ClampInt(x, 0, s.width-1)
		y = geom.ClampInt(y, 0, s.height-1)
	case EdgeWrap:
		x = wrap(x, s.width)
		y = wrap(y, s.height)
	default: // EdgeNone
		if x < 0 || y < 0 || x >= s.width || y >= s.height {
			return color.Pixel{}
		}
	}
	return s.pix[y*s.stride+x]
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Row returns a read-only view of one row of pixels.
func (s *Surface) Row(y int) []color.Pixel {
	if y < 0 || y >= s.height {
		return nil
	}
	return s.pix[y*s.stride : y*s.stride+s.width]
}

// Rows iterates every row in order.
func (s *Surface) Rows() iter.Seq2[int, []color.Pixel] {
	return func(yield func(int, []color.Pixel) bool) {
		for y := 0; y < s.height; y++ {
			if !yield(y, s.Row(y)) {
				return
			}
		}
	}
}

// PixelsWithin iterates every (x, y, pixel) inside rect intersected with the surface.
func (s *Surface) PixelsWithin(rect geom.RectI) iter.Seq2[geom.Point[int], color.Pixel] {
	clipped, ok := geom.Intersect(rect, s.Bounds())
	return func(yield func(geom.Point[int], color.Pixel) bool) {
		if !ok {
			return
		}
		for y := clipped.Y1; y < clipped.Y2; y++ {
			for x := clipped.X1; x < clipped.X2; x++ {
				if !yield(geom.Point[int]{X: x, Y: y}, s.At(x, y)) {
					return
				}
			}
		}
	}
}

// Clone returns an exclusive copy of s restricted to rect, with rect's
// top-left mapped to (0,0) in the result.
func (s *Surface) Clone(rect geom.RectI) *Exclusive {
	rect, ok := geom.Intersect(rect, s.Bounds())
	out := NewExclusive(max(rect.Width(), 1), max(rect.Height(), 1), s.tag)
	if !ok {
		return out
	}
	for y := rect.Y1; y < rect.Y2; y++ {
		for x := rect.X1; x < rect.X2; x++ {
			out.Set(x-rect.X1, y-rect.Y1, s.At(x, y))
		}
	}
	return out
}
