// Package primitive implements the pixel kernel for each filter primitive
// kind. Every Render function shares the contract: given a FilterContext and
// a resolved primitive, produce a FilterOutput or an error the driver
// classifies as fatal or skippable.
package primitive

import (
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

// chooseTag picks the output surface's color-space tag for a primitive that
// writes full RGBA rather than deriving it from a single input.
func chooseTag(ci engine.ColorInterpolation) color.Space {
	if ci == engine.LinearRGB {
		return color.Linear
	}
	return color.SRGB
}

// newBounds starts a BoundsBuilder for base's declared overrides, resolved to device space.
func newBounds(ctx *engine.FilterContext, base engine.PrimitiveBase) *engine.BoundsBuilder {
	dx, dy, dw, dh := ctx.DeviceRect(base.X, base.Y, base.Width, base.Height)
	return engine.NewBoundsBuilder(dx, dy, dw, dh)
}

// fetchInput resolves a selector through ctx, folding its bounds into bb,
// and returns the surface restricted in color space per ci.
func fetchInput(ctx *engine.FilterContext, bb *engine.BoundsBuilder, sel engine.InputSelector, ci engine.ColorInterpolation) (*surface.Surface, error) {
	s, bounds, err := ctx.GetInput(sel, ci)
	if err != nil {
		return nil, err
	}
	bb.AddInput(rectDToF(bounds))
	return s, nil
}

func rectDToF(r geom.RectI) geom.RectD {
	return geom.RectD{X1: float64(r.X1), Y1: float64(r.Y1), X2: float64(r.X2), Y2: float64(r.Y2)}
}

// maskToRect returns a transparent canvas-sized surface with only the pixels
// inside rect copied from s, for primitives whose internal algorithm reads
// or writes beyond the declared subregion but must still respect it.
func maskToRect(s *surface.Surface, rect geom.RectI) *surface.Surface {
	out := surface.NewExclusive(s.Width(), s.Height(), s.Tag())
	for y := rect.Y1; y < rect.Y2; y++ {
		for x := rect.X1; x < rect.X2; x++ {
			out.Set(x, y, s.At(x, y))
		}
	}
	return out.Share()
}

func finish(bb *engine.BoundsBuilder, ctx *engine.FilterContext, built *surface.Surface) engine.FilterOutput {
	_, clipped := bb.Compute(ctx)
	return engine.FilterOutput{Surface: built, Bounds: clipped}
}
