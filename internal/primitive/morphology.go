package primitive

import (
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderMorphology erodes or dilates the input by taking the per-channel
// min (erode) or max (dilate) of premultiplied components over a
// (2*radiusX+1) x (2*radiusY+1) window.
func RenderMorphology(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.MorphologyParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in, err := fetchInput(ctx, bb, p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}

	if p.RadiusX < 0 || p.RadiusY < 0 {
		return engine.FilterOutput{}, engine.InvalidParameter{Msg: "morphology radius must be non-negative"}
	}

	sx, sy := ctx.DeviceScale()
	rx := int(p.RadiusX*sx + 0.5)
	ry := int(p.RadiusY*sy + 0.5)
	if rx == 0 && ry == 0 {
		return finish(bb, ctx, in), nil
	}

	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(in.Width(), in.Height(), in.Tag())
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			out.Set(x, y, morphAt(in, p.Operator, x, y, rx, ry))
		}
	}
	return finish(bb, ctx, out.Share()), nil
}

func morphAt(s *surface.Surface, op engine.MorphOp, x, y, rx, ry int) color.Pixel {
	r, g, b, a := s.At(x, y).R, s.At(x, y).G, s.At(x, y).B, s.At(x, y).A
	for j := -ry; j <= ry; j++ {
		for i := -rx; i <= rx; i++ {
			if i == 0 && j == 0 {
				continue
			}
			px := s.Sample(x+i, y+j, surface.EdgeNone)
			switch op {
			case engine.Dilate:
				r, g, b, a = max8(r, px.R), max8(g, px.G), max8(b, px.B), max8(a, px.A)
			default: // Erode
				r, g, b, a = min8(r, px.R), min8(g, px.G), min8(b, px.B), min8(a, px.A)
			}
		}
	}
	return color.Pixel{R: r, G: g, B: b, A: a}
}

func max8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func min8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
