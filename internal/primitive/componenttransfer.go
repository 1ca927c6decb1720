package primitive

import (
	"math"

	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

// evalTransfer evaluates one feFunc* channel function at v in [0,1]. An
// empty table for type table/discrete is treated as identity here: v is
// returned unchanged.
func evalTransfer(f engine.TransferFunction, v float64) float64 {
	switch f.Type {
	case engine.TransferTable:
		if len(f.TableValues) == 0 {
			return v
		}
		n := len(f.TableValues) - 1
		if n == 0 {
			return f.TableValues[0]
		}
		k := int(v * float64(n))
		if k >= n {
			return f.TableValues[n]
		}
		frac := (v - float64(k)/float64(n)) * float64(n)
		return f.TableValues[k]*(1-frac) + f.TableValues[k+1]*frac
	case engine.TransferDiscrete:
		if len(f.TableValues) == 0 {
			return v
		}
		n := len(f.TableValues)
		k := int(v * float64(n))
		if k >= n {
			k = n - 1
		}
		return f.TableValues[k]
	case engine.TransferLinear:
		return f.Slope*v + f.Intercept
	case engine.TransferGamma:
		return f.Amplitude*math.Pow(v, f.Exponent) + f.Offset
	default: // identity
		return v
	}
}

// RenderComponentTransfer applies independent transfer functions to R, G, B, A.
func RenderComponentTransfer(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.ComponentTransferParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in, err := fetchInput(ctx, bb, p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}

	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(in.Width(), in.Height(), in.Tag())
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			px := in.At(x, y)
			r, g, b, a := color.Unpremultiply(px)
			if px.A == 0 {
				r, g, b = 0, 0, 0
			}
			nr := geom.Clamp01(evalTransfer(p.FuncR, r))
			ng := geom.Clamp01(evalTransfer(p.FuncG, g))
			nb := geom.Clamp01(evalTransfer(p.FuncB, b))
			na := geom.Clamp01(evalTransfer(p.FuncA, a))
			out.Set(x, y, color.Premultiply(nr, ng, nb, na))
		}
	}
	return finish(bb, ctx, out.Share()), nil
}
