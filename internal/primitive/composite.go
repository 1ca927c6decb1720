package primitive

import (
	"github.com/svgraster/filterengine/internal/blend"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderComposite applies a Porter-Duff operator (or the arithmetic
// operator) between in1 and in2, in1 as source over in2 as backdrop.
func RenderComposite(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.CompositeParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in1, err := fetchInput(ctx, bb, p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}
	in2, err := fetchInput(ctx, bb, p.In2, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}

	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(ctx.Source.Width(), ctx.Source.Height(), in2.Tag())
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			out.Set(x, y, blend.Composite(p.Operator, in2.At(x, y), in1.At(x, y), p.K))
		}
	}
	return finish(bb, ctx, out.Share()), nil
}
