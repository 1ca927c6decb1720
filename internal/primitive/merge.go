package primitive

import (
	"github.com/svgraster/filterengine/internal/blend"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderMerge composites each input over an accumulator in source-over order.
func RenderMerge(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.MergeParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)

	ins := make([]*surface.Surface, len(p.Inputs))
	for i, sel := range p.Inputs {
		in, err := fetchInput(ctx, bb, sel, base.ColorInterpolation)
		if err != nil {
			return engine.FilterOutput{}, err
		}
		ins[i] = in
	}
	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(ctx.Source.Width(), ctx.Source.Height(), chooseTag(base.ColorInterpolation))
	for _, in := range ins {
		for y := clipped.Y1; y < clipped.Y2; y++ {
			for x := clipped.X1; x < clipped.X2; x++ {
				out.Set(x, y, blend.Composite(blend.CompositeOver, out.At(x, y), in.At(x, y), blend.Arithmetic{}))
			}
		}
	}
	return finish(bb, ctx, out.Share()), nil
}
