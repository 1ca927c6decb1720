package primitive

import (
	"github.com/svgraster/filterengine/internal/blend"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderBlend applies a CSS blend mode between in1 (source) and in2 (backdrop).
func RenderBlend(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.BlendParams) (engine.FilterOutput, error) {
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
			out.Set(x, y, blend.Blend(p.Mode, in2.At(x, y), in1.At(x, y)))
		}
	}
	return finish(bb, ctx, out.Share()), nil
}
