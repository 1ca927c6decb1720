package primitive

import (
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderFlood fills the primitive's subregion with flood-color * flood-opacity.
func RenderFlood(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.FloodParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(ctx.Source.Width(), ctx.Source.Height(), chooseTag(base.ColorInterpolation))
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			out.Set(x, y, p.Color)
		}
	}
	return engine.FilterOutput{Surface: out.Share(), Bounds: clipped}, nil
}
