package primitive

import (
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderTile repeats the input's written region to fill the primitive's subregion.
func RenderTile(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.TileParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in, inBounds, err := ctx.GetInput(p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}
	bb.AddInput(rectDToF(inBounds))
	_, clipped := bb.Compute(ctx)

	tw, th := inBounds.Width(), inBounds.Height()
	out := surface.NewExclusive(ctx.Source.Width(), ctx.Source.Height(), in.Tag())
	if tw > 0 && th > 0 {
		for y := clipped.Y1; y < clipped.Y2; y++ {
			srcY := inBounds.Y1 + mod(y-inBounds.Y1, th)
			for x := clipped.X1; x < clipped.X2; x++ {
				srcX := inBounds.X1 + mod(x-inBounds.X1, tw)
				out.Set(x, y, in.At(srcX, srcY))
			}
		}
	}
	return engine.FilterOutput{Surface: out.Share(), Bounds: clipped}, nil
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
