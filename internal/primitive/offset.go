package primitive

import (
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderOffset translates the input by (dx, dy) device pixels without
// resampling; the output canvas matches the source's dimensions, with
// pixels that shift off the edge or out of the primitive's subregion dropped.
func RenderOffset(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.OffsetParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in, inBounds, err := ctx.GetInput(p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}

	sx, sy := ctx.DeviceScale()
	dx, dy := geom.IRound(p.Dx*sx), geom.IRound(p.Dy*sy)

	out := surface.NewExclusive(ctx.Source.Width(), ctx.Source.Height(), in.Tag())
	for y := inBounds.Y1; y < inBounds.Y2; y++ {
		for x := inBounds.X1; x < inBounds.X2; x++ {
			out.Set(x+dx, y+dy, in.At(x, y))
		}
	}

	bb.AddInput(geom.RectD{
		X1: float64(inBounds.X1 + dx), Y1: float64(inBounds.Y1 + dy),
		X2: float64(inBounds.X2 + dx), Y2: float64(inBounds.Y2 + dy),
	})
	_, clipped := bb.Compute(ctx)
	return engine.FilterOutput{Surface: maskToRect(out.Share(), clipped), Bounds: clipped}, nil
}
