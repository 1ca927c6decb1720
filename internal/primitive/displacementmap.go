package primitive

import (
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderDisplacementMap displaces in1 by a vector read from two channels of
// in2, scaled by p.Scale, sampling bilinearly at the displaced position.
func RenderDisplacementMap(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.DisplacementMapParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in1, err := fetchInput(ctx, bb, p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}
	in2, err := fetchInput(ctx, bb, p.In2, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}

	sx, sy := ctx.DeviceScale()
	scaleX := p.Scale * sx
	scaleY := p.Scale * sy

	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(in1.Width(), in1.Height(), in1.Tag())
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			dxv := displacementChannel(in2.At(x, y), p.XChannel)
			dyv := displacementChannel(in2.At(x, y), p.YChannel)
			sampleX := float64(x) + scaleX*(dxv-0.5)
			sampleY := float64(y) + scaleY*(dyv-0.5)
			out.Set(x, y, in1.SampleBilinear(sampleX, sampleY, surface.EdgeNone))
		}
	}
	return finish(bb, ctx, out.Share()), nil
}

func displacementChannel(p color.Pixel, ch engine.Channel) float64 {
	if ch == engine.ChannelA {
		return float64(p.A) / 255
	}
	r, g, b, _ := color.Unpremultiply(p)
	switch ch {
	case engine.ChannelR:
		return r
	case engine.ChannelG:
		return g
	default:
		return b
	}
}
