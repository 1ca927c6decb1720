package primitive

import (
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/noise"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderTurbulence synthesizes Perlin noise over the primitive subregion; it
// has no input image. Each channel is evaluated independently in
// primitive-unit space and the result is premultiplied before storage.
//
// StitchTiles is accepted but not honored: seamless tiling requires
// adjusting the lattice wraparound per tile boundary, which this generator
// does not implement.
func RenderTurbulence(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.TurbulenceParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	_, clipped := bb.Compute(ctx)

	if p.BaseFreqX < 0 || p.BaseFreqY < 0 {
		return engine.FilterOutput{}, engine.InvalidParameter{Msg: "turbulence baseFrequency must be non-negative"}
	}
	numOctaves := p.NumOctaves
	if numOctaves < 1 {
		numOctaves = 1
	}

	gen := noise.NewGenerator(p.Seed)
	fractalSum := p.Type == engine.FractalNoise

	out := surface.NewExclusive(ctx.Source.Width(), ctx.Source.Height(), chooseTag(base.ColorInterpolation))
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			ux, uy := ctx.UserPoint(float64(x)+0.5, float64(y)+0.5)
			r := turbulenceChannel(gen, 0, ux, uy, p.BaseFreqX, p.BaseFreqY, numOctaves, fractalSum)
			g := turbulenceChannel(gen, 1, ux, uy, p.BaseFreqX, p.BaseFreqY, numOctaves, fractalSum)
			b := turbulenceChannel(gen, 2, ux, uy, p.BaseFreqX, p.BaseFreqY, numOctaves, fractalSum)
			a := turbulenceChannel(gen, 3, ux, uy, p.BaseFreqX, p.BaseFreqY, numOctaves, fractalSum)
			out.Set(x, y, color.Premultiply(geom.Clamp01(r), geom.Clamp01(g), geom.Clamp01(b), geom.Clamp01(a)))
		}
	}
	return engine.FilterOutput{Surface: out.Share(), Bounds: clipped}, nil
}

func turbulenceChannel(gen *noise.Generator, channel int, x, y, fx, fy float64, octaves int, fractalSum bool) float64 {
	v := gen.Fractal(channel, x, y, fx, fy, octaves, fractalSum)
	if fractalSum {
		return (v + 1) / 2
	}
	return v
}
