package primitive

import (
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

// RenderConvolveMatrix convolves the input with an explicit kernel. A kernel
// whose length does not match order.x*order.y is a pass-through, per the
// kernel-size-mismatch invariant.
func RenderConvolveMatrix(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.ConvolveMatrixParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in, err := fetchInput(ctx, bb, p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}

	if len(p.KernelMatrix) != p.OrderX*p.OrderY {
		return finish(bb, ctx, in), nil
	}
	if p.TargetX < 0 || p.TargetX >= p.OrderX || p.TargetY < 0 || p.TargetY >= p.OrderY {
		return engine.FilterOutput{}, engine.InvalidParameter{Msg: "convolveMatrix targetX/targetY out of range"}
	}

	divisor := p.Divisor
	if divisor == 0 {
		divisor = 1
	}

	_, clipped := bb.Compute(ctx)

	working := in
	var scaledRect geom.RectD
	region := clipped
	if p.KernelUnitLength != nil && p.KernelUnitLength[0] > 0 && p.KernelUnitLength[1] > 0 {
		sx := 1 / p.KernelUnitLength[0]
		sy := 1 / p.KernelUnitLength[1]
		working, scaledRect = in.Scale(clipped, sx, sy)
		region = working.Bounds()
	} else {
		scaledRect = geom.RectD{X1: float64(clipped.X1), Y1: float64(clipped.Y1), X2: float64(clipped.X2), Y2: float64(clipped.Y2)}
	}

	out := surface.NewExclusive(working.Width(), working.Height(), working.Tag())
	for y := region.Y1; y < region.Y2; y++ {
		for x := region.X1; x < region.X2; x++ {
			out.Set(x, y, convolveAt(working, p, x, y, divisor))
		}
	}
	result := out.Share()

	if working != in {
		result = result.ScaleTo(in.Width(), in.Height(), scaledRect, p.KernelUnitLength[0], p.KernelUnitLength[1])
	}

	return finish(bb, ctx, maskToRect(result, clipped)), nil
}

func convolveAt(s *surface.Surface, p *engine.ConvolveMatrixParams, x, y int, divisor float64) color.Pixel {
	var sumR, sumG, sumB, sumA float64
	for i := 0; i < p.OrderY; i++ {
		for j := 0; j < p.OrderX; j++ {
			sampleX := x - p.TargetX + j
			sampleY := y - p.TargetY + i
			k := p.KernelMatrix[(p.OrderY-i-1)*p.OrderX+(p.OrderX-j-1)]
			px := s.Sample(sampleX, sampleY, p.EdgeMode)
			if p.PreserveAlpha {
				r, g, b, _ := color.Unpremultiply(px)
				sumR += r * k
				sumG += g * k
				sumB += b * k
			} else {
				sumR += float64(px.R) / 255 * k
				sumG += float64(px.G) / 255 * k
				sumB += float64(px.B) / 255 * k
			}
			sumA += float64(px.A) / 255 * k
		}
	}

	if p.PreserveAlpha {
		target := s.Sample(x, y, p.EdgeMode)
		_, _, _, origA := color.Unpremultiply(target)
		a := geom.Clamp01(origA)
		r := geom.Clamp01(sumR/divisor + p.Bias)
		g := geom.Clamp01(sumG/divisor + p.Bias)
		b := geom.Clamp01(sumB/divisor + p.Bias)
		return color.Premultiply(r, g, b, a)
	}

	a := geom.Clamp01(sumA/divisor + p.Bias)
	r := clampTo(sumR/divisor+p.Bias, a)
	g := clampTo(sumG/divisor+p.Bias, a)
	b := clampTo(sumB/divisor+p.Bias, a)
	return color.Pixel{R: to8(r), G: to8(g), B: to8(b), A: to8(a)}
}

func clampTo(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func to8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
