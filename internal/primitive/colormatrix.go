package primitive

import (
	"math"

	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

// colorMatrix5 is the 5x5 affine matrix feColorMatrix applies to (R,G,B,A,1).
type colorMatrix5 [5][5]float64

func identityMatrix5() colorMatrix5 {
	var m colorMatrix5
	for i := 0; i < 5; i++ {
		m[i][i] = 1
	}
	return m
}

func buildColorMatrix(p *engine.ColorMatrixParams) colorMatrix5 {
	switch p.Type {
	case engine.MatrixRaw:
		if len(p.Values) != 20 {
			return identityMatrix5()
		}
		var m colorMatrix5
		for r := 0; r < 4; r++ {
			for c := 0; c < 5; c++ {
				m[r][c] = p.Values[r*5+c]
			}
		}
		m[4] = [5]float64{0, 0, 0, 0, 1}
		return m
	case engine.MatrixSaturate:
		s := 1.0
		if len(p.Values) >= 1 {
			s = p.Values[0]
		}
		return colorMatrix5{
			{0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0},
			{0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0},
			{0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0},
			{0, 0, 0, 1, 0},
			{0, 0, 0, 0, 1},
		}
	case engine.MatrixHueRotate:
		theta := 0.0
		if len(p.Values) >= 1 {
			theta = p.Values[0] * geom.Deg2Rad
		}
		cos, sin := math.Cos(theta), math.Sin(theta)
		a := [3][3]float64{{0.213, 0.715, 0.072}, {0.213, 0.715, 0.072}, {0.213, 0.715, 0.072}}
		b := [3][3]float64{{0.787, -0.715, -0.072}, {-0.213, 0.285, -0.072}, {-0.213, -0.715, 0.928}}
		c := [3][3]float64{{-0.213, -0.715, 0.928}, {0.143, 0.140, -0.283}, {-0.787, 0.715, 0.072}}
		var m colorMatrix5
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				m[r][col] = a[r][col] + b[r][col]*cos + c[r][col]*sin
			}
		}
		m[3] = [5]float64{0, 0, 0, 1, 0}
		m[4] = [5]float64{0, 0, 0, 0, 1}
		return m
	case engine.MatrixLuminanceToAlpha:
		return colorMatrix5{
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0.2126, 0.7152, 0.0722, 0, 0},
			{0, 0, 0, 0, 1},
		}
	default:
		return identityMatrix5()
	}
}

func (m colorMatrix5) apply(r, g, b, a float64) (nr, ng, nb, na float64) {
	v := [5]float64{r, g, b, a, 1}
	var out [4]float64
	for row := 0; row < 4; row++ {
		sum := 0.0
		for col := 0; col < 5; col++ {
			sum += m[row][col] * v[col]
		}
		out[row] = sum
	}
	return out[0], out[1], out[2], out[3]
}

// RenderColorMatrix applies the resolved 5x5 matrix to every pixel, operating
// on unpremultiplied components per the standard feColorMatrix definition.
func RenderColorMatrix(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.ColorMatrixParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in, err := fetchInput(ctx, bb, p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}
	m := buildColorMatrix(p)
	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(in.Width(), in.Height(), in.Tag())
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			px := in.At(x, y)
			r, g, b, a := color.Unpremultiply(px)
			if px.A == 0 {
				r, g, b, a = 0, 0, 0, 0
			}
			nr, ng, nb, na := m.apply(r, g, b, a)
			na = geom.Clamp01(na)
			out.Set(x, y, color.Premultiply(geom.Clamp01(nr), geom.Clamp01(ng), geom.Clamp01(nb), na))
		}
	}
	return finish(bb, ctx, out.Share()), nil
}
