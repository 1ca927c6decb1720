package primitive

import (
	"math"

	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

type vec3 struct{ x, y, z float64 }

func (v vec3) dot(o vec3) float64 { return v.x*o.x + v.y*o.y + v.z*o.z }
func (v vec3) add(o vec3) vec3    { return vec3{v.x + o.x, v.y + o.y, v.z + o.z} }
func (v vec3) normalize() vec3 {
	l := math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
	if l == 0 {
		return vec3{0, 0, 1}
	}
	return vec3{v.x / l, v.y / l, v.z / l}
}

// surfaceNormal estimates the bump-mapped surface normal at (x, y) from the
// alpha channel using a 3x3 Sobel gradient, the interior-pixel kernel applied
// uniformly (a simplification at the filter region's edge, where the
// reference algorithm switches to smaller boundary kernels).
func surfaceNormal(a *surface.Surface, x, y int, surfaceScale float64) vec3 {
	alphaAt := func(dx, dy int) float64 {
		return float64(a.Sample(x+dx, y+dy, surface.EdgeDuplicate).A) / 255
	}
	nx := -surfaceScale / 4 * ((alphaAt(1, -1) + 2*alphaAt(1, 0) + alphaAt(1, 1)) -
		(alphaAt(-1, -1) + 2*alphaAt(-1, 0) + alphaAt(-1, 1)))
	ny := -surfaceScale / 4 * ((alphaAt(-1, 1) + 2*alphaAt(0, 1) + alphaAt(1, 1)) -
		(alphaAt(-1, -1) + 2*alphaAt(0, -1) + alphaAt(1, -1)))
	return vec3{nx, ny, 1}.normalize()
}

// lightVectorAndColor returns the unit vector toward the light and the
// effective light color at surface point (px, py, pz) in user space.
func lightVectorAndColor(light engine.LightSource, lightColor color.Pixel, px, py, pz float64) (vec3, vec3) {
	lr, lg, lb, _ := color.Unpremultiply(lightColor)
	c := vec3{lr, lg, lb}

	switch {
	case light.Distant != nil:
		az := light.Distant.Azimuth * geom.Deg2Rad
		el := light.Distant.Elevation * geom.Deg2Rad
		l := vec3{math.Cos(az) * math.Cos(el), math.Sin(az) * math.Cos(el), math.Sin(el)}
		return l, c
	case light.Point != nil:
		l := vec3{light.Point.X - px, light.Point.Y - py, light.Point.Z - pz}.normalize()
		return l, c
	case light.Spot != nil:
		s := light.Spot
		l := vec3{s.X - px, s.Y - py, s.Z - pz}.normalize()
		dir := vec3{s.PointsAtX - s.X, s.PointsAtY - s.Y, s.PointsAtZ - s.Z}.normalize()
		minusL := vec3{-l.x, -l.y, -l.z}
		cosAngle := minusL.dot(dir)
		if s.LimitingConeAngle != nil {
			limit := math.Cos(*s.LimitingConeAngle * geom.Deg2Rad)
			if cosAngle < limit {
				return l, vec3{}
			}
		}
		if cosAngle < 0 {
			cosAngle = 0
		}
		atten := math.Pow(cosAngle, s.SpecularExponent)
		return l, vec3{c.x * atten, c.y * atten, c.z * atten}
	default:
		return vec3{0, 0, 1}, c
	}
}

// RenderDiffuseLighting computes kd*(N.L)*lightColor per pixel with full opacity.
func RenderDiffuseLighting(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.LightingParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in, err := fetchInput(ctx, bb, p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}

	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(in.Width(), in.Height(), color.SRGB)
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			n := surfaceNormal(in, x, y, p.SurfaceScale)
			z := p.SurfaceScale * float64(in.At(x, y).A) / 255
			ux, uy := ctx.UserPoint(float64(x)+0.5, float64(y)+0.5)
			l, lc := lightVectorAndColor(p.Light, p.LightingColor, ux, uy, z)
			nDotL := n.dot(l)
			if nDotL < 0 {
				nDotL = 0
			}
			r := geom.Clamp01(p.DiffuseConstant * nDotL * lc.x)
			g := geom.Clamp01(p.DiffuseConstant * nDotL * lc.y)
			b := geom.Clamp01(p.DiffuseConstant * nDotL * lc.z)
			out.Set(x, y, color.Premultiply(r, g, b, 1))
		}
	}
	return finish(bb, ctx, out.Share()), nil
}

// RenderSpecularLighting computes ks*(N.H)^specularExponent*lightColor, with
// output alpha set to the max channel so the result is self-consistently premultiplied.
func RenderSpecularLighting(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.LightingParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	in, err := fetchInput(ctx, bb, p.In1, base.ColorInterpolation)
	if err != nil {
		return engine.FilterOutput{}, err
	}

	eye := vec3{0, 0, 1}
	_, clipped := bb.Compute(ctx)

	out := surface.NewExclusive(in.Width(), in.Height(), color.SRGB)
	for y := clipped.Y1; y < clipped.Y2; y++ {
		for x := clipped.X1; x < clipped.X2; x++ {
			n := surfaceNormal(in, x, y, p.SurfaceScale)
			z := p.SurfaceScale * float64(in.At(x, y).A) / 255
			ux, uy := ctx.UserPoint(float64(x)+0.5, float64(y)+0.5)
			l, lc := lightVectorAndColor(p.Light, p.LightingColor, ux, uy, z)
			h := l.add(eye).normalize()
			nDotH := n.dot(h)
			if nDotH < 0 {
				nDotH = 0
			}
			factor := p.SpecularConstant * math.Pow(nDotH, p.SpecularExponent)
			r := geom.Clamp01(factor * lc.x)
			g := geom.Clamp01(factor * lc.y)
			b := geom.Clamp01(factor * lc.z)
			a := r
			if g > a {
				a = g
			}
			if b > a {
				a = b
			}
			out.Set(x, y, color.Pixel{R: to8(r), G: to8(g), B: to8(b), A: to8(a)})
		}
	}
	return finish(bb, ctx, out.Share()), nil
}
