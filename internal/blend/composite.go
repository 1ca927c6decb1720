// Package blend implements the premultiplied pixel algebra behind the
// Composite and Blend filter primitives: Porter-Duff compositing operators,
// the arithmetic operator, and the CSS Compositing and Blending blend modes.
package blend

import (
	"math"

	"github.com/svgraster/filterengine/internal/color"
)

// CompositeOp selects a feComposite operator.
type CompositeOp int

const (
	CompositeOver CompositeOp = iota
	CompositeIn
	CompositeOut
	CompositeAtop
	CompositeXor
	CompositeArithmetic
	// compositeClear, compositeSrc, compositeDst and compositePlus are not
	// reachable from feComposite's operator attribute, and Composite has no
	// case for them: they take its source-over default.
	compositeClear
	compositeSrc
	compositeDst
	compositePlus
)

// Arithmetic carries the feComposite arithmetic operator's k1..k4 coefficients.
type Arithmetic struct {
	K1, K2, K3, K4 float64
}

type pixf struct{ r, g, b, a float64 }

func unpack(p color.Pixel) pixf {
	return pixf{float64(p.R) / 255, float64(p.G) / 255, float64(p.B) / 255, float64(p.A) / 255}
}

func pack(p pixf) color.Pixel {
	return color.Pixel{R: to8(p.r), G: to8(p.g), B: to8(p.b), A: to8(p.a)}
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

// Composite applies a Porter-Duff operator to two premultiplied pixels,
// src over dst. ar is used only when op is CompositeArithmetic.
func Composite(op CompositeOp, dst, src color.Pixel, ar Arithmetic) color.Pixel {
	d, s := unpack(dst), unpack(src)
	switch op {
	case CompositeOver:
		return pack(over(d, s))
	case CompositeIn:
		return pack(in(d, s))
	case CompositeOut:
		return pack(out(d, s))
	case CompositeAtop:
		return pack(atop(d, s))
	case CompositeXor:
		return pack(xor(d, s))
	case CompositeArithmetic:
		return pack(arithmetic(d, s, ar))
	default:
		return pack(over(d, s))
	}
}

// over: Dca' = Sca + Dca(1 - Sa); Da' = Sa + Da(1 - Sa)
func over(d, s pixf) pixf {
	if s.a <= 0 {
		return d
	}
	is := 1 - s.a
	return pixf{s.r + d.r*is, s.g + d.g*is, s.b + d.b*is, s.a + d.a*is}
}

// in: Dca' = Sca*Da; Da' = Sa*Da
func in(d, s pixf) pixf {
	return pixf{s.r * d.a, s.g * d.a, s.b * d.a, s.a * d.a}
}

// out: Dca' = Sca(1 - Da); Da' = Sa(1 - Da)
func out(d, s pixf) pixf {
	id := 1 - d.a
	return pixf{s.r * id, s.g * id, s.b * id, s.a * id}
}

// atop: Dca' = Sca*Da + Dca(1 - Sa); Da' = Da
func atop(d, s pixf) pixf {
	is := 1 - s.a
	return pixf{s.r*d.a + d.r*is, s.g*d.a + d.g*is, s.b*d.a + d.b*is, d.a}
}

// xor: Dca' = Sca(1 - Da) + Dca(1 - Sa); Da' = Sa + Da - 2SaDa
func xor(d, s pixf) pixf {
	is, id := 1-s.a, 1-d.a
	return pixf{s.r*id + d.r*is, s.g*id + d.g*is, s.b*id + d.b*is, s.a + d.a - 2*s.a*d.a}
}

// arithmetic: result = k1*Sca*Dca + k2*Sca + k3*Dca + k4, clamped to [0,1];
// evaluated identically on each premultiplied channel including alpha.
func arithmetic(d, s pixf, k Arithmetic) pixf {
	f := func(sc, dc float64) float64 {
		return k.K1*sc*dc + k.K2*sc + k.K3*dc + k.K4
	}
	return pixf{
		clamp(f(s.r, d.r)),
		clamp(f(s.g, d.g)),
		clamp(f(s.b, d.b)),
		clamp(f(s.a, d.a)),
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mode selects a feBlend mode.
type Mode int

const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	Color
	Luminosity
)

// Blend applies a CSS Compositing and Blending blend mode, source over
// backdrop, per the standard simple-alpha-compositing formula
//
//	Co = Sa*(1-Da)*Cs + Sa*Da*B(Cb,Cs) + Da*(1-Sa)*Cb
//
// with the result returned premultiplied.
func Blend(mode Mode, backdrop, source color.Pixel) color.Pixel {
	d, s := unpack(backdrop), unpack(source)
	if s.a <= 0 {
		return backdrop
	}
	cb := straight(d)
	cs := straight(s)

	var b [3]float64
	switch mode {
	case Normal:
		b = cs
	case Multiply:
		b = separable(cb, cs, blendMultiply)
	case Screen:
		b = separable(cb, cs, blendScreen)
	case Overlay:
		b = separable(cb, cs, func(cb, cs float64) float64 { return blendHardLight(cs, cb) })
	case Darken:
		b = separable(cb, cs, math.Min)
	case Lighten:
		b = separable(cb, cs, math.Max)
	case ColorDodge:
		b = separable(cb, cs, blendColorDodge)
	case ColorBurn:
		b = separable(cb, cs, blendColorBurn)
	case HardLight:
		b = separable(cb, cs, blendHardLight)
	case SoftLight:
		b = separable(cb, cs, blendSoftLight)
	case Difference:
		b = separable(cb, cs, func(cb, cs float64) float64 { return math.Abs(cb - cs) })
	case Exclusion:
		b = separable(cb, cs, func(cb, cs float64) float64 { return cb + cs - 2*cb*cs })
	case Hue:
		b = setLum(setSat(cs, sat(cb)), lum(cb))
	case Saturation:
		b = setLum(setSat(cb, sat(cs)), lum(cb))
	case Color:
		b = setLum(cs, lum(cb))
	case Luminosity:
		b = setLum(cb, lum(cs))
	default:
		b = cs
	}

	da, sa := d.a, s.a
	out := pixf{a: sa + da*(1-sa)}
	for i, cbc := range cb {
		csc := cs[i]
		bc := b[i]
		co := sa*(1-da)*csc + sa*da*bc + da*(1-sa)*cbc
		switch i {
		case 0:
			out.r = co
		case 1:
			out.g = co
		case 2:
			out.b = co
		}
	}
	return pack(out)
}

func straight(p pixf) [3]float64 {
	if p.a <= 0 {
		return [3]float64{0, 0, 0}
	}
	return [3]float64{p.r / p.a, p.g / p.a, p.b / p.a}
}

func separable(cb, cs [3]float64, f func(cb, cs float64) float64) [3]float64 {
	return [3]float64{f(cb[0], cs[0]), f(cb[1], cs[1]), f(cb[2], cs[2])}
}

func blendMultiply(cb, cs float64) float64 { return cb * cs }
func blendScreen(cb, cs float64) float64   { return cb + cs - cb*cs }

func blendHardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return blendMultiply(cb, 2*cs)
	}
	return blendScreen(cb, 2*cs-1)
}

func blendColorDodge(cb, cs float64) float64 {
	if cb <= 0 {
		return 0
	}
	if cs >= 1 {
		return 1
	}
	return math.Min(1, cb/(1-cs))
}

func blendColorBurn(cb, cs float64) float64 {
	if cb >= 1 {
		return 1
	}
	if cs <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-cb)/cs)
}

func blendSoftLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

// Non-separable helpers per CSS Compositing and Blending Level 1.

func lum(c [3]float64) float64 { return 0.3*c[0] + 0.59*c[1] + 0.11*c[2] }

func clipColor(c [3]float64) [3]float64 {
	l := lum(c)
	n := math.Min(c[0], math.Min(c[1], c[2]))
	x := math.Max(c[0], math.Max(c[1], c[2]))
	if n < 0 {
		for i := range c {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
	}
	if x > 1 {
		for i := range c {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setLum(c [3]float64, l float64) [3]float64 {
	d := l - lum(c)
	for i := range c {
		c[i] += d
	}
	return clipColor(c)
}

func sat(c [3]float64) float64 {
	return math.Max(c[0], math.Max(c[1], c[2])) - math.Min(c[0], math.Min(c[1], c[2]))
}

func setSat(c [3]float64, s float64) [3]float64 {
	type idx struct {
		v float64
		i int
	}
	sorted := []idx{{c[0], 0}, {c[1], 1}, {c[2], 2}}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if sorted[j].v < sorted[i].v {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	out := [3]float64{}
	if sorted[2].v > sorted[0].v {
		out[sorted[1].i] = (sorted[1].v - sorted[0].v) * s / (sorted[2].v - sorted[0].v)
		out[sorted[2].i] = s
	}
	out[sorted[0].i] = 0
	return out
}
