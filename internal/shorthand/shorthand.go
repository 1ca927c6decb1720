// Package shorthand expands CSS filter-function shorthands (blur(), brightness(),
// drop-shadow(), ...) into the equivalent primitive sequence the pipeline driver runs.
package shorthand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/svgraster/filterengine/internal/blend"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/resolver"
	"github.com/svgraster/filterengine/internal/surface"
)

// tokenize splits a CSS filter property value into its function tokens, e.g.
// "blur(5px) brightness(1.2)" -> [{"blur", ["5px"]}, {"brightness", ["1.2"]}].
type fnCall struct {
	name string
	args []string
}

func tokenize(value string) []fnCall {
	var calls []fnCall
	value = strings.TrimSpace(value)
	for len(value) > 0 {
		open := strings.IndexByte(value, '(')
		if open < 0 {
			break
		}
		name := strings.TrimSpace(value[:open])
		closeIdx := strings.IndexByte(value[open:], ')')
		if closeIdx < 0 {
			break
		}
		closeIdx += open
		argsRaw := value[open+1 : closeIdx]
		var args []string
		if strings.TrimSpace(argsRaw) != "" {
			args = strings.FieldsFunc(argsRaw, func(r rune) bool { return r == ',' || r == ' ' })
		}
		calls = append(calls, fnCall{name: name, args: args})
		value = strings.TrimSpace(value[closeIdx+1:])
	}
	return calls
}

func numArg(args []string, i int, def float64) float64 {
	if i >= len(args) {
		return def
	}
	s := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(args[i], "%"), "px"), "deg")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	if strings.HasSuffix(args[i], "%") {
		v /= 100
	}
	return v
}

func unspecified() engine.InputSelector { return engine.InputSelector{Kind: engine.Unspecified} }

func base() engine.PrimitiveBase { return engine.PrimitiveBase{ColorInterpolation: engine.SRGB} }

func linearTransfer(slope, intercept float64) engine.TransferFunction {
	return engine.TransferFunction{Type: engine.TransferLinear, Slope: slope, Intercept: intercept, Amplitude: 1, Exponent: 1}
}

func tableTransfer(values ...float64) engine.TransferFunction {
	return engine.TransferFunction{Type: engine.TransferTable, TableValues: values, Slope: 1, Amplitude: 1, Exponent: 1}
}

// sepiaMatrix returns the 20-value feColorMatrix row-major matrix for
// sepia(n), linearly interpolated between identity and the full sepia matrix.
func sepiaMatrix(n float64) []float64 {
	identity := []float64{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
	sepia := []float64{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
	out := make([]float64, 20)
	for i := range out {
		out[i] = identity[i] + (sepia[i]-identity[i])*n
	}
	return out
}

// Expand parses a CSS filter property's shorthand-function list into an
// ordered ResolvedPrimitive sequence; "none" or an empty value yields no
// primitives. Malformed functions are dropped.
func Expand(value string) []engine.ResolvedPrimitive {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" {
		return nil
	}
	var out []engine.ResolvedPrimitive
	for _, call := range tokenize(value) {
		out = append(out, expandOne(call)...)
	}
	return out
}

func expandOne(call fnCall) []engine.ResolvedPrimitive {
	switch call.name {
	case "blur":
		r := numArg(call.args, 0, 0)
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindGaussianBlur,
			Gaussian: &engine.GaussianBlurParams{In1: unspecified(), StdDeviationX: r, StdDeviationY: r, EdgeMode: surface.EdgeNone},
		}}
	case "brightness":
		n := numArg(call.args, 0, 1)
		t := linearTransfer(n, 0)
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindComponentTransfer,
			Transfer: &engine.ComponentTransferParams{In1: unspecified(), FuncR: t, FuncG: t, FuncB: t, FuncA: engine.DefaultTransferFunction()},
		}}
	case "contrast":
		n := numArg(call.args, 0, 1)
		t := linearTransfer(n, -(0.5*n - 0.5))
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindComponentTransfer,
			Transfer: &engine.ComponentTransferParams{In1: unspecified(), FuncR: t, FuncG: t, FuncB: t, FuncA: engine.DefaultTransferFunction()},
		}}
	case "grayscale":
		n := numArg(call.args, 0, 1)
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindColorMatrix,
			Matrix: &engine.ColorMatrixParams{In1: unspecified(), Type: engine.MatrixSaturate, Values: []float64{1 - n}},
		}}
	case "hue-rotate":
		a := numArg(call.args, 0, 0)
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindColorMatrix,
			Matrix: &engine.ColorMatrixParams{In1: unspecified(), Type: engine.MatrixHueRotate, Values: []float64{a}},
		}}
	case "invert":
		n := numArg(call.args, 0, 1)
		t := tableTransfer(n, 1-n)
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindComponentTransfer,
			Transfer: &engine.ComponentTransferParams{In1: unspecified(), FuncR: t, FuncG: t, FuncB: t, FuncA: engine.DefaultTransferFunction()},
		}}
	case "opacity":
		n := numArg(call.args, 0, 1)
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindComponentTransfer,
			Transfer: &engine.ComponentTransferParams{
				In1: unspecified(), FuncR: engine.DefaultTransferFunction(), FuncG: engine.DefaultTransferFunction(),
				FuncB: engine.DefaultTransferFunction(), FuncA: tableTransfer(0, n),
			},
		}}
	case "saturate":
		n := numArg(call.args, 0, 1)
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindColorMatrix,
			Matrix: &engine.ColorMatrixParams{In1: unspecified(), Type: engine.MatrixSaturate, Values: []float64{n}},
		}}
	case "sepia":
		n := numArg(call.args, 0, 1)
		return []engine.ResolvedPrimitive{{
			Base: base(), Kind: engine.KindColorMatrix,
			Matrix: &engine.ColorMatrixParams{In1: unspecified(), Type: engine.MatrixRaw, Values: sepiaMatrix(n)},
		}}
	case "drop-shadow":
		return dropShadow(call.args)
	default:
		return nil
	}
}

// dropShadow expands drop-shadow(dx dy blur-radius? color?) into
// feGaussianBlur(SourceAlpha) -> feOffset -> feFlood -> feComposite(in) -> feMerge.
// The color argument, per CSS syntax, may appear before or after the lengths.
func dropShadow(args []string) []engine.ResolvedPrimitive {
	flood := color.Pixel{A: 255} // opaque black default
	lengths := make([]string, 0, len(args))
	for _, a := range args {
		if r, g, b, pa, ok := resolver.ParseColor(a); ok {
			flood = color.Premultiply(float64(r)/255, float64(g)/255, float64(b)/255, pa)
			continue
		}
		lengths = append(lengths, a)
	}
	dx := numArg(lengths, 0, 0)
	dy := numArg(lengths, 1, 0)
	blurRadius := numArg(lengths, 2, 0)

	blurred := "shadow-blur"
	offsetted := "shadow-offset"
	colored := "shadow-color"
	clipped := "shadow-clipped"

	return []engine.ResolvedPrimitive{
		{
			Base: withResult(base(), blurred), Kind: engine.KindGaussianBlur,
			Gaussian: &engine.GaussianBlurParams{
				In1:           engine.InputSelector{Kind: engine.SourceAlpha},
				StdDeviationX: blurRadius, StdDeviationY: blurRadius, EdgeMode: surface.EdgeNone,
			},
		},
		{
			Base: withResult(base(), offsetted), Kind: engine.KindOffset,
			Offset: &engine.OffsetParams{In1: engine.InputSelector{Kind: engine.NamedResult, Name: blurred}, Dx: dx, Dy: dy},
		},
		{
			Base: withResult(base(), colored), Kind: engine.KindFlood,
			Flood: &engine.FloodParams{Color: flood},
		},
		{
			Base: withResult(base(), clipped), Kind: engine.KindComposite,
			Composite: &engine.CompositeParams{
				In1: engine.InputSelector{Kind: engine.NamedResult, Name: colored},
				In2: engine.InputSelector{Kind: engine.NamedResult, Name: offsetted},
				Operator: blend.CompositeIn,
			},
		},
		{
			Base: base(), Kind: engine.KindMerge,
			Merge: &engine.MergeParams{Inputs: []engine.InputSelector{
				{Kind: engine.NamedResult, Name: clipped},
				{Kind: engine.SourceGraphic},
			}},
		},
	}
}

func withResult(b engine.PrimitiveBase, result string) engine.PrimitiveBase {
	b.Result = result
	return b
}

// String renders a fnCall back to a debug string, used when a fnCall is
// formatted with %v (as in the tokenizer test's failure message).
func (c fnCall) String() string {
	return fmt.Sprintf("%s(%s)", c.name, strings.Join(c.args, " "))
}
