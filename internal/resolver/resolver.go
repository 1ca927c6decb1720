package resolver

import (
	"strings"

	"github.com/svgraster/filterengine/internal/blend"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/kernel"
	"github.com/svgraster/filterengine/internal/surface"
	"github.com/svgraster/filterengine/node"
)

// ResolveReference looks up a "url(#id)" target and resolves it as a
// <filter> element, returning ReferenceToNonFilterElement if the id is
// missing or names something else, per the chain-level failure rule.
func ResolveReference(res node.Resolver, id string, bbox geom.RectD) (engine.FilterSpec, error) {
	n, ok := res.ResolveID(id)
	if !ok || n.LocalName() != "filter" {
		return engine.FilterSpec{}, engine.ReferenceToNonFilterElement{ID: id}
	}
	return Resolve(n, res, bbox)
}

// Resolve walks a <filter> element's attributes and primitive children into
// an immutable FilterSpec.
func Resolve(filterNode node.Node, res node.Resolver, bbox geom.RectD) (engine.FilterSpec, error) {
	region := engine.DefaultFilterRegion()
	region.FilterUnits = parseUnits(filterNode, "filterUnits", engine.ObjectBoundingBox)
	region.PrimitiveUnits = parseUnits(filterNode, "primitiveUnits", engine.UserSpaceOnUse)
	region.X = floatAttr(filterNode, "x", region.X)
	region.Y = floatAttr(filterNode, "y", region.Y)
	region.Width = floatAttr(filterNode, "width", region.Width)
	region.Height = floatAttr(filterNode, "height", region.Height)

	primitives := make([]engine.ResolvedPrimitive, 0, len(filterNode.Children()))
	for _, child := range filterNode.Children() {
		rp, ok := resolvePrimitive(child, res)
		if ok {
			primitives = append(primitives, rp)
		}
	}

	return engine.FilterSpec{
		Name:                  stringAttr(filterNode, "id", ""),
		FilterRegionUserSpace: filterRegionUserSpace(region, bbox),
		PrimitiveUnits:        region.PrimitiveUnits,
		Primitives:            primitives,
	}, nil
}

// DefaultFilterRegionUserSpace computes the default -10%/120% filter region
// against bbox, for callers synthesizing a FilterSpec without a <filter>
// element (the CSS filter-function shorthand path).
func DefaultFilterRegionUserSpace(bbox geom.RectD) geom.RectD {
	return filterRegionUserSpace(engine.DefaultFilterRegion(), bbox)
}

func filterRegionUserSpace(region engine.FilterRegion, bbox geom.RectD) geom.RectD {
	if region.FilterUnits == engine.ObjectBoundingBox {
		return geom.RectD{
			X1: bbox.X1 + region.X*bbox.Width(),
			Y1: bbox.Y1 + region.Y*bbox.Height(),
			X2: bbox.X1 + (region.X+region.Width)*bbox.Width(),
			Y2: bbox.Y1 + (region.Y+region.Height)*bbox.Height(),
		}
	}
	return geom.RectD{X1: region.X, Y1: region.Y, X2: region.X + region.Width, Y2: region.Y + region.Height}
}

func parseUnits(n node.Node, attr string, def engine.Units) engine.Units {
	raw, ok := n.Attr(attr)
	if !ok {
		return def
	}
	switch strings.TrimSpace(raw) {
	case "userSpaceOnUse":
		return engine.UserSpaceOnUse
	case "objectBoundingBox":
		return engine.ObjectBoundingBox
	default:
		return def
	}
}

func parseColorInterpolation(n node.Node) engine.ColorInterpolation {
	raw, ok := n.Style("color-interpolation-filters")
	if !ok {
		return engine.Auto
	}
	switch strings.TrimSpace(raw) {
	case "sRGB":
		return engine.SRGB
	case "linearRGB":
		return engine.LinearRGB
	default:
		return engine.Auto
	}
}

func parseBase(n node.Node) engine.PrimitiveBase {
	return engine.PrimitiveBase{
		X:                  optFloatAttr(n, "x"),
		Y:                  optFloatAttr(n, "y"),
		Width:              optFloatAttr(n, "width"),
		Height:             optFloatAttr(n, "height"),
		Result:             stringAttr(n, "result", ""),
		ColorInterpolation: parseColorInterpolation(n),
	}
}

// resolvePrimitive dispatches by element name. An unrecognized element name
// is simply skipped: it is not a filter primitive.
func resolvePrimitive(n node.Node, res node.Resolver) (engine.ResolvedPrimitive, bool) {
	base := parseBase(n)
	switch n.LocalName() {
	case "feBlend":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindBlend, Blend: parseBlend(n)}, true
	case "feColorMatrix":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindColorMatrix, Matrix: parseColorMatrix(n)}, true
	case "feComponentTransfer":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindComponentTransfer, Transfer: parseComponentTransfer(n)}, true
	case "feComposite":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindComposite, Composite: parseComposite(n)}, true
	case "feConvolveMatrix":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindConvolveMatrix, Convolve: parseConvolveMatrix(n)}, true
	case "feDiffuseLighting":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindDiffuseLighting, Lighting: parseLighting(n)}, true
	case "feSpecularLighting":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindSpecularLighting, Lighting: parseLighting(n)}, true
	case "feDisplacementMap":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindDisplacementMap, Displacement: parseDisplacementMap(n)}, true
	case "feFlood":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindFlood, Flood: parseFlood(n)}, true
	case "feGaussianBlur":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindGaussianBlur, Gaussian: parseGaussianBlur(n)}, true
	case "feImage":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindImage, Image: parseImage(n, res)}, true
	case "feMerge":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindMerge, Merge: parseMerge(n)}, true
	case "feMorphology":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindMorphology, Morphology: parseMorphology(n)}, true
	case "feOffset":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindOffset, Offset: parseOffset(n)}, true
	case "feTile":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindTile, Tile: &engine.TileParams{In1: parseSelector(n, "in")}}, true
	case "feTurbulence":
		return engine.ResolvedPrimitive{Base: base, Kind: engine.KindTurbulence, Turbulence: parseTurbulence(n)}, true
	default:
		return engine.ResolvedPrimitive{}, false
	}
}

func parseBlend(n node.Node) *engine.BlendParams {
	modes := map[string]blend.Mode{
		"normal": blend.Normal, "multiply": blend.Multiply, "screen": blend.Screen,
		"darken": blend.Darken, "lighten": blend.Lighten, "overlay": blend.Overlay,
		"color-dodge": blend.ColorDodge, "color-burn": blend.ColorBurn,
		"hard-light": blend.HardLight, "soft-light": blend.SoftLight,
		"difference": blend.Difference, "exclusion": blend.Exclusion,
		"hue": blend.Hue, "saturation": blend.Saturation,
		"color": blend.Color, "luminosity": blend.Luminosity,
	}
	mode := blend.Normal
	if raw, ok := n.Attr("mode"); ok {
		if m, found := modes[strings.TrimSpace(raw)]; found {
			mode = m
		}
	}
	return &engine.BlendParams{In1: parseSelector(n, "in"), In2: parseSelector(n, "in2"), Mode: mode}
}

func parseColorMatrix(n node.Node) *engine.ColorMatrixParams {
	kind := engine.MatrixRaw
	switch stringAttr(n, "type", "matrix") {
	case "saturate":
		kind = engine.MatrixSaturate
	case "hueRotate":
		kind = engine.MatrixHueRotate
	case "luminanceToAlpha":
		kind = engine.MatrixLuminanceToAlpha
	}
	return &engine.ColorMatrixParams{In1: parseSelector(n, "in"), Type: kind, Values: numberList(n, "values")}
}

func parseTransferFunc(children []node.Node, tag string) engine.TransferFunction {
	f := engine.DefaultTransferFunction()
	for _, c := range children {
		if c.LocalName() != tag {
			continue
		}
		table := numberList(c, "tableValues")
		if len(table) > kernel.MaxComponentTransferTable {
			table = table[:kernel.MaxComponentTransferTable]
		}
		f = engine.TransferFunction{
			Type:        transferType(stringAttr(c, "type", "identity")),
			TableValues: table,
			Slope:       floatAttr(c, "slope", 1),
			Intercept:   floatAttr(c, "intercept", 0),
			Amplitude:   floatAttr(c, "amplitude", 1),
			Exponent:    floatAttr(c, "exponent", 1),
			Offset:      floatAttr(c, "offset", 0),
		}
	}
	return f
}

func transferType(raw string) engine.TransferType {
	switch raw {
	case "table":
		return engine.TransferTable
	case "discrete":
		return engine.TransferDiscrete
	case "linear":
		return engine.TransferLinear
	case "gamma":
		return engine.TransferGamma
	default:
		return engine.TransferIdentity
	}
}

func parseComponentTransfer(n node.Node) *engine.ComponentTransferParams {
	children := n.Children()
	return &engine.ComponentTransferParams{
		In1:   parseSelector(n, "in"),
		FuncR: parseTransferFunc(children, "feFuncR"),
		FuncG: parseTransferFunc(children, "feFuncG"),
		FuncB: parseTransferFunc(children, "feFuncB"),
		FuncA: parseTransferFunc(children, "feFuncA"),
	}
}

func parseComposite(n node.Node) *engine.CompositeParams {
	ops := map[string]blend.CompositeOp{
		"over": blend.CompositeOver, "in": blend.CompositeIn, "out": blend.CompositeOut,
		"atop": blend.CompositeAtop, "xor": blend.CompositeXor, "arithmetic": blend.CompositeArithmetic,
	}
	op := blend.CompositeOver
	if raw, ok := n.Attr("operator"); ok {
		if o, found := ops[strings.TrimSpace(raw)]; found {
			op = o
		}
	}
	return &engine.CompositeParams{
		In1: parseSelector(n, "in"), In2: parseSelector(n, "in2"), Operator: op,
		K: blend.Arithmetic{
			K1: floatAttr(n, "k1", 0), K2: floatAttr(n, "k2", 0),
			K3: floatAttr(n, "k3", 0), K4: floatAttr(n, "k4", 0),
		},
	}
}

func parseEdgeMode(n node.Node, def surface.EdgeMode) surface.EdgeMode {
	raw, ok := n.Attr("edgeMode")
	if !ok {
		return def
	}
	switch strings.TrimSpace(raw) {
	case "duplicate":
		return surface.EdgeDuplicate
	case "wrap":
		return surface.EdgeWrap
	case "none":
		return surface.EdgeNone
	default:
		return def
	}
}

func parseKernelUnitLength(n node.Node) *[2]float64 {
	if _, ok := n.Attr("kernelUnitLength"); !ok {
		return nil
	}
	x, y := numberPair(n, "kernelUnitLength", 0)
	if x <= 0 || y <= 0 {
		return nil
	}
	return &[2]float64{x, y}
}

func parseConvolveMatrix(n node.Node) *engine.ConvolveMatrixParams {
	orderX, orderY := numberPair(n, "order", 3)
	ox, oy := int(orderX), int(orderY)
	if ox < 1 {
		ox = 1
	}
	if oy < 1 {
		oy = 1
	}
	if ox > kernel.MaxConvolveAxis {
		ox = kernel.MaxConvolveAxis
	}
	if oy > kernel.MaxConvolveAxis {
		oy = kernel.MaxConvolveAxis
	}
	kernelValues := numberList(n, "kernelMatrix")
	divisor := floatAttr(n, "divisor", sumOrOne(kernelValues))
	if divisor == 0 {
		divisor = 1
	}
	targetX := intAttr(n, "targetX", ox/2)
	targetY := intAttr(n, "targetY", oy/2)
	return &engine.ConvolveMatrixParams{
		In1: parseSelector(n, "in"), OrderX: ox, OrderY: oy, KernelMatrix: kernelValues,
		Divisor: divisor, Bias: floatAttr(n, "bias", 0),
		TargetX: targetX, TargetY: targetY,
		EdgeMode:         parseEdgeMode(n, surface.EdgeDuplicate),
		KernelUnitLength: parseKernelUnitLength(n),
		PreserveAlpha:    boolAttr(n, "preserveAlpha", false),
	}
}

func sumOrOne(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if sum == 0 {
		return 1
	}
	return sum
}

func parseDisplacementMap(n node.Node) *engine.DisplacementMapParams {
	return &engine.DisplacementMapParams{
		In1: parseSelector(n, "in"), In2: parseSelector(n, "in2"),
		Scale:     floatAttr(n, "scale", 0),
		XChannel:  parseChannel(stringAttr(n, "xChannelSelector", "A")),
		YChannel:  parseChannel(stringAttr(n, "yChannelSelector", "A")),
	}
}

func parseChannel(raw string) engine.Channel {
	switch raw {
	case "R":
		return engine.ChannelR
	case "G":
		return engine.ChannelG
	case "B":
		return engine.ChannelB
	default:
		return engine.ChannelA
	}
}

func parseFlood(n node.Node) *engine.FloodParams {
	return &engine.FloodParams{Color: floodColorAttr(n, "flood-color", "flood-opacity")}
}

func parseGaussianBlur(n node.Node) *engine.GaussianBlurParams {
	sx, sy := numberPair(n, "stdDeviation", 0)
	return &engine.GaussianBlurParams{
		In1: parseSelector(n, "in"), StdDeviationX: sx, StdDeviationY: sy,
		EdgeMode: parseEdgeMode(n, surface.EdgeNone),
	}
}

func parseImage(n node.Node, res node.Resolver) *engine.ImageParams {
	href := stringAttr(n, "href", stringAttr(n, "xlink:href", ""))
	var ref node.Node
	if strings.HasPrefix(href, "#") && res != nil {
		if target, ok := res.ResolveID(href[1:]); ok {
			ref = target
		}
	}
	return &engine.ImageParams{
		Href: href, ReferencedNode: ref,
		PreserveAspectRatio: stringAttr(n, "preserveAspectRatio", "xMidYMid meet"),
	}
}

func parseMerge(n node.Node) *engine.MergeParams {
	var inputs []engine.InputSelector
	for _, c := range n.Children() {
		if c.LocalName() == "feMergeNode" {
			inputs = append(inputs, parseSelector(c, "in"))
		}
	}
	return &engine.MergeParams{Inputs: inputs}
}

func parseMorphology(n node.Node) *engine.MorphologyParams {
	op := engine.Erode
	if stringAttr(n, "operator", "erode") == "dilate" {
		op = engine.Dilate
	}
	rx, ry := numberPair(n, "radius", 0)
	return &engine.MorphologyParams{In1: parseSelector(n, "in"), Operator: op, RadiusX: rx, RadiusY: ry}
}

func parseOffset(n node.Node) *engine.OffsetParams {
	return &engine.OffsetParams{In1: parseSelector(n, "in"), Dx: floatAttr(n, "dx", 0), Dy: floatAttr(n, "dy", 0)}
}

func parseTurbulence(n node.Node) *engine.TurbulenceParams {
	fx, fy := numberPair(n, "baseFrequency", 0)
	kind := engine.TurbulenceFn
	if stringAttr(n, "type", "turbulence") == "fractalNoise" {
		kind = engine.FractalNoise
	}
	return &engine.TurbulenceParams{
		BaseFreqX: fx, BaseFreqY: fy,
		NumOctaves:  intAttr(n, "numOctaves", 1),
		Seed:        int64(floatAttr(n, "seed", 0)),
		StitchTiles: stringAttr(n, "stitchTiles", "noStitch") == "stitch",
		Type:        kind,
	}
}

func parseLighting(n node.Node) *engine.LightingParams {
	p := &engine.LightingParams{
		In1:              parseSelector(n, "in"),
		SurfaceScale:     floatAttr(n, "surfaceScale", 1),
		KernelUnitLength: parseKernelUnitLength(n),
		LightingColor:    floodColorAttr(n, "lighting-color", ""),
		DiffuseConstant:  floatAttr(n, "diffuseConstant", 1),
		SpecularConstant: floatAttr(n, "specularConstant", 1),
		SpecularExponent: floatAttr(n, "specularExponent", 1),
	}
	for _, c := range n.Children() {
		switch c.LocalName() {
		case "feDistantLight":
			p.Light.Distant = &engine.DistantLight{
				Azimuth: floatAttr(c, "azimuth", 0), Elevation: floatAttr(c, "elevation", 0),
			}
		case "fePointLight":
			p.Light.Point = &engine.PointLight{
				X: floatAttr(c, "x", 0), Y: floatAttr(c, "y", 0), Z: floatAttr(c, "z", 0),
			}
		case "feSpotLight":
			spot := &engine.SpotLight{
				X: floatAttr(c, "x", 0), Y: floatAttr(c, "y", 0), Z: floatAttr(c, "z", 0),
				PointsAtX: floatAttr(c, "pointsAtX", 0), PointsAtY: floatAttr(c, "pointsAtY", 0), PointsAtZ: floatAttr(c, "pointsAtZ", 0),
				SpecularExponent: floatAttr(c, "specularExponent", 1),
			}
			if v := optFloatAttr(c, "limitingConeAngle"); v != nil {
				spot.LimitingConeAngle = v
			}
			p.Light.Spot = spot
		}
	}
	return p
}
