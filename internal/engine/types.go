// Package engine holds the filter pipeline's core data model: resolved
// primitives, the per-invocation context they read and write, and the
// bounds accumulator that clips each primitive's output to the filter region.
package engine

// Units selects the coordinate space a length is resolved against.
type Units int

const (
	ObjectBoundingBox Units = iota
	UserSpaceOnUse
)

// ColorInterpolation selects the color space a primitive operates in.
type ColorInterpolation int

const (
	Auto ColorInterpolation = iota
	SRGB
	LinearRGB
)

// InputKind discriminates an InputSelector's standard inputs from a named reference.
type InputKind int

const (
	Unspecified InputKind = iota
	SourceGraphic
	SourceAlpha
	BackgroundImage
	BackgroundAlpha
	FillPaint
	StrokePaint
	NamedResult
)

// InputSelector identifies where a primitive reads one of its inputs from.
type InputSelector struct {
	Kind InputKind
	Name string // set only when Kind == NamedResult
}

// FilterRegion is the rectangle, in the filter element's declared unit
// system, within which primitives may write.
type FilterRegion struct {
	X, Y, Width, Height        float64
	FilterUnits, PrimitiveUnits Units
}

// DefaultFilterRegion returns the spec default: x=-10%, y=-10%, 120%x120%,
// objectBoundingBox filterUnits, userSpaceOnUse primitiveUnits.
func DefaultFilterRegion() FilterRegion {
	return FilterRegion{
		X: -0.10, Y: -0.10, Width: 1.20, Height: 1.20,
		FilterUnits:    ObjectBoundingBox,
		PrimitiveUnits: UserSpaceOnUse,
	}
}
