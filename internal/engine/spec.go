package engine

import (
	"github.com/svgraster/filterengine/internal/blend"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
	"github.com/svgraster/filterengine/node"
)

// PrimitiveKind discriminates the closed set of filter primitives. Adding a
// new primitive means adding a case here and in the pipeline's dispatch switch.
type PrimitiveKind int

const (
	KindBlend PrimitiveKind = iota
	KindColorMatrix
	KindComponentTransfer
	KindComposite
	KindConvolveMatrix
	KindDiffuseLighting
	KindDisplacementMap
	KindFlood
	KindGaussianBlur
	KindImage
	KindMerge
	KindMorphology
	KindOffset
	KindSpecularLighting
	KindTile
	KindTurbulence
)

// PrimitiveBase is the set of attributes common to every primitive.
type PrimitiveBase struct {
	X, Y, Width, Height *float64 // nil means "not specified"
	Result              string
	ColorInterpolation  ColorInterpolation
}

// ResolvedPrimitive is one fully-parsed <feXxx> element: a common base plus
// a kind tag selecting which Params field is meaningful.
type ResolvedPrimitive struct {
	Base   PrimitiveBase
	Kind   PrimitiveKind
	Blend  *BlendParams
	Matrix *ColorMatrixParams
	Transfer *ComponentTransferParams
	Composite *CompositeParams
	Convolve *ConvolveMatrixParams
	Lighting *LightingParams
	Displacement *DisplacementMapParams
	Flood  *FloodParams
	Gaussian *GaussianBlurParams
	Image  *ImageParams
	Merge  *MergeParams
	Morphology *MorphologyParams
	Offset *OffsetParams
	Tile   *TileParams
	Turbulence *TurbulenceParams
}

type BlendParams struct {
	In1, In2 InputSelector
	Mode     blend.Mode
}

type ColorMatrixType int

const (
	MatrixRaw ColorMatrixType = iota
	MatrixSaturate
	MatrixHueRotate
	MatrixLuminanceToAlpha
)

type ColorMatrixParams struct {
	In1    InputSelector
	Type   ColorMatrixType
	Values []float64
}

type TransferType int

const (
	TransferIdentity TransferType = iota
	TransferTable
	TransferDiscrete
	TransferLinear
	TransferGamma
)

type TransferFunction struct {
	Type                             TransferType
	TableValues                      []float64
	Slope, Intercept, Amplitude, Exponent, Offset float64
}

// DefaultTransferFunction is the identity function every feFunc* channel
// defaults to when no corresponding child element is present.
func DefaultTransferFunction() TransferFunction {
	return TransferFunction{Type: TransferIdentity, Slope: 1, Amplitude: 1, Exponent: 1}
}

type ComponentTransferParams struct {
	In1                  InputSelector
	FuncR, FuncG, FuncB, FuncA TransferFunction
}

type CompositeParams struct {
	In1, In2 InputSelector
	Operator blend.CompositeOp
	K        blend.Arithmetic
}

type ConvolveMatrixParams struct {
	In1              InputSelector
	OrderX, OrderY   int
	KernelMatrix     []float64
	Divisor, Bias    float64
	TargetX, TargetY int
	EdgeMode         surface.EdgeMode
	KernelUnitLength *[2]float64
	PreserveAlpha    bool
}

type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
)

type DisplacementMapParams struct {
	In1, In2           InputSelector
	Scale              float64
	XChannel, YChannel Channel
}

type FloodParams struct {
	Color color.Pixel // premultiplied flood-color, with flood-opacity folded into alpha
}

type GaussianBlurParams struct {
	In1                       InputSelector
	StdDeviationX, StdDeviationY float64
	EdgeMode                  surface.EdgeMode
}

type ImageParams struct {
	Href                string
	ReferencedNode      node.Node
	PreserveAspectRatio string
}

type MergeParams struct {
	Inputs []InputSelector
}

type MorphOp int

const (
	Erode MorphOp = iota
	Dilate
)

type MorphologyParams struct {
	In1              InputSelector
	Operator         MorphOp
	RadiusX, RadiusY float64
}

type OffsetParams struct {
	In1    InputSelector
	Dx, Dy float64
}

type TileParams struct {
	In1 InputSelector
}

type TurbulenceType int

const (
	FractalNoise TurbulenceType = iota
	TurbulenceFn
)

type TurbulenceParams struct {
	BaseFreqX, BaseFreqY float64
	NumOctaves           int
	Seed                 int64
	StitchTiles          bool
	Type                 TurbulenceType
}

// LightSource is the closed sum of feDistantLight / fePointLight / feSpotLight.
type LightSource struct {
	Distant *DistantLight
	Point   *PointLight
	Spot    *SpotLight
}

type DistantLight struct{ Azimuth, Elevation float64 }
type PointLight struct{ X, Y, Z float64 }
type SpotLight struct {
	X, Y, Z                         float64
	PointsAtX, PointsAtY, PointsAtZ float64
	SpecularExponent                float64
	LimitingConeAngle               *float64
}

type LightingParams struct {
	In1              InputSelector
	SurfaceScale     float64
	KernelUnitLength *[2]float64
	LightingColor    color.Pixel
	Light            LightSource
	DiffuseConstant  float64
	SpecularConstant float64
	SpecularExponent float64
}

// FilterSpec is the immutable, fully-resolved result of walking one <filter> element.
type FilterSpec struct {
	Name                  string
	FilterRegionUserSpace geom.RectD
	PrimitiveUnits        Units
	Primitives            []ResolvedPrimitive
}
