package engine

import (
	"github.com/svgraster/filterengine/internal/affine"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

// FilterOutput is a primitive's produced surface together with the integer
// rectangle within it that the primitive actually wrote.
type FilterOutput struct {
	Surface *surface.Surface
	Bounds  geom.RectI
}

// FilterContext is the per-invocation state threaded through every
// primitive: the standard inputs, named results, and the coordinate
// transform primitives use to resolve their lengths.
type FilterContext struct {
	Source          *surface.Surface
	EffectsRegion   geom.RectD
	PrimitiveAffine affine.Matrix
	LastResult      *FilterOutput
	NamedResults    map[string]FilterOutput

	BackgroundImage  *surface.Surface
	FillPaintImage   *surface.Surface
	StrokePaintImage *surface.Surface
}

// NewFilterContext computes the primitive_affine transform and fails with
// InvalidParameter if it is non-invertible, per the spec's pipeline-start
// failure rule.
func NewFilterContext(spec FilterSpec, source *surface.Surface, bbox geom.RectD, userToDevice affine.Matrix) (*FilterContext, error) {
	var primAffine affine.Matrix
	if spec.PrimitiveUnits == ObjectBoundingBox {
		unitToBBox := affine.New(bbox.Width(), 0, 0, bbox.Height(), bbox.X1, bbox.Y1)
		primAffine = unitToBBox.Multiply(userToDevice)
	} else {
		primAffine = userToDevice
	}
	if !primAffine.IsInvertible(affine.DefaultEpsilon) {
		return nil, InvalidParameter{Msg: "primitive transform is not invertible"}
	}

	effects := affine.TransformRect(userToDevice, spec.FilterRegionUserSpace)
	clippedEffects, ok := geom.Intersect(effects, geom.RectD{X2: float64(source.Width()), Y2: float64(source.Height())})
	if !ok {
		clippedEffects = geom.RectD{}
	}

	return &FilterContext{
		Source:          source,
		EffectsRegion:   clippedEffects,
		PrimitiveAffine: primAffine,
		NamedResults:    make(map[string]FilterOutput),
	}, nil
}

// resolveRaw picks the raw surface and written-bounds for a selector, before
// any color-space conversion.
func (c *FilterContext) resolveRaw(sel InputSelector) (*surface.Surface, geom.RectI, error) {
	effectsI := geom.OutwardInt(c.EffectsRegion)

	switch sel.Kind {
	case Unspecified:
		if c.LastResult != nil {
			return c.LastResult.Surface, c.LastResult.Bounds, nil
		}
		return c.Source, c.Source.Bounds(), nil
	case SourceGraphic:
		return c.Source, effectsI, nil
	case SourceAlpha:
		return c.Source.ExtractAlpha(effectsI), effectsI, nil
	case BackgroundImage:
		if c.BackgroundImage == nil {
			return nil, geom.RectI{}, InvalidInput{What: "BackgroundImage"}
		}
		return c.BackgroundImage, c.BackgroundImage.Bounds(), nil
	case BackgroundAlpha:
		if c.BackgroundImage == nil {
			return nil, geom.RectI{}, InvalidInput{What: "BackgroundAlpha"}
		}
		return c.BackgroundImage.ExtractAlpha(effectsI), effectsI, nil
	case FillPaint:
		if c.FillPaintImage == nil {
			return nil, geom.RectI{}, InvalidInput{What: "FillPaint"}
		}
		return c.FillPaintImage, c.FillPaintImage.Bounds(), nil
	case StrokePaint:
		if c.StrokePaintImage == nil {
			return nil, geom.RectI{}, InvalidInput{What: "StrokePaint"}
		}
		return c.StrokePaintImage, c.StrokePaintImage.Bounds(), nil
	case NamedResult:
		if out, ok := c.NamedResults[sel.Name]; ok {
			return out.Surface, out.Bounds, nil
		}
		// Unknown name falls back to Unspecified, per the dataflow invariant.
		return c.resolveRaw(InputSelector{Kind: Unspecified})
	default:
		return c.resolveRaw(InputSelector{Kind: Unspecified})
	}
}

// GetInput resolves a selector to a surface in the requested color space.
func (c *FilterContext) GetInput(sel InputSelector, ci ColorInterpolation) (*surface.Surface, geom.RectI, error) {
	s, bounds, err := c.resolveRaw(sel)
	if err != nil {
		return nil, geom.RectI{}, err
	}
	switch ci {
	case LinearRGB:
		return s.ToLinearRGB(s.Bounds()), bounds, nil
	case SRGB:
		return s.ToSRGB(s.Bounds()), bounds, nil
	default: // Auto: leave as-is
		return s, bounds, nil
	}
}

// DevicePoint maps a primitive-unit-space point into device pixels.
func (c *FilterContext) DevicePoint(x, y float64) (float64, float64) {
	return c.PrimitiveAffine.Apply(x, y)
}

// UserPoint maps a device-pixel point back into primitive-unit space, the
// inverse of DevicePoint. Used by primitives whose formulas are defined in
// terms of primitive-unit-space coordinates, such as feTurbulence.
func (c *FilterContext) UserPoint(x, y float64) (float64, float64) {
	inv, ok := c.PrimitiveAffine.Invert()
	if !ok {
		return x, y
	}
	return inv.Apply(x, y)
}

// DeviceScale returns the primitive transform's absolute per-axis scale,
// used to convert primitive-unit-space lengths (widths, radii, offsets)
// into device pixels.
func (c *FilterContext) DeviceScale() (float64, float64) {
	return c.PrimitiveAffine.ScalingAbs()
}

// DeviceRect converts a primitive's optional x/y/width/height overrides
// (in primitive-unit space) into device-pixel pointers for a BoundsBuilder.
func (c *FilterContext) DeviceRect(x, y, w, h *float64) (dx, dy, dw, dh *float64) {
	sx, sy := c.DeviceScale()
	m := c.PrimitiveAffine
	if x != nil {
		v := *x*m.SX + m.TX
		dx = &v
	}
	if y != nil {
		v := *y*m.SY + m.TY
		dy = &v
	}
	if w != nil {
		v := *w * sx
		dw = &v
	}
	if h != nil {
		v := *h * sy
		dh = &v
	}
	return
}

// StoreResult records a primitive's output as the new last_result, and under
// its result name if one was declared.
func (c *FilterContext) StoreResult(resultName string, output FilterOutput) {
	c.LastResult = &output
	if resultName != "" {
		c.NamedResults[resultName] = output
	}
}

// IntoOutput returns the final surface in sRGB, or an empty alpha-only
// surface of the source's dimensions if no primitive ran successfully.
func (c *FilterContext) IntoOutput() *surface.Surface {
	if c.LastResult == nil {
		return surface.Empty(c.Source.Width(), c.Source.Height(), color.AlphaOnly)
	}
	return c.LastResult.Surface.ToSRGB(c.LastResult.Surface.Bounds())
}
