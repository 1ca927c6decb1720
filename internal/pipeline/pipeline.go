// Package pipeline runs a resolved FilterSpec's primitives in order against
// a FilterContext, producing the final composited surface.
package pipeline

import (
	"log"

	"github.com/svgraster/filterengine/internal/affine"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/primitive"
	"github.com/svgraster/filterengine/internal/surface"
)

// Inputs bundles the external surfaces a pipeline run may draw on beyond the
// primary source; any of these may be nil, which fails that standard input
// with InvalidInput if a primitive requests it.
type Inputs struct {
	BackgroundImage  *surface.Surface
	FillPaintImage   *surface.Surface
	StrokePaintImage *surface.Surface
}

// Run constructs a FilterContext for spec against source and bbox, executes
// every primitive in document order, and returns the final sRGB surface.
// A non-invertible primitive transform at construction is a total,
// non-fatal failure: an empty alpha-only surface of source's dimensions.
func Run(spec engine.FilterSpec, source *surface.Surface, bbox geom.RectD, userToDevice affine.Matrix, extra Inputs) *surface.Surface {
	ctx, err := engine.NewFilterContext(spec, source, bbox, userToDevice)
	if err != nil {
		log.Printf("filterengine: %v; rendering empty filter result", err)
		return surface.Empty(source.Width(), source.Height(), color.AlphaOnly)
	}
	ctx.BackgroundImage = extra.BackgroundImage
	ctx.FillPaintImage = extra.FillPaintImage
	ctx.StrokePaintImage = extra.StrokePaintImage

	for i, rp := range spec.Primitives {
		out, err := primitive.Dispatch(ctx, rp)
		if err != nil {
			if engine.IsFatal(err) {
				log.Printf("filterengine: primitive %d failed fatally: %v", i, err)
				return surface.Empty(source.Width(), source.Height(), color.AlphaOnly)
			}
			log.Printf("filterengine: primitive %d skipped: %v", i, err)
			continue
		}
		ctx.StoreResult(rp.Base.Result, out)
	}

	return ctx.IntoOutput()
}
