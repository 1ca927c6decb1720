package primitive

import (
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/surface"
)

// Rasterizable is an optional capability a referenced node's implementation
// can satisfy so feImage can paint it; nodes that don't implement it (plain
// markup references with no pre-rendered raster) make the primitive fail
// with InvalidInput.
type Rasterizable interface {
	Raster() (*surface.Surface, error)
}

// RenderImage paints a pre-rasterized referenced node or external image into
// the primitive's subregion: the image is stretched to fill the unclipped
// subregion and painted only inside the clipped one. preserveAspectRatio is
// not consulted, so the image's aspect ratio is not kept.
func RenderImage(ctx *engine.FilterContext, base engine.PrimitiveBase, p *engine.ImageParams) (engine.FilterOutput, error) {
	bb := newBounds(ctx, base)
	unclipped, clipped := bb.Compute(ctx)

	if p.ReferencedNode == nil {
		return engine.FilterOutput{}, engine.InvalidInput{What: "feImage: no referenced node or href resolver available"}
	}
	r, ok := p.ReferencedNode.(Rasterizable)
	if !ok {
		return engine.FilterOutput{}, engine.InvalidInput{What: "feImage: referenced node cannot be rasterized"}
	}
	img, err := r.Raster()
	if err != nil {
		return engine.FilterOutput{}, engine.InvalidInput{What: "feImage: " + err.Error()}
	}

	base2 := surface.Empty(ctx.Source.Width(), ctx.Source.Height(), chooseTag(base.ColorInterpolation))
	placement := unclipped
	out := base2.PaintImage(clipped, img, &placement, surface.InterpolationBilinear)
	return engine.FilterOutput{Surface: out, Bounds: clipped}, nil
}
