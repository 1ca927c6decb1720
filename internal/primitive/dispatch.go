package primitive

import "github.com/svgraster/filterengine/internal/engine"

// Dispatch runs one resolved primitive against ctx and returns its output.
// This is the single point where PrimitiveKind selects an implementation;
// adding a primitive kind means adding a case here.
func Dispatch(ctx *engine.FilterContext, rp engine.ResolvedPrimitive) (engine.FilterOutput, error) {
	switch rp.Kind {
	case engine.KindBlend:
		return RenderBlend(ctx, rp.Base, rp.Blend)
	case engine.KindColorMatrix:
		return RenderColorMatrix(ctx, rp.Base, rp.Matrix)
	case engine.KindComponentTransfer:
		return RenderComponentTransfer(ctx, rp.Base, rp.Transfer)
	case engine.KindComposite:
		return RenderComposite(ctx, rp.Base, rp.Composite)
	case engine.KindConvolveMatrix:
		return RenderConvolveMatrix(ctx, rp.Base, rp.Convolve)
	case engine.KindDiffuseLighting:
		return RenderDiffuseLighting(ctx, rp.Base, rp.Lighting)
	case engine.KindDisplacementMap:
		return RenderDisplacementMap(ctx, rp.Base, rp.Displacement)
	case engine.KindFlood:
		return RenderFlood(ctx, rp.Base, rp.Flood)
	case engine.KindGaussianBlur:
		return RenderGaussianBlur(ctx, rp.Base, rp.Gaussian)
	case engine.KindImage:
		return RenderImage(ctx, rp.Base, rp.Image)
	case engine.KindMerge:
		return RenderMerge(ctx, rp.Base, rp.Merge)
	case engine.KindMorphology:
		return RenderMorphology(ctx, rp.Base, rp.Morphology)
	case engine.KindOffset:
		return RenderOffset(ctx, rp.Base, rp.Offset)
	case engine.KindSpecularLighting:
		return RenderSpecularLighting(ctx, rp.Base, rp.Lighting)
	case engine.KindTile:
		return RenderTile(ctx, rp.Base, rp.Tile)
	case engine.KindTurbulence:
		return RenderTurbulence(ctx, rp.Base, rp.Turbulence)
	default:
		return engine.FilterOutput{}, engine.InvalidParameter{Msg: "unknown primitive kind"}
	}
}
