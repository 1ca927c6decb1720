package engine

import "github.com/svgraster/filterengine/internal/geom"

// BoundsBuilder accumulates a primitive's working rectangle: the union of
// its inputs' bounds, narrowed per-dimension by any explicit x/y/width/height
// the primitive declared (already resolved to device pixels by the caller),
// then clipped to the filter's effects region.
type BoundsBuilder struct {
	x, y, w, h *float64
	hasUnion   bool
	union      geom.RectD

	computed  bool
	unclipped geom.RectD
	clipped   geom.RectI
}

// NewBoundsBuilder starts an accumulator for a primitive with optional
// explicit x/y/width/height overrides, already resolved to device space.
func NewBoundsBuilder(x, y, w, h *float64) *BoundsBuilder {
	return &BoundsBuilder{x: x, y: y, w: w, h: h}
}

// AddInput folds one input's written bounds into the running union.
func (b *BoundsBuilder) AddInput(rect geom.RectD) {
	if !b.hasUnion {
		b.union = rect
		b.hasUnion = true
		return
	}
	b.union = geom.Union(b.union, rect)
}

// Compute returns the unclipped rectangle (union overridden per-dimension by
// explicit attributes) and that rectangle clipped to ctx's effects region
// and rounded outward to integer pixel bounds. The result is memoized: a
// primitive's render function and finish() both call Compute on the same
// BoundsBuilder, and b's inputs never change between those calls.
func (b *BoundsBuilder) Compute(ctx *FilterContext) (unclipped geom.RectD, clipped geom.RectI) {
	if b.computed {
		return b.unclipped, b.clipped
	}

	unclipped = b.union
	if !b.hasUnion {
		// No-input primitives (feFlood, feTurbulence, feImage) default their
		// subregion to the whole filter region, not an empty rect.
		unclipped = ctx.EffectsRegion
	}
	if b.x != nil {
		unclipped.X1 = *b.x
	}
	if b.y != nil {
		unclipped.Y1 = *b.y
	}
	if b.w != nil {
		unclipped.X2 = unclipped.X1 + *b.w
	}
	if b.h != nil {
		unclipped.Y2 = unclipped.Y1 + *b.h
	}
	unclipped.Normalize()

	region, ok := geom.Intersect(unclipped, ctx.EffectsRegion)
	if !ok {
		region = geom.RectD{}
	}
	clipped = geom.OutwardInt(region)

	b.computed, b.unclipped, b.clipped = true, unclipped, clipped
	return unclipped, clipped
}
