package engine

import (
	"testing"

	"github.com/svgraster/filterengine/internal/affine"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

func TestBoundsBuilderClipsToEffectsRegion(t *testing.T) {
	bb := NewBoundsBuilder(nil, nil, nil, nil)
	bb.AddInput(geom.RectD{X1: -50, Y1: -50, X2: 500, Y2: 500})

	src := surface.Empty(10, 10, color.SRGB)
	ctx := &FilterContext{Source: src, EffectsRegion: geom.RectD{X2: 10, Y2: 10}}

	_, clipped := bb.Compute(ctx)
	if clipped.X1 < 0 || clipped.Y1 < 0 || clipped.X2 > 10 || clipped.Y2 > 10 {
		t.Errorf("clipped bounds should stay within the effects region, got %+v", clipped)
	}
}

func TestDeviceRectHonorsLoneXOverride(t *testing.T) {
	src := surface.Empty(20, 20, color.SRGB)
	spec := FilterSpec{FilterRegionUserSpace: geom.RectD{X2: 20, Y2: 20}, PrimitiveUnits: UserSpaceOnUse}
	ctx, err := NewFilterContext(spec, src, geom.RectD{X2: 20, Y2: 20}, affine.New(2, 0, 0, 2, 0, 0))
	if err != nil {
		t.Fatal(err)
	}

	x := 3.0
	dx, dy, _, _ := ctx.DeviceRect(&x, nil, nil, nil)
	if dx == nil || *dx != 6 {
		t.Fatalf("a lone x override should still convert to device space, got %v", dx)
	}
	if dy != nil {
		t.Errorf("y should stay unset when no y override was given, got %v", dy)
	}
}

func TestBoundsBuilderHonorsExplicitOverrides(t *testing.T) {
	x, y, w, h := 2.0, 3.0, 4.0, 5.0
	bb := NewBoundsBuilder(&x, &y, &w, &h)
	bb.AddInput(geom.RectD{X2: 1, Y2: 1})

	src := surface.Empty(20, 20, color.SRGB)
	ctx := &FilterContext{Source: src, EffectsRegion: geom.RectD{X2: 20, Y2: 20}}

	unclipped, _ := bb.Compute(ctx)
	want := geom.RectD{X1: 2, Y1: 3, X2: 6, Y2: 8}
	if unclipped != want {
		t.Errorf("explicit x/y/width/height should override the input union, got %+v, want %+v", unclipped, want)
	}
}
