package pipeline

import (
	"testing"

	"github.com/svgraster/filterengine/internal/affine"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

func TestRunNonInvertibleTransformYieldsEmptyAlpha(t *testing.T) {
	src := surface.Empty(4, 4, color.SRGB)
	spec := engine.FilterSpec{FilterRegionUserSpace: geom.RectD{X2: 4, Y2: 4}}
	out := Run(spec, src, geom.RectD{X2: 4, Y2: 4}, affine.New(0, 0, 0, 0, 0, 0), Inputs{})
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("expected empty fallback sized to source, got %dx%d", out.Width(), out.Height())
	}
	if out.Tag() != color.AlphaOnly {
		t.Errorf("expected alpha-only fallback, got tag %v", out.Tag())
	}
}

func TestRunSkipsFailingPrimitiveAndKeepsLastResult(t *testing.T) {
	src := surface.Empty(2, 2, color.SRGB)
	spec := engine.FilterSpec{
		FilterRegionUserSpace: geom.RectD{X2: 2, Y2: 2},
		Primitives: []engine.ResolvedPrimitive{
			{
				Base: engine.PrimitiveBase{Result: "offsetResult"}, Kind: engine.KindOffset,
				Offset: &engine.OffsetParams{In1: engine.InputSelector{Kind: engine.SourceGraphic}, Dx: 0, Dy: 0},
			},
			{
				Base: engine.PrimitiveBase{}, Kind: engine.KindGaussianBlur,
				Gaussian: &engine.GaussianBlurParams{In1: engine.InputSelector{Kind: engine.Unspecified}, StdDeviationX: -1},
			},
		},
	}
	out := Run(spec, src, geom.RectD{X2: 2, Y2: 2}, affine.Identity(), Inputs{})
	if out == nil {
		t.Fatal("expected a surface even when a later primitive is skipped")
	}
	if out.Width() != 2 || out.Height() != 2 {
		t.Errorf("expected canvas-sized output, got %dx%d", out.Width(), out.Height())
	}
}

func TestRunEmptySpecReturnsEmptyAlpha(t *testing.T) {
	src := surface.Empty(3, 3, color.SRGB)
	spec := engine.FilterSpec{FilterRegionUserSpace: geom.RectD{X2: 3, Y2: 3}}
	out := Run(spec, src, geom.RectD{X2: 3, Y2: 3}, affine.Identity(), Inputs{})
	if out.Tag() != color.AlphaOnly {
		t.Errorf("a filter with no primitives should produce alpha-only empty output, got tag %v", out.Tag())
	}
}
