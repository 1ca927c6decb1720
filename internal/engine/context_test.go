package engine

import (
	"testing"

	"github.com/svgraster/filterengine/internal/affine"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
)

func testSpec() FilterSpec {
	return FilterSpec{
		FilterRegionUserSpace: geom.RectD{X2: 10, Y2: 10},
		PrimitiveUnits:        UserSpaceOnUse,
	}
}

func TestNewFilterContextRejectsNonInvertible(t *testing.T) {
	src := surface.Empty(10, 10, color.SRGB)
	_, err := NewFilterContext(testSpec(), src, geom.RectD{X2: 10, Y2: 10}, affine.New(0, 0, 0, 0, 0, 0))
	if _, ok := err.(InvalidParameter); !ok {
		t.Fatalf("expected InvalidParameter for non-invertible transform, got %v", err)
	}
}

func TestNamedResultDataflow(t *testing.T) {
	src := surface.Empty(4, 4, color.SRGB)
	c, err := NewFilterContext(testSpec(), src, geom.RectD{X2: 4, Y2: 4}, affine.Identity())
	if err != nil {
		t.Fatal(err)
	}
	out := FilterOutput{Surface: surface.Empty(4, 4, color.SRGB), Bounds: geom.RectI{X2: 4, Y2: 4}}
	c.StoreResult("blurred", out)

	got, _, err := c.GetInput(InputSelector{Kind: NamedResult, Name: "blurred"}, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if got != out.Surface {
		t.Error("expected named result to resolve to the stored surface")
	}
}

func TestFallbackToLastResult(t *testing.T) {
	src := surface.Empty(4, 4, color.SRGB)
	c, err := NewFilterContext(testSpec(), src, geom.RectD{X2: 4, Y2: 4}, affine.Identity())
	if err != nil {
		t.Fatal(err)
	}
	last := FilterOutput{Surface: surface.Empty(4, 4, color.SRGB), Bounds: geom.RectI{X2: 4, Y2: 4}}
	c.StoreResult("", last)

	got, _, err := c.GetInput(InputSelector{Kind: Unspecified}, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if got != last.Surface {
		t.Error("unspecified input should fall back to last_result")
	}
}

func TestUnspecifiedFallsBackToSourceWhenNoResult(t *testing.T) {
	src := surface.Empty(4, 4, color.SRGB)
	c, err := NewFilterContext(testSpec(), src, geom.RectD{X2: 4, Y2: 4}, affine.Identity())
	if err != nil {
		t.Fatal(err)
	}
	got, _, err := c.GetInput(InputSelector{Kind: Unspecified}, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if got != src {
		t.Error("unspecified input with no prior result should fall back to SourceGraphic")
	}
}

func TestUnknownNamedResultFallsBackThroughUnspecified(t *testing.T) {
	src := surface.Empty(4, 4, color.SRGB)
	c, err := NewFilterContext(testSpec(), src, geom.RectD{X2: 4, Y2: 4}, affine.Identity())
	if err != nil {
		t.Fatal(err)
	}
	got, _, err := c.GetInput(InputSelector{Kind: NamedResult, Name: "nope"}, Auto)
	if err != nil {
		t.Fatal(err)
	}
	if got != src {
		t.Error("unknown named result should fall back to SourceGraphic via Unspecified")
	}
}

func TestIntoOutputEmptyWhenNothingRan(t *testing.T) {
	src := surface.Empty(4, 4, color.SRGB)
	c, err := NewFilterContext(testSpec(), src, geom.RectD{X2: 4, Y2: 4}, affine.Identity())
	if err != nil {
		t.Fatal(err)
	}
	out := c.IntoOutput()
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("expected fallback surface sized to source, got %dx%d", out.Width(), out.Height())
	}
	if out.Tag() != color.AlphaOnly {
		t.Errorf("expected alpha-only fallback surface, got tag %v", out.Tag())
	}
}

func TestIsFatalOnlyForCairoError(t *testing.T) {
	if IsFatal(InvalidParameter{Msg: "x"}) {
		t.Error("InvalidParameter should not be fatal")
	}
	if !IsFatal(CairoError{Status: "x"}) {
		t.Error("CairoError should be fatal")
	}
}
