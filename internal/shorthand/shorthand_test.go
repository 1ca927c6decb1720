package shorthand

import (
	"testing"

	"github.com/svgraster/filterengine/internal/affine"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/primitive"
	"github.com/svgraster/filterengine/internal/surface"
)

func TestExpandNoneYieldsNothing(t *testing.T) {
	if got := Expand("none"); got != nil {
		t.Errorf("none should expand to no primitives, got %v", got)
	}
	if got := Expand(""); got != nil {
		t.Errorf("empty value should expand to no primitives, got %v", got)
	}
}

func TestExpandSaturate(t *testing.T) {
	prims := Expand("saturate(0.75)")
	if len(prims) != 1 {
		t.Fatalf("expected one primitive, got %d", len(prims))
	}
	p := prims[0]
	if p.Kind != engine.KindColorMatrix || p.Matrix.Type != engine.MatrixSaturate {
		t.Fatalf("expected a saturate color matrix, got %+v", p)
	}
	if len(p.Matrix.Values) != 1 || p.Matrix.Values[0] != 0.75 {
		t.Errorf("expected saturate value 0.75, got %v", p.Matrix.Values)
	}
}

func TestExpandHueRotateAcceptsDegUnit(t *testing.T) {
	prims := Expand("hue-rotate(90deg)")
	if len(prims) != 1 {
		t.Fatalf("expected one primitive, got %d", len(prims))
	}
	p := prims[0]
	if p.Kind != engine.KindColorMatrix || p.Matrix.Type != engine.MatrixHueRotate {
		t.Fatalf("expected a hue-rotate color matrix, got %+v", p)
	}
	if len(p.Matrix.Values) != 1 || p.Matrix.Values[0] != 90 {
		t.Errorf("the deg suffix should be stripped, leaving the angle in degrees, got %v", p.Matrix.Values)
	}
}

func TestExpandOpacity(t *testing.T) {
	prims := Expand("opacity(0.75)")
	if len(prims) != 1 {
		t.Fatalf("expected one primitive, got %d", len(prims))
	}
	p := prims[0]
	if p.Kind != engine.KindComponentTransfer {
		t.Fatalf("expected a component transfer, got %+v", p)
	}
	if p.Transfer.FuncA.Type != engine.TransferTable || len(p.Transfer.FuncA.TableValues) != 2 {
		t.Fatalf("expected a 2-entry alpha table, got %+v", p.Transfer.FuncA)
	}
	if p.Transfer.FuncA.TableValues[1] != 0.75 {
		t.Errorf("expected alpha table to end at 0.75, got %v", p.Transfer.FuncA.TableValues)
	}
}

func TestExpandBlurMalformedArgFallsBackToZero(t *testing.T) {
	prims := Expand("blur(notanumber)")
	if len(prims) != 1 {
		t.Fatalf("expected one primitive, got %d", len(prims))
	}
	g := prims[0].Gaussian
	if g.StdDeviationX != 0 || g.StdDeviationY != 0 {
		t.Errorf("malformed blur radius should fall back to 0, got %v/%v", g.StdDeviationX, g.StdDeviationY)
	}
}

func TestExpandUnknownFunctionDropped(t *testing.T) {
	if got := Expand("frobnicate(1)"); got != nil {
		t.Errorf("unknown function should be dropped, got %v", got)
	}
}

func TestExpandDropShadowChainShape(t *testing.T) {
	prims := Expand("drop-shadow(2px 3px 4px)")
	if len(prims) != 5 {
		t.Fatalf("expected a 5-primitive chain, got %d", len(prims))
	}
	kinds := []engine.PrimitiveKind{
		engine.KindGaussianBlur, engine.KindOffset, engine.KindFlood, engine.KindComposite, engine.KindMerge,
	}
	for i, want := range kinds {
		if prims[i].Kind != want {
			t.Errorf("step %d: got kind %v, want %v", i, prims[i].Kind, want)
		}
	}
	if prims[0].Gaussian.In1.Kind != engine.SourceAlpha {
		t.Errorf("drop-shadow blur should read SourceAlpha, got %+v", prims[0].Gaussian.In1)
	}
	last := prims[4]
	if len(last.Merge.Inputs) != 2 || last.Merge.Inputs[1].Kind != engine.SourceGraphic {
		t.Errorf("merge should end with SourceGraphic, got %+v", last.Merge.Inputs)
	}
}

func TestExpandDropShadowParsesTrailingColorArg(t *testing.T) {
	prims := Expand("drop-shadow(2px 2px 4px red)")
	if len(prims) != 5 {
		t.Fatalf("expected a 5-primitive chain, got %d", len(prims))
	}
	flood := prims[2].Flood
	if flood == nil {
		t.Fatal("expected the third step to be the flood")
	}
	want := color.Premultiply(1, 0, 0, 1)
	if flood.Color != want {
		t.Errorf("drop-shadow color argument should set the flood color, got %+v, want %+v", flood.Color, want)
	}
}

// TestExpandDropShadowFloodFillsFilterRegion exercises the flood step's
// actual pixels, not just its kind: with no explicit subregion it must fill
// the filter region rather than produce an empty surface (regression for the
// no-input default-bounds case).
func TestExpandDropShadowFloodFillsFilterRegion(t *testing.T) {
	prims := Expand("drop-shadow(2px 3px 4px)")
	flood := prims[2]
	if flood.Kind != engine.KindFlood {
		t.Fatalf("expected step 2 to be a flood, got %v", flood.Kind)
	}

	src := surface.Empty(4, 4, color.SRGB)
	spec := engine.FilterSpec{
		FilterRegionUserSpace: geom.RectD{X2: 4, Y2: 4},
		PrimitiveUnits:        engine.UserSpaceOnUse,
	}
	ctx, err := engine.NewFilterContext(spec, src, geom.RectD{X2: 4, Y2: 4}, affine.Identity())
	if err != nil {
		t.Fatal(err)
	}

	out, err := primitive.RenderFlood(ctx, flood.Base, flood.Flood)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds.X1 != 0 || out.Bounds.Y1 != 0 || out.Bounds.X2 != 4 || out.Bounds.Y2 != 4 {
		t.Fatalf("drop-shadow flood should fill the filter region, got bounds %+v", out.Bounds)
	}
	if out.Surface.At(1, 1).A == 0 {
		t.Error("drop-shadow flood should write an opaque pixel, got transparent")
	}
}

func TestNumArgPercentAndPx(t *testing.T) {
	if v := numArg([]string{"50%"}, 0, -1); v != 0.5 {
		t.Errorf("percent arg should normalize to fraction, got %v", v)
	}
	if v := numArg([]string{"5px"}, 0, -1); v != 5 {
		t.Errorf("px suffix should be stripped, got %v", v)
	}
	if v := numArg(nil, 0, 9); v != 9 {
		t.Errorf("missing arg should use default, got %v", v)
	}
}

func TestTokenizeMultipleFunctions(t *testing.T) {
	calls := tokenize("blur(5px) brightness(1.2)")
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].name != "blur" || calls[1].name != "brightness" {
		t.Errorf("got %+v", calls)
	}
}
