package filterengine

import (
	"testing"

	"github.com/svgraster/filterengine/internal/affine"
	"github.com/svgraster/filterengine/internal/color"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/surface"
	"github.com/svgraster/filterengine/node"
)

func TestRenderNoneReturnsSourceUnchanged(t *testing.T) {
	src := surface.Empty(4, 4, color.SRGB)
	out := Render(Request{Filter: "none", Source: src})
	if out != src {
		t.Error("filter: none should return the source surface unchanged")
	}
}

func TestRenderShorthandSaturate(t *testing.T) {
	e := surface.NewExclusive(2, 2, color.SRGB)
	e.Set(0, 0, color.Pixel{R: 100, G: 50, B: 25, A: 255})
	src := e.Share()
	out := Render(Request{
		Filter:       "saturate(0.75)",
		Source:       src,
		BoundingBox:  geom.RectD{X2: 2, Y2: 2},
		UserToDevice: affine.Identity(),
	})
	if out.Width() != 2 || out.Height() != 2 {
		t.Fatalf("expected canvas-sized output, got %dx%d", out.Width(), out.Height())
	}
}

func TestRenderShorthandOpacity(t *testing.T) {
	e := surface.NewExclusive(2, 2, color.SRGB)
	e.Set(0, 0, color.Pixel{R: 10, G: 10, B: 10, A: 255})
	src := e.Share()
	out := Render(Request{
		Filter:       "opacity(0.5)",
		Source:       src,
		BoundingBox:  geom.RectD{X2: 2, Y2: 2},
		UserToDevice: affine.Identity(),
	})
	got := out.At(0, 0)
	if got.A == 0 || got.A == 255 {
		t.Errorf("expected a partially transparent pixel, got %+v", got)
	}
}

func TestRenderMalformedURLFallsBackToSource(t *testing.T) {
	src := surface.Empty(2, 2, color.SRGB)
	out := Render(Request{Filter: "url(oops", Source: src})
	if out != src {
		t.Error("malformed url() filter value should render the source unfiltered")
	}
}

func TestRenderURLWithNilResolverReturnsSource(t *testing.T) {
	src := surface.Empty(2, 2, color.SRGB)
	out := Render(Request{Filter: "url(#missing)", Source: src})
	if out != src {
		t.Error("a url() reference with no resolver should render the source unfiltered")
	}
}

type stubResolver struct{}

func (stubResolver) ResolveID(id string) (node.Node, bool) { return nil, false }
func (stubResolver) Viewport() (float64, float64)          { return 100, 100 }

func TestRenderUnresolvableReferenceFallsBackToSource(t *testing.T) {
	src := surface.Empty(2, 2, color.SRGB)
	out := Render(Request{Filter: "url(#missing)", Source: src, Resolver: stubResolver{}})
	if out != src {
		t.Error("an unresolvable filter reference should render the source unfiltered")
	}
}

type idResolver struct {
	nodes map[string]node.Node
}

func (r idResolver) ResolveID(id string) (node.Node, bool) {
	n, ok := r.nodes[id]
	return n, ok
}
func (idResolver) Viewport() (float64, float64) { return 100, 100 }

type stubNode struct {
	name string
}

func (n stubNode) LocalName() string         { return n.name }
func (stubNode) Attr(string) (string, bool)  { return "", false }
func (stubNode) Children() []node.Node       { return nil }
func (stubNode) Style(string) (string, bool) { return "", false }

func TestRenderChainOneURLMissingFallsBackToSource(t *testing.T) {
	src := surface.Empty(2, 2, color.SRGB)
	res := idResolver{nodes: map[string]node.Node{"f": stubNode{name: "filter"}}}
	out := Render(Request{Filter: "url(#f) url(#nonexistent)", Source: src, Resolver: res})
	if out != src {
		t.Error("a chain with one unresolvable url() reference should render the source unfiltered")
	}
}

func TestRenderChainOneURLNotAFilterFallsBackToSource(t *testing.T) {
	src := surface.Empty(2, 2, color.SRGB)
	res := idResolver{nodes: map[string]node.Node{
		"f":         stubNode{name: "filter"},
		"not_a_filter": stubNode{name: "g"},
	}}
	out := Render(Request{Filter: "url(#f) url(#not_a_filter)", Source: src, Resolver: res})
	if out != src {
		t.Error("a chain referencing a non-filter element should render the source unfiltered")
	}
}
