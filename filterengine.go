// Package filterengine resolves an SVG `filter` property into a graph of
// filter primitives and renders it against a source raster.
//
// The package is organized into focused internal modules:
//
//   - internal/surface    - the shared premultiplied pixel raster
//   - internal/color      - sRGB/linearRGB conversion and premultiplication
//   - internal/affine     - 2D transform math
//   - internal/blend      - Porter-Duff compositing and CSS blend modes
//   - internal/kernel     - Gaussian kernel construction
//   - internal/noise      - deterministic Perlin-style turbulence
//   - internal/engine     - FilterContext, bounds, error taxonomy, resolved types
//   - internal/primitive  - one render function per filter primitive kind
//   - internal/resolver   - <filter> element and attribute parsing
//   - internal/shorthand  - CSS filter-function shorthand expansion
//   - internal/pipeline   - runs a resolved plan's primitives in order
//
// Basic usage:
//
//	out := filterengine.Render(filterengine.Request{
//		Filter:       `url(#blur)`,
//		Source:       source,
//		BoundingBox:  bbox,
//		UserToDevice: transform,
//		Resolver:     doc,
//	})
package filterengine

import (
	"log"
	"strings"

	"github.com/svgraster/filterengine/internal/affine"
	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/internal/geom"
	"github.com/svgraster/filterengine/internal/pipeline"
	"github.com/svgraster/filterengine/internal/resolver"
	"github.com/svgraster/filterengine/internal/shorthand"
	"github.com/svgraster/filterengine/internal/surface"
	"github.com/svgraster/filterengine/node"
)

// Inputs is the set of optional standard input surfaces a filter chain may
// draw on beyond its primary source.
type Inputs = pipeline.Inputs

// Request bundles everything Render needs to resolve and run one element's
// filter property.
type Request struct {
	// Filter is the computed value of the CSS `filter` property: "none", a
	// space-separated list of url(#id) references, or a sequence of
	// filter-function shorthands. Never both in the same value.
	Filter string
	// Source is the element rendered without its filter, sRGB premultiplied.
	Source *surface.Surface
	// BoundingBox is the element's geometry bounding box, used to resolve
	// objectBoundingBox lengths.
	BoundingBox geom.RectD
	// UserToDevice maps the element's user space into Source's pixel grid.
	UserToDevice affine.Matrix
	// Resolver looks up url(#id) targets and reports viewport geometry. May
	// be nil if Filter contains no url() references.
	Resolver node.Resolver
	// Extra supplies background/fill/stroke paint surfaces for primitives
	// that request them; any field may be nil.
	Extra Inputs
}

// Render resolves req.Filter and runs it, returning the final sRGB surface.
// Filter content never aborts rendering: an unresolvable reference or
// non-filter target renders req.Source unfiltered, and a fatal primitive
// error or non-invertible transform renders an empty alpha-only surface.
func Render(req Request) *surface.Surface {
	value := strings.TrimSpace(req.Filter)
	if value == "" || value == "none" {
		return req.Source
	}
	if strings.Contains(value, "url(") {
		return renderURLChain(value, req)
	}
	return renderShorthand(value, req)
}

func renderShorthand(value string, req Request) *surface.Surface {
	primitives := shorthand.Expand(value)
	if len(primitives) == 0 {
		return req.Source
	}
	spec := engine.FilterSpec{
		FilterRegionUserSpace: resolver.DefaultFilterRegionUserSpace(req.BoundingBox),
		PrimitiveUnits:        engine.UserSpaceOnUse,
		Primitives:            primitives,
	}
	return pipeline.Run(spec, req.Source, req.BoundingBox, req.UserToDevice, req.Extra)
}

func renderURLChain(value string, req Request) *surface.Surface {
	ids, ok := parseURLList(value)
	if !ok {
		log.Printf("filterengine: malformed filter value %q, rendering unfiltered", value)
		return req.Source
	}
	current := req.Source
	for _, id := range ids {
		if req.Resolver == nil {
			return req.Source
		}
		spec, err := resolver.ResolveReference(req.Resolver, id, req.BoundingBox)
		if err != nil {
			log.Printf("filterengine: %v, rendering unfiltered", err)
			return req.Source
		}
		current = pipeline.Run(spec, current, req.BoundingBox, req.UserToDevice, req.Extra)
	}
	return current
}

// parseURLList splits "url(#a) url(#b)" into ["a", "b"], failing if any
// token is not a well-formed url(#id) reference.
func parseURLList(value string) ([]string, bool) {
	var ids []string
	for _, tok := range strings.Fields(value) {
		if !strings.HasPrefix(tok, "url(#") || !strings.HasSuffix(tok, ")") {
			return nil, false
		}
		ids = append(ids, tok[len("url(#"):len(tok)-1])
	}
	return ids, len(ids) > 0
}
