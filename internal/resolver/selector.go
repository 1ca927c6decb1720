package resolver

import (
	"strings"

	"github.com/svgraster/filterengine/internal/engine"
	"github.com/svgraster/filterengine/node"
)

// parseSelector parses an "in"/"in2" attribute into an InputSelector. An
// absent attribute is Unspecified, which GetInput resolves to the previous
// result or SourceGraphic.
func parseSelector(n node.Node, attr string) engine.InputSelector {
	raw, ok := n.Attr(attr)
	if !ok {
		return engine.InputSelector{Kind: engine.Unspecified}
	}
	switch strings.TrimSpace(raw) {
	case "":
		return engine.InputSelector{Kind: engine.Unspecified}
	case "SourceGraphic":
		return engine.InputSelector{Kind: engine.SourceGraphic}
	case "SourceAlpha":
		return engine.InputSelector{Kind: engine.SourceAlpha}
	case "BackgroundImage":
		return engine.InputSelector{Kind: engine.BackgroundImage}
	case "BackgroundAlpha":
		return engine.InputSelector{Kind: engine.BackgroundAlpha}
	case "FillPaint":
		return engine.InputSelector{Kind: engine.FillPaint}
	case "StrokePaint":
		return engine.InputSelector{Kind: engine.StrokePaint}
	default:
		return engine.InputSelector{Kind: engine.NamedResult, Name: raw}
	}
}
