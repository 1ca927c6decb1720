// Package resolver walks a <filter> element and its primitive children into
// a FilterSpec, following the resilient default-merge discipline: every
// attribute is parsed independently, and a parse failure falls back to that
// attribute's documented default rather than aborting the primitive.
package resolver

import (
	"log"
	"strconv"
	"strings"

	"github.com/svgraster/filterengine/node"
)

// floatAttr parses a float attribute, logging and returning def on failure
// or absence.
func floatAttr(n node.Node, name string, def float64) float64 {
	raw, ok := n.Attr(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Printf("filterengine: %s attribute %q=%q invalid, using default %v", n.LocalName(), name, raw, def)
		return def
	}
	return v
}

// optFloatAttr is floatAttr but returns nil if the attribute is absent or
// unparseable, for the x/y/width/height overrides that distinguish "unset"
// from zero.
func optFloatAttr(n node.Node, name string) *float64 {
	raw, ok := n.Attr(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Printf("filterengine: %s attribute %q=%q invalid, treating as unset", n.LocalName(), name, raw)
		return nil
	}
	return &v
}

func intAttr(n node.Node, name string, def int) int {
	raw, ok := n.Attr(name)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("filterengine: %s attribute %q=%q invalid, using default %d", n.LocalName(), name, raw, def)
		return def
	}
	return v
}

func boolAttr(n node.Node, name string, def bool) bool {
	raw, ok := n.Attr(name)
	if !ok {
		return def
	}
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "true":
		return true
	case "false":
		return false
	default:
		log.Printf("filterengine: %s attribute %q=%q invalid, using default %v", n.LocalName(), name, raw, def)
		return def
	}
}

func stringAttr(n node.Node, name, def string) string {
	raw, ok := n.Attr(name)
	if !ok {
		return def
	}
	return raw
}

// numberList parses a whitespace/comma separated list of floats. A missing
// or wholly-unparseable attribute yields nil, which callers treat as "no
// values given" (their own default path), not an error.
func numberList(n node.Node, name string) []float64 {
	raw, ok := n.Attr(name)
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			log.Printf("filterengine: %s attribute %q=%q contains invalid number %q", n.LocalName(), name, raw, f)
			return nil
		}
		out = append(out, v)
	}
	return out
}

// numberPair parses a "x y" or "x" attribute into two floats, the second
// defaulting to the first when absent (the SVG <number-optional-number> rule).
func numberPair(n node.Node, name string, def float64) (float64, float64) {
	vals := numberList(n, name)
	switch len(vals) {
	case 0:
		return def, def
	case 1:
		return vals[0], vals[0]
	default:
		return vals[0], vals[1]
	}
}
