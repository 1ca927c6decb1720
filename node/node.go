// Package node declares the minimal DOM surface the filter engine needs
// from its host document. Hosts implement these interfaces over their own
// element tree; the engine never constructs a Node itself.
package node

// Node is one element in the host document tree.
type Node interface {
	// LocalName is the element's tag name without namespace prefix, e.g. "feGaussianBlur".
	LocalName() string
	// Attr returns the literal value of an attribute and whether it was present.
	Attr(name string) (string, bool)
	// Children returns the element's direct child elements in document order.
	Children() []Node
	// Style returns the computed value of a CSS property, honoring cascade
	// and inheritance; ok is false if the property has no computed value.
	Style(property string) (string, bool)
}

// Resolver looks up elements referenced by `url(#id)` and reports document
// geometry the filter engine cannot derive on its own.
type Resolver interface {
	// ResolveID finds the element with the given fragment id, if any.
	ResolveID(id string) (Node, bool)
	// Viewport returns the current user-space viewport (for userSpaceOnUse lengths).
	Viewport() (width, height float64)
}
