package resolver

import "github.com/svgraster/filterengine/node"

// fakeNode is a minimal in-memory node.Node for resolver tests.
type fakeNode struct {
	name     string
	attrs    map[string]string
	style    map[string]string
	children []node.Node
}

func newFakeNode(name string) *fakeNode {
	return &fakeNode{name: name, attrs: map[string]string{}, style: map[string]string{}}
}

func (n *fakeNode) with(attr, val string) *fakeNode {
	n.attrs[attr] = val
	return n
}

func (n *fakeNode) withStyle(prop, val string) *fakeNode {
	n.style[prop] = val
	return n
}

func (n *fakeNode) withChild(c *fakeNode) *fakeNode {
	n.children = append(n.children, c)
	return n
}

func (n *fakeNode) LocalName() string { return n.name }

func (n *fakeNode) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *fakeNode) Children() []node.Node { return n.children }

func (n *fakeNode) Style(property string) (string, bool) {
	v, ok := n.style[property]
	return v, ok
}

// fakeResolver is a minimal in-memory node.Resolver for resolver tests.
type fakeResolver struct {
	byID     map[string]node.Node
	vpW, vpH float64
}

func (r *fakeResolver) ResolveID(id string) (node.Node, bool) {
	n, ok := r.byID[id]
	return n, ok
}

func (r *fakeResolver) Viewport() (float64, float64) { return r.vpW, r.vpH }
