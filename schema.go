package navskema

import "fmt"

// Schema is the immutable navigation tree. It is built once and shared by
// every adapter; all methods are safe for concurrent use.
type Schema struct {
	roots []Node
}

// New builds a schema from its top-level nodes.
func New(roots ...Node) (*Schema, error) {
	if err := checkSiblings(roots, false); err != nil {
		return nil, fmt.Errorf("schema roots: %w", err)
	}
	return &Schema{roots: append([]Node(nil), roots...)}, nil
}

// Roots returns the top-level nodes. The slice is a copy.
func (s *Schema) Roots() []Node { return append([]Node(nil), s.roots...) }

// Find searches the whole schema; see FindByName.
func (s *Schema) Find(name string) (Node, bool) { return FindByName(name, s.roots) }

// Lookup searches the whole schema and returns the match with its ancestors;
// see FindPath.
func (s *Schema) Lookup(name string) (Path, bool) { return FindPath(name, s.roots) }

// Root returns the top-level stack named "Root" that adapters bootstrap from.
func (s *Schema) Root() (*Group, bool) {
	n, ok := s.RootOf(KindStack, RootName)
	if !ok {
		return nil, false
	}
	g, ok := n.(*Group)
	return g, ok
}

// RootOf returns the top-level node with the given kind and name. Nested
// nodes are never considered.
func (s *Schema) RootOf(kind Kind, name string) (Node, bool) {
	for _, n := range s.roots {
		if n.Kind() == kind && n.Name() == name {
			return n, true
		}
	}
	return nil, false
}

// Walk visits every node in pre-order, passing its ancestors (outermost
// first) and its wire path. Returning false from fn skips the node's
// children.
func (s *Schema) Walk(fn func(n Node, ancestors []*Group, p PathRef) bool) {
	walk(s.roots, nil, RootPath(), fn)
}

func walk(nodes []Node, ancestors []*Group, p PathRef, fn func(Node, []*Group, PathRef) bool) {
	for i, n := range nodes {
		np := p.Index(i)
		if !fn(n, ancestors, np) {
			continue
		}
		switch n.Kind() {
		case KindTabs, KindDrawer, KindStack:
			g := n.(*Group)
			next := append(append([]*Group(nil), ancestors...), g)
			walk(g.children, next, np.Field("children"), fn)
		case KindScreen:
		}
	}
}
