package navskema

// FindByName searches scope in pre-order depth-first order and returns the
// first node named name. Children of a group are searched before the
// group's next sibling, so a nested match can win over a shallower one that
// is authored later. It returns (nil, false) when nothing matches.
func FindByName(name string, scope []Node) (Node, bool) {
	p, ok := FindPath(name, scope)
	if !ok {
		return nil, false
	}
	return p.Node, true
}

// Path is a located node together with the groups enclosing it, outermost
// first. The last ancestor is the node's immediate parent.
type Path struct {
	Node      Node
	Ancestors []*Group
}

// Parent returns the immediate parent, or nil for a top-level node.
func (p Path) Parent() *Group {
	if len(p.Ancestors) == 0 {
		return nil
	}
	return p.Ancestors[len(p.Ancestors)-1]
}

// Resolve returns the effective options of the located node.
func (p Path) Resolve() Options { return ResolveOptions(p.Node, p.Ancestors) }

// Names returns the names from the outermost ancestor down to the node.
func (p Path) Names() []string {
	out := make([]string, 0, len(p.Ancestors)+1)
	for _, g := range p.Ancestors {
		out = append(out, g.Name())
	}
	if p.Node != nil {
		out = append(out, p.Node.Name())
	}
	return out
}

// FindPath is FindByName that also returns the ancestor chain of the match.
func FindPath(name string, scope []Node) (Path, bool) {
	return findPath(name, scope, nil)
}

func findPath(name string, scope []Node, ancestors []*Group) (Path, bool) {
	for _, n := range scope {
		if n == nil {
			continue
		}
		if n.Name() == name {
			return Path{Node: n, Ancestors: append([]*Group(nil), ancestors...)}, true
		}
		switch n.Kind() {
		case KindTabs, KindDrawer, KindStack:
			g := n.(*Group)
			if p, ok := findPath(name, g.children, append(ancestors, g)); ok {
				return p, true
			}
		case KindScreen:
		}
	}
	return Path{}, false
}

// ResolveOptions computes the options a renderer applies to node: the
// immediate parent's ChildDefaults overlaid with the node's own Options.
// ancestors is ordered outermost first; only its last element contributes,
// so defaults never cascade past one level.
func ResolveOptions(node Node, ancestors []*Group) Options {
	if node == nil {
		return Options{}
	}
	if len(ancestors) == 0 {
		return node.Options()
	}
	parent := ancestors[len(ancestors)-1]
	return MergeOptions(parent.childDefaults, node.Options())
}
