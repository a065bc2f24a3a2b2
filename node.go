package navskema

import "fmt"

// Node is one entry of the navigation tree: a *Screen leaf or a *Group.
// The set of implementations is closed; switch on Kind() to tell them apart.
type Node interface {
	Kind() Kind
	Name() string
	// Options returns how the node presents itself inside its parent
	// container. The result is a copy.
	Options() Options

	sealed()
}

// Screen is a leaf navigable view.
type Screen struct {
	name    string
	render  Render
	options Options
	link    string
}

// ScreenSpec carries the optional attributes of a Screen.
type ScreenSpec struct {
	Render  Render
	Options Options
	Link    string // external path, primarily for web linking
}

// NewScreen builds a screen node. The options are copied.
func NewScreen(name string, spec ScreenSpec) (*Screen, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	return &Screen{
		name:    name,
		render:  spec.Render,
		options: spec.Options.Clone(),
		link:    spec.Link,
	}, nil
}

func (s *Screen) Kind() Kind       { return KindScreen }
func (s *Screen) Name() string     { return s.name }
func (s *Screen) Options() Options { return s.options.Clone() }
func (s *Screen) sealed()          {}

// Render returns the opaque component handle.
func (s *Screen) Render() Render { return s.render }

// Link returns the external path, or "" when none is set.
func (s *Screen) Link() string { return s.link }

// Group is a navigator (tabs, drawer or stack) with ordered children.
type Group struct {
	kind             Kind
	name             string
	initialRouteName string
	options          Options
	ownOptions       Options
	childDefaults    Options
	children         []Node
}

// GroupSpec carries the attributes of a Group. The three option namespaces
// are distinct: Options describes the group as an item of its parent,
// OwnOptions the container's own chrome, ChildDefaults what every direct
// child inherits before its own options.
type GroupSpec struct {
	InitialRouteName string
	Options          Options
	OwnOptions       Options
	ChildDefaults    Options
}

// NewGroup builds a navigator node of the given kind. Tab groups accept
// screens only. Sibling names must be non-empty and unique. InitialRouteName
// is not checked here; see Schema.Validate.
func NewGroup(kind Kind, name string, spec GroupSpec, children ...Node) (*Group, error) {
	if !kind.IsGroup() {
		return nil, fmt.Errorf("%w: %s cannot hold children", ErrInvalidKind, kind)
	}
	if name == "" {
		return nil, ErrMissingName
	}
	if err := checkSiblings(children, kind == KindTabs); err != nil {
		return nil, fmt.Errorf("group %q: %w", name, err)
	}
	return &Group{
		kind:             kind,
		name:             name,
		initialRouteName: spec.InitialRouteName,
		options:          spec.Options.Clone(),
		ownOptions:       spec.OwnOptions.Clone(),
		childDefaults:    spec.ChildDefaults.Clone(),
		children:         append([]Node(nil), children...),
	}, nil
}

func checkSiblings(nodes []Node, screensOnly bool) error {
	seen := make(map[string]struct{}, len(nodes))
	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("%w: child %d is nil", ErrInvalidChild, i)
		}
		if screensOnly && n.Kind() != KindScreen {
			return fmt.Errorf("%w: %q is a %s, tabs hold screens only", ErrInvalidChild, n.Name(), n.Kind())
		}
		if _, dup := seen[n.Name()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, n.Name())
		}
		seen[n.Name()] = struct{}{}
	}
	return nil
}

func (g *Group) Kind() Kind       { return g.kind }
func (g *Group) Name() string     { return g.name }
func (g *Group) Options() Options { return g.options.Clone() }
func (g *Group) sealed()          {}

// InitialRouteName returns the name of the child shown first, or "".
func (g *Group) InitialRouteName() string { return g.initialRouteName }

// OwnOptions returns the container's own chrome settings (a copy).
func (g *Group) OwnOptions() Options { return g.ownOptions.Clone() }

// ChildDefaults returns the defaults applied to every direct child (a copy).
func (g *Group) ChildDefaults() Options { return g.childDefaults.Clone() }

// Children returns the ordered children. The slice is a copy; the nodes are
// immutable and shared.
func (g *Group) Children() []Node { return append([]Node(nil), g.children...) }

// Child returns the direct child with the given name.
func (g *Group) Child(name string) (Node, bool) {
	for _, c := range g.children {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// InitialRoute returns the child named by InitialRouteName. It reports false
// when the group has no initial route or the name matches no direct child.
func (g *Group) InitialRoute() (Node, bool) {
	if g.initialRouteName == "" {
		return nil, false
	}
	return g.Child(g.initialRouteName)
}

// Describe renders the kind and name of a node for diagnostics.
func Describe(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q", n.Kind(), n.Name())
}
