package dsl

import (
	"fmt"

	navskema "github.com/reoring/navskema"
)

// NodeBuilder is anything that can produce a navskema.Node.
type NodeBuilder interface {
	BuildNode() (navskema.Node, error)
}

// ScreenBuilder accumulates the attributes of a screen leaf.
type ScreenBuilder struct {
	name string
	spec navskema.ScreenSpec
}

// Screen starts a screen named name.
func Screen(name string) *ScreenBuilder { return &ScreenBuilder{name: name} }

// Render sets the opaque component handle.
func (b *ScreenBuilder) Render(r navskema.Render) *ScreenBuilder {
	b.spec.Render = r
	return b
}

// Options sets the screen's own options.
func (b *ScreenBuilder) Options(o *OptionSet) *ScreenBuilder {
	b.spec.Options = o.Options()
	return b
}

// Link sets the external path used by web renderers.
func (b *ScreenBuilder) Link(path string) *ScreenBuilder {
	b.spec.Link = path
	return b
}

// Build creates the screen.
func (b *ScreenBuilder) Build() (*navskema.Screen, error) { return navskema.NewScreen(b.name, b.spec) }

// MustBuild is like Build but panics on error.
func (b *ScreenBuilder) MustBuild() *navskema.Screen {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *ScreenBuilder) BuildNode() (navskema.Node, error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GroupBuilder accumulates the attributes of a navigator group.
type GroupBuilder struct {
	kind     navskema.Kind
	name     string
	spec     navskema.GroupSpec
	children []NodeBuilder
}

// Stack starts a push/pop navigator.
func Stack(name string) *GroupBuilder { return &GroupBuilder{kind: navskema.KindStack, name: name} }

// Drawer starts a drawer navigator.
func Drawer(name string) *GroupBuilder { return &GroupBuilder{kind: navskema.KindDrawer, name: name} }

// Initial sets the name of the child shown first.
func (b *GroupBuilder) Initial(name string) *GroupBuilder {
	b.spec.InitialRouteName = name
	return b
}

// Options sets how the group presents itself as an item of its parent.
func (b *GroupBuilder) Options(o *OptionSet) *GroupBuilder {
	b.spec.Options = o.Options()
	return b
}

// OwnOptions sets the container's own chrome.
func (b *GroupBuilder) OwnOptions(o *OptionSet) *GroupBuilder {
	b.spec.OwnOptions = o.Options()
	return b
}

// ChildDefaults sets the options every direct child inherits.
func (b *GroupBuilder) ChildDefaults(o *OptionSet) *GroupBuilder {
	b.spec.ChildDefaults = o.Options()
	return b
}

// Children appends children in authoring order.
func (b *GroupBuilder) Children(children ...NodeBuilder) *GroupBuilder {
	b.children = append(b.children, children...)
	return b
}

// Build creates the group and, recursively, its children.
func (b *GroupBuilder) Build() (*navskema.Group, error) {
	nodes, err := buildAll(b.children)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", b.kind, b.name, err)
	}
	return navskema.NewGroup(b.kind, b.name, b.spec, nodes...)
}

// MustBuild is like Build but panics on error.
func (b *GroupBuilder) MustBuild() *navskema.Group {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

func (b *GroupBuilder) BuildNode() (navskema.Node, error) {
	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	return g, nil
}

// TabsBuilder is a GroupBuilder whose children are restricted to screens.
type TabsBuilder struct {
	g GroupBuilder
}

// Tabs starts a tab navigator.
func Tabs(name string) *TabsBuilder {
	return &TabsBuilder{g: GroupBuilder{kind: navskema.KindTabs, name: name}}
}

func (b *TabsBuilder) Initial(name string) *TabsBuilder {
	b.g.Initial(name)
	return b
}

func (b *TabsBuilder) Options(o *OptionSet) *TabsBuilder {
	b.g.Options(o)
	return b
}

func (b *TabsBuilder) OwnOptions(o *OptionSet) *TabsBuilder {
	b.g.OwnOptions(o)
	return b
}

func (b *TabsBuilder) ChildDefaults(o *OptionSet) *TabsBuilder {
	b.g.ChildDefaults(o)
	return b
}

// Screens appends tab screens in authoring order.
func (b *TabsBuilder) Screens(screens ...*ScreenBuilder) *TabsBuilder {
	for _, s := range screens {
		if s == nil {
			// reported as ErrInvalidChild by Build
			b.g.children = append(b.g.children, nil)
			continue
		}
		b.g.children = append(b.g.children, s)
	}
	return b
}

func (b *TabsBuilder) Build() (*navskema.Group, error) { return b.g.Build() }
func (b *TabsBuilder) MustBuild() *navskema.Group      { return b.g.MustBuild() }
func (b *TabsBuilder) BuildNode() (navskema.Node, error) {
	return b.g.BuildNode()
}

// Node wraps an already built node so it can be mixed with builders.
func Node(n navskema.Node) NodeBuilder { return built{n} }

type built struct{ n navskema.Node }

func (b built) BuildNode() (navskema.Node, error) {
	if b.n == nil {
		return nil, navskema.ErrInvalidChild
	}
	return b.n, nil
}

// Schema builds every root and assembles the schema.
func Schema(roots ...NodeBuilder) (*navskema.Schema, error) {
	nodes, err := buildAll(roots)
	if err != nil {
		return nil, err
	}
	return navskema.New(nodes...)
}

// MustSchema is like Schema but panics on error. It is meant for
// compiled-in literal trees.
func MustSchema(roots ...NodeBuilder) *navskema.Schema {
	s, err := Schema(roots...)
	if err != nil {
		panic(err)
	}
	return s
}

func buildAll(bs []NodeBuilder) ([]navskema.Node, error) {
	out := make([]navskema.Node, 0, len(bs))
	for i, b := range bs {
		if b == nil {
			return nil, fmt.Errorf("child %d: %w", i, navskema.ErrInvalidChild)
		}
		n, err := b.BuildNode()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
