// Package adapter is the binding contract every platform renderer goes
// through. A Navigator is the fully resolved description of one group: its
// chrome, its own effective options and one Item per child with the child's
// effective options. Platform packages only attach platform targets
// (component handles, links) to these items, so two renderers bound to the
// same schema cannot disagree on options.
package adapter

import (
	"errors"
	"fmt"

	navskema "github.com/reoring/navskema"
)

var (
	// ErrConfigurationMissing is returned when no node carries the
	// requested name. Renderers show a placeholder for it.
	ErrConfigurationMissing = errors.New("adapter: navigation configuration missing")
	// ErrNotNavigator is returned when the requested node is a screen.
	ErrNotNavigator = errors.New("adapter: node is not a navigator")
)

// Item is one child of a navigator, resolved.
type Item struct {
	Name    string
	Kind    navskema.Kind
	Node    navskema.Node
	Options navskema.Options // effective options: parent ChildDefaults + own Options
	Label   string           // menu label: drawerLabel text, title, then name
	Hidden  bool             // hiddenFromMenu
	Icon    string           // tabBarIconName, "" when unset
}

// LabelRender returns the drawer label callback handle, or nil.
func (it Item) LabelRender() navskema.Render {
	if it.Options.DrawerLabel == nil {
		return nil
	}
	return it.Options.DrawerLabel.Render
}

// Nested reports whether the item is itself a navigator.
func (it Item) Nested() bool { return it.Kind.IsGroup() }

// Props returns the option map handed to the platform navigator widget for
// this item. Hidden items carry drawerItemStyle {display: "none"}, which is
// what drawer widgets understand.
func (it Item) Props() map[string]any {
	props := it.Options.Map()
	props[navskema.KeyDrawerLabel] = it.Label
	if it.Hidden {
		st, _ := props[navskema.KeyDrawerItemStyle].(map[string]any)
		if st == nil {
			st = map[string]any{}
		}
		st["display"] = "none"
		props[navskema.KeyDrawerItemStyle] = st
	}
	return props
}

// Navigator is a resolved group.
type Navigator struct {
	Kind         navskema.Kind
	Name         string
	InitialRoute string
	Chrome       navskema.Options // the group's OwnOptions
	Self         navskema.Options // the group's effective options inside its parent
	Path         []string         // ancestor names, outermost first, ending with Name
	Items        []Item
}

// Bind looks name up in s and resolves the group it names.
func Bind(s *navskema.Schema, name string) (*Navigator, error) {
	p, ok := s.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfigurationMissing, name)
	}
	return BindPath(p)
}

// BindRoot resolves the top-level "Root" stack of s.
func BindRoot(s *navskema.Schema) (*Navigator, error) {
	root, ok := s.Root()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfigurationMissing, navskema.RootName)
	}
	return BindPath(navskema.Path{Node: root})
}

// BindPath resolves an already located group.
func BindPath(p navskema.Path) (*Navigator, error) {
	if p.Node == nil {
		return nil, ErrConfigurationMissing
	}
	var g *navskema.Group
	switch p.Node.Kind() {
	case navskema.KindTabs, navskema.KindDrawer, navskema.KindStack:
		g = p.Node.(*navskema.Group)
	case navskema.KindScreen:
		return nil, fmt.Errorf("%w: %s", ErrNotNavigator, navskema.Describe(p.Node))
	}
	nav := &Navigator{
		Kind:         g.Kind(),
		Name:         g.Name(),
		InitialRoute: g.InitialRouteName(),
		Chrome:       g.OwnOptions(),
		Self:         p.Resolve(),
		Path:         p.Names(),
	}
	lineage := append(append([]*navskema.Group(nil), p.Ancestors...), g)
	for _, c := range g.Children() {
		nav.Items = append(nav.Items, newItem(c, navskema.ResolveOptions(c, lineage)))
	}
	return nav, nil
}

func newItem(n navskema.Node, eff navskema.Options) Item {
	it := Item{
		Name:    n.Name(),
		Kind:    n.Kind(),
		Node:    n,
		Options: eff,
		Hidden:  eff.IsHiddenFromMenu(),
	}
	switch {
	case eff.DrawerLabel != nil && eff.DrawerLabel.Text != "":
		it.Label = eff.DrawerLabel.Text
	default:
		it.Label = eff.TitleOr(n.Name())
	}
	if eff.TabBarIconName != nil {
		it.Icon = *eff.TabBarIconName
	}
	return it
}

// Item returns the child named name.
func (n *Navigator) Item(name string) (Item, bool) {
	for _, it := range n.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// InitialItem returns the child named by the initial route. A dangling
// initial route reports false.
func (n *Navigator) InitialItem() (Item, bool) {
	if n.InitialRoute == "" {
		return Item{}, false
	}
	return n.Item(n.InitialRoute)
}

// MenuItems returns the items shown in the navigator's menu surface.
func (n *Navigator) MenuItems() []Item {
	out := make([]Item, 0, len(n.Items))
	for _, it := range n.Items {
		if !it.Hidden {
			out = append(out, it)
		}
	}
	return out
}

// HeaderTitle is the title shown in the navigator header while route is
// active: the route's title, else the navigator name.
func (n *Navigator) HeaderTitle(route string) string {
	if it, ok := n.Item(route); ok && it.Options.Title != nil {
		return *it.Options.Title
	}
	return n.Name
}

// HeaderAction is the control rendered on the left of the header.
type HeaderAction int

const (
	HeaderToggleMenu HeaderAction = iota // open/close the drawer
	HeaderBack                           // return to the initial route
)

func (a HeaderAction) String() string {
	switch a {
	case HeaderToggleMenu:
		return "toggle"
	case HeaderBack:
		return "back"
	default:
		return "unknown"
	}
}

// HeaderLeft decides the header control while active is shown. Away from
// the initial route the header offers a way back to it; on the initial route
// it toggles the menu. target is the route HeaderBack navigates to.
func (n *Navigator) HeaderLeft(active string) (action HeaderAction, target string) {
	if n.InitialRoute == "" || active == n.InitialRoute {
		return HeaderToggleMenu, ""
	}
	return HeaderBack, n.InitialRoute
}
