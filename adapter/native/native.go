// Package native binds resolved navigators to native component handles.
package native

import (
	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/adapter"
	"github.com/reoring/navskema/icon"
)

// Platform is the name used in diagnostics.
const Platform = "native"

// Screen is one registration for the native navigator widget.
type Screen struct {
	adapter.Item
	// Component is the render handle of a screen item. It is nil for nested
	// navigators; render those with Adapter.Render(Name).
	Component navskema.Render
	Props     map[string]any
}

// Rendered is what the native navigator widget is built from.
type Rendered struct {
	Navigator   *adapter.Navigator
	Screens     []Screen
	Placeholder bool
	Message     string
}

// Adapter renders navigators for the native runtime.
type Adapter struct {
	schema *navskema.Schema
	cfg    adapter.Config
}

// New returns an adapter over s.
func New(s *navskema.Schema, opts ...adapter.Option) *Adapter {
	return &Adapter{schema: s, cfg: adapter.NewConfig(opts...)}
}

// Root renders the top-level "Root" stack.
func (a *Adapter) Root() Rendered { return a.Render("") }

// Render renders the navigator named name. A missing or non-navigator name
// yields a placeholder.
func (a *Adapter) Render(name string) Rendered {
	nav, err := a.cfg.Load(Platform, a.schema, name)
	if err != nil {
		return Rendered{Placeholder: true, Message: err.Error()}
	}
	out := Rendered{Navigator: nav, Screens: make([]Screen, 0, len(nav.Items))}
	for _, it := range nav.Items {
		sc := Screen{Item: it, Props: it.Props()}
		switch it.Kind {
		case navskema.KindScreen:
			sc.Component = it.Node.(*navskema.Screen).Render()
		case navskema.KindTabs, navskema.KindDrawer, navskema.KindStack:
		}
		out.Screens = append(out.Screens, sc)
	}
	return out
}

// Icon resolves the tab icon of an item.
func (a *Adapter) Icon(it adapter.Item, focused bool, size int) (icon.Glyph, bool) {
	return a.cfg.Icon(it, focused, size)
}
