// Package web binds resolved navigators to web links.
package web

import (
	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/adapter"
	"github.com/reoring/navskema/icon"
)

// Platform is the name used in diagnostics.
const Platform = "web"

// HrefKey is the pass-through option holding a navigator's base path.
const HrefKey = "href"

// Page is one entry of the web navigator.
type Page struct {
	adapter.Item
	Href  string // "" when the node declares no path
	Props map[string]any
}

// Rendered is what the web navigator is built from.
type Rendered struct {
	Navigator   *adapter.Navigator
	Pages       []Page
	Placeholder bool
	Message     string
}

// Adapter renders navigators for the web runtime.
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
	out := Rendered{Navigator: nav, Pages: make([]Page, 0, len(nav.Items))}
	for _, it := range nav.Items {
		out.Pages = append(out.Pages, Page{Item: it, Href: href(it), Props: it.Props()})
	}
	return out
}

// Icon resolves the tab icon of an item.
func (a *Adapter) Icon(it adapter.Item, focused bool, size int) (icon.Glyph, bool) {
	return a.cfg.Icon(it, focused, size)
}

func href(it adapter.Item) string {
	switch it.Kind {
	case navskema.KindScreen:
		return it.Node.(*navskema.Screen).Link()
	case navskema.KindTabs, navskema.KindDrawer, navskema.KindStack:
		if v, ok := it.Options.Extra[HrefKey].(string); ok {
			return v
		}
	}
	return ""
}
