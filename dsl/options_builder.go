package dsl

import navskema "github.com/reoring/navskema"

// OptionSet is a fluent builder for navskema.Options.
type OptionSet struct {
	o navskema.Options
}

// Opts starts an empty option set.
func Opts() *OptionSet { return &OptionSet{} }

// Title sets the display title.
func (s *OptionSet) Title(t string) *OptionSet {
	s.o.Title = navskema.String(t)
	return s
}

// HeaderShown sets whether the navigator header is rendered.
func (s *OptionSet) HeaderShown(b bool) *OptionSet {
	s.o.HeaderShown = navskema.Bool(b)
	return s
}

// TabBarIcon sets the icon identifier resolved by the icon lookup.
func (s *OptionSet) TabBarIcon(name string) *OptionSet {
	s.o.TabBarIconName = navskema.String(name)
	return s
}

// DrawerLabel sets a text drawer label.
func (s *OptionSet) DrawerLabel(text string) *OptionSet {
	s.o.DrawerLabel = navskema.TextLabel(text)
	return s
}

// DrawerLabelFunc sets a render-callback drawer label; fallback is the text
// used on the wire and by renderers that cannot run the callback.
func (s *OptionSet) DrawerLabelFunc(render navskema.Render, fallback string) *OptionSet {
	s.o.DrawerLabel = &navskema.Label{Text: fallback, Render: render}
	return s
}

// HiddenFromMenu hides the node from its parent's menu surface.
func (s *OptionSet) HiddenFromMenu() *OptionSet {
	s.o.HiddenFromMenu = navskema.Bool(true)
	return s
}

func (s *OptionSet) DrawerItemStyle(st navskema.Style) *OptionSet {
	s.o.DrawerItemStyle = st.Clone()
	return s
}

func (s *OptionSet) DrawerStyle(st navskema.Style) *OptionSet {
	s.o.DrawerStyle = st.Clone()
	return s
}

func (s *OptionSet) TabBarStyle(st navskema.Style) *OptionSet {
	s.o.TabBarStyle = st.Clone()
	return s
}

// TabBarTint sets the active and inactive tab tint colors. Empty strings
// leave the corresponding key unset.
func (s *OptionSet) TabBarTint(active, inactive string) *OptionSet {
	if active != "" {
		s.o.TabBarActiveTintColor = navskema.String(active)
	}
	if inactive != "" {
		s.o.TabBarInactiveTintColor = navskema.String(inactive)
	}
	return s
}

func (s *OptionSet) OverlayColor(c string) *OptionSet {
	s.o.OverlayColor = navskema.String(c)
	return s
}

// DefaultStatus sets the drawer's initial state ("open" or "closed").
func (s *OptionSet) DefaultStatus(status string) *OptionSet {
	s.o.DefaultStatus = navskema.String(status)
	return s
}

// Set stores a platform pass-through key.
func (s *OptionSet) Set(key string, v any) *OptionSet {
	if s.o.Extra == nil {
		s.o.Extra = map[string]any{}
	}
	s.o.Extra[key] = v
	return s
}

// Options returns a copy of the accumulated options. A nil set yields empty
// options.
func (s *OptionSet) Options() navskema.Options {
	if s == nil {
		return navskema.Options{}
	}
	return s.o.Clone()
}
