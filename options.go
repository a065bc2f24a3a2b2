package navskema

import "sort"

// Option keys. Adapters branch on these, so the wire spelling is fixed.
const (
	KeyTitle                   = "title"
	KeyHeaderShown             = "headerShown"
	KeyTabBarIconName          = "tabBarIconName"
	KeyDrawerLabel             = "drawerLabel"
	KeyHiddenFromMenu          = "hiddenFromMenu"
	KeyDrawerItemStyle         = "drawerItemStyle"
	KeyDrawerStyle             = "drawerStyle"
	KeyTabBarStyle             = "tabBarStyle"
	KeyTabBarActiveTintColor   = "tabBarActiveTintColor"
	KeyTabBarInactiveTintColor = "tabBarInactiveTintColor"
	KeyOverlayColor            = "overlayColor"
	KeyDefaultStatus           = "defaultStatus"
)

// Style is a visual style dictionary. Unlike every other option value,
// styles are merged key by key.
type Style map[string]any

// Clone returns a deep copy of the style, or nil for an empty style.
func (s Style) Clone() Style {
	if len(s) == 0 {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

// Label is a drawer label: either plain text or a render callback handle.
// When both are set, renderers prefer Render and keep Text as the
// serializable fallback.
type Label struct {
	Text   string
	Render Render
}

// TextLabel returns a text-only label.
func TextLabel(text string) *Label { return &Label{Text: text} }

// Options is the closed option set shared by every node kind. A nil pointer
// or empty style means the key is unset. Extra carries platform-specific
// pass-through keys that the resolver only overrides key by key.
type Options struct {
	Title                   *string
	HeaderShown             *bool
	TabBarIconName          *string
	DrawerLabel             *Label
	HiddenFromMenu          *bool
	DrawerItemStyle         Style
	DrawerStyle             Style
	TabBarStyle             Style
	TabBarActiveTintColor   *string
	TabBarInactiveTintColor *string
	OverlayColor            *string
	DefaultStatus           *string
	Extra                   map[string]any
}

// String returns a pointer to s, for use in Options literals.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for use in Options literals.
func Bool(b bool) *bool { return &b }

// Clone returns a copy of o that shares no pointers or maps with it.
func (o Options) Clone() Options {
	out := Options{
		Title:                   cloneString(o.Title),
		HeaderShown:             cloneBool(o.HeaderShown),
		TabBarIconName:          cloneString(o.TabBarIconName),
		HiddenFromMenu:          cloneBool(o.HiddenFromMenu),
		DrawerItemStyle:         o.DrawerItemStyle.Clone(),
		DrawerStyle:             o.DrawerStyle.Clone(),
		TabBarStyle:             o.TabBarStyle.Clone(),
		TabBarActiveTintColor:   cloneString(o.TabBarActiveTintColor),
		TabBarInactiveTintColor: cloneString(o.TabBarInactiveTintColor),
		OverlayColor:            cloneString(o.OverlayColor),
		DefaultStatus:           cloneString(o.DefaultStatus),
	}
	if o.DrawerLabel != nil {
		l := *o.DrawerLabel
		out.DrawerLabel = &l
	}
	if len(o.Extra) > 0 {
		out.Extra = make(map[string]any, len(o.Extra))
		for k, v := range o.Extra {
			out.Extra[k] = cloneValue(v)
		}
	}
	return out
}

// IsZero reports whether no key is set.
func (o Options) IsZero() bool { return len(o.Keys()) == 0 }

// Keys returns the set keys in sorted order.
func (o Options) Keys() []string {
	m := o.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the wire value of key, or (nil, false) when it is unset.
func (o Options) Get(key string) (any, bool) {
	v, ok := o.Map()[key]
	return v, ok
}

// TitleOr returns the title, or def when it is unset.
func (o Options) TitleOr(def string) string {
	if o.Title == nil {
		return def
	}
	return *o.Title
}

// IsHeaderShown returns headerShown, or def when it is unset.
func (o Options) IsHeaderShown(def bool) bool {
	if o.HeaderShown == nil {
		return def
	}
	return *o.HeaderShown
}

// IsHiddenFromMenu reports whether hiddenFromMenu is set to true.
func (o Options) IsHiddenFromMenu() bool {
	return o.HiddenFromMenu != nil && *o.HiddenFromMenu
}

// Map flattens the options into their wire form. Typed fields win over Extra
// entries that reuse a known key. Render-only labels are left out.
func (o Options) Map() map[string]any {
	m := make(map[string]any, len(o.Extra)+4)
	for k, v := range o.Extra {
		m[k] = cloneValue(v)
	}
	putString(m, KeyTitle, o.Title)
	putBool(m, KeyHeaderShown, o.HeaderShown)
	putString(m, KeyTabBarIconName, o.TabBarIconName)
	if o.DrawerLabel != nil && o.DrawerLabel.Text != "" {
		m[KeyDrawerLabel] = o.DrawerLabel.Text
	}
	putBool(m, KeyHiddenFromMenu, o.HiddenFromMenu)
	putStyle(m, KeyDrawerItemStyle, o.DrawerItemStyle)
	putStyle(m, KeyDrawerStyle, o.DrawerStyle)
	putStyle(m, KeyTabBarStyle, o.TabBarStyle)
	putString(m, KeyTabBarActiveTintColor, o.TabBarActiveTintColor)
	putString(m, KeyTabBarInactiveTintColor, o.TabBarInactiveTintColor)
	putString(m, KeyOverlayColor, o.OverlayColor)
	putString(m, KeyDefaultStatus, o.DefaultStatus)
	return m
}

// OptionsFromMap builds Options from a wire map. Known keys with a wrong value
// type are reported as Issues rooted at p; unknown keys land in Extra.
func OptionsFromMap(m map[string]any, p PathRef) (Options, Issues) {
	var (
		o   Options
		iss Issues
	)
	str := func(key string, v any) *string {
		s, ok := v.(string)
		if !ok {
			iss = AppendIssues(iss, p.Field(key).Issue(CodeInvalidType, "expected string", "key", key))
			return nil
		}
		return &s
	}
	boolean := func(key string, v any) *bool {
		b, ok := v.(bool)
		if !ok {
			iss = AppendIssues(iss, p.Field(key).Issue(CodeInvalidType, "expected boolean", "key", key))
			return nil
		}
		return &b
	}
	style := func(key string, v any) Style {
		sm, ok := asStringMap(v)
		if !ok {
			iss = AppendIssues(iss, p.Field(key).Issue(CodeInvalidType, "expected object", "key", key))
			return nil
		}
		return Style(sm).Clone()
	}

	for _, k := range sortedKeys(m) {
		v := m[k]
		switch k {
		case KeyTitle:
			o.Title = str(k, v)
		case KeyHeaderShown:
			o.HeaderShown = boolean(k, v)
		case KeyTabBarIconName:
			o.TabBarIconName = str(k, v)
		case KeyDrawerLabel:
			if s := str(k, v); s != nil {
				o.DrawerLabel = TextLabel(*s)
			}
		case KeyHiddenFromMenu:
			o.HiddenFromMenu = boolean(k, v)
		case KeyDrawerItemStyle:
			o.DrawerItemStyle = style(k, v)
		case KeyDrawerStyle:
			o.DrawerStyle = style(k, v)
		case KeyTabBarStyle:
			o.TabBarStyle = style(k, v)
		case KeyTabBarActiveTintColor:
			o.TabBarActiveTintColor = str(k, v)
		case KeyTabBarInactiveTintColor:
			o.TabBarInactiveTintColor = str(k, v)
		case KeyOverlayColor:
			o.OverlayColor = str(k, v)
		case KeyDefaultStatus:
			o.DefaultStatus = str(k, v)
		default:
			if o.Extra == nil {
				o.Extra = map[string]any{}
			}
			o.Extra[k] = cloneValue(v)
		}
	}
	return o, iss
}

func putString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func putBool(m map[string]any, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

func putStyle(m map[string]any, key string, s Style) {
	if len(s) > 0 {
		m[key] = map[string]any(s.Clone())
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// cloneValue deep-copies the map and slice shapes produced by the wire
// decoders; every other value is returned as is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case Style:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func asStringMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Style:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = e
		}
		return out, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
