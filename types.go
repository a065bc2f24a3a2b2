package navskema

// Kind discriminates the variants of Node.
type Kind int

const (
	KindScreen Kind = iota // Leaf navigable view.
	KindTabs               // Tab-style navigator; children are screens only.
	KindDrawer             // Drawer-style navigator.
	KindStack              // Push/pop navigator.
)

var kindNames = [...]string{
	KindScreen: "screen",
	KindTabs:   "tabs",
	KindDrawer: "drawer",
	KindStack:  "stack",
}

// String returns the wire tag of the kind ("screen", "tabs", "drawer", "stack").
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsGroup reports whether nodes of this kind carry children.
func (k Kind) IsGroup() bool {
	switch k {
	case KindTabs, KindDrawer, KindStack:
		return true
	default:
		return false
	}
}

// ParseKind maps a wire tag back to its Kind.
func ParseKind(tag string) (Kind, bool) {
	for i, n := range kindNames {
		if n == tag {
			return Kind(i), true
		}
	}
	return 0, false
}

// Render is an opaque handle to a UI component. The resolver never inspects it.
type Render any

// RootName is the name of the top-level stack that adapters bootstrap from.
const RootName = "Root"
