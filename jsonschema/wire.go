package jsonschema

import navskema "github.com/reoring/navskema"

// Draft is the JSON Schema dialect of the exported document.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Wire returns the JSON Schema of the navskema wire form: an array of nodes,
// each a screen or a group with nested children.
func Wire() *Schema {
	one := 1
	str := func(desc string) *Schema { return &Schema{Type: "string", Description: desc} }
	boolean := func(desc string) *Schema { return &Schema{Type: "boolean", Description: desc} }
	style := func(desc string) *Schema {
		return &Schema{Type: "object", Description: desc, AdditionalProperties: true}
	}
	options := &Schema{
		Type:        "object",
		Description: "Presentation options; unknown keys are passed through to the platform.",
		Properties: map[string]*Schema{
			navskema.KeyTitle:                   str("Display title."),
			navskema.KeyHeaderShown:             boolean("Whether the navigator header is rendered."),
			navskema.KeyTabBarIconName:          str("Icon identifier resolved by the icon lookup."),
			navskema.KeyDrawerLabel:             str("Drawer menu label."),
			navskema.KeyHiddenFromMenu:          boolean("Hide the node from its parent's menu."),
			navskema.KeyDrawerItemStyle:         style("Drawer item style; merged key by key."),
			navskema.KeyDrawerStyle:             style("Drawer container style; merged key by key."),
			navskema.KeyTabBarStyle:             style("Tab bar style; merged key by key."),
			navskema.KeyTabBarActiveTintColor:   str("Tint of the focused tab."),
			navskema.KeyTabBarInactiveTintColor: str("Tint of unfocused tabs."),
			navskema.KeyOverlayColor:            str("Drawer overlay color."),
			navskema.KeyDefaultStatus:           {Type: "string", Enum: []any{"open", "closed"}, Description: "Initial drawer state."},
		},
		AdditionalProperties: true,
	}
	kinds := make([]any, 0, 4)
	for _, k := range []navskema.Kind{navskema.KindScreen, navskema.KindTabs, navskema.KindDrawer, navskema.KindStack} {
		kinds = append(kinds, k.String())
	}
	node := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"kind":             {Type: "string", Enum: kinds},
			"name":             {Type: "string", MinLength: &one, Description: "Unique among siblings."},
			"initialRouteName": str("Name of the direct child shown first (groups only)."),
			"link":             str("External path (screens only)."),
			"options":          {Ref: "#/$defs/options"},
			"ownOptions":       {Ref: "#/$defs/options"},
			"childDefaults":    {Ref: "#/$defs/options"},
			"children":         {Type: "array", Items: &Schema{Ref: "#/$defs/node"}},
		},
		Required:             []string{"kind", "name"},
		AdditionalProperties: false,
	}
	return &Schema{
		Schema: Draft,
		Title:  "navskema",
		Type:   "array",
		Items:  &Schema{Ref: "#/$defs/node"},
		Defs:   map[string]*Schema{"node": node, "options": options},
	}
}
