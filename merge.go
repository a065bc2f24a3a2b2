package navskema

// MergeOptions layers option sets, later layers winning. Every key replaces
// the earlier value wholesale except Style fields, which are merged key by
// key. The result shares no pointers or maps with the inputs.
func MergeOptions(layers ...Options) Options {
	var out Options
	for _, l := range layers {
		out = overlay(out, l)
	}
	return out
}

func overlay(base, top Options) Options {
	out := base.Clone()
	if top.Title != nil {
		out.Title = cloneString(top.Title)
	}
	if top.HeaderShown != nil {
		out.HeaderShown = cloneBool(top.HeaderShown)
	}
	if top.TabBarIconName != nil {
		out.TabBarIconName = cloneString(top.TabBarIconName)
	}
	if top.DrawerLabel != nil {
		l := *top.DrawerLabel
		out.DrawerLabel = &l
	}
	if top.HiddenFromMenu != nil {
		out.HiddenFromMenu = cloneBool(top.HiddenFromMenu)
	}
	if top.TabBarActiveTintColor != nil {
		out.TabBarActiveTintColor = cloneString(top.TabBarActiveTintColor)
	}
	if top.TabBarInactiveTintColor != nil {
		out.TabBarInactiveTintColor = cloneString(top.TabBarInactiveTintColor)
	}
	if top.OverlayColor != nil {
		out.OverlayColor = cloneString(top.OverlayColor)
	}
	if top.DefaultStatus != nil {
		out.DefaultStatus = cloneString(top.DefaultStatus)
	}
	out.DrawerItemStyle = mergeStyle(out.DrawerItemStyle, top.DrawerItemStyle)
	out.DrawerStyle = mergeStyle(out.DrawerStyle, top.DrawerStyle)
	out.TabBarStyle = mergeStyle(out.TabBarStyle, top.TabBarStyle)
	for k, v := range top.Extra {
		if out.Extra == nil {
			out.Extra = make(map[string]any, len(top.Extra))
		}
		out.Extra[k] = cloneValue(v)
	}
	return out
}

// mergeStyle unions two style dictionaries; keys of top win and their values
// replace the base value wholesale, nested dictionaries included.
func mergeStyle(base, top Style) Style {
	if len(top) == 0 {
		return base
	}
	out := base.Clone()
	if out == nil {
		out = make(Style, len(top))
	}
	for k, v := range top {
		out[k] = cloneValue(v)
	}
	return out
}
