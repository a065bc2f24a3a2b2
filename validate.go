package navskema

// DanglingRoute is a group whose InitialRouteName names no direct child.
type DanglingRoute struct {
	Group string
	Ref   string
}

// DanglingRoutes returns every group with an unresolvable initial route, in
// pre-order.
func (s *Schema) DanglingRoutes() []DanglingRoute {
	var out []DanglingRoute
	s.Walk(func(n Node, _ []*Group, _ PathRef) bool {
		if g, ok := n.(*Group); ok && g.initialRouteName != "" {
			if _, found := g.InitialRoute(); !found {
				out = append(out, DanglingRoute{Group: g.name, Ref: g.initialRouteName})
			}
		}
		return true
	})
	return out
}

// Validate walks the schema once and reports latent defects that
// construction does not catch: dangling initial routes, names reused at
// different depths (only the first is reachable by FindByName) and a missing
// "Root" stack. It returns nil for a clean schema.
func (s *Schema) Validate() Issues {
	var iss Issues
	first := map[string]string{}
	s.Walk(func(n Node, _ []*Group, p PathRef) bool {
		if at, dup := first[n.Name()]; dup {
			iss = AppendIssues(iss, p.Issue(CodeShadowedName, "", "name", n.Name(), "first", at))
		} else {
			first[n.Name()] = p.Pointer()
		}
		switch n.Kind() {
		case KindTabs, KindDrawer, KindStack:
			g := n.(*Group)
			if g.initialRouteName == "" {
				break
			}
			if _, ok := g.InitialRoute(); !ok {
				iss = AppendIssues(iss, p.Field("initialRouteName").Issue(CodeInvalidInitialRoute, "",
					"group", g.name, "ref", g.initialRouteName))
			}
		case KindScreen:
		}
		return true
	})
	if _, ok := s.Root(); !ok {
		iss = AppendIssues(iss, RootPath().Issue(CodeRootMissing, "", "name", RootName))
	}
	if len(iss) == 0 {
		return nil
	}
	return localize(iss)
}
