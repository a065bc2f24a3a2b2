package navskema_test

import (
	"errors"
	"reflect"
	"testing"

	navskema "github.com/reoring/navskema"
)

// scenario builds Root(stack) -> Drawer(drawer) -> [Tabs(tabs) -> [home, account], settings].
func scenario(t *testing.T) *navskema.Schema {
	t.Helper()
	home := screen(t, "home", navskema.Options{Title: navskema.String("Home"), TabBarIconName: navskema.String("home")})
	account := screen(t, "account", navskema.Options{Title: navskema.String("Account"), TabBarIconName: navskema.String("person")})
	tabs := group(t, navskema.KindTabs, "Tabs", navskema.GroupSpec{
		InitialRouteName: "home",
		Options:          navskema.Options{Title: navskema.String("Main"), HiddenFromMenu: navskema.Bool(true)},
		ChildDefaults:    navskema.Options{HeaderShown: navskema.Bool(false)},
	}, home, account)
	settings := screen(t, "settings", navskema.Options{Title: navskema.String("Settings"), DrawerLabel: navskema.TextLabel("Settings")})
	drawer := group(t, navskema.KindDrawer, "Drawer", navskema.GroupSpec{
		InitialRouteName: "Tabs",
		OwnOptions:       navskema.Options{DrawerStyle: navskema.Style{"width": 280}},
		ChildDefaults:    navskema.Options{HeaderShown: navskema.Bool(true)},
	}, tabs, settings)
	root := group(t, navskema.KindStack, navskema.RootName, navskema.GroupSpec{
		InitialRouteName: "Drawer",
		ChildDefaults:    navskema.Options{HeaderShown: navskema.Bool(false)},
	}, drawer)
	s, err := navskema.New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestScenario_EndToEnd(t *testing.T) {
	s := scenario(t)

	n, ok := s.Find("settings")
	if !ok || n.Kind() != navskema.KindScreen {
		t.Fatalf("settings: got %v", n)
	}
	if l := n.Options().DrawerLabel; l == nil || l.Text != "Settings" {
		t.Fatalf("settings drawerLabel = %v", l)
	}

	n, ok = s.Find("Tabs")
	if !ok || n.Kind() != navskema.KindTabs {
		t.Fatalf("Tabs: got %v", n)
	}
	g := n.(*navskema.Group)
	if g.InitialRouteName() != "home" {
		t.Fatalf("Tabs initial route = %q", g.InitialRouteName())
	}
	if ir, ok := g.InitialRoute(); !ok || ir.Name() != "home" {
		t.Fatalf("Tabs initial route node = %v", ir)
	}

	root, ok := s.Root()
	if !ok {
		t.Fatalf("Root stack missing")
	}
	if len(s.Roots()) != 1 || s.Roots()[0] != navskema.Node(root) {
		t.Fatalf("Root must be the only top-level node")
	}

	p, _ := s.Lookup("settings")
	if got := p.Resolve().Map(); !reflect.DeepEqual(got, map[string]any{
		"headerShown": true, "title": "Settings", "drawerLabel": "Settings",
	}) {
		t.Fatalf("settings resolved = %v", got)
	}
	if iss := s.Validate(); iss != nil {
		t.Fatalf("Validate: %v", iss)
	}
}

func TestNewScreen_MissingName(t *testing.T) {
	if _, err := navskema.NewScreen("", navskema.ScreenSpec{}); !errors.Is(err, navskema.ErrMissingName) {
		t.Fatalf("want ErrMissingName, got %v", err)
	}
}

func TestNewGroup_ConstructionErrors(t *testing.T) {
	a := screen(t, "a", navskema.Options{})
	a2 := screen(t, "a", navskema.Options{Title: navskema.String("again")})
	inner := group(t, navskema.KindStack, "inner", navskema.GroupSpec{}, a)

	cases := []struct {
		name     string
		kind     navskema.Kind
		group    string
		children []navskema.Node
		want     error
	}{
		{"screen kind", navskema.KindScreen, "g", nil, navskema.ErrInvalidKind},
		{"empty name", navskema.KindStack, "", nil, navskema.ErrMissingName},
		{"duplicate siblings", navskema.KindDrawer, "g", []navskema.Node{a, a2}, navskema.ErrDuplicateName},
		{"group inside tabs", navskema.KindTabs, "g", []navskema.Node{inner}, navskema.ErrInvalidChild},
		{"nil child", navskema.KindStack, "g", []navskema.Node{nil}, navskema.ErrInvalidChild},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := navskema.NewGroup(tc.kind, tc.group, navskema.GroupSpec{}, tc.children...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}

	// same name at different levels is allowed
	if _, err := navskema.NewGroup(navskema.KindDrawer, "a", navskema.GroupSpec{}, inner); err != nil {
		t.Fatalf("nested reuse of a name must be accepted: %v", err)
	}
}

func TestNew_DuplicateRoots(t *testing.T) {
	a := screen(t, "a", navskema.Options{})
	b := screen(t, "a", navskema.Options{})
	if _, err := navskema.New(a, b); !errors.Is(err, navskema.ErrDuplicateName) {
		t.Fatalf("want ErrDuplicateName, got %v", err)
	}
}

func TestNodes_AreImmutable(t *testing.T) {
	spec := navskema.Options{Title: navskema.String("T"), DrawerStyle: navskema.Style{"width": 280}}
	s, err := navskema.NewScreen("s", navskema.ScreenSpec{Options: spec})
	if err != nil {
		t.Fatal(err)
	}
	// mutating the input after construction
	*spec.Title = "changed"
	spec.DrawerStyle["width"] = 1
	// mutating an accessor result
	got := s.Options()
	got.DrawerStyle["color"] = "red"

	if want := map[string]any{"title": "T", "drawerStyle": map[string]any{"width": 280}}; !reflect.DeepEqual(s.Options().Map(), want) {
		t.Fatalf("screen options changed: %v", s.Options().Map())
	}

	g := group(t, navskema.KindStack, "g", navskema.GroupSpec{}, s)
	kids := g.Children()
	kids[0] = nil
	if g.Children()[0] == nil {
		t.Fatalf("Children must return a copy")
	}
}

func TestSchema_RootOfIgnoresNested(t *testing.T) {
	nestedRoot := group(t, navskema.KindStack, navskema.RootName, navskema.GroupSpec{}, screen(t, "x", navskema.Options{}))
	outer := group(t, navskema.KindDrawer, "outer", navskema.GroupSpec{}, nestedRoot)
	s, err := navskema.New(outer)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Root(); ok {
		t.Fatalf("a nested Root stack must not be returned")
	}
	if _, ok := s.RootOf(navskema.KindDrawer, "outer"); !ok {
		t.Fatalf("outer drawer should be found")
	}
	if _, ok := s.RootOf(navskema.KindStack, "outer"); ok {
		t.Fatalf("kind must match")
	}
}

func TestSchema_WalkPreOrder(t *testing.T) {
	s := scenario(t)
	var names, pointers []string
	s.Walk(func(n navskema.Node, ancestors []*navskema.Group, p navskema.PathRef) bool {
		names = append(names, n.Name())
		pointers = append(pointers, p.Pointer())
		return n.Name() != "Tabs"
	})
	if want := []string{"Root", "Drawer", "Tabs", "settings"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("walk order = %v, want %v", names, want)
	}
	if pointers[3] != "/0/children/0/children/1" {
		t.Fatalf("settings pointer = %q", pointers[3])
	}
}

func TestKind_ParseAndString(t *testing.T) {
	for _, k := range []navskema.Kind{navskema.KindScreen, navskema.KindTabs, navskema.KindDrawer, navskema.KindStack} {
		got, ok := navskema.ParseKind(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := navskema.ParseKind("modal"); ok {
		t.Fatalf("unknown tag must not parse")
	}
	if navskema.KindScreen.IsGroup() || !navskema.KindTabs.IsGroup() {
		t.Fatalf("IsGroup mismatch")
	}
}
