package adapter_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/adapter"
	"github.com/reoring/navskema/appnav"
	"github.com/reoring/navskema/icon"
)

func TestBind_Drawer(t *testing.T) {
	nav, err := adapter.Bind(appnav.Schema(), appnav.DrawerNS)
	require.NoError(t, err)

	assert.Equal(t, navskema.KindDrawer, nav.Kind)
	assert.Equal(t, appnav.TabsNS, nav.InitialRoute)
	assert.Equal(t, []string{appnav.Root, appnav.DrawerNS}, nav.Path)
	assert.Equal(t, map[string]any{"headerShown": false}, nav.Self.Map())
	assert.Equal(t, "closed", *nav.Chrome.DefaultStatus)
	assert.Equal(t, navskema.Style{"backgroundColor": "white", "width": 280}, nav.Chrome.DrawerStyle)

	require.Len(t, nav.Items, 3)
	tabs := nav.Items[0]
	assert.Equal(t, appnav.TabsNS, tabs.Name)
	assert.True(t, tabs.Nested())
	assert.True(t, tabs.Hidden)
	assert.Equal(t, "Vidream Main", tabs.Label)
	assert.Equal(t, map[string]any{"display": "none"}, tabs.Props()[navskema.KeyDrawerItemStyle])

	settings, ok := nav.Item("settings")
	require.True(t, ok)
	assert.False(t, settings.Hidden)
	assert.Equal(t, "Settings", settings.Label)
	assert.True(t, settings.Options.IsHeaderShown(false))
	assert.NotContains(t, settings.Props(), navskema.KeyDrawerItemStyle)

	var menu []string
	for _, it := range nav.MenuItems() {
		menu = append(menu, it.Name)
	}
	assert.Equal(t, []string{"settings", "options"}, menu)

	first, ok := nav.InitialItem()
	require.True(t, ok)
	assert.Equal(t, appnav.TabsNS, first.Name)
}

func TestBind_TabsItems(t *testing.T) {
	nav, err := adapter.Bind(appnav.Schema(), appnav.TabsNS)
	require.NoError(t, err)

	var icons []string
	for _, it := range nav.Items {
		icons = append(icons, it.Icon)
		assert.False(t, it.Options.IsHeaderShown(true), "%s inherits headerShown=false", it.Name)
		assert.False(t, it.Nested())
	}
	assert.Equal(t, []string{"home", "person", "subscriptions"}, icons)
	assert.Equal(t, "Home", nav.Items[0].Label)
}

func TestBind_Errors(t *testing.T) {
	_, err := adapter.Bind(appnav.Schema(), "nope")
	assert.ErrorIs(t, err, adapter.ErrConfigurationMissing)

	_, err = adapter.Bind(appnav.Schema(), "home")
	assert.ErrorIs(t, err, adapter.ErrNotNavigator)

	_, err = adapter.BindPath(navskema.Path{})
	assert.ErrorIs(t, err, adapter.ErrConfigurationMissing)

	s, err := navskema.New()
	require.NoError(t, err)
	_, err = adapter.BindRoot(s)
	assert.ErrorIs(t, err, adapter.ErrConfigurationMissing)
}

func TestBindRoot(t *testing.T) {
	nav, err := adapter.BindRoot(appnav.Schema())
	require.NoError(t, err)
	assert.Equal(t, appnav.Root, nav.Name)
	assert.Equal(t, []string{appnav.Root}, nav.Path)
	require.Len(t, nav.Items, 1)
	assert.Equal(t, map[string]any{"headerShown": false}, nav.Items[0].Options.Map())
}

func TestNavigator_HeaderAndDanglingInitial(t *testing.T) {
	a, err := navskema.NewScreen("a", navskema.ScreenSpec{Options: navskema.Options{Title: navskema.String("Alpha")}})
	require.NoError(t, err)
	b, err := navskema.NewScreen("b", navskema.ScreenSpec{})
	require.NoError(t, err)
	d, err := navskema.NewGroup(navskema.KindDrawer, "D", navskema.GroupSpec{InitialRouteName: "a"}, a, b)
	require.NoError(t, err)
	x, err := navskema.NewGroup(navskema.KindStack, "X", navskema.GroupSpec{InitialRouteName: "missing"}, b)
	require.NoError(t, err)
	s, err := navskema.New(d, x)
	require.NoError(t, err)

	nav, err := adapter.Bind(s, "D")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", nav.HeaderTitle("a"))
	assert.Equal(t, "D", nav.HeaderTitle("b"))
	assert.Equal(t, "D", nav.HeaderTitle("unknown"))

	action, target := nav.HeaderLeft("a")
	assert.Equal(t, adapter.HeaderToggleMenu, action)
	assert.Empty(t, target)
	action, target = nav.HeaderLeft("b")
	assert.Equal(t, adapter.HeaderBack, action)
	assert.Equal(t, "a", target)
	assert.Equal(t, "back", action.String())

	dangling, err := adapter.Bind(s, "X")
	require.NoError(t, err)
	_, ok := dangling.InitialItem()
	assert.False(t, ok)
}

func TestItem_LabelRender(t *testing.T) {
	render := "LabelComponent"
	sc, err := navskema.NewScreen("s", navskema.ScreenSpec{Options: navskema.Options{
		DrawerLabel: &navskema.Label{Text: "S", Render: render},
	}})
	require.NoError(t, err)
	g, err := navskema.NewGroup(navskema.KindDrawer, "D", navskema.GroupSpec{}, sc)
	require.NoError(t, err)
	s, err := navskema.New(g)
	require.NoError(t, err)

	nav, err := adapter.Bind(s, "D")
	require.NoError(t, err)
	assert.Equal(t, navskema.Render(render), nav.Items[0].LabelRender())
	assert.Equal(t, "S", nav.Items[0].Label)
}

func TestCompare(t *testing.T) {
	a, err := adapter.Bind(appnav.Schema(), appnav.DrawerNS)
	require.NoError(t, err)
	b, err := adapter.Bind(appnav.Schema(), appnav.DrawerNS)
	require.NoError(t, err)
	assert.NoError(t, adapter.Compare(a, b))

	b.InitialRoute = "settings"
	b.Items[1].Icon = "gear"
	b.Items[2].Options.Title = navskema.String("Changed")
	err = adapter.Compare(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 errors occurred")

	assert.Error(t, adapter.Compare(a, nil))
	assert.NoError(t, adapter.Compare(nil, nil))
}

func TestConfig_LoadLogsFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	cfg := adapter.NewConfig(adapter.WithLogger(logger))

	_, err := cfg.Load("native", appnav.Schema(), "missing")
	require.Error(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "missing", entry.Data["navigator"])
	assert.Equal(t, "native", entry.Data["platform"])

	nav, err := cfg.Load("web", appnav.Schema(), "")
	require.NoError(t, err)
	assert.Equal(t, appnav.Root, nav.Name)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestConfig_Icon(t *testing.T) {
	cfg := adapter.NewConfig(adapter.WithIcons(icon.LookupFunc(func(name string, focused bool, size int) (icon.Glyph, bool) {
		return icon.Glyph{Name: name, Size: size}, true
	})))
	g, ok := cfg.Icon(adapter.Item{Icon: "home"}, false, 24)
	require.True(t, ok)
	assert.Equal(t, icon.Glyph{Name: "home", Size: 24}, g)

	_, ok = cfg.Icon(adapter.Item{}, false, 24)
	assert.False(t, ok)
}
