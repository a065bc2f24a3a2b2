// Package appnav holds the application's navigation tree. The tree is
// compiled in and built once per process; both the native and the web
// adapters read the same value.
package appnav

import (
	"sync"

	navskema "github.com/reoring/navskema"
	g "github.com/reoring/navskema/dsl"
)

// Component names the screen components. The resolver treats them as opaque
// render handles; the rendering layer maps them to real views.
type Component string

const (
	HomeScreen     Component = "HomeScreen"
	AccountScreen  Component = "AccountScreen"
	SubsScreen     Component = "SubsScreen"
	SettingsScreen Component = "SettingsScreen"
	OptionsScreen  Component = "OptionsScreen"
)

// Group and screen names referenced by the adapters.
const (
	Root     = navskema.RootName
	DrawerNS = "(drawer)"
	TabsNS   = "(tabs)"
)

var schema = sync.OnceValue(build)

// Schema returns the process-wide navigation schema.
func Schema() *navskema.Schema { return schema() }

func build() *navskema.Schema {
	return g.MustSchema(
		g.Stack(Root).
			Initial(DrawerNS).
			ChildDefaults(g.Opts().HeaderShown(false)).
			Children(
				g.Drawer(DrawerNS).
					Initial(TabsNS).
					Options(g.Opts().HeaderShown(false)).
					OwnOptions(g.Opts().
						DefaultStatus("closed").
						DrawerStyle(navskema.Style{"backgroundColor": "white", "width": 280}).
						OverlayColor("rgba(0, 0, 0, 0.5)")).
					ChildDefaults(g.Opts().HeaderShown(true)).
					Children(
						g.Tabs(TabsNS).
							Initial("home").
							Options(g.Opts().
								Title("Vidream Main").
								HiddenFromMenu().
								Set("href", "/drawer")).
							ChildDefaults(g.Opts().HeaderShown(false)).
							Screens(
								g.Screen("home").
									Render(HomeScreen).
									Link("/drawer/home").
									Options(g.Opts().Title("Home").TabBarIcon("home")),
								g.Screen("account").
									Render(AccountScreen).
									Link("/drawer/account").
									Options(g.Opts().Title("Account").TabBarIcon("person")),
								g.Screen("subs").
									Render(SubsScreen).
									Link("/drawer/subs").
									Options(g.Opts().Title("Subscriptions").TabBarIcon("subscriptions")),
							),
						g.Screen("settings").
							Render(SettingsScreen).
							Link("/drawer/settings").
							Options(g.Opts().Title("Settings").DrawerLabel("Settings")),
						g.Screen("options").
							Render(OptionsScreen).
							Link("/drawer/options").
							Options(g.Opts().Title("Options").DrawerLabel("Options")),
					),
			),
	)
}
