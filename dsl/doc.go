// Package dsl provides fluent builders for navskema trees.
//
// Overview
//   - Opts(): chain Title/HeaderShown/TabBarIcon/DrawerLabel/... into an OptionSet.
//   - Screen(name): a leaf with Render/Link/Options.
//   - Stack(name), Drawer(name): groups with Initial/Options/OwnOptions/ChildDefaults/Children.
//   - Tabs(name): like a group, but Screens only accepts screen builders.
//   - Schema(roots...)/MustSchema(roots...): build every root and assemble the schema.
//
// Construction errors (empty names, duplicate siblings, nil children) surface
// from Build/Schema as the navskema sentinel errors; Must* variants panic and
// are meant for compiled-in trees.
package dsl
