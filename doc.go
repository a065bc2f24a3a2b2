// Package navskema provides:
//
// - An immutable navigation tree of screens and navigator groups (tabs, drawer, stack)
// - Depth-first name lookup (FindByName/FindPath) and one-level option resolution (ResolveOptions)
// - A stable error model via Issues (JSON Pointer, code, message) for wire decoding and Validate
// - JSON/YAML wire codecs and a TOML dump
//
// Design policy:
// - Keep the tree and the resolver in the root package; builders live under dsl/.
// - Platform renderers go through adapter.Bind so they cannot disagree on options.
// - The core never logs; diagnostics belong to the adapters and the CLI under cmd/navskema.
//
// Typical usage:
//
//	s := appnav.Schema()
//	p, ok := s.Lookup("settings")
//	eff := p.Resolve() // parent ChildDefaults overlaid with the node's own Options
//	iss := s.Validate()
package navskema
