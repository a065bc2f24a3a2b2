package navskema

import (
	"io"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/navskema/internal/engine"
)

// wireNode is the serialized shape of a node. render handles never appear on
// the wire.
type wireNode struct {
	Kind             string         `json:"kind" yaml:"kind" toml:"kind"`
	Name             string         `json:"name" yaml:"name" toml:"name"`
	InitialRouteName string         `json:"initialRouteName,omitempty" yaml:"initialRouteName,omitempty" toml:"initialRouteName,omitempty"`
	Link             string         `json:"link,omitempty" yaml:"link,omitempty" toml:"link,omitempty"`
	Options          map[string]any `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	OwnOptions       map[string]any `json:"ownOptions,omitempty" yaml:"ownOptions,omitempty" toml:"ownOptions,omitempty"`
	ChildDefaults    map[string]any `json:"childDefaults,omitempty" yaml:"childDefaults,omitempty" toml:"childDefaults,omitempty"`
	Children         []wireNode     `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

func toWire(n Node) wireNode {
	w := wireNode{Kind: n.Kind().String(), Name: n.Name()}
	switch n.Kind() {
	case KindScreen:
		s := n.(*Screen)
		w.Link = s.link
		w.Options = nonEmpty(s.options.Map())
	case KindTabs, KindDrawer, KindStack:
		g := n.(*Group)
		w.InitialRouteName = g.initialRouteName
		w.Options = nonEmpty(g.options.Map())
		w.OwnOptions = nonEmpty(g.ownOptions.Map())
		w.ChildDefaults = nonEmpty(g.childDefaults.Map())
		w.Children = make([]wireNode, 0, len(g.children))
		for _, c := range g.children {
			w.Children = append(w.Children, toWire(c))
		}
	}
	return w
}

func nonEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}

func (s *Schema) wire() []wireNode {
	out := make([]wireNode, 0, len(s.roots))
	for _, n := range s.roots {
		out = append(out, toWire(n))
	}
	return out
}

// MarshalJSON encodes the schema as an array of wire nodes.
func (s *Schema) MarshalJSON() ([]byte, error) { return json.Marshal(s.wire()) }

// MarshalYAML encodes the schema as a sequence of wire nodes.
func (s *Schema) MarshalYAML() (any, error) { return s.wire(), nil }

// MarshalJSON encodes the options in their wire form.
func (o Options) MarshalJSON() ([]byte, error) { return json.Marshal(o.Map()) }

// MarshalYAML encodes the options in their wire form.
func (o Options) MarshalYAML() (any, error) { return o.Map(), nil }

// EncodeJSON writes the wire form of s to w, indented when indent is true.
func EncodeJSON(w io.Writer, s *Schema, indent bool) error {
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(s.wire(), "", "  ")
	} else {
		b, err = json.Marshal(s.wire())
	}
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// EncodeYAML writes the wire form of s to w.
func EncodeYAML(w io.Writer, s *Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.wire()); err != nil {
		return err
	}
	return enc.Close()
}

// EncodeTOML writes the wire form of s to w under a top-level "roots" array
// of tables.
func EncodeTOML(w io.Writer, s *Schema) error {
	doc := struct {
		Roots []wireNode `toml:"roots"`
	}{Roots: s.wire()}
	return toml.NewEncoder(w).Encode(doc)
}

// DecodeOpt configures wire decoding.
type DecodeOpt struct {
	// Components rebinds render handles, keyed by screen name. Screens get a
	// nil handle when it is unset or returns nil.
	Components func(screen string) Render
	// MaxDepth bounds JSON container nesting; 0 uses the engine default,
	// negative disables the check.
	MaxDepth int
}

// DecodeJSON rebuilds a schema from its JSON wire form. Wire defects,
// including repeated object keys, are returned as Issues.
func DecodeJSON(data []byte, opt DecodeOpt) (*Schema, error) {
	found, err := engine.Scan(data, engine.Limits{MaxDepth: opt.MaxDepth})
	if err != nil {
		return nil, parseIssue(err)
	}
	if len(found) > 0 {
		var iss Issues
		for _, f := range found {
			it := Issue{Path: f.Path, Code: f.Code, Params: map[string]any{}}
			if f.Key != "" {
				it.Params["key"] = f.Key
			}
			iss = AppendIssues(iss, it)
		}
		return nil, localize(iss)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, parseIssue(err)
	}
	return decodeAny(v, opt)
}

func parseIssue(err error) Issues {
	return localize(Issues{{Path: "/", Code: CodeParseError, Params: map[string]any{"cause": err.Error()}, Hint: err.Error()}})
}

// DecodeYAML rebuilds a schema from its YAML wire form.
func DecodeYAML(data []byte, opt DecodeOpt) (*Schema, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, parseIssue(err)
	}
	return decodeAny(v, opt)
}

func decodeAny(v any, opt DecodeOpt) (*Schema, error) {
	d := decoder{opt: opt}
	roots := d.nodes(v, RootPath(), false)
	if len(d.iss) > 0 {
		return nil, localize(d.iss)
	}
	s, err := New(roots...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

type decoder struct {
	opt DecodeOpt
	iss Issues
}

func (d *decoder) add(it Issue) { d.iss = AppendIssues(d.iss, it) }

func (d *decoder) nodes(v any, p PathRef, screensOnly bool) []Node {
	if v == nil {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		d.add(p.Issue(CodeInvalidType, "", "expected", "array"))
		return nil
	}
	out := make([]Node, 0, len(arr))
	seen := map[string]struct{}{}
	for i, e := range arr {
		ep := p.Index(i)
		n := d.node(e, ep)
		if n == nil {
			continue
		}
		if screensOnly && n.Kind() != KindScreen {
			d.add(ep.Issue(CodeInvalidChild, "", "name", n.Name(), "kind", n.Kind().String()))
			continue
		}
		if _, dup := seen[n.Name()]; dup {
			d.add(ep.Field("name").Issue(CodeDuplicateName, "", "name", n.Name()))
			continue
		}
		seen[n.Name()] = struct{}{}
		out = append(out, n)
	}
	return out
}

func (d *decoder) node(v any, p PathRef) Node {
	m, ok := asStringMap(v)
	if !ok {
		d.add(p.Issue(CodeInvalidType, "", "expected", "object"))
		return nil
	}
	tag, _ := m["kind"].(string)
	if tag == "" {
		d.add(p.Field("kind").Issue(CodeDiscriminatorMissing, ""))
		return nil
	}
	kind, ok := ParseKind(tag)
	if !ok {
		d.add(p.Field("kind").Issue(CodeDiscriminatorUnknown, "", "kind", tag))
		return nil
	}
	name, _ := m["name"].(string)
	if name == "" {
		d.add(p.Field("name").Issue(CodeMissingName, ""))
		return nil
	}
	before := len(d.iss)
	opts := d.options(m, "options", p)

	switch kind {
	case KindScreen:
		link := d.str(m, "link", p)
		if len(d.iss) > before {
			return nil
		}
		var r Render
		if d.opt.Components != nil {
			r = d.opt.Components(name)
		}
		s, err := NewScreen(name, ScreenSpec{Render: r, Options: opts, Link: link})
		if err != nil {
			d.add(p.Issue(CodeParseError, err.Error()))
			return nil
		}
		return s
	case KindTabs, KindDrawer, KindStack:
		spec := GroupSpec{
			InitialRouteName: d.str(m, "initialRouteName", p),
			Options:          opts,
			OwnOptions:       d.options(m, "ownOptions", p),
			ChildDefaults:    d.options(m, "childDefaults", p),
		}
		children := d.nodes(m["children"], p.Field("children"), kind == KindTabs)
		if len(d.iss) > before {
			return nil
		}
		g, err := NewGroup(kind, name, spec, children...)
		if err != nil {
			d.add(p.Issue(CodeParseError, err.Error()))
			return nil
		}
		return g
	}
	return nil
}

func (d *decoder) str(m map[string]any, key string, p PathRef) string {
	v, present := m[key]
	if !present || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.add(p.Field(key).Issue(CodeInvalidType, "", "expected", "string"))
	}
	return s
}

func (d *decoder) options(m map[string]any, key string, p PathRef) Options {
	v, present := m[key]
	if !present || v == nil {
		return Options{}
	}
	om, ok := asStringMap(v)
	if !ok {
		d.add(p.Field(key).Issue(CodeInvalidType, "", "expected", "object"))
		return Options{}
	}
	o, iss := OptionsFromMap(om, p.Field(key))
	d.iss = append(d.iss, iss...)
	return o
}
