// Package icon resolves tabBarIconName identifiers to drawable glyphs.
package icon

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Glyph is what a renderer draws for an icon.
type Glyph struct {
	Name string
	Text string
	Size int
}

// Lookup resolves an icon identifier. It reports false when nothing should
// be drawn.
type Lookup interface {
	Glyph(name string, focused bool, size int) (Glyph, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(name string, focused bool, size int) (Glyph, bool)

func (f LookupFunc) Glyph(name string, focused bool, size int) (Glyph, bool) {
	return f(name, focused, size)
}

// FocusBump is added to the size of a focused glyph.
const FocusBump = 2

// Placeholder draws the first two letters of the identifier, upper-cased.
type Placeholder struct{}

func (Placeholder) Glyph(name string, focused bool, size int) (Glyph, bool) {
	if name == "" {
		return Glyph{}, false
	}
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	if focused {
		size += FocusBump
	}
	return Glyph{Name: name, Text: cases.Upper(language.Und).String(string(r)), Size: size}, true
}
