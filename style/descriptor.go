package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Style is a style object: camel-cased property names mapped to values.
type Style map[string]any

// Pseudo-class keys handled by the interaction step.
const (
	Hover    = ":hover"
	Active   = ":active"
	Focus    = ":focus"
	Visited  = ":visited"
	Disabled = ":disabled"
)

const mediaPrefix = "@media"

// IsPseudoClass is true for keys like ":hover".
func IsPseudoClass(key string) bool {
	return strings.HasPrefix(key, ":")
}

// IsMediaQuery is true for keys like "@media (min-width: 600px)".
func IsMediaQuery(key string) bool {
	return strings.HasPrefix(key, mediaPrefix)
}

// MediaQuery returns the query part of a media key.
//
//     MediaQuery("@media (min-width: 600px)") => "(min-width: 600px)"
func MediaQuery(key string) string {
	return strings.TrimSpace(strings.TrimPrefix(key, mediaPrefix))
}

// MediaKey is the inverse of MediaQuery.
func MediaKey(query string) string {
	return mediaPrefix + " " + strings.TrimSpace(query)
}

// AsStyle returns v as a style object if v is a nested block, either of
// type Style or a plain map with string keys.
func AsStyle(v any) (Style, bool) {
	switch x := v.(type) {
	case Style:
		return x, x != nil
	case map[string]any:
		return Style(x), x != nil
	}
	return nil, false
}

// IsNested is true if v is a nested style block.
func IsNested(v any) bool {
	_, ok := AsStyle(v)
	return ok
}

// Clone returns a deep copy of a style object. Nested blocks are copied,
// scalar values are shared.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	c := make(Style, len(s))
	for k, v := range s {
		if sub, ok := AsStyle(v); ok {
			c[k] = sub.Clone()
			continue
		}
		c[k] = v
	}
	return c
}

// --- Descriptors -----------------------------------------------------------

/*
type Descriptor
	= Leaf Style
	| Sequence (List Descriptor)
*/

// Descriptor is a style value as found in an element's style prop: either
// a single style object or an ordered sequence of descriptors. Use Match
// to destructure:
//
//     var s Style
//     var ds []Descriptor
//     switch m := d.Match(); m {
//     case m.Leaf(&s):
//         ...
//     case m.Sequence(&ds):
//         ...
//     }
type Descriptor interface {
	Match() Matcher
}

// Matcher destructures a descriptor. Each method returns nil if the
// descriptor is not of the requested variant.
type Matcher interface {
	Leaf(*Style) Matcher
	Sequence(*[]Descriptor) Matcher
}

type descriptor struct {
	leaf Style
	seq  []Descriptor
	tag  bool // true for sequences
}

// Leaf creates a descriptor holding a single style object.
func Leaf(s Style) Descriptor {
	return &descriptor{leaf: s}
}

// Seq creates a descriptor from a sequence of descriptors. Nil entries are
// skipped.
func Seq(ds ...Descriptor) Descriptor {
	seq := make([]Descriptor, 0, len(ds))
	for _, d := range ds {
		if d != nil {
			seq = append(seq, d)
		}
	}
	return &descriptor{seq: seq, tag: true}
}

func (d *descriptor) Match() Matcher {
	return &matcher{d: d}
}

type matcher struct {
	d *descriptor
}

func (m *matcher) Leaf(s *Style) Matcher {
	if !m.d.tag {
		*s = m.d.leaf
		return m
	}
	return nil
}

func (m *matcher) Sequence(ds *[]Descriptor) Matcher {
	if m.d.tag {
		*ds = m.d.seq
		return m
	}
	return nil
}

// Of converts a raw style prop value to a descriptor. Accepted are style
// objects, plain maps, slices thereof (arbitrarily nested) and descriptors.
// Falsy entries (nil, false) are skipped, which allows conditional entries
// like
//
//     []any{base, isPrimary && primary}
//
// in languages with short-circuit values; in Go, pass nil instead.
// Of returns nil for values which are no style at all.
func Of(v any) Descriptor {
	switch x := v.(type) {
	case nil:
		return nil
	case bool:
		return nil
	case Descriptor:
		return x
	case Style:
		return Leaf(x)
	case map[string]any:
		return Leaf(Style(x))
	case []Style:
		ds := make([]Descriptor, len(x))
		for i, s := range x {
			ds[i] = Leaf(s)
		}
		return Seq(ds...)
	case []Descriptor:
		return Seq(x...)
	case []any:
		ds := make([]Descriptor, 0, len(x))
		for _, e := range x {
			if d := Of(e); d != nil {
				ds = append(ds, d)
			}
		}
		return Seq(ds...)
	}
	tracer().Debugf("style: ignoring style value of type %T", v)
	return nil
}
