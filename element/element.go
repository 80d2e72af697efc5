package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
)

// Node is anything renderable: nil, bool (renders nothing), strings and
// numbers (text), *Element, []Node, Keyed or ChildFunc.
type Node = any

// Props are the properties of an element.
type Props map[string]any

// State is the state of a component instance.
type State map[string]any

// Context is handed down the tree from providers to descendants.
type Context map[string]any

// Element describes a node of the render output.
type Element struct {
	Type  any // tag name, Component or Fragment
	Key   string
	Ref   Ref
	Props Props

	static bool // children were given to New one by one
}

// FragmentType is the type of Fragment.
type FragmentType struct{}

// Fragment groups children without introducing a host node.
var Fragment = FragmentType{}

// Keyed is a set of children identified by the map keys.
type Keyed map[string]Node

// SortedKeys returns the keys of a keyed child set in sorted order.
func (k Keyed) SortedKeys() []string {
	keys := make([]string, 0, len(k))
	for key := range k {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ChildFunc is a child which is a function, called by the component it is
// handed to ("render prop").
type ChildFunc func(args ...any) Node

// Ref receives a reference to a mounted node or instance. It is either a
// RefFunc or a *RefObject.
type Ref any

// RefFunc is a callback ref.
type RefFunc func(target any)

// RefObject is a ref container.
type RefObject struct {
	Current any
}

// Event is a UI event handed to handlers.
type Event struct {
	Type   string // "mouseenter", "keydown", …
	Key    string // key for keyboard events, e.g. " " or "Enter"
	Target any
}

// Handler is an event handler prop.
type Handler func(*Event)

// AsHandler returns v as a handler, if it is one.
func AsHandler(v any) Handler {
	switch h := v.(type) {
	case Handler:
		return h
	case func(*Event):
		return h
	}
	return nil
}

// New creates an element, in the manner of a JSX expression. Props "key" and
// "ref" are lifted out of props. A single child is stored as is, multiple
// children are stored as a []Node.
func New(typ any, props Props, children ...Node) *Element {
	e := &Element{Type: typ, Props: make(Props, len(props)+1)}
	for k, v := range props {
		switch k {
		case "key":
			e.Key = fmt.Sprint(v)
		case "ref":
			e.Ref = v
		default:
			e.Props[k] = v
		}
	}
	switch len(children) {
	case 0:
	case 1:
		e.Props["children"] = children[0]
	default:
		e.Props["children"] = append([]Node(nil), children...)
		e.static = true
	}
	return e
}

// StaticChildren reports whether the children list of e was built by New
// from several children. Such a list has a fixed length, other lists of
// children may change from render to render.
func (e *Element) StaticChildren() bool {
	return e != nil && e.static
}

// WithProps returns a copy of e with props replaced.
func (e *Element) WithProps(props Props) *Element {
	c := *e
	c.Props = props
	return &c
}

// Children returns the children prop of an element.
func (e *Element) Children() Node {
	if e == nil || e.Props == nil {
		return nil
	}
	return e.Props["children"]
}

// String is for debugging.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.Key != "" {
		return fmt.Sprintf("<%s key=%q>", TypeName(e.Type), e.Key)
	}
	return fmt.Sprintf("<%s>", TypeName(e.Type))
}

// TypeName returns a printable name for an element type.
func TypeName(typ any) string {
	switch t := typ.(type) {
	case string:
		return t
	case FragmentType:
		return "Fragment"
	case Component:
		if n := t.Name(); n != "" {
			return n
		}
		return "Component"
	}
	return fmt.Sprintf("%T", typ)
}

// Clone returns a shallow copy of props.
func (p Props) Clone() Props {
	c := make(Props, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Without returns a copy of props with the given keys removed.
func (p Props) Without(keys ...string) Props {
	c := p.Clone()
	for _, k := range keys {
		delete(c, k)
	}
	return c
}

// Truthy interprets a prop value the way a template language would: nil,
// false, zero and the empty string are false.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0
	}
	return true
}

// WithDefaults returns props completed by defaults for missing keys.
func WithDefaults(defaults, props Props) Props {
	if len(defaults) == 0 {
		return props
	}
	p := props.Clone()
	for k, v := range defaults {
		if _, ok := p[k]; !ok {
			p[k] = v
		}
	}
	return p
}
