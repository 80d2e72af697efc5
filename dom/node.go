package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/style"
)

// TextTag is the tag of text nodes.
const TextTag = "#text"

// Node is a rendered host node.
type Node struct {
	Tag      string
	Key      string
	Props    element.Props // without children
	Text     string        // content of text nodes
	Children []*Node
	Parent   *Node
}

// IsText is true for text nodes.
func (n *Node) IsText() bool {
	return n.Tag == TextTag
}

// Style returns the inline style of a node. Nodes without a style have an
// empty style.
func (n *Node) Style() style.Style {
	if n == nil {
		return style.Style{}
	}
	if s, ok := style.AsStyle(n.Props["style"]); ok {
		return s
	}
	return style.Style{}
}

// Handler returns the event handler prop with the given name, e.g.
// "onMouseEnter".
func (n *Node) Handler(name string) element.Handler {
	if n == nil {
		return nil
	}
	return element.AsHandler(n.Props[name])
}

// TextContent concatenates the text of all descendant text nodes.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Walk calls f for n and all of its descendants, in document order.
func (n *Node) Walk(f func(*Node)) {
	f(n)
	for _, c := range n.Children {
		c.Walk(f)
	}
}

func (n *Node) String() string {
	if n.IsText() {
		return fmt.Sprintf("%q", n.Text)
	}
	if n.Key != "" {
		return fmt.Sprintf("<%s key=%q>", n.Tag, n.Key)
	}
	return "<" + n.Tag + ">"
}

// eventProps maps event types to handler prop names.
var eventProps = map[string]string{
	"blur":       "onBlur",
	"click":      "onClick",
	"focus":      "onFocus",
	"keydown":    "onKeyDown",
	"keyup":      "onKeyUp",
	"mousedown":  "onMouseDown",
	"mouseenter": "onMouseEnter",
	"mouseleave": "onMouseLeave",
	"mouseup":    "onMouseUp",
}

// HandlerProp returns the prop name of the handler for an event type.
func HandlerProp(typ string) string {
	if p, ok := eventProps[typ]; ok {
		return p
	}
	if typ == "" {
		return ""
	}
	return "on" + strings.ToUpper(typ[:1]) + typ[1:]
}
