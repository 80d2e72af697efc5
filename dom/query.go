package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// project mirrors the host nodes as an HTML parse tree, which serves
// selector queries and serialization.
func (r *Root) project() {
	doc := &html.Node{Type: html.DocumentNode}
	r.byHTML = make(map[*html.Node]*Node)
	for _, n := range r.nodes {
		doc.AppendChild(r.toHTML(n))
	}
	r.html = doc
}

func (r *Root) toHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     attributes(n),
	}
	r.byHTML[h] = n
	for _, c := range n.Children {
		h.AppendChild(r.toHTML(c))
	}
	return h
}

var attributeNames = map[string]string{
	"className": "class",
	"htmlFor":   "for",
	"tabIndex":  "tabindex",
}

// attributes converts props to HTML attributes. Handlers, refs and
// structured values have no attribute form and are skipped.
func attributes(n *Node) []html.Attribute {
	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var attrs []html.Attribute
	for _, k := range keys {
		name := k
		if a, ok := attributeNames[k]; ok {
			name = a
		}
		switch v := n.Props[k].(type) {
		case nil:
		case bool:
			if v {
				attrs = append(attrs, html.Attribute{Key: name})
			}
		case string:
			attrs = append(attrs, html.Attribute{Key: name, Val: v})
		case int, int64, float64:
			attrs = append(attrs, html.Attribute{Key: name, Val: fmt.Sprint(v)})
		case style.Style, map[string]any:
			if k == "style" {
				if css := style.CSSText(n.Style()); css != "" {
					attrs = append(attrs, html.Attribute{Key: "style", Val: css})
				}
			}
		case fmt.Stringer:
			attrs = append(attrs, html.Attribute{Key: name, Val: v.String()})
		}
	}
	return attrs
}

// HTML serializes the rendered tree.
func (r *Root) HTML() string {
	if r.html == nil {
		return ""
	}
	var b bytes.Buffer
	for c := r.html.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			tracer().Errorf("dom: %v", err)
		}
	}
	return b.String()
}

// Query returns all host nodes matching a CSS selector, in document order.
func (r *Root) Query(selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: selector %q: %w", selector, err)
	}
	if r.html == nil {
		return nil, nil
	}
	var nodes []*Node
	for _, h := range sel.MatchAll(r.html) {
		if n, ok := r.byHTML[h]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// FindAll is Query for selectors known to be valid. Invalid selectors are
// traced and match nothing.
func (r *Root) FindAll(selector string) []*Node {
	nodes, err := r.Query(selector)
	if err != nil {
		tracer().Errorf("%v", err)
	}
	return nodes
}

// Find returns the first host node matching a selector, or nil.
func (r *Root) Find(selector string) *Node {
	nodes := r.FindAll(selector)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// FindText returns the first host element whose own text content equals
// text, or nil.
func (r *Root) FindText(text string) *Node {
	var found *Node
	for _, n := range r.nodes {
		n.Walk(func(x *Node) {
			if found == nil && !x.IsText() && x.TextContent() == text && !hasElementChildren(x) {
				found = x
			}
		})
	}
	return found
}

func hasElementChildren(n *Node) bool {
	for _, c := range n.Children {
		if !c.IsText() {
			return true
		}
	}
	return false
}

var _ element.Host = &Root{}
