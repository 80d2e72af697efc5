/*
Package dom is a small headless host environment for element trees.

It provides what styled components need from a browser: a Document to
register global event listeners on, a Screen answering media queries, a
history of visited links, and a Root which renders an element tree into a
tree of host nodes. Host nodes carry their resolved props, including the
inline style, and can be queried with CSS selectors:

	doc := dom.NewDocument()
	root, err := doc.Render(element.New(App, nil))
	button := root.Find("button.primary")
	root.Simulate(button, "mouseenter", nil)
	button = root.Find("button.primary")
	button.Style()["background"]  // hover style

Rendering is synchronous: state changes during event dispatch re-render
from the root before Simulate returns. Component instances are retained by
their position in the tree (or by key) between renders and unmounted when
they disappear.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.dom'
func tracer() tracing.Trace {
	return tracing.Select("radium.dom")
}
