/*
Package style holds the inline style model: style objects, style
descriptors and the operations to flatten, merge and coerce them.

A style object maps camel-cased CSS property names to values. Values are
strings, numbers, values with a String method, or nested style objects.
Nested style objects live under keys which start with ":" (pseudo-classes
like ":hover") or "@media" (media queries). Descriptors are either a single
style object or an ordered sequence of descriptors; sequences are flattened
right-biased, i.e. later entries win.

	d := style.Seq(
	    style.Leaf(style.Style{"color": "red", ":hover": style.Style{"color": "blue"}}),
	    style.Leaf(style.Style{":hover": style.Style{"background": "yellow"}}),
	)
	s := style.Flatten(d)
	// => {color: red, :hover: {color: blue, background: yellow}}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.style'
func tracer() tracing.Trace {
	return tracing.Select("radium.style")
}
