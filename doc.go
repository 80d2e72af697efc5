/*
Package radium adds interactive inline styles to components.

A component enhanced by Enhance resolves the style props of the host
elements it renders. Style props may contain blocks for the pseudo-classes
:hover, :active, :focus, :visited and :disabled, and blocks for media
queries:

	element.New("button", element.Props{
		"style": style.Style{
			"color":  "black",
			":hover": style.Style{"color": "blue"},
			"@media (max-width: 600px)": style.Style{"width": "100%"},
		},
	}, "Save")

The enhanced component tracks the interaction state of each styled element
and re-renders when it changes. The resolved style is a flat style object
with vendor prefixes for the browser in use.

Components read the interaction state of their elements with GetState.
StyleRoot and Style render stylesheets for keyframes and scoped rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package radium

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.engine'
func tracer() tracing.Trace {
	return tracing.Select("radium.engine")
}
