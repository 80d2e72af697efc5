/*
Package script implements style plugins written in JavaScript.

A script plugin is a JavaScript expression evaluating to a function. The
function is called with the style accumulated so far and a context object,
and returns an object with optional "style" and "props" members:

	function (style, ctx) {
		if (ctx.props.role !== "button") return null;
		return { style: { cursor: "pointer" } };
	}

The context object carries componentName, key, userAgent, props (scalar
props only) and a function getState(pseudoClass).

Scripts run in a fresh runtime for every call; they cannot keep state
between calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.plugins'
func tracer() tracing.Trace {
	return tracing.Select("radium.plugins")
}
