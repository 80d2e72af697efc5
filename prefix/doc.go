/*
Package prefix adds vendor prefixes to style objects, for the browser a user
agent string identifies.

Two kinds of prefixing are applied: property names (transform becomes
WebkitTransform on older WebKit browsers) and values (display: flex becomes
-webkit-flex on iOS before version 9). Values may also be given as fallback
lists; the first entry the browser supports is chosen.

For unknown or missing user agents, inline styles are left unprefixed. When
writing style sheets, every known prefixed variant is emitted instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prefix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.prefix'
func tracer() tracing.Trace {
	return tracing.Select("radium.prefix")
}
