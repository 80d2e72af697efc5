/*
Package media evaluates CSS media queries and keeps shared subscriptions to
media query lists.

Queries are tokenized with the CSS scanner of gorilla/css and translated
into boolean expressions, which are compiled once and evaluated against a
set of media Features:

	q, err := media.Compile("screen and (min-width: 600px)")
	q.Matches(media.Features{Type: "screen", Width: 800, Height: 600})  // true

A host environment offers query lists through a MatchFunc. The Registry
shares one list per query string between all subscribers and releases it
when the last subscriber is gone.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package media

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.media'
func tracer() tracing.Trace {
	return tracing.Select("radium.media")
}
