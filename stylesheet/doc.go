/*
Package stylesheet collects generated CSS: keyframe animations and scoped
rule sets, which cannot be expressed as inline styles.

A Registrar holds the CSS text of a document. Keyframes are registered
under a suggested name and receive a unique one:

	name := reg.RegisterKeyframes(stylesheet.Keyframes{
	    "from": {"opacity": 0},
	    "to":   {"opacity": 1},
	}, "fade")
	// name == "fade"; registering different frames as "fade" yields "fade-1"

Rule sets are added with an optional scope selector and may be updated or
removed later through their handle. Subscribers are notified whenever the
CSS text changes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylesheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.stylesheet'
func tracer() tracing.Trace {
	return tracing.Select("radium.stylesheet")
}
