/*
Package state keeps the interactive state of the elements of one component
instance: which element is hovered, pressed, focused, and which media
queries currently match.

Flags are stored per element identity and per pseudo-class (or media key).
Every change is published to the owning instance through a change callback,
which usually triggers a re-render.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package state

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.state'
func tracer() tracing.Trace {
	return tracing.Select("radium.state")
}
