/*
Package listener multiplexes one document-level event listener to many
subscribers.

Styled elements with an ":active" style need to learn about a mouse
release anywhere in the document. Instead of registering one document
listener per component, they subscribe to a shared Listener, which keeps
exactly one document registration alive as long as it has subscribers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package listener

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.listener'
func tracer() tracing.Trace {
	return tracing.Select("radium.listener")
}
