/*
Package element defines the element tree a render function returns, and the
component variants which produce it.

An element is either a host element (Type is a tag name like "div"), a
component element (Type is a Component) or a fragment. Children are carried
in the "children" prop and may be single nodes, slices of nodes, keyed maps
or child functions.

Components come in four variants: Class (stateful, with an Instance per
mount), Func (a pure render function), Memo (a wrapper around another
component) and ForwardRef (a render function receiving the ref of its
element). Instances talk to their host renderer through Self.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package element

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.element'
func tracer() tracing.Trace {
	return tracing.Select("radium.element")
}
