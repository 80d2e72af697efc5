/*
Package resolve walks the element tree rendered by a component and resolves
the style of every styled host element.

Each element gets an identity, stable across renders, which keys its
interaction state. Elements with an explicit key use the key; all other
elements are identified by their position: the identity of the parent,
followed by the element type and the ordinal among siblings of the same
type, e.g. "div#0/button#1". Elements handed to a component as props other
than children are identified as "<parent>/@<prop>". Unkeyed members of a
keyed child set are identified by their map key, below the parent and the
position of the set.

Styled elements in a list of children which may change in length should
carry a key, otherwise their state may move to a different element when the
list changes. Missing keys are reported as a developer warning. Children
given to element.New one by one form a list of fixed length; a slice handed
to element.New as a single child, and every nested list, do not.

The walker descends into children, element-valued props and the results of
function children. It leaves alone elements marked with a truthy
"data-radium-ignore" prop and elements of enhanced components, which
resolve their own styles.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resolve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.resolve'
func tracer() tracing.Trace {
	return tracing.Select("radium.resolve")
}
