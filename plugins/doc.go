/*
Package plugins implements the style resolution pipeline.

The style of every styled host element is run through an ordered list of
steps. Each step receives the style accumulated so far and a Context
describing the element, and returns a new style plus props to add to the
element (usually event handlers). The default steps are

	Merge        flatten the style descriptor
	Interaction  apply :hover, :active, :focus, :visited and :disabled styles
	Media        apply matching @media blocks
	Prefix       add vendor prefixes
	Coerce       drop unset and structured values

User plugins run after Merge unless configured otherwise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package plugins

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.plugins'
func tracer() tracing.Trace {
	return tracing.Select("radium.plugins")
}
