/*
Package cli implements the commands of the radium command line tool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cli

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'radium.cli'
func tracer() tracing.Trace {
	return tracing.Select("radium.cli")
}
