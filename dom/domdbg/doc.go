/*
Package domdbg implements helpers to debug live DOM trees.

Live trees may be inspected as a one-line outline (handy for test
assertions), as an indented tree, as a GraphViz diagram, or as a line diff
of their markup before and after a patch. Delimiters of mounted fragments
are shown explicitly in every view except the markup diff, where they render
as empty comments.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'livedom.domdbg'.
func tracer() tracing.Trace {
	return tracing.Select("livedom.domdbg")
}
