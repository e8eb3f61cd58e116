/*
Package vdom describes the shape of a live DOM as plain, immutable values.

Overview

A description tree is what clients write down; a live tree is what gets
patched (see package dom/patch). Description nodes come in four kinds:

   Element(name, attrs, children...)   // maps to exactly one live element
   Text(value)                          // maps to a live text node
   Comment(value)                       // maps to a live comment node
   Fragment(children...)                // a transparent group without a live node

A Fragment has no live node of its own. Its children are spliced into the
sibling sequence of the enclosing element, and nested fragments flatten
transitively.

Clients dispatch on the kind of a node either by Kind() or by matching:

   var name string
   var children []vdom.Node
   switch m := n.Match(); m {
   case m.Element(&name, &children):
       ...
   case m.Fragment(&children):
       ...
   }

Values of text and comment nodes may be of any primitive Go type; they are
converted to strings by Stringify.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vdom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'livedom.vdom'.
func tracer() tracing.Trace {
	return tracing.Select("livedom.vdom")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("livedom.vdom: "+msg, msgargs...)
		panic(msg)
	}
}
