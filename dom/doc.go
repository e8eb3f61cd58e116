/*
Package dom provides the live side of DOM reconciliation.

Overview

Live trees are trees of *html.Node (package golang.org/x/net/html), either
parsed from markup or built from description trees (package vdom) by a
NodeFactory. This package holds the building blocks package dom/patch uses
to bring a live tree in line with a description:

   SameIdentity      // may a live node be reused for a description node?
   Delimiter         // sentinel comment marking the start of a mounted fragment
   Cursor            // position within a live sibling sequence
   Build             // construct live nodes from a description
   BuildDelimited    // same, but every fragment is preceded by a Delimiter
   HTMLFactory       // default NodeFactory

Live nodes may carry attachments the reconciler knows nothing about:
properties (see type Properties), listeners, focus or layout caches of a
client. Keeping live nodes alive across updates is the whole point of
reconciling in place instead of re-building.

Namespaces

Namespace names follow golang.org/x/net/html: HTML elements have an empty
namespace, foreign content uses "svg" or "math". Element names compare
case-insensitively in the HTML namespace and exactly everywhere else.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'livedom.dom'
func tracer() tracing.Trace {
	return tracing.Select("livedom.dom")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("livedom.dom: "+msg, msgargs...)
		panic(msg)
	}
}
