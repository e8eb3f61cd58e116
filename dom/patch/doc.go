/*
Package patch reconciles live DOM trees with description trees.

Overview

Render walks a live element's children and a description's children in
lock-step, deciding per position whether to reuse, mutate or replace a live
node:

   same identity, element     → keep the node, reconcile its children
   same identity, text/comment → keep the node, write the value if it changed
   different identity          → replace the node with a freshly built one
   live side exhausted         → build the remaining descriptions and append them
   description exhausted       → remove the surplus live siblings

Matching is purely positional. There is no keyed reordering and no attempt
at edit-distance minimality; the live tree is mutated directly, without an
intermediate patch list.

Fragments

A fragment has no live node of its own. When mounted, it is preceded by a
delimiter (see dom.Delimiter), which makes the fragment's content
re-enterable by the next patch: a fragment description facing a delimiter
continues reconciling its children against the siblings following the
delimiter, sharing the cursor of the enclosing element. A fragment facing
anything else replaces it with a fresh delimiter plus fresh children.

Failures

Identity mismatches are not errors. Handing a description of the wrong
kind to an operation is a programming error and panics. A panic during a
patch leaves the live tree partially patched.

Concurrency

A patch is synchronous and single-threaded. The live tree must not be
modified by anybody else while a patch is running. A Reconciler keeps no
state between calls and may be used for any number of sequential patches.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patch

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'livedom.patch'.
func tracer() tracing.Trace {
	return tracing.Select("livedom.patch")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("livedom.patch: "+msg, msgargs...)
		panic(msg)
	}
}
