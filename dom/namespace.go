package dom

import (
	"strings"

	"github.com/npillmayer/livedom/vdom"
)

// Namespaces of live elements, named like golang.org/x/net/html does.
const (
	HTML   = ""                 // default markup namespace
	SVG    = "svg"              // vector graphics
	MathML = "math"             // mathematical markup
	None   = vdom.NullNamespace // outside of any namespace
)

// IsCaseSensitive is true for every namespace but HTML.
func IsCaseSensitive(ns string) bool {
	return ns != HTML
}

// NamesEqual compares element names under the case rule of namespace ns.
func NamesEqual(a, b string, ns string) bool {
	if IsCaseSensitive(ns) {
		return a == b
	}
	return strings.EqualFold(a, b)
}
