package dom

import (
	"github.com/npillmayer/livedom/vdom"
	"golang.org/x/net/html"
)

// SameIdentity decides whether live node n may be reused for description d.
//
// Elements match elements of equal name, compared under the case rule of
// n's namespace. Text matches text and comments match comments, regardless
// of their values; values are patched separately. A fragment matches a
// Delimiter only, and a Delimiter never matches a comment description.
// Doctype, document and raw nodes never match.
func SameIdentity(d vdom.Node, n *html.Node) bool {
	if n == nil {
		return false
	}
	switch d.Kind() {
	case vdom.ElementKind:
		return n.Type == html.ElementNode && NamesEqual(d.Name(), n.Data, n.Namespace)
	case vdom.TextKind:
		return n.Type == html.TextNode
	case vdom.CommentKind:
		return n.Type == html.CommentNode && !IsDelimiter(n)
	case vdom.FragmentKind:
		return IsDelimiter(n)
	}
	return false
}
