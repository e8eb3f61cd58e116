package dom

import "golang.org/x/net/html"

// The delimiter marker lives in a private attribute namespace. Comment
// nodes never render attributes, so the marker does not show up in markup.
const (
	delimiterNS  = "livedom"
	delimiterKey = "delimiter"
)

// Delimiter is a sentinel comment node marking the start of a mounted
// fragment. It occupies the position immediately preceding the fragment's
// first live child, making the fragment re-enterable by a later patch.
//
// Delimiters are told apart from client comments by an out-of-band marker,
// never by content. The marker does not survive serialization: after a round
// trip through html.Render and html.Parse a delimiter is a plain comment.
type Delimiter struct {
	node *html.Node
}

// NewDelimiter creates a fresh, unattached delimiter.
func NewDelimiter() Delimiter {
	n := &html.Node{
		Type: html.CommentNode,
		Attr: []html.Attribute{{Namespace: delimiterNS, Key: delimiterKey}},
	}
	return Delimiter{node: n}
}

// AsDelimiter returns n as a Delimiter, if it is one.
func AsDelimiter(n *html.Node) (Delimiter, bool) {
	if IsDelimiter(n) {
		return Delimiter{node: n}, true
	}
	return Delimiter{}, false
}

// IsDelimiter is a predicate for delimiter nodes.
func IsDelimiter(n *html.Node) bool {
	if n == nil || n.Type != html.CommentNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace == delimiterNS && a.Key == delimiterKey {
			return true
		}
	}
	return false
}

// Node returns the live comment node of the delimiter.
func (d Delimiter) Node() *html.Node {
	return d.node
}

// IsNull is true for the zero Delimiter.
func (d Delimiter) IsNull() bool {
	return d.node == nil
}
