package dom

import "golang.org/x/net/html"

// ReplaceNode puts unattached nodes in place of old, which must have a
// parent. old is detached afterwards.
func ReplaceNode(old *html.Node, nodes ...*html.Node) {
	parent := old.Parent
	assertThat(parent != nil, "cannot replace a node without parent")
	for _, n := range nodes {
		parent.InsertBefore(n, old)
	}
	parent.RemoveChild(old)
}

// RemoveNode detaches n from its parent, if any.
func RemoveNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// ChildNodes returns the children of n as a slice.
func ChildNodes(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// NodeIsText is a predicate to match text nodes.
func NodeIsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// NodeIsElement is a predicate to match elements.
func NodeIsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}
