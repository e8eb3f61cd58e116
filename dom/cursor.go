package dom

import "golang.org/x/net/html"

// Cursor is a position within the children of a live node. The reconciler
// walks a live sibling sequence with a Cursor in lock-step with a
// description's children; fragments share the cursor of their enclosing
// element.
//
// Advance reads the next sibling at the time of the call. Callers advance
// before replacing or removing the current node, as a replaced node loses
// its sibling link.
type Cursor struct {
	root    *html.Node // node whose children are walked
	current *html.Node // nil if exhausted
}

// NewCursor creates a cursor positioned at the first child of root.
func NewCursor(root *html.Node) *Cursor {
	assertThat(root != nil, "cursor needs a root node")
	return &Cursor{root: root, current: root.FirstChild}
}

// Root returns the node whose children the cursor walks.
func (c *Cursor) Root() *html.Node {
	return c.root
}

// Current returns the live node at the cursor position, or nil.
func (c *Cursor) Current() *html.Node {
	return c.current
}

// Exhausted is true if the cursor has moved past the last child.
func (c *Cursor) Exhausted() bool {
	return c.current == nil
}

// Advance moves to the next sibling and returns the node it left.
func (c *Cursor) Advance() *html.Node {
	n := c.current
	if n != nil {
		c.current = n.NextSibling
	}
	return n
}

// Insert places unattached nodes before the cursor position, or appends
// them to the root if the cursor is exhausted. The position does not move.
func (c *Cursor) Insert(nodes ...*html.Node) {
	for _, n := range nodes {
		if c.current == nil {
			c.root.AppendChild(n)
		} else {
			c.root.InsertBefore(n, c.current)
		}
	}
}
