package dom

import (
	"github.com/npillmayer/livedom/vdom"
	"golang.org/x/net/html"
)

// Build constructs the live nodes for description d, including all
// descendants. An element, text or comment yields exactly one node; a
// fragment yields the (flattened) nodes of its children. ns is the
// namespace inherited from the future parent.
//
// Fragments built this way cannot be re-entered by a later patch. Use
// BuildDelimited for trees which will be reconciled.
func Build(f NodeFactory, d vdom.Node, ns string) []*html.Node {
	return build(f, d, ns, false, nil)
}

// BuildDelimited is like Build, but every fragment at any depth is
// preceded by a Delimiter.
func BuildDelimited(f NodeFactory, d vdom.Node, ns string) []*html.Node {
	return build(f, d, ns, true, nil)
}

func build(f NodeFactory, d vdom.Node, ns string, delimit bool, nodes []*html.Node) []*html.Node {
	var children []vdom.Node
	switch m := d.Match(); m {
	case m.Element(nil, &children):
		e := f.CreateElement(d, ns)
		var sub []*html.Node
		for _, ch := range children {
			sub = build(f, ch, e.Namespace, delimit, sub[:0])
			for _, n := range sub {
				e.AppendChild(n)
			}
		}
		return append(nodes, e)
	case m.Text(nil):
		return append(nodes, f.CreateText(d.StringValue()))
	case m.Comment(nil):
		return append(nodes, f.CreateComment(d.StringValue()))
	case m.Fragment(&children):
		if delimit {
			nodes = append(nodes, NewDelimiter().Node())
		}
		for _, ch := range children {
			nodes = build(f, ch, ns, delimit, nodes)
		}
		return nodes
	}
	panic("livedom.dom: cannot build live nodes from invalid description")
}
