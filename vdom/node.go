package vdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Kind is the tag of a description node.
type Kind uint8

// Kinds of description nodes.
const (
	NoKind       Kind = iota // zero value, not a valid node
	ElementKind              // element with name, attributes and children
	TextKind                 // text with a primitive value
	CommentKind              // comment with an optional primitive value
	FragmentKind             // transparent group of children
)

func (k Kind) String() string {
	switch k {
	case ElementKind:
		return "element"
	case TextKind:
		return "text"
	case CommentKind:
		return "comment"
	case FragmentKind:
		return "fragment"
	}
	return "invalid"
}

// Node is a node of a description tree. Nodes are values and are never
// modified after construction; the children slice is owned by the node.
type Node struct {
	kind     Kind
	name     string
	attrs    Attrs
	value    interface{}
	children []Node
}

// Element creates an element description. name must not be empty.
func Element(name string, attrs Attrs, children ...Node) Node {
	assertThat(name != "", "element name must not be empty")
	return Node{
		kind:     ElementKind,
		name:     name,
		attrs:    attrs.clone(),
		children: copyChildren(children),
	}
}

// H creates an element description without attributes.
func H(name string, children ...Node) Node {
	return Element(name, Attrs{}, children...)
}

// Text creates a text description. v is converted with Stringify.
func Text(v interface{}) Node {
	return Node{kind: TextKind, value: v}
}

// Comment creates a comment description. v is optional and may be nil.
func Comment(v interface{}) Node {
	return Node{kind: CommentKind, value: v}
}

// Fragment creates a transparent group of children.
func Fragment(children ...Node) Node {
	return Node{kind: FragmentKind, children: copyChildren(children)}
}

func copyChildren(children []Node) []Node {
	if len(children) == 0 {
		return nil
	}
	for i, ch := range children {
		assertThat(ch.kind != NoKind, "child #%d is not a valid description node", i)
	}
	c := make([]Node, len(children))
	copy(c, children)
	return c
}

// Kind returns the tag of n.
func (n Node) Kind() Kind {
	return n.kind
}

// IsValid is false for the zero Node.
func (n Node) IsValid() bool {
	return n.kind != NoKind
}

// Name returns the name of an element, and "" for every other kind.
func (n Node) Name() string {
	return n.name
}

// Attrs returns the attributes of an element.
func (n Node) Attrs() Attrs {
	return n.attrs
}

// Value returns the raw value of a text or comment node.
func (n Node) Value() interface{} {
	return n.value
}

// StringValue returns the value of a text or comment node, converted
// by Stringify.
func (n Node) StringValue() string {
	return Stringify(n.value)
}

// Children returns the children of an element or fragment.
// Clients must not modify the returned slice.
func (n Node) Children() []Node {
	return n.children
}

func (n Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n Node) write(b *strings.Builder) {
	switch n.kind {
	case ElementKind:
		b.WriteString(n.name)
		writeChildren(b, n.children)
	case TextKind:
		fmt.Fprintf(b, "%q", n.StringValue())
	case CommentKind:
		fmt.Fprintf(b, "<!--%s-->", n.StringValue())
	case FragmentKind:
		b.WriteString("#fragment")
		writeChildren(b, n.children)
	default:
		b.WriteString("#invalid")
	}
}

func writeChildren(b *strings.Builder, children []Node) {
	b.WriteByte('[')
	for i, ch := range children {
		if i > 0 {
			b.WriteByte(' ')
		}
		ch.write(b)
	}
	b.WriteByte(']')
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for switching over the kind of n.
//
//    switch m := n.Match(); m {
//    case m.Text(&value):
//    case m.Element(&name, &children):
//    }
//
func (n Node) Match() *Matcher {
	return &Matcher{node: n}
}

// Matcher is part of pattern matching on description nodes. Every method
// returns the matcher itself if the node is of the requested kind, and nil
// otherwise. Out-parameters may be nil.
type Matcher struct {
	node Node
}

// Element matches element nodes.
func (m *Matcher) Element(name *string, children *[]Node) *Matcher {
	if m.node.kind != ElementKind {
		return nil
	}
	if name != nil {
		*name = m.node.name
	}
	if children != nil {
		*children = m.node.children
	}
	return m
}

// Text matches text nodes.
func (m *Matcher) Text(value *interface{}) *Matcher {
	if m.node.kind != TextKind {
		return nil
	}
	if value != nil {
		*value = m.node.value
	}
	return m
}

// Comment matches comment nodes.
func (m *Matcher) Comment(value *interface{}) *Matcher {
	if m.node.kind != CommentKind {
		return nil
	}
	if value != nil {
		*value = m.node.value
	}
	return m
}

// Fragment matches fragments.
func (m *Matcher) Fragment(children *[]Node) *Matcher {
	if m.node.kind != FragmentKind {
		return nil
	}
	if children != nil {
		*children = m.node.children
	}
	return m
}

// Leaf matches text and comment nodes.
func (m *Matcher) Leaf() *Matcher {
	if m.node.kind == TextKind || m.node.kind == CommentKind {
		return m
	}
	return nil
}
