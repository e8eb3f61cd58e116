package patch

import (
	"fmt"

	"golang.org/x/net/html"
)

// MutationKind classifies changes to a live tree.
type MutationKind uint8

// Kinds of mutations reported to an Observer.
const (
	Inserted          MutationKind = iota + 1 // a freshly built node has been attached
	Removed                                   // a node has been detached
	ValueChanged                              // the value of a text or comment node has been written
	AttributesChanged                         // attributes or properties of an element have been written
)

func (k MutationKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case ValueChanged:
		return "value"
	case AttributesChanged:
		return "attributes"
	}
	return "unknown"
}

// Mutation describes a single change to a live tree. Replacing a node is
// reported as insertions of the new nodes followed by the removal of the
// old one. Insertions and removals are reported for subtree roots only.
type Mutation struct {
	Kind MutationKind
	Node *html.Node
	Old  string // previous value, for ValueChanged
	New  string // new value, for ValueChanged
}

func (m Mutation) String() string {
	if m.Kind == ValueChanged {
		return fmt.Sprintf("%s %q→%q", m.Kind, m.Old, m.New)
	}
	name := "<nil>"
	if m.Node != nil {
		name = nodeName(m.Node)
	}
	return fmt.Sprintf("%s %s", m.Kind, name)
}

// Observer is notified of every mutation a Reconciler performs.
type Observer interface {
	Observe(Mutation)
}

// ObserverFunc adapts a function to interface Observer.
type ObserverFunc func(Mutation)

// Observe is part of interface Observer.
func (f ObserverFunc) Observe(m Mutation) {
	f(m)
}

// Recorder is an Observer which keeps all mutations.
type Recorder struct {
	Mutations []Mutation
}

// Observe is part of interface Observer.
func (r *Recorder) Observe(m Mutation) {
	r.Mutations = append(r.Mutations, m)
}

// Count returns the number of recorded mutations of a kind.
func (r *Recorder) Count(kind MutationKind) int {
	cnt := 0
	for _, m := range r.Mutations {
		if m.Kind == kind {
			cnt++
		}
	}
	return cnt
}

// Len returns the number of recorded mutations.
func (r *Recorder) Len() int {
	return len(r.Mutations)
}

// Reset drops all recorded mutations.
func (r *Recorder) Reset() {
	r.Mutations = r.Mutations[:0]
}

func nodeName(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		return n.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#node"
}

type nopObserver struct{}

func (nopObserver) Observe(Mutation) {}
