package dom

import (
	"strings"

	"github.com/npillmayer/livedom/vdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeFactory creates single, unattached live nodes. Children are added by
// Build and BuildDelimited.
type NodeFactory interface {
	// CreateElement creates a childless element for d, which must be an element
	// description. ns is the namespace inherited from the parent; an override
	// in d's attributes takes precedence.
	CreateElement(d vdom.Node, ns string) *html.Node
	CreateText(value string) *html.Node
	CreateComment(value string) *html.Node
}

// ElementUpdater is implemented by factories which are able to bring the
// attributes of a reused element in line with its description. It reports
// whether n has been modified.
type ElementUpdater interface {
	UpdateElement(d vdom.Node, n *html.Node) bool
}

// Discarder is implemented by factories which keep side tables for live
// nodes. Discard is called for the root of every subtree removed from a
// live tree.
type Discarder interface {
	Discard(n *html.Node)
}

// HTMLFactory is the default NodeFactory, creating nodes for package
// golang.org/x/net/html.
//
// Elements in the HTML namespace are lower-cased and get their atom set.
// Attributes are converted with vdom.Stringify, booleans toggle presence,
// nil and values of non-primitive types are left out. Properties are stored
// verbatim in a Properties side table.
type HTMLFactory struct {
	props     *Properties
	syncAttrs bool
}

// FactoryOption configures an HTMLFactory.
type FactoryOption func(*HTMLFactory)

// WithProperties lets the factory store element properties in p.
func WithProperties(p *Properties) FactoryOption {
	return func(f *HTMLFactory) {
		f.props = p
	}
}

// WithoutAttributeSync leaves attributes and properties of reused elements
// untouched.
func WithoutAttributeSync() FactoryOption {
	return func(f *HTMLFactory) {
		f.syncAttrs = false
	}
}

// NewHTMLFactory creates a factory with a private property store and
// attribute synchronization switched on.
func NewHTMLFactory(opts ...FactoryOption) *HTMLFactory {
	f := &HTMLFactory{syncAttrs: true}
	for _, opt := range opts {
		opt(f)
	}
	if f.props == nil {
		f.props = NewProperties()
	}
	return f
}

// Properties returns the property store of the factory.
func (f *HTMLFactory) Properties() *Properties {
	return f.props
}

// CreateElement is part of interface NodeFactory.
func (f *HTMLFactory) CreateElement(d vdom.Node, ns string) *html.Node {
	assertThat(d.Kind() == vdom.ElementKind, "cannot create element from %s description", d.Kind())
	ns = d.Attrs().Namespace.Resolve(ns)
	n := &html.Node{
		Type:      html.ElementNode,
		Data:      d.Name(),
		Namespace: ns,
		Attr:      Attributes(d.Attrs()),
	}
	if ns == HTML {
		n.Data = strings.ToLower(n.Data)
		n.DataAtom = atom.Lookup([]byte(n.Data))
	}
	for _, key := range d.Attrs().PropertyKeys() {
		f.props.Set(n, key, d.Attrs().Properties[key])
	}
	return n
}

// CreateText is part of interface NodeFactory.
func (f *HTMLFactory) CreateText(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}

// CreateComment is part of interface NodeFactory.
func (f *HTMLFactory) CreateComment(value string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: value}
}

// UpdateElement is part of interface ElementUpdater. Attributes are
// rewritten only if they differ from the description, order included.
// Properties are written only for keys with changed values.
func (f *HTMLFactory) UpdateElement(d vdom.Node, n *html.Node) bool {
	if !f.syncAttrs {
		return false
	}
	changed := false
	if want := Attributes(d.Attrs()); !SameAttributes(n.Attr, want) {
		tracer().P("element", n.Data).Debugf("attributes changed")
		n.Attr = want
		changed = true
	}
	if f.props.Sync(n, d.Attrs()) {
		changed = true
	}
	return changed
}

// Discard is part of interface Discarder.
func (f *HTMLFactory) Discard(n *html.Node) {
	f.props.ForgetTree(n)
}

var _ NodeFactory = (*HTMLFactory)(nil)
var _ ElementUpdater = (*HTMLFactory)(nil)
var _ Discarder = (*HTMLFactory)(nil)

// --- Attributes ------------------------------------------------------------

// Attributes converts the attributes of a description to live attributes,
// sorted by key.
func Attributes(a vdom.Attrs) []html.Attribute {
	keys := a.AttributeKeys()
	if len(keys) == 0 {
		return nil
	}
	attrs := make([]html.Attribute, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		switch v := a.Attributes[key].(type) {
		case bool:
			if v {
				attrs = append(attrs, html.Attribute{Key: key})
			}
		default:
			if vdom.IsPrimitive(v) {
				attrs = append(attrs, html.Attribute{Key: key, Val: vdom.Stringify(v)})
			}
		}
	}
	return attrs
}

// SameAttributes compares two attribute lists, including their order.
func SameAttributes(a, b []html.Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
