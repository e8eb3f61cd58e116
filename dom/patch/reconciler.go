package patch

import (
	"github.com/npillmayer/livedom/dom"
	"github.com/npillmayer/livedom/vdom"
	"golang.org/x/net/html"
)

// Reconciler patches live trees. The zero value is not usable; create
// reconcilers with New.
type Reconciler struct {
	factory  dom.NodeFactory
	observer Observer
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithFactory sets the factory used for building live nodes.
// The default is a dom.HTMLFactory.
func WithFactory(f dom.NodeFactory) Option {
	return func(r *Reconciler) {
		r.factory = f
	}
}

// WithObserver sets an observer to be notified of every mutation.
func WithObserver(o Observer) Option {
	return func(r *Reconciler) {
		r.observer = o
	}
}

// New creates a Reconciler.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{}
	for _, opt := range opts {
		opt(r)
	}
	if r.factory == nil {
		r.factory = dom.NewHTMLFactory()
	}
	if r.observer == nil {
		r.observer = nopObserver{}
	}
	return r
}

// Factory returns the node factory of r.
func (r *Reconciler) Factory() dom.NodeFactory {
	return r.factory
}

// Render reconciles the children of root with the children of d, which
// must be an element description. root itself is never replaced: the
// caller guarantees that it already stands for d.
func Render(d vdom.Node, root *html.Node, opts ...Option) {
	New(opts...).Render(d, root)
}

// Render reconciles the children of root with the children of d, which
// must be an element description. root itself is never replaced: the
// caller guarantees that it already stands for d.
func (r *Reconciler) Render(d vdom.Node, root *html.Node) {
	assertThat(d.Kind() == vdom.ElementKind, "render needs an element description, have %s", d.Kind())
	assertThat(root != nil, "render needs a live root")
	if root.Type == html.ElementNode && !dom.NamesEqual(d.Name(), root.Data, root.Namespace) {
		tracer().Debugf("rendering <%s> into live <%s>", d.Name(), root.Data)
	}
	r.patchChildren(d.Children(), root)
}

// patchElement reconciles live node n with element description d. ns is
// the namespace of n's parent, used if n has to be rebuilt.
func (r *Reconciler) patchElement(d vdom.Node, n *html.Node, ns string) {
	assertThat(d.Kind() == vdom.ElementKind, "patchElement called with %s description", d.Kind())
	if !dom.SameIdentity(d, n) {
		tracer().P("element", d.Name()).Debugf("replacing %s", nodeName(n))
		r.replace(n, d, ns)
		return
	}
	if u, ok := r.factory.(dom.ElementUpdater); ok && u.UpdateElement(d, n) {
		r.observer.Observe(Mutation{Kind: AttributesChanged, Node: n})
	}
	r.patchChildren(d.Children(), n)
}

// patchChildren reconciles the live children of parent with a sequence of
// descriptions, positionally.
func (r *Reconciler) patchChildren(children []vdom.Node, parent *html.Node) {
	cursor := dom.NewCursor(parent)
	if cursor.Exhausted() {
		// fresh parent: no need to diff anything
		for _, ch := range children {
			r.insert(cursor, ch)
		}
		return
	}
	for _, ch := range children {
		r.patchChild(ch, cursor)
	}
	r.trim(cursor)
}

// patchChild reconciles the live node at the cursor position with d and
// advances the cursor past all live nodes d accounts for.
func (r *Reconciler) patchChild(d vdom.Node, cursor *dom.Cursor) {
	n := cursor.Current()
	if n == nil {
		r.insert(cursor, d)
		return
	}
	ns := cursor.Root().Namespace
	switch d.Kind() {
	case vdom.FragmentKind:
		r.patchDocumentFragment(d, n, cursor)
	case vdom.ElementKind:
		cursor.Advance() // before n may be replaced
		r.patchElement(d, n, ns)
	case vdom.TextKind, vdom.CommentKind:
		cursor.Advance()
		r.patchNode(d, n, ns)
	default:
		panic("livedom.patch: cannot patch invalid description")
	}
}

// patchDocumentFragment reconciles fragment d, positioned at anchor.
// If anchor is a delimiter, the fragment's children are reconciled against
// the siblings following it, consuming live nodes from the shared cursor.
// Otherwise anchor is replaced by a freshly built, delimited fragment.
func (r *Reconciler) patchDocumentFragment(d vdom.Node, anchor *html.Node, cursor *dom.Cursor) {
	assertThat(d.Kind() == vdom.FragmentKind, "patchDocumentFragment called with %s description", d.Kind())
	cursor.Advance()
	if _, ok := dom.AsDelimiter(anchor); !ok {
		tracer().Debugf("mounting fragment in place of %s", nodeName(anchor))
		r.replace(anchor, d, cursor.Root().Namespace)
		return
	}
	for _, ch := range d.Children() {
		r.patchChild(ch, cursor)
	}
}

// patchNode reconciles a text or comment description with live node n.
// The value is written only if it differs from the live one.
func (r *Reconciler) patchNode(d vdom.Node, n *html.Node, ns string) {
	assertThat(d.Kind() == vdom.TextKind || d.Kind() == vdom.CommentKind,
		"patchNode called with %s description", d.Kind())
	if !dom.SameIdentity(d, n) {
		r.replace(n, d, ns)
		return
	}
	if v := d.StringValue(); n.Data != v {
		old := n.Data
		n.Data = v
		r.observer.Observe(Mutation{Kind: ValueChanged, Node: n, Old: old, New: v})
	}
}

// --- Mutations -------------------------------------------------------------

// createDelimitedNode builds the live nodes for d. Fragments are preceded
// by a delimiter to stay re-enterable.
func (r *Reconciler) createDelimitedNode(d vdom.Node, ns string) []*html.Node {
	return dom.BuildDelimited(r.factory, d, ns)
}

func (r *Reconciler) insert(cursor *dom.Cursor, d vdom.Node) {
	nodes := r.createDelimitedNode(d, cursor.Root().Namespace)
	cursor.Insert(nodes...)
	for _, n := range nodes {
		r.observer.Observe(Mutation{Kind: Inserted, Node: n})
	}
}

func (r *Reconciler) replace(old *html.Node, d vdom.Node, ns string) {
	nodes := r.createDelimitedNode(d, ns)
	dom.ReplaceNode(old, nodes...)
	for _, n := range nodes {
		r.observer.Observe(Mutation{Kind: Inserted, Node: n})
	}
	r.discard(old)
}

// trim removes all live siblings from the cursor position on.
func (r *Reconciler) trim(cursor *dom.Cursor) {
	for !cursor.Exhausted() {
		n := cursor.Advance()
		tracer().Debugf("removing surplus %s", nodeName(n))
		dom.RemoveNode(n)
		r.discard(n)
	}
}

func (r *Reconciler) discard(n *html.Node) {
	r.observer.Observe(Mutation{Kind: Removed, Node: n})
	if d, ok := r.factory.(dom.Discarder); ok {
		d.Discard(n)
	}
}
