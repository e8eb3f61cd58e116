package dom

import (
	"reflect"

	"github.com/npillmayer/livedom/vdom"
	"golang.org/x/net/html"
)

// Properties is a side table holding properties of live nodes. Properties
// are arbitrary values assigned verbatim; they never show up in markup.
//
// Properties is not safe for concurrent use.
type Properties struct {
	table map[*html.Node]map[string]interface{}
}

// NewProperties creates an empty property store.
func NewProperties() *Properties {
	return &Properties{table: make(map[*html.Node]map[string]interface{})}
}

// Get returns the value of property key of node n.
func (p *Properties) Get(n *html.Node, key string) (interface{}, bool) {
	v, ok := p.table[n][key]
	return v, ok
}

// Set assigns a property. Empty keys are ignored.
func (p *Properties) Set(n *html.Node, key string, value interface{}) {
	if key == "" {
		return
	}
	props := p.table[n]
	if props == nil {
		props = make(map[string]interface{})
		p.table[n] = props
	}
	props[key] = value
}

// Of returns a copy of the properties of n.
func (p *Properties) Of(n *html.Node) map[string]interface{} {
	props := p.table[n]
	if len(props) == 0 {
		return nil
	}
	c := make(map[string]interface{}, len(props))
	for k, v := range props {
		c[k] = v
	}
	return c
}

// Len returns the number of nodes with properties.
func (p *Properties) Len() int {
	return len(p.table)
}

// Sync brings the properties of n in line with a, returning true if a
// property has been set or deleted.
func (p *Properties) Sync(n *html.Node, a vdom.Attrs) bool {
	changed := false
	keys := a.PropertyKeys()
	want := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		want[key] = struct{}{}
		v := a.Properties[key]
		if old, ok := p.Get(n, key); ok && reflect.DeepEqual(old, v) {
			continue
		}
		p.Set(n, key, v)
		changed = true
	}
	for key := range p.table[n] {
		if _, ok := want[key]; !ok {
			delete(p.table[n], key)
			changed = true
		}
	}
	if len(p.table[n]) == 0 {
		delete(p.table, n)
	}
	return changed
}

// ForgetTree drops the properties of n and all of its descendants.
func (p *Properties) ForgetTree(n *html.Node) {
	if n == nil || len(p.table) == 0 {
		return
	}
	delete(p.table, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.ForgetTree(c)
	}
}
