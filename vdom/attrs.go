package vdom

import "sort"

// Attrs holds the attributes and properties of an element description.
//
// Attributes are named primitive values which end up as markup attributes
// (see Stringify for the conversion; booleans toggle presence). Properties
// are assigned to live nodes verbatim and never show up in markup.
// The split is decided by the client when constructing Attrs, never by
// inspecting values later.
type Attrs struct {
	Attributes map[string]interface{}
	Properties map[string]interface{}
	Namespace  Namespace // optional namespace override for the element and its children
}

// A is a shortcut for Attrs with attributes only.
func A(attributes map[string]interface{}) Attrs {
	return Attrs{Attributes: attributes}
}

// IsEmpty is true if neither attributes, properties nor a namespace are set.
func (a Attrs) IsEmpty() bool {
	return len(a.Attributes) == 0 && len(a.Properties) == 0 && !a.Namespace.set
}

// AttributeKeys returns the attribute names in sorted order.
func (a Attrs) AttributeKeys() []string {
	return sortedKeys(a.Attributes)
}

// PropertyKeys returns the non-empty property names in sorted order.
func (a Attrs) PropertyKeys() []string {
	keys := sortedKeys(a.Properties)
	if len(keys) > 0 && keys[0] == "" {
		keys = keys[1:]
	}
	return keys
}

func (a Attrs) clone() Attrs {
	c := Attrs{Namespace: a.Namespace}
	if len(a.Attributes) > 0 {
		c.Attributes = make(map[string]interface{}, len(a.Attributes))
		for k, v := range a.Attributes {
			c.Attributes[k] = v
		}
	}
	if len(a.Properties) > 0 {
		c.Properties = make(map[string]interface{}, len(a.Properties))
		for k, v := range a.Properties {
			c.Properties[k] = v
		}
	}
	return c
}

func sortedKeys(m map[string]interface{}) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Namespaces ------------------------------------------------------------

// NullNamespace is the namespace value of elements created outside of any
// namespace.
const NullNamespace = "#null"

// Namespace is an optional namespace override. The zero value means
// "inherit the namespace of the parent".
type Namespace struct {
	name string
	set  bool
}

// InNamespace overrides the namespace of an element and its descendants.
// Namespace names follow package golang.org/x/net/html: "" for HTML,
// "svg" and "math" for foreign content.
func InNamespace(ns string) Namespace {
	return Namespace{name: ns, set: true}
}

// NoNamespace places an element and its descendants outside of any namespace.
var NoNamespace = Namespace{name: NullNamespace, set: true}

// Lookup returns the overriding namespace, if any.
func (ns Namespace) Lookup() (string, bool) {
	return ns.name, ns.set
}

// Resolve returns the override, or inherited if no override is set.
func (ns Namespace) Resolve(inherited string) string {
	if ns.set {
		return ns.name
	}
	return inherited
}
