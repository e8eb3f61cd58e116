/*
Package yamladapter decodes description trees from YAML (or JSON) documents.

A node is a mapping with exactly one kind key:

   element: div            # name of an element
   attrs: { class: box }   # optional, element attributes
   props: { value: 42 }    # optional, element properties
   namespace: svg          # optional; null places the element outside of any namespace
   children:               # optional
     - text: Hello         # text node
     - 42                  # scalars are shorthand for text nodes
     - comment: note       # comment node, value optional
     - fragment:           # transparent group
         - text: a

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package yamladapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/npillmayer/livedom/vdom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'livedom.vdom'.
func tracer() tracing.Trace {
	return tracing.Select("livedom.vdom")
}

// ErrMalformed is returned for documents which do not describe a valid
// description tree.
var ErrMalformed = errors.New("malformed description")

var kindKeys = []string{"element", "text", "comment", "fragment"}

var elementKeys = map[string]bool{
	"element": true, "attrs": true, "props": true, "namespace": true, "children": true,
}

// Decode decodes a single description tree from a YAML or JSON document.
func Decode(data []byte) (vdom.Node, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes a single description tree from r.
func DecodeReader(r io.Reader) (vdom.Node, error) {
	var doc interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return vdom.Node{}, fmt.Errorf("decode description: %w", err)
	}
	n, err := fromValue(doc, "$")
	if err != nil {
		return vdom.Node{}, err
	}
	tracer().Debugf("decoded description %s", n)
	return n, nil
}

func fromValue(v interface{}, path string) (vdom.Node, error) {
	if vdom.IsPrimitive(v) {
		return vdom.Text(v), nil
	}
	m, err := asMap(v, path)
	if err != nil {
		return vdom.Node{}, err
	}
	kind := ""
	for _, k := range kindKeys {
		if _, ok := m[k]; ok {
			if kind != "" {
				return vdom.Node{}, malformed(path, "both %q and %q given", kind, k)
			}
			kind = k
		}
	}
	switch kind {
	case "element":
		return elementFromMap(m, path)
	case "text", "comment", "fragment":
		if len(m) != 1 {
			return vdom.Node{}, malformed(path, "%s takes no further keys", kind)
		}
	default:
		return vdom.Node{}, malformed(path, "missing one of %v", kindKeys)
	}
	switch kind {
	case "text":
		if x := m["text"]; x != nil && !vdom.IsPrimitive(x) {
			return vdom.Node{}, malformed(path, "text value must be a scalar")
		}
		return vdom.Text(m["text"]), nil
	case "comment":
		if x := m["comment"]; x != nil && !vdom.IsPrimitive(x) {
			return vdom.Node{}, malformed(path, "comment value must be a scalar")
		}
		return vdom.Comment(m["comment"]), nil
	}
	children, err := childrenFrom(m["fragment"], path+".fragment")
	if err != nil {
		return vdom.Node{}, err
	}
	return vdom.Fragment(children...), nil
}

func elementFromMap(m map[string]interface{}, path string) (vdom.Node, error) {
	for k := range m {
		if !elementKeys[k] {
			return vdom.Node{}, malformed(path, "unknown key %q", k)
		}
	}
	name, ok := m["element"].(string)
	if !ok || name == "" {
		return vdom.Node{}, malformed(path, "element name must be a non-empty string")
	}
	path = path + "." + name
	var attrs vdom.Attrs
	var err error
	if attrs.Attributes, err = optionalMap(m["attrs"], path+".attrs"); err != nil {
		return vdom.Node{}, err
	}
	if attrs.Properties, err = optionalMap(m["props"], path+".props"); err != nil {
		return vdom.Node{}, err
	}
	if ns, ok := m["namespace"]; ok {
		switch x := ns.(type) {
		case nil:
			attrs.Namespace = vdom.NoNamespace
		case string:
			attrs.Namespace = vdom.InNamespace(x)
		default:
			return vdom.Node{}, malformed(path, "namespace must be a string or null")
		}
	}
	children, err := childrenFrom(m["children"], path+".children")
	if err != nil {
		return vdom.Node{}, err
	}
	return vdom.Element(name, attrs, children...), nil
}

func childrenFrom(v interface{}, path string) ([]vdom.Node, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, malformed(path, "expected a list")
	}
	children := make([]vdom.Node, 0, len(list))
	for i, x := range list {
		ch, err := fromValue(x, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, ch)
	}
	return children, nil
}

func optionalMap(v interface{}, path string) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return asMap(v, path)
}

func asMap(v interface{}, path string) (map[string]interface{}, error) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, nil
	case map[interface{}]interface{}:
		sm := make(map[string]interface{}, len(m))
		for k, x := range m {
			key, ok := k.(string)
			if !ok {
				return nil, malformed(path, "non-string key %v", k)
			}
			sm[key] = x
		}
		return sm, nil
	case nil:
		return nil, malformed(path, "empty node")
	}
	return nil, malformed(path, "expected a mapping, have %T", v)
}

func malformed(path, msg string, args ...interface{}) error {
	return fmt.Errorf("%w at %s: %s", ErrMalformed, path, fmt.Sprintf(msg, args...))
}

