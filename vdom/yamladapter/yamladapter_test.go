package yamladapter

import (
	"errors"
	"testing"

	"github.com/npillmayer/livedom/dom"
	"github.com/npillmayer/livedom/dom/domdbg"
	"github.com/npillmayer/livedom/vdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `
element: ul
attrs: { class: menu, hidden: false }
children:
  - element: li
    children: [ "first" ]
  - fragment:
      - 42
      - comment: note
      - fragment: [ { text: true } ]
  - element: svg
    namespace: svg
    children:
      - element: clipPath
        props: { model: 7 }
      - element: plain
        namespace: null
  - comment:
`

func expected() vdom.Node {
	return vdom.Element("ul", vdom.A(map[string]interface{}{"class": "menu", "hidden": false}),
		vdom.H("li", vdom.Text("first")),
		vdom.Fragment(
			vdom.Text(42),
			vdom.Comment("note"),
			vdom.Fragment(vdom.Text(true)),
		),
		vdom.Element("svg", vdom.Attrs{Namespace: vdom.InNamespace("svg")},
			vdom.Element("clipPath", vdom.Attrs{Properties: map[string]interface{}{"model": 7}}),
			vdom.Element("plain", vdom.Attrs{Namespace: vdom.NoNamespace}),
		),
		vdom.Comment(nil),
	)
}

func render(t *testing.T, d vdom.Node) string {
	root := &html.Node{Type: html.ElementNode, Data: "div"}
	for _, n := range dom.BuildDelimited(dom.NewHTMLFactory(), d, dom.HTML) {
		root.AppendChild(n)
	}
	return domdbg.Outline(root)
}

func TestDecodeBuildsSameTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "livedom.vdom")
	defer teardown()
	//
	d, err := Decode([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, expected().String(), d.String())
	assert.Equal(t, render(t, expected()), render(t, d))
	props := d.Children()[2].Children()[0].Attrs().Properties
	assert.EqualValues(t, 7, props["model"])
	ns, ok := d.Children()[2].Children()[1].Attrs().Namespace.Lookup()
	assert.True(t, ok)
	assert.Equal(t, vdom.NullNamespace, ns)
}

func TestDecodeJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "livedom.vdom")
	defer teardown()
	//
	d, err := Decode([]byte(`{"element": "p", "children": [{"text": "a"}, 1.5]}`))
	require.NoError(t, err)
	assert.Equal(t, `p["a" "1.5"]`, d.String())
}

func TestDecodeMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "livedom.vdom")
	defer teardown()
	//
	docs := []string{
		`{ element: "" }`,
		`{ element: div, text: x }`,
		`{ element: div, color: red }`,
		`{ text: [1, 2] }`,
		`{ comment: x, children: [] }`,
		`{ fragment: { text: x } }`,
		`{ element: div, namespace: [svg] }`,
		`{ element: div, attrs: [a] }`,
		`{ element: div, children: [ ~ ] }`,
		`{ nothing: here }`,
	}
	for _, doc := range docs {
		_, err := Decode([]byte(doc))
		if assert.Error(t, err, doc) {
			assert.True(t, errors.Is(err, ErrMalformed), "expected ErrMalformed for %s, have %v", doc, err)
		}
	}
	_, err := Decode([]byte("element: [unclosed"))
	assert.Error(t, err)
}
