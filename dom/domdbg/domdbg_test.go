package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/livedom/dom"
	"github.com/npillmayer/livedom/vdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func buildTree() *html.Node {
	root := &html.Node{Type: html.ElementNode, Data: "div"}
	d := vdom.Fragment(
		vdom.Element("p", vdom.A(map[string]interface{}{"class": "x"}), vdom.Text("hello world, long text")),
		vdom.Fragment(vdom.Comment("note"), vdom.Text("a")),
	)
	for _, n := range dom.BuildDelimited(dom.NewHTMLFactory(), d, dom.HTML) {
		root.AppendChild(n)
	}
	return root
}

func TestOutline(t *testing.T) {
	root := buildTree()
	assert.Equal(t, `div[#delim p["hello world, long text"] #delim <!--note--> "a"]`, Outline(root))
	assert.Equal(t, "<nil>", Outline(nil))
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "livedom.domdbg")
	defer teardown()
	//
	s := Print(buildTree())
	t.Logf("tree =\n%s", s)
	assert.Contains(t, s, `p class="x"`)
	assert.Contains(t, s, "#delim")
	assert.Contains(t, s, `"a"`)
}

func TestGraphViz(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(buildTree(), &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Equal(t, 2, strings.Count(dot, "shape=diamond"), "expected one diamond per delimiter")
	assert.Equal(t, 6, strings.Count(dot, "->"), "expected one edge per child")
}

func TestDiff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "livedom.domdbg")
	defer teardown()
	//
	before := buildTree()
	after := buildTree()
	after.LastChild.Data = "b"
	diff, err := DiffTrees(before, after, false)
	require.NoError(t, err)
	t.Logf("diff =\n%s", diff)
	assert.Contains(t, diff, "- <!--note-->a</div>")
	assert.Contains(t, diff, "+ <!--note-->b</div>")
	assert.Contains(t, diff, "  <div>")
	assert.Equal(t, "  x\n", Diff("x", "x", true))
}
