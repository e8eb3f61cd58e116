package vdom_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/npillmayer/livedom/vdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStringify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "livedom.vdom")
	defer teardown()
	//
	cases := []struct {
		v    interface{}
		want string
	}{
		{"hello", "hello"},
		{"", ""},
		{42, "42"},
		{int64(-7), "-7"},
		{uint8(255), "255"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{1e6, "1000000"},
		{1e21, "1e+21"},
		{1e-7, "0.0000001"},
		{1e-8, "1e-8"},
		{math.Copysign(0, -1), "0"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-Infinity"},
		{big.NewInt(12345678901), "12345678901"},
		{true, "true"},
		{false, "false"},
		{nil, ""},
		{struct{}{}, ""},
		{[]int{1}, ""},
	}
	for i, c := range cases {
		if s := vdom.Stringify(c.v); s != c.want {
			t.Errorf("%d: expected Stringify(%#v) to be %q, is %q", i, c.v, c.want, s)
		}
	}
}

func TestMatchKinds(t *testing.T) {
	nodes := []vdom.Node{
		vdom.H("div", vdom.Text("x")),
		vdom.Text(7),
		vdom.Comment(nil),
		vdom.Fragment(vdom.Text("a"), vdom.Text("b")),
	}
	var name string
	var children []vdom.Node
	var value interface{}
	kinds := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch m := n.Match(); m {
		case m.Element(&name, &children):
			kinds = append(kinds, "E:"+name)
		case m.Text(&value):
			kinds = append(kinds, "T:"+vdom.Stringify(value))
		case m.Comment(nil):
			kinds = append(kinds, "C")
		case m.Fragment(&children):
			kinds = append(kinds, "F")
		}
	}
	expected := []string{"E:div", "T:7", "C", "F"}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("expected node #%d to match %s, matched %s", i, expected[i], kinds[i])
		}
	}
	if len(children) != 2 {
		t.Errorf("expected fragment to have 2 children, has %d", len(children))
	}
}

func TestElementCopiesInput(t *testing.T) {
	attrs := vdom.A(map[string]interface{}{"class": "box"})
	children := []vdom.Node{vdom.Text("a")}
	e := vdom.Element("p", attrs, children...)
	attrs.Attributes["class"] = "changed"
	children[0] = vdom.Text("b")
	if e.Attrs().Attributes["class"] != "box" {
		t.Errorf("expected element attributes to be immutable, class is %v", e.Attrs().Attributes["class"])
	}
	if e.Children()[0].StringValue() != "a" {
		t.Errorf("expected element children to be immutable, child is %v", e.Children()[0])
	}
	t.Logf("element = %s", e)
}

func TestEmptyElementNamePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected empty element name to panic, didn't")
		}
	}()
	vdom.H("")
}

func TestNamespaceOverride(t *testing.T) {
	var zero vdom.Namespace
	if ns := zero.Resolve("svg"); ns != "svg" {
		t.Errorf("expected zero namespace to inherit 'svg', is %q", ns)
	}
	if ns := vdom.InNamespace("math").Resolve(""); ns != "math" {
		t.Errorf("expected override to yield 'math', is %q", ns)
	}
	if ns := vdom.NoNamespace.Resolve("svg"); ns != vdom.NullNamespace {
		t.Errorf("expected NoNamespace to yield null namespace, is %q", ns)
	}
}

func TestPropertyKeysSkipEmptyNames(t *testing.T) {
	a := vdom.Attrs{Properties: map[string]interface{}{"": 1, "value": 2, "checked": true}}
	keys := a.PropertyKeys()
	if len(keys) != 2 || keys[0] != "checked" || keys[1] != "value" {
		t.Errorf("expected property keys [checked value], are %v", keys)
	}
}

func TestDescriptionString(t *testing.T) {
	d := vdom.H("ul", vdom.H("li", vdom.Text(1)), vdom.Fragment(vdom.Comment("c")))
	if s := d.String(); s != `ul[li["1"] #fragment[<!--c-->]]` {
		t.Errorf("unexpected string form %s", s)
	}
}
