package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/livedom/dom"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a live tree. The diagram is in
// GraphViz (DOT) format. Delimiters are drawn as small diamonds, making
// mounted fragments visible. Sibling order is preserved from left to
// right.
func ToGraphViz(root *html.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*html.Node]string, 64)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a live root node and a testing.T, it
// will create a Graphviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *html.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N     *html.Node
	Name  string
	Kind  string
	Label string
}

func nodes(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n] = name
	}
	kind := "element"
	switch {
	case dom.IsDelimiter(n):
		kind = "delimiter"
	case dom.NodeIsText(n):
		kind = "text"
	case n.Type == html.CommentNode:
		kind = "comment"
	}
	return gparams.NodeTmpl.Execute(w, &node{N: n, Name: name, Kind: kind, Label: Label(n)})
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *html.Node, n2 *html.Node, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) error {
	//
	name1 := dict[n1]
	name2 := dict[n2]
	e := edge{node{N: n1, Name: name1}, node{N: n2, Name: name2}}
	return gparams.EdgeTmpl.Execute(w, e)
}

func shortText(n *html.Node) string {
	s := "\"\\\""
	if len(n.Data) > 10 {
		s += n.Data[:10] + "...\\\"\""
	} else {
		s += n.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR" ordering=out];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .Kind "text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .Kind "delimiter" }}
{{ .Name }}	[ label="" shape=diamond width=0.2 height=0.2 style=filled fillcolor=orange ] ;
{{ else if eq .Kind "comment" }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=note style=filled fillcolor=ivory3 fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
