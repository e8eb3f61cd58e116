package domdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/livedom/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Outline returns a one-line representation of the tree under n, e.g.
//
//     div[#delim "a" <!--note--> span["b"]]
//
// Elements outside the HTML namespace are prefixed by their namespace
// ("svg:circle[]").
func Outline(n *html.Node) string {
	var b strings.Builder
	outline(n, &b)
	return b.String()
}

func outline(n *html.Node, b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	b.WriteString(Label(n))
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}
	b.WriteByte('[')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c != n.FirstChild {
			b.WriteByte(' ')
		}
		outline(c, b)
	}
	b.WriteByte(']')
}

// Label returns a short label for a single live node.
func Label(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		if n.Namespace != dom.HTML {
			return n.Namespace + ":" + n.Data
		}
		return n.Data
	case html.TextNode:
		return fmt.Sprintf("%q", n.Data)
	case html.CommentNode:
		if dom.IsDelimiter(n) {
			return "#delim"
		}
		return "<!--" + n.Data + "-->"
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return "<!DOCTYPE " + n.Data + ">"
	case html.RawNode:
		return "#raw"
	}
	return "#error"
}

// Print returns an indented tree view of the live tree under n.
func Print(n *html.Node) string {
	printer := tp.New()
	printNode(printer, n)
	return printer.String()
}

func printNode(printer tp.Tree, n *html.Node) {
	label := Label(n)
	for _, a := range n.Attr {
		if n.Type == html.ElementNode {
			label += fmt.Sprintf(" %s=%q", a.Key, a.Val)
		}
	}
	if n.FirstChild == nil {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for _, c := range dom.ChildNodes(n) {
		printNode(branch, c)
	}
}
