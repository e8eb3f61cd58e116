package domdbg

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/net/html"
)

// Markup renders the tree under n to a string. Elements start on a new
// line, which makes line diffs of patched trees readable.
func Markup(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return strings.ReplaceAll(buf.String(), "><", ">\n<"), nil
}

// Diff returns a line diff between two markup strings (see Markup). Lines
// only in before are prefixed by "- ", lines only in after by "+ ".
// If colored is set, removed lines are red and inserted lines are green.
func Diff(before, after string, colored bool) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	del, ins := color.New(color.FgRed), color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	var out strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				out.WriteString(del.Sprint("- " + line))
			case diffmatchpatch.DiffInsert:
				out.WriteString(ins.Sprint("+ " + line))
			default:
				out.WriteString("  " + line)
			}
			out.WriteByte('\n')
		}
	}
	tracer().Debugf("diffed %d chunks", len(diffs))
	return out.String()
}

// DiffTrees is Diff for two live trees.
func DiffTrees(before, after *html.Node, colored bool) (string, error) {
	a, err := Markup(before)
	if err != nil {
		return "", err
	}
	b, err := Markup(after)
	if err != nil {
		return "", err
	}
	return Diff(a, b, colored), nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
