/*
Command domrender patches an HTML page against a YAML description.

   domrender -html page.html -desc view.yaml [-root selector] [-config domrender.toml]
             [-diff] [-tree] [-dot out.dot] [-trace level]

The live root is selected by a CSS selector (default "body"). Its children
are reconciled with the children of the description's top-level element.
The patched page is written to stdout, or a line diff of the root's markup
with -diff, or a tree dump with -tree.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/cascadia"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/livedom/dom"
	"github.com/npillmayer/livedom/dom/domdbg"
	"github.com/npillmayer/livedom/dom/patch"
	"github.com/npillmayer/livedom/vdom/yamladapter"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

var tracerKeys = []string{"livedom.vdom", "livedom.dom", "livedom.patch", "livedom.domdbg"}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "domrender: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	htmlPath string
	descPath string
	dotPath  string
	diff     bool
	tree     bool
	config   config
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	var cfgPath, root, trace string
	var noSync bool
	fs := flag.NewFlagSet("domrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.htmlPath, "html", "", "HTML page to patch")
	fs.StringVar(&opts.descPath, "desc", "", "YAML description of the root element")
	fs.StringVar(&cfgPath, "config", "", "TOML config file")
	fs.StringVar(&root, "root", "", "CSS selector for the live root (default \"body\")")
	fs.StringVar(&trace, "trace", "", "trace level: error, info or debug")
	fs.BoolVar(&noSync, "nosync", false, "leave attributes of reused elements untouched")
	fs.BoolVar(&opts.diff, "diff", false, "print a diff of the root's markup")
	fs.BoolVar(&opts.tree, "tree", false, "print the patched tree")
	fs.StringVar(&opts.dotPath, "dot", "", "write a GraphViz diagram of the patched root")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.htmlPath == "" || opts.descPath == "" {
		fs.Usage()
		return opts, errors.New("both -html and -desc are required")
	}
	opts.config = defaultConfig()
	if cfgPath != "" {
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return opts, err
		}
		opts.config = cfg
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			opts.config.Root = root
		case "trace":
			opts.config.Trace = trace
		case "nosync":
			opts.config.SyncAttributes = !noSync
		}
	})
	return opts, opts.config.validate()
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	level, _ := traceLevel(opts.config.Trace)
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	page, err := os.Open(opts.htmlPath)
	if err != nil {
		return err
	}
	defer page.Close()
	doc, err := html.Parse(page)
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.htmlPath, err)
	}
	root, err := selectRoot(doc, opts.config.Root)
	if err != nil {
		return err
	}
	desc, err := os.ReadFile(opts.descPath)
	if err != nil {
		return err
	}
	d, err := yamladapter.Decode(desc)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.descPath, err)
	}
	before, err := domdbg.Markup(root)
	if err != nil {
		return err
	}
	var fopts []dom.FactoryOption
	if !opts.config.SyncAttributes {
		fopts = append(fopts, dom.WithoutAttributeSync())
	}
	rec := &patch.Recorder{}
	patch.Render(d, root, patch.WithFactory(dom.NewHTMLFactory(fopts...)), patch.WithObserver(rec))
	fmt.Fprintf(stderr, "domrender: %d mutations (%d inserted, %d removed, %d values, %d attributes)\n",
		rec.Len(), rec.Count(patch.Inserted), rec.Count(patch.Removed),
		rec.Count(patch.ValueChanged), rec.Count(patch.AttributesChanged))
	if opts.dotPath != "" {
		if err = writeDot(root, opts.dotPath); err != nil {
			return err
		}
	}
	switch {
	case opts.diff:
		after, err := domdbg.Markup(root)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, domdbg.Diff(before, after, useColor(opts.config.Color, stdout)))
		return err
	case opts.tree:
		_, err = io.WriteString(stdout, domdbg.Print(root))
		return err
	}
	return html.Render(stdout, doc)
}

func selectRoot(doc *html.Node, selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("root selector %q: %w", selector, err)
	}
	root := sel.MatchFirst(doc)
	if root == nil || !dom.NodeIsElement(root) {
		return nil, fmt.Errorf("no element matches root selector %q", selector)
	}
	return root, nil
}

func writeDot(root *html.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = domdbg.ToGraphViz(root, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd()) && !color.NoColor
}
