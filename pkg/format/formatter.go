package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/lexer"
	"gopkg.in/yaml.v3"
)

type (
	// Options controls formatting behavior.
	Options struct {
		// IndentSize is the number of spaces per tree level and YAML indent.
		IndentSize int
		// HidePositions omits node spans from tree output.
		HidePositions bool
	}

	// Formatter renders trees and suppression maps.
	Formatter struct {
		options Options
	}
)

// Defaults holds the standard formatting options.
var Defaults = Options{IndentSize: 2}

// New creates a Formatter. A nil options value selects Defaults.
func New(options *Options) *Formatter {
	opts := Defaults
	if options != nil {
		opts = *options
	}

	if opts.IndentSize <= 0 {
		opts.IndentSize = Defaults.IndentSize
	}

	return &Formatter{options: opts}
}

// Tree writes n and its descendants, one node per line.
func (f *Formatter) Tree(w io.Writer, n ast.Node) error {
	if n == nil {
		return nil
	}

	var b strings.Builder
	f.tree(&b, n, 0)

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write tree")
}

func (f *Formatter) tree(b *strings.Builder, n ast.Node, depth int) {
	b.WriteString(strings.Repeat(" ", depth*f.options.IndentSize))
	b.WriteString(f.Node(n))
	b.WriteString("\n")

	for i := range n.NumChildren() {
		f.tree(b, n.Child(i), depth+1)
	}
}

// Node renders a single node without its children.
func (f *Formatter) Node(n ast.Node) string {
	parts := []string{string(n.Kind())}
	if img := image(n); img != "" {
		parts = append(parts, img)
	}

	switch {
	case !n.HasRealLoc():
		parts = append(parts, "<synthetic>")
	case !f.options.HidePositions:
		parts = append(parts, span(n))
	}

	return strings.Join(parts, " ")
}

// Declarations writes one line per node in the form file:line:column: Kind image.
func (f *Formatter) Declarations(w io.Writer, filename string, nodes []ast.Node) error {
	for _, n := range nodes {
		begin := n.Begin()
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s\n", filename, begin.Line, begin.Column, n.Kind(), n.Image()); err != nil {
			return errors.Wrap(err, "failed to write declaration")
		}
	}

	return nil
}

// Comments writes one indented line per comment in the form line:column text.
// Runs of whitespace in the comment text, including line breaks, are collapsed
// to single spaces.
func (f *Formatter) Comments(w io.Writer, tokens []lexer.Token) error {
	indent := strings.Repeat(" ", f.options.IndentSize)
	for _, tok := range tokens {
		text := strings.Join(strings.Fields(tok.Text), " ")
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, tok.Position(), text); err != nil {
			return errors.Wrap(err, "failed to write comment")
		}
	}

	return nil
}

// Suppressions writes one YAML document per file.
func (f *Formatter) Suppressions(w io.Writer, files ...FileSuppressions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(f.options.IndentSize)

	for _, file := range files {
		if err := enc.Encode(file); err != nil {
			return errors.Wrapf(err, "failed to encode suppressions for %s", file.File)
		}
	}

	return errors.Wrap(enc.Close(), "failed to flush suppressions")
}

func image(n ast.Node) string {
	if c, ok := n.(*ast.FormalComment); ok {
		return strings.Join(c.Lines(), " | ")
	}

	return n.Image()
}

func span(n ast.Node) string {
	return "[" + n.Begin().String() + "-" + n.End().String() + "]"
}
