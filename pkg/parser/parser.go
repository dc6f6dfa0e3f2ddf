package parser

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/lexer"
)

// grammar is the participle parser instance for Apex-style sources
var grammar = participle.MustBuild[File](
	participle.Lexer(lexer.Definition),
	participle.Elide(lexer.Trivia()...),
	participle.UseLookahead(participle.MaxLookahead),
)

// Parse parses a source file from an io.Reader and returns the root of its
// syntax tree. filename is used in error messages and as the image of the
// root node.
//
// Returns an error if the reader cannot be read or contains invalid source.
func Parse(filename string, r io.Reader) (*ast.Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read source")
	}

	return ParseString(filename, string(data))
}

// ParseString parses source text and returns the root of its syntax tree.
//
// Example usage:
//
//	root, err := parser.ParseString("Greeter.cls", `
//		public class Greeter {
//			/** Says hello. */
//			public String greet(String name) {
//				return 'Hello ' + name;
//			}
//		}
//	`)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, m := range ast.Find(root, ast.KindMethod) {
//		fmt.Printf("%s at %s\n", m.Image(), m.Begin())
//	}
func ParseString(filename, src string) (*ast.Element, error) {
	file, err := ParseGrammar(filename, src)
	if err != nil {
		return nil, err
	}

	return build(filename, file), nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*ast.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(path, f)
}

// ParseGrammar parses source text into the raw grammar structure without
// building a tree.
func ParseGrammar(filename, src string) (*File, error) {
	file, err := grammar.ParseString(filename, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse source")
	}

	return file, nil
}

// EBNF returns the grammar in EBNF form.
func EBNF() string {
	return strings.TrimSpace(grammar.String())
}
