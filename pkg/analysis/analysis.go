package analysis

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/comments"
	"github.com/pseudomuto/commentary/pkg/lexer"
	"github.com/pseudomuto/commentary/pkg/parser"
	"github.com/pseudomuto/commentary/pkg/source"
)

type (
	// Options controls a single analysis run.
	Options struct {
		// SuppressMarker is the line comment prefix that marks a suppression.
		// Empty disables suppression scanning.
		SuppressMarker string
		// Order is the traversal order used while observing nodes.
		Order ast.Order
		// Logger receives diagnostics. Defaults to slog.Default().
		Logger *slog.Logger
	}

	// Report is the outcome of analysing one file.
	Report struct {
		Filename string
		// Root is the syntax tree with formal comments inserted.
		Root ast.Node
		// Suppressions maps line numbers to suppression messages.
		Suppressions comments.SuppressionMap
		// Commented lists the declarations whose range contains an ordinary
		// comment, in visit order.
		Commented []ast.Node
		// Attachments lists the inserted formal comments in source order.
		Attachments []comments.Attachment
		// Unattached lists documentation comments no node follows.
		Unattached []lexer.Token
		// Comments lists the ordinary (non-documentation) comments in source
		// order.
		Comments []lexer.Token
	}
)

// Path reads and analyses the file at path.
func Path(path string, opts Options) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	return File(path, string(data), opts)
}

// File analyses src. filename is used in error messages and as the image of
// the root node.
func File(filename, src string, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tokens, err := lexer.Tokenize(filename, src)
	if err != nil {
		return nil, err
	}

	builder, err := comments.New(tokens,
		comments.WithSuppressMarker(opts.SuppressMarker),
		comments.WithLogger(logger),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to index comments in %s", filename)
	}

	root, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}

	report := &Report{Filename: filename, Root: root}

	err = ast.Walk(root, opts.Order, func(n ast.Node) error {
		if n.Kind().IsDeclaration() && builder.ContainsComments(n) {
			report.Commented = append(report.Commented, n)
		}

		return builder.Observe(n)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", filename)
	}

	res, err := builder.Finalize()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to finalize %s", filename)
	}

	report.Suppressions = res.SuppressionMap()
	report.Attachments = res.Attachments()
	report.Unattached = res.Unattached()
	report.Comments = res.OrdinaryComments()

	logger.Debug("Analysed file",
		"file", filename,
		"attached", len(report.Attachments),
		"unattached", len(report.Unattached),
		"suppressions", len(report.Suppressions),
	)

	return report, nil
}

// CommentsIn returns the ordinary comments starting within the range of n.
func (r *Report) CommentsIn(n ast.Node) []lexer.Token {
	if !n.HasRealLoc() {
		return nil
	}

	span := source.Region{Begin: n.Begin(), End: n.End()}

	var out []lexer.Token
	for _, tok := range r.Comments {
		if span.Contains(tok.Position()) {
			out = append(out, tok)
		}
	}

	return out
}
