package comments

import (
	"log/slog"
	"maps"

	"github.com/pkg/errors"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/lexer"
)

// ErrFinalized is returned when a Builder is used after Finalize.
var ErrFinalized = errors.New("comment builder already finalized")

type (
	// Option configures a Builder.
	Option func(*options)

	options struct {
		marker string
		logger *slog.Logger
	}

	// Builder accumulates comment associations for one file. See the package
	// documentation for the protocol.
	Builder struct {
		info      *information
		logger    *slog.Logger
		finalized bool
	}

	// Pending is the association state of one documentation comment before
	// Finalize.
	Pending struct {
		Token   lexer.Token
		Nearest ast.Node
	}
)

// WithSuppressMarker enables suppression scanning for line comments starting
// with marker. An empty marker disables scanning, which is the default.
func WithSuppressMarker(marker string) Option {
	return func(o *options) { o.marker = marker }
}

// WithLogger sets the logger for diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New processes the token stream of one file. tokens must hold every token of
// the file in source order; only comment-channel tokens are retained.
//
// Returns ErrUnorderedTokens (wrapped) when the offsets of tokens are not
// strictly ascending.
func New(tokens []lexer.Token, opts ...Option) (*Builder, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	info, err := extractInformation(tokens, o.marker)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract comment information")
	}

	return &Builder{info: info, logger: o.logger}, nil
}

// ContainsComments reports whether an ordinary (non-documentation) comment
// starts within the inclusive range of n. Nodes without a real location never
// contain comments.
func (b *Builder) ContainsComments(n ast.Node) bool {
	return containsComments(b.info, b.logger, n)
}

// SuppressionMap returns a copy of the line → message map built from the
// token stream.
func (b *Builder) SuppressionMap() SuppressionMap {
	return maps.Clone(b.info.suppressions)
}

// Pending returns the current association of every documentation comment, in
// source order.
func (b *Builder) Pending() []Pending {
	out := make([]Pending, len(b.info.docs))
	for i, doc := range b.info.docs {
		out[i] = Pending{Token: doc.token, Nearest: doc.nearest}
	}

	return out
}

// Observe offers n as the documented node for every documentation comment
// positioned at or before n's begin position. A comment keeps the candidate
// with the smallest begin position, so after every node has been observed
// once each comment refers to the nearest node following it, whatever the
// order of the calls.
//
// Candidates sharing a begin position are ranked declarations first, so a
// type's comment goes to the type rather than the compilation unit and a
// method's comment to the method rather than its annotations. Remaining ties
// go to the node that ends later, then the one closer to the root.
func (b *Builder) Observe(n ast.Node) error {
	if b.finalized {
		return ErrFinalized
	}

	if !n.HasRealLoc() {
		return nil
	}

	begin := n.Begin()
	for _, doc := range b.info.docs[:b.info.docIndex.UpperBound(begin)] {
		if doc.nearest == nil || closer(n, doc.nearest) {
			doc.nearest = n
		}
	}

	return nil
}

// Finalize inserts a formal comment for every documentation comment that
// found a node. Comments attached to the same node keep their source order
// and precede the node's original children.
//
// Finalize may be called once; subsequent calls, and calls to Observe, return
// ErrFinalized.
func (b *Builder) Finalize() (*Result, error) {
	if b.finalized {
		return nil, ErrFinalized
	}
	b.finalized = true

	res := &Result{info: b.info, logger: b.logger}
	inserted := make(map[ast.Node]int)

	for _, doc := range b.info.docs {
		target := doc.nearest
		if target == nil {
			b.logger.Debug("Documentation comment has no following node",
				"line", doc.token.Line,
				"column", doc.token.Column,
			)
			res.unattached = append(res.unattached, doc.token)
			continue
		}

		comment := ast.NewFormalComment(doc.token)

		idx := inserted[target]
		target.InsertChild(idx, comment)
		comment.SetParent(target)
		inserted[target] = idx + 1

		res.attachments = append(res.attachments, Attachment{Comment: comment, Target: target})
	}

	return res, nil
}

func closer(candidate, current ast.Node) bool {
	if c := candidate.Begin().Compare(current.Begin()); c != 0 {
		return c < 0
	}

	if a, b := candidate.Kind().IsDeclaration(), current.Kind().IsDeclaration(); a != b {
		return a
	}

	if c := candidate.End().Compare(current.End()); c != 0 {
		return c > 0
	}

	return ast.Depth(candidate) < ast.Depth(current)
}

func containsComments(info *information, logger *slog.Logger, n ast.Node) bool {
	if !n.HasRealLoc() {
		return false
	}

	begin := n.Begin()
	i, found := info.ordinary.Search(begin)
	if found {
		// A node never starts at a comment; fall through to the matching index.
		logger.Debug("Comment coincides with node begin",
			"kind", n.Kind(),
			"position", begin.String(),
		)
	}

	if i >= info.ordinary.Len() {
		return false
	}

	pos := info.ordinary.At(i)
	return pos.Compare(begin) >= 0 && pos.Compare(n.End()) <= 0
}
