package comments

import (
	"log/slog"
	"maps"

	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/lexer"
)

type (
	// Attachment records a formal comment and the node it was inserted into.
	Attachment struct {
		Comment *ast.FormalComment
		Target  ast.Node
	}

	// Result is the read-only outcome of Builder.Finalize.
	Result struct {
		info        *information
		logger      *slog.Logger
		attachments []Attachment
		unattached  []lexer.Token
	}
)

// ContainsComments reports whether an ordinary comment starts within the
// inclusive range of n.
func (r *Result) ContainsComments(n ast.Node) bool {
	return containsComments(r.info, r.logger, n)
}

// SuppressionMap returns a copy of the line → message map.
func (r *Result) SuppressionMap() SuppressionMap {
	return maps.Clone(r.info.suppressions)
}

// Attachments returns the inserted formal comments in source order.
func (r *Result) Attachments() []Attachment {
	return append([]Attachment(nil), r.attachments...)
}

// Unattached returns the documentation comments no node follows, in source
// order.
func (r *Result) Unattached() []lexer.Token {
	return append([]lexer.Token(nil), r.unattached...)
}

// OrdinaryComments returns the non-documentation comments in source order.
func (r *Result) OrdinaryComments() []lexer.Token {
	out := make([]lexer.Token, r.info.ordinary.Len())
	for i := range out {
		out[i] = r.info.ordinary.Token(i)
	}

	return out
}
