package comments

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/lexer"
)

// ErrUnorderedTokens is returned by New when the token stream is not in
// strictly ascending offset order. This is a lexer defect; the positional
// logic in this package depends on the ordering.
var ErrUnorderedTokens = errors.New("tokens are not in source order")

// docEntry tracks the node a documentation comment will be attached to.
type docEntry struct {
	token   lexer.Token
	nearest ast.Node
}

// information is everything derived from the token stream in the single
// construction pass.
type information struct {
	comments     []lexer.Token
	ordinary     positionIndex
	docIndex     positionIndex
	docs         []*docEntry
	suppressions SuppressionMap
}

func extractInformation(tokens []lexer.Token, marker string) (*information, error) {
	info := &information{suppressions: SuppressionMap{}}

	last := -1
	for i, tok := range tokens {
		if i > 0 && tok.Offset <= last {
			return nil, errors.Wrapf(
				ErrUnorderedTokens,
				"token %s at offset %d follows offset %d",
				tok.Kind,
				tok.Offset,
				last,
			)
		}
		last = tok.Offset

		if tok.Channel == lexer.CommentChannel {
			info.comments = append(info.comments, tok)
		}

		if msg, ok := suppression(tok, marker); ok {
			info.suppressions[tok.Line] = msg
		}
	}

	isDoc := func(tok lexer.Token) bool { return tok.Kind == lexer.DocComment }
	info.ordinary = newPositionIndex(info.comments, func(tok lexer.Token) bool { return !isDoc(tok) })
	info.docIndex = newPositionIndex(info.comments, isDoc)

	info.docs = make([]*docEntry, info.docIndex.Len())
	for i := range info.docs {
		info.docs[i] = &docEntry{token: info.docIndex.Token(i)}
	}

	return info, nil
}
