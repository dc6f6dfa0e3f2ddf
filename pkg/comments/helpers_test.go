package comments_test

import (
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/lexer"
	"github.com/pseudomuto/commentary/pkg/source"
)

// stream builds tokens with ascending offsets.
type stream struct {
	tokens []lexer.Token
	offset int
}

func (s *stream) add(kind lexer.Kind, line, column int, text string) lexer.Token {
	tok := lexer.Token{
		Kind:    kind,
		Channel: kind.Channel(),
		Line:    line,
		Column:  column,
		Offset:  s.offset,
		Text:    text,
	}

	s.offset += len(text) + 1
	s.tokens = append(s.tokens, tok)
	return tok
}

func node(kind ast.Kind, image string, begin, end source.Position) *ast.Element {
	return ast.NewElement(kind, image, begin, end)
}
