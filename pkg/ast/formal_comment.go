package ast

import (
	"strings"

	"github.com/pseudomuto/commentary/pkg/lexer"
	"github.com/pseudomuto/commentary/pkg/source"
)

// FormalComment is a documentation comment attached to the node it documents.
// It is always the first child of that node.
type FormalComment struct {
	Element

	token  lexer.Token
	region source.Region
	text   string
}

// NewFormalComment wraps a documentation comment token.
func NewFormalComment(tok lexer.Token) *FormalComment {
	return &FormalComment{
		Element: Element{
			kind:  KindFormalComment,
			image: tok.Text,
			begin: tok.Position(),
			end:   tok.End(),
		},
		token:  tok,
		region: tok.Region(),
		text:   tok.Text,
	}
}

// Token returns the documentation token the comment was built from.
func (c *FormalComment) Token() lexer.Token { return c.token }

// Region returns the text region of the comment.
func (c *FormalComment) Region() source.Region { return c.region }

// Text returns the raw comment text, including delimiters.
func (c *FormalComment) Text() string { return c.text }

// Lines returns the comment body without the /** and */ delimiters and
// without the leading '*' of each line. Blank leading and trailing lines are
// dropped.
func (c *FormalComment) Lines() []string {
	body := strings.TrimPrefix(c.text, "/**")
	body = strings.TrimSuffix(body, "*/")

	var lines []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*")
		lines = append(lines, strings.TrimSpace(line))
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
