package lexer

import (
	"fmt"

	"github.com/pseudomuto/commentary/pkg/source"
)

// Kind identifies the lexical class of a Token.
type Kind int

const (
	Unknown Kind = iota
	DocComment
	BlockComment
	LineComment
	String
	Number
	Modifier
	Ident
	Operator
	Punct
	Whitespace
)

var kindNames = [...]string{
	Unknown:      "Unknown",
	DocComment:   RuleDocComment,
	BlockComment: RuleBlockComment,
	LineComment:  RuleLineComment,
	String:       RuleString,
	Number:       RuleNumber,
	Modifier:     RuleModifier,
	Ident:        RuleIdent,
	Operator:     RuleOperator,
	Punct:        RulePunct,
	Whitespace:   RuleWhitespace,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// IsComment reports whether k is any of the comment kinds.
func (k Kind) IsComment() bool {
	return k == DocComment || k == BlockComment || k == LineComment
}

// Channel returns the channel tokens of kind k are emitted on.
func (k Kind) Channel() Channel {
	switch {
	case k.IsComment():
		return CommentChannel
	case k == Whitespace:
		return HiddenChannel
	default:
		return DefaultChannel
	}
}

// Channel groups tokens the parser treats alike.
type Channel int

const (
	// DefaultChannel carries the tokens the grammar consumes.
	DefaultChannel Channel = iota
	// HiddenChannel carries whitespace.
	HiddenChannel
	// CommentChannel carries every comment kind.
	CommentChannel
)

func (c Channel) String() string {
	switch c {
	case DefaultChannel:
		return "default"
	case HiddenChannel:
		return "hidden"
	case CommentChannel:
		return "comment"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Token is a single lexical token. Tokens are immutable values.
type Token struct {
	Kind    Kind
	Channel Channel
	// Line is 1-based.
	Line int
	// Column is 1-based and counts runes.
	Column int
	// Offset is the 0-based byte offset of the first byte.
	Offset int
	Text   string
}

// Position returns the position of the token's first character.
func (t Token) Position() source.Position {
	return source.At(t.Line, t.Column)
}

// End returns the position of the token's last character.
func (t Token) End() source.Position {
	return t.Position().Last(t.Text)
}

// Region returns the text region the token covers.
func (t Token) Region() source.Region {
	return source.RegionOf(t.Offset, t.Position(), t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d:%d %q", t.Kind, t.Line, t.Column, t.Text)
}
