package lexer

import (
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/commentary/pkg/source"
)

// Rule names used by the participle definition. The parser refers to these
// when eliding trivia and matching token types.
const (
	RuleDocComment   = "DocComment"
	RuleBlockComment = "BlockComment"
	RuleLineComment  = "LineComment"
	RuleString       = "String"
	RuleNumber       = "Number"
	RuleModifier     = "Modifier"
	RuleIdent        = "Ident"
	RuleOperator     = "Operator"
	RulePunct        = "Punct"
	RuleWhitespace   = "Whitespace"
)

var (
	// Definition is the participle lexer definition for Apex-style sources.
	// Order matters: doc comments must be tried before block comments, and
	// modifiers before identifiers.
	Definition = plexer.MustSimple([]plexer.SimpleRule{
		{Name: RuleDocComment, Pattern: `/\*\*(?:[^*/]|\*+[^*/])(?:[^*]|\*+[^*/])*\*+/|/\*\*\*+/`},
		{Name: RuleBlockComment, Pattern: `/\*([^*]|\*+[^*/])*\*+/`},
		{Name: RuleLineComment, Pattern: `//[^\r\n]*`},
		{Name: RuleString, Pattern: `'([^'\\]|\\.)*'`},
		{Name: RuleNumber, Pattern: `\d+(\.\d+)?[lLdD]?`},
		{Name: RuleModifier, Pattern: `(public|private|protected|global|static|final|abstract|virtual|override|transient|webservice|testmethod)\b`},
		{Name: RuleIdent, Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
		{Name: RuleOperator, Pattern: `==|!=|<=|>=|&&|\|\||\+\+|--|\+=|-=|\*=|/=|[-+*/%!<>=&|^?:~]`},
		{Name: RulePunct, Pattern: `[(){}\[\];,.@]`},
		{Name: RuleWhitespace, Pattern: `\s+`},
	})

	kindsByType map[plexer.TokenType]Kind
)

func init() {
	names := map[string]Kind{
		RuleDocComment:   DocComment,
		RuleBlockComment: BlockComment,
		RuleLineComment:  LineComment,
		RuleString:       String,
		RuleNumber:       Number,
		RuleModifier:     Modifier,
		RuleIdent:        Ident,
		RuleOperator:     Operator,
		RulePunct:        Punct,
		RuleWhitespace:   Whitespace,
	}

	kindsByType = make(map[plexer.TokenType]Kind, len(names))
	for name, tt := range Definition.Symbols() {
		if kind, ok := names[name]; ok {
			kindsByType[tt] = kind
		}
	}
}

// Tokenize lexes src and returns all of its tokens in source order. The
// trailing EOF token is not included.
//
// Returns an error if src contains text no rule accepts. The error carries
// the offending position.
func Tokenize(filename, src string) ([]Token, error) {
	lex, err := Definition.LexString(filename, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lexer")
	}

	raw, err := plexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to tokenize %s", displayName(filename))
	}

	tokens := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			break
		}

		tokens = append(tokens, FromParticiple(tok))
	}

	return tokens, nil
}

// FromParticiple converts a participle token produced by Definition.
func FromParticiple(tok plexer.Token) Token {
	kind, ok := kindsByType[tok.Type]
	if !ok {
		kind = Unknown
	}

	return Token{
		Kind:    kind,
		Channel: kind.Channel(),
		Line:    tok.Pos.Line,
		Column:  tok.Pos.Column,
		Offset:  tok.Pos.Offset,
		Text:    tok.Value,
	}
}

// IsTrivia reports whether the participle token type is elided by the parser.
func IsTrivia(tt plexer.TokenType) bool {
	kind, ok := kindsByType[tt]
	return ok && kind.Channel() != DefaultChannel
}

// Trivia returns the names of the rules the parser elides.
func Trivia() []string {
	return []string{RuleDocComment, RuleBlockComment, RuleLineComment, RuleWhitespace}
}

// Span returns the begin and (inclusive) end positions of tok.
func Span(tok plexer.Token) (source.Position, source.Position) {
	begin := source.At(tok.Pos.Line, tok.Pos.Column)
	return begin, begin.Last(tok.Value)
}

func displayName(filename string) string {
	if strings.TrimSpace(filename) == "" {
		return "<input>"
	}

	return filename
}
