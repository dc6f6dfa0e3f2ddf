package lexer_test

import (
	"testing"

	. "github.com/pseudomuto/commentary/pkg/lexer"
	"github.com/pseudomuto/commentary/pkg/source"
	"github.com/stretchr/testify/require"
)

func significant(tokens []Token) []Token {
	var out []Token
	for _, tok := range tokens {
		if tok.Kind != Whitespace {
			out = append(out, tok)
		}
	}

	return out
}

func TestTokenize(t *testing.T) {
	src := "/** doc */\npublic class A { // NOPMD x\n  Integer i = 1; /* b */ }\n"

	tokens, err := Tokenize("A.cls", src)
	require.NoError(t, err)

	got := significant(tokens)
	kinds := make([]Kind, len(got))
	for i, tok := range got {
		kinds[i] = tok.Kind
	}

	require.Equal(t, []Kind{
		DocComment,
		Modifier, Ident, Ident, Punct, LineComment,
		Ident, Ident, Operator, Number, Punct, BlockComment, Punct,
	}, kinds)

	doc := got[0]
	require.Equal(t, "/** doc */", doc.Text)
	require.Equal(t, CommentChannel, doc.Channel)
	require.Equal(t, source.At(1, 1), doc.Position())
	require.Equal(t, source.At(1, 10), doc.End())
	require.Equal(t, 0, doc.Offset)

	line := got[5]
	require.Equal(t, "// NOPMD x", line.Text)
	require.Equal(t, 2, line.Line)
	require.Equal(t, 18, line.Column)
	require.Equal(t, 28, line.Offset)

	require.Equal(t, DefaultChannel, got[1].Channel)
	require.Equal(t, HiddenChannel, tokens[1].Channel)
}

func TestTokenizeOffsetsAscend(t *testing.T) {
	tokens, err := Tokenize("", "class A {\n\t/* a */ // b\n\t/** c */\n}")
	require.NoError(t, err)

	for i := 1; i < len(tokens); i++ {
		require.Less(t, tokens[i-1].Offset, tokens[i].Offset)
	}
}

func TestTokenizeCommentKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{src: "/** doc */", kind: DocComment},
		{src: "/**\n * multi\n */", kind: DocComment},
		{src: "/*** stars ***/", kind: DocComment},
		{src: "/**/", kind: BlockComment},
		{src: "/* block */", kind: BlockComment},
		{src: "/* a ** b */", kind: BlockComment},
		{src: "// line", kind: LineComment},
		{src: "//", kind: LineComment},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, err := Tokenize("", tt.src)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			require.Equal(t, tt.kind, tokens[0].Kind)
			require.Equal(t, tt.src, tokens[0].Text)
			require.True(t, tokens[0].Kind.IsComment())
		})
	}
}

func TestTokenizeModifiers(t *testing.T) {
	tokens, err := Tokenize("", "public publicity")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, Modifier, tokens[0].Kind)
	require.Equal(t, Ident, tokens[2].Kind)
}

func TestTokenizeError(t *testing.T) {
	_, err := Tokenize("Bad.cls", "class A { # }")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to tokenize Bad.cls")

	_, err = Tokenize("", "\"oops\"")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to tokenize <input>")
}

func TestKindAndChannelStrings(t *testing.T) {
	require.Equal(t, "DocComment", DocComment.String())
	require.Equal(t, "Kind(42)", Kind(42).String())
	require.Equal(t, "comment", CommentChannel.String())
	require.Equal(t, CommentChannel, LineComment.Channel())
	require.Equal(t, HiddenChannel, Whitespace.Channel())
	require.Equal(t, DefaultChannel, Ident.Channel())
	require.ElementsMatch(t, []string{"DocComment", "BlockComment", "LineComment", "Whitespace"}, Trivia())
}
