package comments_test

import (
	"testing"

	. "github.com/pseudomuto/commentary/pkg/comments"
	"github.com/pseudomuto/commentary/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func TestSuppressionMap(t *testing.T) {
	var s stream
	s.add(lexer.Ident, 1, 1, "void")
	s.add(lexer.LineComment, 1, 10, "// NOPMD bad code here")
	s.add(lexer.LineComment, 2, 1, "//NOPMD")
	s.add(lexer.LineComment, 3, 1, "// nothing to see")
	s.add(lexer.BlockComment, 4, 1, "/* NOPMD block */")
	s.add(lexer.DocComment, 5, 1, "/** NOPMD doc */")
	s.add(lexer.LineComment, 6, 1, "//   NOPMD   spaced out   ")

	t.Run("with marker", func(t *testing.T) {
		b, err := New(s.tokens, WithSuppressMarker("NOPMD"))
		require.NoError(t, err)

		m := b.SuppressionMap()
		require.Equal(t, SuppressionMap{
			1: "bad code here",
			2: "",
			6: "spaced out",
		}, m)
		require.Equal(t, []int{1, 2, 6}, m.Lines())

		require.NotContains(t, m, 3)

		res, err := b.Finalize()
		require.NoError(t, err)
		require.Equal(t, m, res.SuppressionMap())
	})

	t.Run("custom marker", func(t *testing.T) {
		b, err := New(s.tokens, WithSuppressMarker("nothing"))
		require.NoError(t, err)
		require.Equal(t, SuppressionMap{3: "to see"}, b.SuppressionMap())
	})

	t.Run("without marker", func(t *testing.T) {
		b, err := New(s.tokens)
		require.NoError(t, err)
		require.Empty(t, b.SuppressionMap())

		b, err = New(s.tokens, WithSuppressMarker(""))
		require.NoError(t, err)
		require.Empty(t, b.SuppressionMap())
	})

	t.Run("returned map is a copy", func(t *testing.T) {
		b, err := New(s.tokens, WithSuppressMarker("NOPMD"))
		require.NoError(t, err)

		m := b.SuppressionMap()
		m[99] = "mine"
		require.NotContains(t, b.SuppressionMap(), 99)
	})
}
