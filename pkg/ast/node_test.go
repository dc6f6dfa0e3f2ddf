package ast_test

import (
	"testing"

	. "github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/lexer"
	"github.com/pseudomuto/commentary/pkg/source"
	"github.com/stretchr/testify/require"
)

// sample builds:
//
//	Class A (1:1-9:1)
//	  Method b (2:3-4:3)
//	    Block (2:14-4:3)
//	  Method c (6:3-8:3)
func sample() (*Element, *Element, *Element, *Element) {
	root := NewElement(KindClass, "A", source.At(1, 1), source.At(9, 1))
	b := NewElement(KindMethod, "b", source.At(2, 3), source.At(4, 3))
	block := NewElement(KindBlock, "", source.At(2, 14), source.At(4, 3))
	c := NewElement(KindMethod, "c", source.At(6, 3), source.At(8, 3))

	b.Append(block)
	root.Append(b, c)
	return root, b, block, c
}

func TestElement(t *testing.T) {
	root, b, block, c := sample()

	require.Equal(t, KindClass, root.Kind())
	require.Equal(t, "A", root.Image())
	require.True(t, root.HasRealLoc())
	require.Equal(t, 2, root.NumChildren())
	require.Same(t, b, root.Child(0))
	require.Same(t, c, root.Child(1))
	require.Same(t, root, b.Parent())
	require.Same(t, b, block.Parent())
	require.Nil(t, root.Parent())
	require.Equal(t, 0, Depth(root))
	require.Equal(t, 2, Depth(block))

	synthetic := NewSynthetic(KindMethod, "<clinit>")
	require.False(t, synthetic.HasRealLoc())
	require.False(t, synthetic.Begin().IsValid())
}

func TestElementAppendSkipsNil(t *testing.T) {
	root := NewElement(KindCompilationUnit, "", source.At(1, 1), source.At(1, 1))
	root.Append(nil)
	require.Equal(t, 0, root.NumChildren())
}

func TestElementInsertChild(t *testing.T) {
	root, b, _, c := sample()
	first := NewElement(KindAnnotation, "x", source.At(1, 1), source.At(1, 2))
	middle := NewElement(KindAnnotation, "y", source.At(5, 1), source.At(5, 2))

	root.InsertChild(0, first)
	root.InsertChild(2, middle)

	require.Equal(t, []Node{first, b, middle, c}, Children(root))
	require.Panics(t, func() { root.InsertChild(10, first) })
}

func TestKindIsDeclaration(t *testing.T) {
	require.True(t, KindMethod.IsDeclaration())
	require.True(t, KindClass.IsDeclaration())
	require.False(t, KindBlock.IsDeclaration())
	require.False(t, KindFormalComment.IsDeclaration())
}

func TestFind(t *testing.T) {
	root, b, _, c := sample()
	require.Equal(t, []Node{b, c}, Find(root, KindMethod))
	require.Empty(t, Find(root, KindField))
}

func TestFormalComment(t *testing.T) {
	src := "class A {\n  /**\n   * Does b.\n   *\n   * @return nothing\n   */\n  void b() {}\n}"
	tokens, err := lexer.Tokenize("", src)
	require.NoError(t, err)

	var doc lexer.Token
	for _, tok := range tokens {
		if tok.Kind == lexer.DocComment {
			doc = tok
		}
	}

	fc := NewFormalComment(doc)

	require.Equal(t, KindFormalComment, fc.Kind())
	require.True(t, fc.HasRealLoc())
	require.Equal(t, source.At(2, 3), fc.Begin())
	require.Equal(t, source.At(6, 5), fc.End())
	require.Equal(t, doc.Offset, fc.Region().Offset)
	require.Equal(t, len(doc.Text), fc.Region().Length)
	require.Equal(t, doc.Text, src[fc.Region().Offset:fc.Region().Offset+fc.Region().Length])
	require.Equal(t, doc.Text, fc.Text())
	require.Equal(t, doc, fc.Token())
	require.Equal(t, []string{"Does b.", "", "@return nothing"}, fc.Lines())
}

func TestFormalCommentSingleLine(t *testing.T) {
	tok := lexer.Token{Kind: lexer.DocComment, Line: 1, Column: 1, Text: "/** doc */"}
	fc := NewFormalComment(tok)

	require.Equal(t, []string{"doc"}, fc.Lines())
	require.Equal(t, source.At(1, 10), fc.End())
	require.Equal(t, "/** doc */", fc.Text())
}
