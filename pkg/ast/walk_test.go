package ast_test

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/commentary/pkg/ast"
	"github.com/stretchr/testify/require"
)

func images(t *testing.T, root Node, order Order) []string {
	t.Helper()

	var out []string
	require.NoError(t, Walk(root, order, func(n Node) error {
		out = append(out, string(n.Kind())+":"+n.Image())
		return nil
	}))

	return out
}

func TestWalk(t *testing.T) {
	root, _, _, _ := sample()

	require.Equal(t, []string{
		"UserClass:A", "Method:b", "BlockStatement:", "Method:c",
	}, images(t, root, PreOrder))

	require.Equal(t, []string{
		"BlockStatement:", "Method:b", "Method:c", "UserClass:A",
	}, images(t, root, PostOrder))

	require.Equal(t, []string{
		"UserClass:A", "Method:c", "Method:b", "BlockStatement:",
	}, images(t, root, ReversePreOrder))
}

func TestWalkStopsOnError(t *testing.T) {
	root, _, _, _ := sample()
	boom := errors.New("boom")

	visited := 0
	err := Walk(root, PreOrder, func(n Node) error {
		visited++
		if n.Kind() == KindBlock {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	require.Equal(t, 3, visited)
	require.NoError(t, Walk(nil, PreOrder, func(Node) error { return boom }))
}

func TestInspectPrunes(t *testing.T) {
	root, _, _, _ := sample()

	var seen []Kind
	Inspect(root, func(n Node) bool {
		seen = append(seen, n.Kind())
		return n.Kind() != KindMethod
	})

	require.Equal(t, []Kind{KindClass, KindMethod, KindMethod}, seen)
}

func TestParseOrder(t *testing.T) {
	tests := map[string]Order{
		"":          PreOrder,
		"preorder":  PreOrder,
		"PostOrder": PostOrder,
		" reverse ": ReversePreOrder,
	}

	for name, want := range tests {
		got, err := ParseOrder(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseOrder("sideways")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown visit order: sideways")
	require.Equal(t, "postorder", PostOrder.String())
	require.Equal(t, "unknown", Order(9).String())
}
