package comments

import (
	"slices"

	"github.com/pseudomuto/commentary/pkg/lexer"
	"github.com/pseudomuto/commentary/pkg/source"
)

// positionIndex is an ascending view over the positions of a list of comment
// tokens. Keys are computed once; refs point back into tokens so the tokens
// themselves are never copied or re-sorted.
type positionIndex struct {
	tokens []lexer.Token
	keys   []source.Position
	refs   []int
}

func newPositionIndex(tokens []lexer.Token, keep func(lexer.Token) bool) positionIndex {
	idx := positionIndex{tokens: tokens}
	for i, tok := range tokens {
		if !keep(tok) {
			continue
		}

		idx.keys = append(idx.keys, tok.Position())
		idx.refs = append(idx.refs, i)
	}

	return idx
}

func (idx positionIndex) Len() int { return len(idx.keys) }

func (idx positionIndex) At(i int) source.Position { return idx.keys[i] }

func (idx positionIndex) Token(i int) lexer.Token { return idx.tokens[idx.refs[i]] }

// Search returns the index of pos and true when present. Otherwise it returns
// the index pos would be inserted at to keep the keys sorted.
func (idx positionIndex) Search(pos source.Position) (int, bool) {
	return slices.BinarySearchFunc(idx.keys, pos, source.Position.Compare)
}

// UpperBound returns the number of keys at or before pos.
func (idx positionIndex) UpperBound(pos source.Position) int {
	i, found := idx.Search(pos)
	if found {
		i++
	}

	return i
}
