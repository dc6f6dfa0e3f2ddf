package source

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a 1-based line and column within a single file.
type Position struct {
	Line   int
	Column int
}

// At returns the Position for the given line and column.
func At(line, column int) Position {
	return Position{Line: line, Column: column}
}

// Compare returns -1 if p is before other, 1 if p is after other and 0 when
// both positions are the same.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Before reports whether p is strictly before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After reports whether p is strictly after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsValid reports whether p refers to an actual location. The zero Position is
// used by synthetic nodes.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Last returns the position of the final character of text when text starts
// at p. Empty text yields p.
func (p Position) Last(text string) Position {
	if text == "" {
		return p
	}

	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return p
	}

	lines := strings.Count(text, "\n")
	if lines == 0 {
		return Position{Line: p.Line, Column: p.Column + utf8.RuneCountInString(text) - 1}
	}

	tail := text[strings.LastIndex(text, "\n")+1:]
	return Position{Line: p.Line + lines, Column: utf8.RuneCountInString(tail)}
}

// Region is a span of source text.
type Region struct {
	// Offset is the 0-based byte offset of the first byte.
	Offset int
	// Length is the length of the span in bytes.
	Length int
	// Begin is the position of the first character.
	Begin Position
	// End is the position of the last character (inclusive).
	End Position
}

// RegionOf builds the Region covering text starting at offset/begin.
func RegionOf(offset int, begin Position, text string) Region {
	return Region{
		Offset: offset,
		Length: len(text),
		Begin:  begin,
		End:    begin.Last(text),
	}
}

// Contains reports whether pos lies within the inclusive range of r.
func (r Region) Contains(pos Position) bool {
	return pos.Compare(r.Begin) >= 0 && pos.Compare(r.End) <= 0
}
