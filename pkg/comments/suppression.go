package comments

import (
	"maps"
	"slices"
	"strings"

	"github.com/pseudomuto/commentary/pkg/lexer"
)

// SuppressionMap maps a 1-based line number to the message that follows the
// suppression marker on that line.
type SuppressionMap map[int]string

// Lines returns the suppressed lines in ascending order.
func (m SuppressionMap) Lines() []int {
	return slices.Sorted(maps.Keys(m))
}

// suppression returns the message for a line comment that starts with marker.
// Only line comments can carry a suppression.
func suppression(tok lexer.Token, marker string) (string, bool) {
	if marker == "" || tok.Kind != lexer.LineComment {
		return "", false
	}

	body := strings.TrimSpace(strings.TrimPrefix(tok.Text, "//"))
	if !strings.HasPrefix(body, marker) {
		return "", false
	}

	return strings.TrimSpace(body[len(marker):]), true
}
