package text

import (
	"strings"

	"github.com/iw2rmb/inkless/grapheme"
	igrapheme "github.com/iw2rmb/inkless/internal/grapheme"
)

// TabWidth is the distance between tab stops, counted from the column a Text
// starts at.
const TabWidth = 4

// expandControls replaces tabs in s with spaces up to the next tab stop and
// drops every other control character. col is the logical column s starts
// at, before any wrapping; the column after s is returned.
func expandControls(s string, col int, policy grapheme.AmbiguityPolicy) (string, int) {
	if !strings.ContainsFunc(s, isControlRune) {
		for g := range grapheme.Segments(s) {
			col = advance(g, col, policy)
		}
		return s, col
	}

	var b strings.Builder
	b.Grow(len(s))
	for g := range grapheme.Segments(s) {
		switch {
		case g.String() == "\t":
			n := igrapheme.TabAdvance(col, TabWidth)
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case igrapheme.IsControl(g.String()):
		default:
			b.WriteString(g.String())
			col = advance(g, col, policy)
		}
	}
	return b.String(), col
}

func advance(g grapheme.Grapheme, col int, policy grapheme.AmbiguityPolicy) int {
	if isNewline(g) {
		return 0
	}
	return col + g.Width(policy)
}

func isControlRune(r rune) bool {
	return r != '\n' && igrapheme.IsControl(string(r))
}
