package grapheme

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	igrapheme "github.com/iw2rmb/inkless/internal/grapheme"
)

var (
	// Ellipsis is the glyph painted where text was elided.
	Ellipsis = Must("…")
	// Replacement stands in for clusters that could not be stored.
	Replacement = FromRune(utf8.RuneError)
)

// AmbiguityPolicy decides the width of East Asian ambiguous characters.
type AmbiguityPolicy uint8

const (
	Standard AmbiguityPolicy = iota
	Wide
)

func (p AmbiguityPolicy) String() string {
	switch p {
	case Standard:
		return "standard"
	case Wide:
		return "wide"
	default:
		return fmt.Sprintf("AmbiguityPolicy(%d)", uint8(p))
	}
}

func ParseAmbiguityPolicy(s string) (AmbiguityPolicy, error) {
	switch s {
	case "standard", "":
		return Standard, nil
	case "wide":
		return Wide, nil
	}
	return 0, fmt.Errorf("grapheme: unknown ambiguity policy %q", s)
}

var (
	standardCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}
	wideCond     = &runewidth.Condition{EastAsianWidth: true, StrictEmojiNeutral: true}
)

// Grapheme is exactly one extended grapheme cluster. The zero value holds no
// text and has width 0.
type Grapheme struct {
	s string
}

// New returns s as a Grapheme if it consists of exactly one cluster.
func New(s string) (Grapheme, bool) {
	if igrapheme.Count(s) != 1 {
		return Grapheme{}, false
	}
	return Grapheme{s: s}, true
}

// Must is like New but panics when s is not a single cluster.
func Must(s string) Grapheme {
	g, ok := New(s)
	if !ok {
		panic(fmt.Sprintf("grapheme: %q is not a single grapheme cluster", s))
	}
	return g
}

// FromRune wraps a single code point.
func FromRune(r rune) Grapheme {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	return Grapheme{s: string(r)}
}

func (g Grapheme) String() string { return g.s }

// Len is the UTF-8 length in bytes.
func (g Grapheme) Len() int { return len(g.s) }

func (g Grapheme) IsZero() bool { return g.s == "" }

// Width returns the number of terminal columns g occupies under p.
func (g Grapheme) Width(p AmbiguityPolicy) int {
	if g.s == "" {
		return 0
	}
	w := cellWidth(standardCond, g.s)
	if p == Wide {
		w = max(w, cellWidth(wideCond, g.s))
	}
	return w
}

// cellWidth prefers runewidth and falls back to uniseg for clusters it
// measures as empty. Multi-rune clusters such as flags, skin tone modifiers
// and ZWJ sequences take the wider of the two.
func cellWidth(cond *runewidth.Condition, s string) int {
	w := cond.StringWidth(s)
	if w <= 0 || utf8.RuneCountInString(s) > 1 {
		w = max(w, uniseg.StringWidth(s), 0)
	}
	return w
}

// Width is shorthand for g.Width(p).
func Width(g Grapheme, p AmbiguityPolicy) int {
	return g.Width(p)
}

// StringWidth sums the widths of every cluster in text.
func StringWidth(text string, p AmbiguityPolicy) int {
	w := 0
	for g := range Segments(text) {
		w += g.Width(p)
	}
	return w
}

// Segments yields the clusters of text in order. The sequence can be ranged
// over any number of times.
func Segments(text string) iter.Seq[Grapheme] {
	return func(yield func(Grapheme) bool) {
		rest := text
		state := -1
		for rest != "" {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if !yield(Grapheme{s: cluster}) {
				return
			}
		}
	}
}

// Collect returns the clusters of text as a slice.
func Collect(text string) []Grapheme {
	clusters := igrapheme.Split(text)
	out := make([]Grapheme, len(clusters))
	for i, c := range clusters {
		out[i] = Grapheme{s: c}
	}
	return out
}
