package text

import (
	"github.com/iw2rmb/inkless/grapheme"
	igrapheme "github.com/iw2rmb/inkless/internal/grapheme"
	"github.com/iw2rmb/inkless/render"
)

var ellipsisGlyph = []grapheme.Grapheme{grapheme.Ellipsis}

// ellipsis shortens every line of s independently. A line that fits is
// painted as is; a line where not even the ellipsis fits is skipped.
func (l *layout) ellipsis(s string, pos EllipsisPosition, marker Marker) {
	for i, line := range igrapheme.Lines(s) {
		if i > 0 {
			l.newline()
		}
		gs := grapheme.Collect(line)
		at := l.c.Position()
		if l.fits(at, gs) {
			l.paint(gs, l.tag)
			continue
		}

		switch pos {
		case Left:
			k, ok := l.longestSuffix(at, gs)
			if !ok {
				continue
			}
			if l.c.Set(grapheme.Ellipsis, marker) {
				l.paint(gs[len(gs)-k:], l.tag)
			}
		case Center:
			seed, ok := l.longestPrefix(at, gs)
			if !ok {
				continue
			}
			pre, suf := l.rebalance(at, gs, seed)
			if l.paint(gs[:pre], l.tag) && l.c.Set(grapheme.Ellipsis, marker) {
				l.paint(gs[len(gs)-suf:], l.tag)
			}
		default:
			k, ok := l.longestPrefix(at, gs)
			if !ok {
				continue
			}
			if l.paint(gs[:k], l.tag) {
				l.c.Set(grapheme.Ellipsis, marker)
			}
		}
	}
}

// longestPrefix finds the largest k such that gs[:k] followed by the
// ellipsis fits at at. It reports false if the ellipsis alone does not fit.
func (l *layout) longestPrefix(at render.Position, gs []grapheme.Grapheme) (int, bool) {
	lo, hi := 0, len(gs)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.fits(at, gs[:mid], ellipsisGlyph) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 && !l.fits(at, ellipsisGlyph) {
		return 0, false
	}
	return lo, true
}

// longestSuffix is the mirror of longestPrefix with the ellipsis first.
func (l *layout) longestSuffix(at render.Position, gs []grapheme.Grapheme) (int, bool) {
	n := len(gs)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.fits(at, ellipsisGlyph, gs[n-mid:]) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 && !l.fits(at, ellipsisGlyph) {
		return 0, false
	}
	return lo, true
}

// rebalance moves graphemes from the prefix to the suffix one at a time
// while the result fits and keeps at least as many columns visible.
func (l *layout) rebalance(at render.Position, gs []grapheme.Grapheme, prefix int) (int, int) {
	n := len(gs)
	policy := l.c.Policy()
	suffix := 0
	visible := spanWidth(gs[:prefix], policy)
	for prefix > suffix && prefix+suffix < n {
		p, s := prefix-1, suffix+1
		w := spanWidth(gs[:p], policy) + spanWidth(gs[n-s:], policy)
		if w < visible || !l.fits(at, gs[:p], ellipsisGlyph, gs[n-s:]) {
			break
		}
		prefix, suffix, visible = p, s, w
	}
	return prefix, suffix
}

func spanWidth(gs []grapheme.Grapheme, policy grapheme.AmbiguityPolicy) int {
	w := 0
	for _, g := range gs {
		w += g.Width(policy)
	}
	return w
}
