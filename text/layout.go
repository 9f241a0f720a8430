package text

import (
	"github.com/iw2rmb/inkless/grapheme"
	igrapheme "github.com/iw2rmb/inkless/internal/grapheme"
	"github.com/iw2rmb/inkless/render"
)

// layout paints one literal segment. start is where the enclosing Text began;
// line breaks return to start.Column.
type layout struct {
	c     render.Canvas
	start render.Position
	tag   render.Tag
}

func (l *layout) newline() {
	l.c.CursorDown(1)
	l.c.SetColumn(l.start.Column)
}

func isNewline(g grapheme.Grapheme) bool {
	return igrapheme.IsNewline(g.String())
}

func (l *layout) clip(s string) {
	skip := false
	for g := range grapheme.Segments(s) {
		if isNewline(g) {
			l.newline()
			skip = false
			continue
		}
		if !skip && !l.c.Set(g, l.tag) {
			skip = true
		}
	}
}

func (l *layout) strict(s string) error {
	for g := range grapheme.Segments(s) {
		if isNewline(g) {
			l.newline()
			continue
		}
		if !l.c.Set(g, l.tag) {
			return render.OverflowError("%q does not fit at %v", g, l.c.Position())
		}
	}
	return nil
}

func (l *layout) graphemeWrap(s string) {
	skip := false
	for g := range grapheme.Segments(s) {
		if isNewline(g) {
			l.newline()
			skip = false
			continue
		}
		if skip || l.c.Set(g, l.tag) {
			continue
		}
		l.newline()
		if !l.c.Set(g, l.tag) {
			// too wide for any line
			skip = true
		}
	}
}

func (l *layout) wordWrap(s string) {
	skip := false
	for _, chunk := range igrapheme.Words(s) {
		if igrapheme.IsNewline(chunk) {
			l.newline()
			skip = false
			continue
		}
		if skip {
			continue
		}
		gs := grapheme.Collect(chunk)
		if l.fits(l.c.Position(), gs) {
			l.paint(gs, l.tag)
			continue
		}
		before := l.c.Position()
		l.newline()
		if l.fits(l.c.Position(), gs) {
			l.paint(gs, l.tag)
			continue
		}
		l.c.SetPosition(before)
		for _, g := range gs {
			if l.c.Set(g, l.tag) {
				continue
			}
			l.newline()
			if !l.c.Set(g, l.tag) {
				// too wide for any line
				skip = true
				break
			}
		}
	}
}

// fits reports whether parts, painted one after another from at, stay on
// the line. The cursor is restored before returning.
func (l *layout) fits(at render.Position, parts ...[]grapheme.Grapheme) bool {
	saved := l.c.Position()
	defer l.c.SetPosition(saved)

	l.c.SetPosition(at)
	policy := l.c.Policy()
	for _, part := range parts {
		for _, g := range part {
			if !l.c.CanSet(g) {
				return false
			}
			l.c.CursorRight(g.Width(policy))
		}
	}
	return true
}

func (l *layout) paint(gs []grapheme.Grapheme, tag render.Tag) bool {
	for _, g := range gs {
		if !l.c.Set(g, tag) {
			return false
		}
	}
	return true
}
