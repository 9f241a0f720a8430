package screen

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/inkless/ansi"
	"github.com/iw2rmb/inkless/grapheme"
	"github.com/iw2rmb/inkless/render"
)

// Sink paints cells into a screen starting at an origin. Cells right of the
// screen edge are dropped; reaching the bottom edge stops the render.
// Concealed cells are painted as blanks in their style.
type Sink struct {
	scr    tcell.Screen
	origin render.Position
	policy grapheme.AmbiguityPolicy
	caps   ansi.Capabilities
	x, y   int
	show   bool
}

var _ render.Sink = (*Sink)(nil)

// NewSink paints at origin, where Line is the screen row and Column the
// screen column. Capabilities come from the screen's palette size.
func NewSink(scr tcell.Screen, origin render.Position, policy grapheme.AmbiguityPolicy) *Sink {
	return &Sink{
		scr:    scr,
		origin: origin,
		policy: policy,
		caps:   CapabilitiesOf(scr),
		show:   true,
	}
}

func (s *Sink) WithCapabilities(caps ansi.Capabilities) *Sink {
	s.caps = caps
	return s
}

// WithShow controls whether Finalize calls Show on the screen.
func (s *Sink) WithShow(show bool) *Sink {
	s.show = show
	return s
}

// Cursor returns the screen cell the next Append or Gap will paint.
func (s *Sink) Cursor() (x, y int) {
	return s.origin.Column + s.x, s.origin.Line + s.y
}

func (s *Sink) Append(g grapheme.Grapheme, tag render.Tag) bool {
	x, y := s.Cursor()
	_, h := s.scr.Size()
	if y >= h {
		return false
	}
	st := ansi.StyleOf(tag)
	ts := Convert(st, s.caps)
	if w, _ := s.scr.Size(); x < w {
		if st.GetConceal() {
			s.scr.SetContent(x, y, ' ', nil, ts)
		} else {
			primary, combining := split(g)
			s.scr.SetContent(x, y, primary, combining, ts)
		}
	}
	s.x += max(g.Width(s.policy), 1)
	return true
}

func (s *Sink) Gap() bool {
	x, y := s.Cursor()
	w, h := s.scr.Size()
	if y >= h {
		return false
	}
	if x < w {
		s.scr.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	s.x++
	return true
}

func (s *Sink) FinalizeLine() bool {
	s.x = 0
	s.y++
	_, h := s.scr.Size()
	return s.origin.Line+s.y < h
}

func (s *Sink) Finalize() error {
	if s.show {
		s.scr.Show()
	}
	return nil
}

func split(g grapheme.Grapheme) (rune, []rune) {
	rs := []rune(g.String())
	if len(rs) == 0 {
		return ' ', nil
	}
	if len(rs) == 1 {
		return rs[0], nil
	}
	return rs[0], rs[1:]
}

// Paint renders r into the screen region right and below origin. A zero
// opts.Width uses the remaining screen width.
func Paint(ctx context.Context, scr tcell.Screen, origin render.Position, r render.Renderable, opts render.Options) error {
	if opts.Width == 0 {
		w, _ := scr.Size()
		opts.Width = max(w-origin.Column, 0)
	}
	return render.RenderContext(ctx, r, NewSink(scr, origin, opts.Policy), opts)
}
