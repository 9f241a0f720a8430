package ansi

import (
	"io"

	"github.com/iw2rmb/inkless/grapheme"
	"github.com/iw2rmb/inkless/render"
)

const reset = "\x1b[0m"

// Sink writes cells with the minimal escape codes between consecutive
// styles. Gaps are written as a space in the current style.
type Sink struct {
	w    io.Writer
	caps Capabilities
	last state
	buf  []byte
	err  error
}

var _ render.Sink = (*Sink)(nil)

func NewSink(w io.Writer, caps Capabilities) *Sink {
	return &Sink{w: w, caps: caps, buf: make([]byte, 0, 64)}
}

func (s *Sink) Append(g grapheme.Grapheme, tag render.Tag) bool {
	cur := resolve(StyleOf(tag), s.caps)
	s.buf = appendDelta(s.buf[:0], s.last, cur)
	s.buf = append(s.buf, g.String()...)
	s.last = cur
	return s.flush()
}

func (s *Sink) Gap() bool {
	s.buf = append(s.buf[:0], ' ')
	return s.flush()
}

func (s *Sink) FinalizeLine() bool {
	s.buf = append(s.buf[:0], '\n')
	return s.flush()
}

// Finalize closes an open hyperlink and resets all attributes. It returns
// the first write error, in which case nothing more is written.
func (s *Sink) Finalize() error {
	if s.err != nil {
		return render.WriterError(s.err)
	}
	s.buf = s.buf[:0]
	if s.last.url != "" {
		s.buf = append(s.buf, linkClose...)
	}
	s.buf = append(s.buf, reset...)
	s.last = state{}
	if !s.flush() {
		return render.WriterError(s.err)
	}
	return nil
}

func (s *Sink) flush() bool {
	if s.err != nil {
		return false
	}
	if _, err := s.w.Write(s.buf); err != nil {
		s.err = err
		return false
	}
	return true
}
