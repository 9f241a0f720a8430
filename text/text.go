package text

import (
	"slices"

	"github.com/iw2rmb/inkless/render"
)

// Segment is either a tagged literal or, when Component is set, nested
// content rendered at the cursor.
type Segment struct {
	Text      string
	Tag       render.Tag
	Component render.Renderable
}

// Text is an immutable list of segments plus an overflow policy. Builder
// methods return a new Text and never modify the receiver.
type Text struct {
	segments []Segment
	overflow Overflow
}

var _ render.Renderable = Text{}

// Of starts a Text with an untagged literal.
func Of(s string) Text {
	return Text{}.With(s)
}

// OfTagged starts a Text with a tagged literal.
func OfTagged(s string, tag render.Tag) Text {
	return Text{}.WithTagged(s, tag)
}

func (t Text) With(s string) Text {
	return t.WithTagged(s, nil)
}

func (t Text) WithTagged(s string, tag render.Tag) Text {
	return t.push(Segment{Text: s, Tag: tag})
}

// WithComponent appends nested content.
func (t Text) WithComponent(r render.Renderable) Text {
	if r == nil {
		return t
	}
	return t.push(Segment{Component: r})
}

func (t Text) push(seg Segment) Text {
	t.segments = append(slices.Clip(t.segments), seg)
	return t
}

func (t Text) WithOverflow(o Overflow) Text {
	t.overflow = o
	return t
}

func (t Text) Clip() Text         { return t.WithOverflow(Overflow{Mode: Clip}) }
func (t Text) GraphemeWrap() Text { return t.WithOverflow(Overflow{Mode: GraphemeWrap}) }
func (t Text) WordWrap() Text     { return t.WithOverflow(Overflow{Mode: WordWrap}) }
func (t Text) ErrorOnOverflow() Text {
	return t.WithOverflow(Overflow{Mode: Error})
}

// Ellipsis shortens lines with the ellipsis on the right.
func (t Text) Ellipsis() Text { return t.EllipsisAt(Right) }

func (t Text) EllipsisAt(pos EllipsisPosition) Text {
	return t.WithOverflow(Overflow{Mode: Ellipsis, Position: pos})
}

// EllipsisTagged is like EllipsisAt but paints the ellipsis with marker.
func (t Text) EllipsisTagged(pos EllipsisPosition, marker render.Tag) Text {
	return t.WithOverflow(Overflow{Mode: Ellipsis, Position: pos, MarkerTag: marker})
}

func (t Text) Overflow() Overflow { return t.overflow }

// Segments returns a copy of the segment list.
func (t Text) Segments() []Segment { return slices.Clone(t.segments) }

// Render lays the segments out from the cursor. Tabs expand to the next
// multiple of TabWidth on the unwrapped line; other control characters are
// dropped.
func (t Text) Render(c render.Canvas) error {
	start := c.Position()
	col := 0
	for _, seg := range t.segments {
		if seg.Component != nil {
			before := c.Position()
			if _, err := c.Write(seg.Component); err != nil {
				return err
			}
			if after := c.Position(); after.Line != before.Line {
				col = max(after.Column-start.Column, 0)
			} else {
				col += after.Column - before.Column
			}
			continue
		}
		var s string
		s, col = expandControls(seg.Text, col, c.Policy())
		l := layout{c: c, start: start, tag: seg.Tag}
		switch t.overflow.Mode {
		case Clip:
			l.clip(s)
		case WordWrap:
			l.wordWrap(s)
		case Ellipsis:
			marker := t.overflow.MarkerTag
			if marker == nil {
				marker = seg.Tag
			}
			l.ellipsis(s, t.overflow.Position, Marker{Position: t.overflow.Position, Tag: marker})
		case Error:
			if err := l.strict(s); err != nil {
				return err
			}
		default:
			l.graphemeWrap(s)
		}
	}
	return nil
}
