package text

import (
	"fmt"

	"github.com/iw2rmb/inkless/render"
)

// Mode selects what happens to text that reaches the right edge.
type Mode int

const (
	// GraphemeWrap continues on the next line, breaking between graphemes.
	GraphemeWrap Mode = iota
	// Clip drops the rest of the line.
	Clip
	// WordWrap breaks at word boundaries and falls back to GraphemeWrap for
	// words longer than a line.
	WordWrap
	// Ellipsis shortens each line to fit and marks the cut with an ellipsis.
	Ellipsis
	// Error behaves like Clip but fails the render.
	Error
)

var modeNames = [...]string{
	GraphemeWrap: "grapheme-wrap",
	Clip:         "clip",
	WordWrap:     "word-wrap",
	Ellipsis:     "ellipsis",
	Error:        "error",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("text: unknown overflow mode %q", s)
}

// EllipsisPosition is where the ellipsis goes when a line is shortened.
type EllipsisPosition int

const (
	// Right keeps the start of the line: "begin…".
	Right EllipsisPosition = iota
	// Left keeps the end of the line: "…end".
	Left
	// Center keeps both ends: "be…nd".
	Center
)

var positionNames = [...]string{
	Right:  "right",
	Left:   "left",
	Center: "center",
}

func (p EllipsisPosition) String() string {
	if p >= 0 && int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("EllipsisPosition(%d)", int(p))
}

func ParseEllipsisPosition(s string) (EllipsisPosition, error) {
	for i, name := range positionNames {
		if s == name {
			return EllipsisPosition(i), nil
		}
	}
	return 0, fmt.Errorf("text: unknown ellipsis position %q", s)
}

// Overflow is the layout policy of a Text.
type Overflow struct {
	Mode Mode
	// Position applies to Ellipsis.
	Position EllipsisPosition
	// MarkerTag is attached to the ellipsis glyph. When nil the tag of the
	// shortened segment is used.
	MarkerTag render.Tag
}

// Marker is the tag painted on an ellipsis glyph.
type Marker struct {
	Position EllipsisPosition
	Tag      render.Tag
}

func (m Marker) Unwrap() render.Tag { return m.Tag }
