package render

import (
	"fmt"

	"github.com/iw2rmb/inkless/grapheme"
)

// Buffer is the grid a Canvas paints on.
type Buffer interface {
	Width() int
	Policy() grapheme.AmbiguityPolicy

	// CanSet reports whether g fits horizontally at pos. The line is not
	// checked against the page window.
	CanSet(pos Position, g grapheme.Grapheme) bool

	// Set stores g at pos when it fits horizontally and pos.Line lies in the
	// page window. Every call records pos.Line as targeted. The result is
	// CanSet(pos, g).
	Set(pos Position, g grapheme.Grapheme, tag Tag) bool
}

// PageBuffer is a Buffer that exposes a vertical window [Offset,
// Offset+Height) over an unbounded grid.
type PageBuffer interface {
	Buffer

	// Reset clears every cell and moves the window to start at offset.
	Reset(offset int)
	Offset() int
	// Height is the window size in lines; 0 means unbounded.
	Height() int
	// Highest is the largest line targeted since the last Reset, or -1.
	Highest() int
	// Empty reports whether nothing at or below Offset was targeted.
	Empty() bool
	// Cell returns the cell at row (relative to Offset) and column.
	Cell(row, col int) (Cell, bool)
}

// Cell is a painted grid cell.
type Cell struct {
	Grapheme grapheme.Grapheme
	Tag      Tag
}

func canSet(width int, policy grapheme.AmbiguityPolicy, pos Position, g grapheme.Grapheme) bool {
	if g.IsZero() {
		return false
	}
	return pos.Column+g.Width(policy) <= width
}

type window struct {
	width   int
	height  int
	offset  int
	highest int
	policy  grapheme.AmbiguityPolicy
}

func (w *window) Width() int                       { return w.width }
func (w *window) Height() int                      { return w.height }
func (w *window) Offset() int                      { return w.offset }
func (w *window) Highest() int                     { return w.highest }
func (w *window) Policy() grapheme.AmbiguityPolicy { return w.policy }
func (w *window) Empty() bool                      { return w.offset > w.highest }

func (w *window) CanSet(pos Position, g grapheme.Grapheme) bool {
	return canSet(w.width, w.policy, pos, g)
}

// target records pos.Line and returns the row inside the window, or -1.
func (w *window) target(pos Position) int {
	w.highest = max(w.highest, pos.Line)
	row := pos.Line - w.offset
	if row < 0 || (w.height > 0 && row >= w.height) {
		return -1
	}
	return row
}

func (w *window) reset(offset int) {
	mustCount(offset)
	w.offset = offset
	w.highest = -1
}

// FixedBuffer stores a Width x Height window in one allocation made up
// front. Graphemes are kept as grapheme.Static values, so clusters longer
// than grapheme.StaticCapacity bytes read back as grapheme.Replacement.
type FixedBuffer struct {
	window
	cells []fixedCell
}

type fixedCell struct {
	g   grapheme.Static
	tag Tag
}

func NewFixedBuffer(width, height int, policy grapheme.AmbiguityPolicy) *FixedBuffer {
	if width < 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid fixed buffer geometry %dx%d", width, height))
	}
	return &FixedBuffer{
		window: window{width: width, height: height, highest: -1, policy: policy},
		cells:  make([]fixedCell, width*height),
	}
}

func (b *FixedBuffer) Reset(offset int) {
	b.reset(offset)
	clear(b.cells)
}

func (b *FixedBuffer) Set(pos Position, g grapheme.Grapheme, tag Tag) bool {
	if !b.CanSet(pos, g) {
		b.target(pos)
		return false
	}
	if row := b.target(pos); row >= 0 {
		b.cells[row*b.width+pos.Column] = fixedCell{g: grapheme.NewStatic(g), tag: tag}
	}
	return true
}

func (b *FixedBuffer) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return Cell{}, false
	}
	c := b.cells[row*b.width+col]
	if c.g.IsZero() {
		return Cell{}, false
	}
	return Cell{Grapheme: c.g.Grapheme(), Tag: c.tag}, true
}

// GrowBuffer allocates rows as they are painted. With Height 0 the window is
// unbounded and a single pass holds the whole document.
type GrowBuffer struct {
	window
	rows [][]Cell
}

func NewGrowBuffer(width, height int, policy grapheme.AmbiguityPolicy) *GrowBuffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("render: invalid grow buffer geometry %dx%d", width, height))
	}
	return &GrowBuffer{
		window: window{width: width, height: height, highest: -1, policy: policy},
	}
}

func (b *GrowBuffer) Reset(offset int) {
	b.reset(offset)
	for i := range b.rows {
		clear(b.rows[i])
	}
	b.rows = b.rows[:0]
}

func (b *GrowBuffer) Set(pos Position, g grapheme.Grapheme, tag Tag) bool {
	if !b.CanSet(pos, g) {
		b.target(pos)
		return false
	}
	row := b.target(pos)
	if row < 0 {
		return true
	}
	for len(b.rows) <= row {
		if len(b.rows) < cap(b.rows) {
			// rows past len were cleared by Reset
			b.rows = b.rows[:len(b.rows)+1]
		} else {
			b.rows = append(b.rows, nil)
		}
	}
	if b.rows[row] == nil {
		b.rows[row] = make([]Cell, b.width)
	}
	b.rows[row][pos.Column] = Cell{Grapheme: g, Tag: tag}
	return true
}

func (b *GrowBuffer) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= len(b.rows) || col < 0 || col >= b.width {
		return Cell{}, false
	}
	line := b.rows[row]
	if line == nil || line[col].Grapheme.IsZero() {
		return Cell{}, false
	}
	return line[col], true
}
