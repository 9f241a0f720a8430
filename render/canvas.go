package render

import "github.com/iw2rmb/inkless/grapheme"

// Renderable is content that can draw itself on a Canvas. Render must be a
// deterministic function of the content and the canvas geometry: the driver
// calls it once per page.
type Renderable interface {
	Render(c Canvas) error
}

// RenderFunc adapts a function to Renderable.
type RenderFunc func(c Canvas) error

func (f RenderFunc) Render(c Canvas) error { return f(c) }

// Summary describes the area a nested Write covered.
type Summary struct {
	Start Position
	End   Position
}

// Height is the number of lines between Start and End, inclusive.
func (s Summary) Height() int {
	return 1 + s.End.Line - s.Start.Line
}

// Canvas is a cursor over a Buffer.
type Canvas interface {
	Policy() grapheme.AmbiguityPolicy

	// Start is where this canvas was anchored.
	Start() Position
	Position() Position
	SetPosition(p Position)
	SetLine(line int)
	SetColumn(column int)

	CursorRight(n int)
	CursorDown(n int)
	// TryCursorLeft and TryCursorUp leave the cursor alone and report false
	// when the move would cross 0.
	TryCursorLeft(n int) bool
	TryCursorUp(n int) bool
	// CursorLeft and CursorUp panic when the move would cross 0.
	CursorLeft(n int)
	CursorUp(n int)

	// CanSet reports whether g fits at the cursor. It never moves the cursor.
	CanSet(g grapheme.Grapheme) bool
	// Set paints g and advances the cursor by its width. On false nothing
	// was painted and the cursor did not move.
	Set(g grapheme.Grapheme, tag Tag) bool
	SetRune(r rune, tag Tag) bool

	// Write renders r on a canvas anchored at the cursor, then moves the
	// cursor to where r finished.
	Write(r Renderable) (Summary, error)
}

// BufferCanvas is a Canvas painting directly on a Buffer.
type BufferCanvas struct {
	buf   Buffer
	start Position
	pos   Position
}

var _ Canvas = (*BufferCanvas)(nil)

func NewCanvas(buf Buffer, start Position) *BufferCanvas {
	return &BufferCanvas{buf: buf, start: start, pos: start}
}

func (c *BufferCanvas) Policy() grapheme.AmbiguityPolicy { return c.buf.Policy() }
func (c *BufferCanvas) Start() Position                  { return c.start }
func (c *BufferCanvas) Position() Position               { return c.pos }
func (c *BufferCanvas) SetPosition(p Position)           { c.pos = p }
func (c *BufferCanvas) SetLine(line int)                 { c.pos = c.pos.WithLine(line) }
func (c *BufferCanvas) SetColumn(column int)             { c.pos = c.pos.WithColumn(column) }
func (c *BufferCanvas) CursorRight(n int)                { c.pos = c.pos.Right(n) }
func (c *BufferCanvas) CursorDown(n int)                 { c.pos = c.pos.Down(n) }
func (c *BufferCanvas) CursorLeft(n int)                 { c.pos = c.pos.Left(n) }
func (c *BufferCanvas) CursorUp(n int)                   { c.pos = c.pos.Up(n) }

func (c *BufferCanvas) TryCursorLeft(n int) bool {
	p, ok := c.pos.TryLeft(n)
	c.pos = p
	return ok
}

func (c *BufferCanvas) TryCursorUp(n int) bool {
	p, ok := c.pos.TryUp(n)
	c.pos = p
	return ok
}

func (c *BufferCanvas) CanSet(g grapheme.Grapheme) bool {
	return c.buf.CanSet(c.pos, g)
}

func (c *BufferCanvas) Set(g grapheme.Grapheme, tag Tag) bool {
	if !c.buf.Set(c.pos, g, tag) {
		return false
	}
	c.pos = c.pos.Right(g.Width(c.buf.Policy()))
	return true
}

func (c *BufferCanvas) SetRune(r rune, tag Tag) bool {
	return c.Set(grapheme.FromRune(r), tag)
}

func (c *BufferCanvas) Write(r Renderable) (Summary, error) {
	child := &BufferCanvas{buf: c.buf, start: c.pos, pos: c.pos}
	if err := r.Render(child); err != nil {
		return Summary{}, err
	}
	c.pos = child.pos
	return Summary{Start: child.start, End: child.pos}, nil
}
