package render

import "fmt"

// Position is a 0-based (Line, Column) coordinate in cells. Both fields are
// non-negative.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Right moves n columns right.
func (p Position) Right(n int) Position {
	mustCount(n)
	p.Column += n
	return p
}

// Down moves n lines down.
func (p Position) Down(n int) Position {
	mustCount(n)
	p.Line += n
	return p
}

// TryLeft moves n columns left. It reports false and returns p unchanged when
// that would cross column 0.
func (p Position) TryLeft(n int) (Position, bool) {
	mustCount(n)
	if n > p.Column {
		return p, false
	}
	p.Column -= n
	return p, true
}

// TryUp moves n lines up. It reports false and returns p unchanged when that
// would cross line 0.
func (p Position) TryUp(n int) (Position, bool) {
	mustCount(n)
	if n > p.Line {
		return p, false
	}
	p.Line -= n
	return p, true
}

// Left moves n columns left and panics on underflow.
func (p Position) Left(n int) Position {
	q, ok := p.TryLeft(n)
	if !ok {
		panic(fmt.Sprintf("render: Left(%d) from %v crosses column 0", n, p))
	}
	return q
}

// Up moves n lines up and panics on underflow.
func (p Position) Up(n int) Position {
	q, ok := p.TryUp(n)
	if !ok {
		panic(fmt.Sprintf("render: Up(%d) from %v crosses line 0", n, p))
	}
	return q
}

func (p Position) WithLine(line int) Position {
	mustCount(line)
	p.Line = line
	return p
}

func (p Position) WithColumn(column int) Position {
	mustCount(column)
	p.Column = column
	return p
}

func mustCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("render: negative count %d", n))
	}
}
