package render

import (
	"errors"
	"testing"

	"github.com/iw2rmb/inkless/grapheme"
)

func TestCanvas_SetAdvancesByWidth(t *testing.T) {
	buf := NewFixedBuffer(4, 1, grapheme.Standard)
	c := NewCanvas(buf, Position{})
	if !c.Set(grapheme.Must("世"), nil) {
		t.Fatalf("wide set failed")
	}
	if got := c.Position(); got.Column != 2 {
		t.Fatalf("column=%d, want 2", got.Column)
	}
	if !c.SetRune('x', nil) {
		t.Fatalf("rune set failed")
	}
	if c.Set(grapheme.Must("世"), nil) {
		t.Fatalf("wide set at column 3 of 4 should fail")
	}
	if got := c.Position(); got.Column != 3 {
		t.Fatalf("failed set moved cursor to %v", got)
	}
}

func TestCanvas_CanSetDoesNotMove(t *testing.T) {
	c := NewCanvas(NewFixedBuffer(2, 1, grapheme.Standard), Position{})
	for range 3 {
		if !c.CanSet(grapheme.Must("a")) {
			t.Fatalf("CanSet failed")
		}
	}
	if c.Position() != (Position{}) {
		t.Fatalf("CanSet moved cursor to %v", c.Position())
	}
}

func TestCanvas_TryCursor(t *testing.T) {
	c := NewCanvas(NewFixedBuffer(2, 1, grapheme.Standard), Position{Line: 1, Column: 1})
	if c.TryCursorUp(2) || c.TryCursorLeft(2) {
		t.Fatalf("guarded moves past 0 should fail")
	}
	if c.Position() != (Position{Line: 1, Column: 1}) {
		t.Fatalf("failed guarded move changed cursor: %v", c.Position())
	}
	if !c.TryCursorUp(1) || !c.TryCursorLeft(1) {
		t.Fatalf("guarded moves to 0 should succeed")
	}
	c.SetLine(4)
	c.SetColumn(2)
	if c.Position() != (Position{Line: 4, Column: 2}) {
		t.Fatalf("absolute moves: %v", c.Position())
	}
}

func TestCanvas_WriteReanchorsAndSummarizes(t *testing.T) {
	buf := NewGrowBuffer(10, 0, grapheme.Standard)
	c := NewCanvas(buf, Position{})
	c.SetRune('>', nil)

	var inner Position
	sum, err := c.Write(RenderFunc(func(n Canvas) error {
		inner = n.Start()
		n.SetRune('a', nil)
		n.CursorDown(2)
		n.SetColumn(n.Start().Column)
		n.SetRune('b', nil)
		return nil
	}))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if inner != (Position{Column: 1}) {
		t.Fatalf("nested start=%v, want 0:1", inner)
	}
	if sum.Start != (Position{Column: 1}) || sum.End != (Position{Line: 2, Column: 2}) {
		t.Fatalf("summary=%+v", sum)
	}
	if sum.Height() != 3 {
		t.Fatalf("height=%d, want 3", sum.Height())
	}
	if c.Position() != sum.End {
		t.Fatalf("parent cursor=%v, want %v", c.Position(), sum.End)
	}
	if c.Start() != (Position{}) {
		t.Fatalf("parent start changed: %v", c.Start())
	}
}

func TestCanvas_WriteFailurePropagates(t *testing.T) {
	c := NewCanvas(NewGrowBuffer(4, 0, grapheme.Standard), Position{})
	_, err := c.Write(RenderFunc(func(Canvas) error { return errBoom }))
	if !errors.Is(err, errBoom) {
		t.Fatalf("err=%v, want boom", err)
	}
	if c.Position() != (Position{}) {
		t.Fatalf("failed write moved cursor to %v", c.Position())
	}
}
