package render

import "testing"

func TestPosition_Movement(t *testing.T) {
	p := Position{Line: 2, Column: 3}
	if got := p.Right(4); got != (Position{Line: 2, Column: 7}) {
		t.Fatalf("Right=%v, want 2:7", got)
	}
	if got := p.Down(1); got != (Position{Line: 3, Column: 3}) {
		t.Fatalf("Down=%v, want 3:3", got)
	}
	if got, ok := p.TryLeft(3); !ok || got != (Position{Line: 2}) {
		t.Fatalf("TryLeft(3)=%v,%v, want 2:0,true", got, ok)
	}
	if got, ok := p.TryLeft(4); ok || got != p {
		t.Fatalf("TryLeft(4)=%v,%v, want unchanged,false", got, ok)
	}
	if got, ok := p.TryUp(3); ok || got != p {
		t.Fatalf("TryUp(3)=%v,%v, want unchanged,false", got, ok)
	}
	if got := p.Up(2); got != (Position{Column: 3}) {
		t.Fatalf("Up(2)=%v, want 0:3", got)
	}
	if p != (Position{Line: 2, Column: 3}) {
		t.Fatalf("receiver mutated: %v", p)
	}
}

func TestPosition_UncheckedUnderflowPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"left", func() { Position{Column: 1}.Left(2) }},
		{"up", func() { Position{}.Up(1) }},
		{"negative", func() { Position{}.Right(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
