package grapheme

import "testing"

func TestStatic_RoundTrip(t *testing.T) {
	for _, s := range []string{"a", "é", "世", "\U0001F600", "é́"} {
		g := Must(s)
		if g.Len() > StaticCapacity {
			t.Fatalf("fixture %q too long", s)
		}
		st := NewStatic(g)
		if st.Overflowed() {
			t.Fatalf("%q overflowed", s)
		}
		if got := st.Grapheme(); got != g {
			t.Fatalf("decode=%q, want %q", got, g)
		}
	}
}

func TestStatic_OverflowDecodesToReplacement(t *testing.T) {
	family := Must("\U0001F468\u200d\U0001F469\u200d\U0001F467")
	st := NewStatic(family)
	if !st.Overflowed() {
		t.Fatalf("expected overflow for %d-byte cluster", family.Len())
	}
	if got := st.Grapheme(); got != Replacement {
		t.Fatalf("decode=%q, want replacement", got)
	}
}

func TestStatic_ZeroValue(t *testing.T) {
	var st Static
	if !st.IsZero() || st.Overflowed() {
		t.Fatalf("zero static should be empty")
	}
	if !st.Grapheme().IsZero() {
		t.Fatalf("zero static decoded to %q", st.Grapheme())
	}
	if !NewStatic(Grapheme{}).IsZero() {
		t.Fatalf("empty grapheme should encode to zero static")
	}
}
