package grapheme

// StaticCapacity is the number of bytes a Static can hold.
const StaticCapacity = 7

const (
	// lengths above maxStaticLen would collide with the overflow marker
	maxStaticLen   = 254
	staticOverflow = 255
)

// Static is a fixed-capacity copy of a Grapheme. The zero value is empty.
type Static struct {
	n uint8
	b [StaticCapacity]byte
}

// NewStatic copies g. A cluster that does not fit is replaced by an overflow
// marker that decodes to Replacement.
func NewStatic(g Grapheme) Static {
	var s Static
	switch n := len(g.s); {
	case n == 0:
	case n > StaticCapacity || n > maxStaticLen:
		s.n = staticOverflow
	default:
		s.n = uint8(n)
		copy(s.b[:], g.s)
	}
	return s
}

func (s Static) IsZero() bool { return s.n == 0 }

// Overflowed reports whether the original cluster was too long to store.
func (s Static) Overflowed() bool { return s.n == staticOverflow }

// Grapheme decodes s.
func (s Static) Grapheme() Grapheme {
	switch s.n {
	case 0:
		return Grapheme{}
	case staticOverflow:
		return Replacement
	}
	return Grapheme{s: string(s.b[:s.n])}
}
