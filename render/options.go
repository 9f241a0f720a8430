package render

import (
	"fmt"

	"github.com/iw2rmb/inkless/grapheme"
)

// DefaultHeight is the page height used when Options.Height is 0 and the
// storage cannot be unbounded.
const DefaultHeight = 32

// Storage selects the Buffer implementation used by the driver.
type Storage uint8

const (
	// StorageGrow allocates rows on demand and keeps every grapheme intact.
	// Height 0 renders everything in one pass.
	StorageGrow Storage = iota
	// StorageFixed allocates one Width x Height window and reuses it for
	// every page. Graphemes longer than grapheme.StaticCapacity bytes are
	// stored as U+FFFD.
	StorageFixed
)

func (s Storage) String() string {
	switch s {
	case StorageGrow:
		return "grow"
	case StorageFixed:
		return "fixed"
	default:
		return fmt.Sprintf("Storage(%d)", uint8(s))
	}
}

func ParseStorage(s string) (Storage, error) {
	switch s {
	case "grow", "":
		return StorageGrow, nil
	case "fixed":
		return StorageFixed, nil
	}
	return 0, fmt.Errorf("render: unknown storage %q", s)
}

// Options configures a render pass.
type Options struct {
	Width   int
	Height  int
	Policy  grapheme.AmbiguityPolicy
	Storage Storage
}

// NewBuffer builds the page buffer described by o.
func (o Options) NewBuffer() PageBuffer {
	switch o.Storage {
	case StorageFixed:
		h := o.Height
		if h <= 0 {
			h = DefaultHeight
		}
		return NewFixedBuffer(o.Width, h, o.Policy)
	default:
		return NewGrowBuffer(o.Width, o.Height, o.Policy)
	}
}
