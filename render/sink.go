package render

import (
	"io"

	"github.com/iw2rmb/inkless/grapheme"
)

// Sink receives the linearized cells of every page in row-major order. A
// false result from Append, Gap or FinalizeLine stops the render; Finalize is
// still called.
type Sink interface {
	// Append receives a painted cell. Cells covered by a wide grapheme are
	// skipped.
	Append(g grapheme.Grapheme, tag Tag) bool
	// Gap receives a cell nothing was painted on.
	Gap() bool
	// FinalizeLine ends a row.
	FinalizeLine() bool
	// Finalize ends the render and returns the first error the sink met.
	Finalize() error
}

// Plaintext writes graphemes without styling: a space for each gap and a
// newline after each row.
type Plaintext struct {
	w   io.Writer
	err error
}

var _ Sink = (*Plaintext)(nil)

func NewPlaintext(w io.Writer) *Plaintext {
	return &Plaintext{w: w}
}

func (p *Plaintext) Append(g grapheme.Grapheme, _ Tag) bool {
	return p.write(g.String())
}

func (p *Plaintext) Gap() bool { return p.write(" ") }

func (p *Plaintext) FinalizeLine() bool { return p.write("\n") }

func (p *Plaintext) Finalize() error {
	if p.err != nil {
		return WriterError(p.err)
	}
	return nil
}

func (p *Plaintext) write(s string) bool {
	if p.err != nil {
		return false
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		p.err = err
		return false
	}
	return true
}
