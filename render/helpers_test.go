package render

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/inkless/grapheme"
)

// recorder captures sink events as strings: the grapheme (with "/tag" when
// tagged), "_" for gaps and "$" for line ends.
type recorder struct {
	events    []string
	stopAfter int
	finalized int
	err       error
}

func (r *recorder) push(ev string) bool {
	r.events = append(r.events, ev)
	return r.stopAfter == 0 || len(r.events) < r.stopAfter
}

func (r *recorder) Append(g grapheme.Grapheme, tag Tag) bool {
	if tag != nil {
		return r.push(fmt.Sprintf("%s/%v", g, tag))
	}
	return r.push(g.String())
}

func (r *recorder) Gap() bool          { return r.push("_") }
func (r *recorder) FinalizeLine() bool { return r.push("$") }
func (r *recorder) Finalize() error {
	r.finalized++
	return r.err
}

// lines paints each string on its own line, one grapheme at a time, and
// stops a line at the first grapheme that does not fit.
func lines(tag Tag, ss ...string) Renderable {
	return RenderFunc(func(c Canvas) error {
		start := c.Position()
		for i, s := range ss {
			c.SetPosition(start.Down(i))
			for g := range grapheme.Segments(s) {
				if !c.Set(g, tag) {
					break
				}
			}
		}
		return nil
	})
}

var errBoom = errors.New("boom")
