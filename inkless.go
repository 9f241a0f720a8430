package inkless

import (
	"bufio"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/iw2rmb/inkless/ansi"
	"github.com/iw2rmb/inkless/render"
)

// Write renders r through the escape-code encoder into w. Output is
// buffered and flushed before returning.
func Write(w io.Writer, r render.Renderable, caps ansi.Capabilities, opts render.Options) error {
	bw := bufio.NewWriter(w)
	err := render.Render(r, ansi.NewSink(bw, caps), opts)
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = render.WriterError(ferr)
	}
	return err
}

// String renders r with escape codes for caps.
func String(r render.Renderable, caps ansi.Capabilities, opts render.Options) (string, error) {
	var sb strings.Builder
	err := render.Render(r, ansi.NewSink(&sb, caps), opts)
	return sb.String(), err
}

// Plain renders r without styling.
func Plain(r render.Renderable, opts render.Options) (string, error) {
	return render.RenderString(r, opts)
}

// Detect reads the color profile of w from the environment the way termenv
// does, honoring NO_COLOR and CLICOLOR_FORCE.
func Detect(w io.Writer) ansi.Capabilities {
	return ansi.FromProfile(termenv.NewOutput(w).EnvColorProfile())
}
