package text

import (
	"errors"
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/iw2rmb/inkless/grapheme"
	"github.com/iw2rmb/inkless/render"
)

type cell struct {
	G   string
	Tag render.Tag
}

// grid collects painted cells row by row and ignores gaps.
type grid struct {
	rows [][]cell
	cur  []cell
}

func (g *grid) Append(gr grapheme.Grapheme, tag render.Tag) bool {
	g.cur = append(g.cur, cell{G: gr.String(), Tag: tag})
	return true
}
func (g *grid) Gap() bool { return true }
func (g *grid) FinalizeLine() bool {
	g.rows = append(g.rows, g.cur)
	g.cur = nil
	return true
}
func (g *grid) Finalize() error { return nil }

func (g *grid) visibleWidth() int {
	w := 0
	for _, row := range g.rows {
		for _, c := range row {
			w += grapheme.StringWidth(c.G, grapheme.Standard)
		}
	}
	return w
}

func renderCells(t *testing.T, r render.Renderable, width int) *grid {
	t.Helper()
	var g grid
	if err := render.Render(r, &g, render.Options{Width: width}); err != nil {
		t.Fatalf("render: %v", err)
	}
	return &g
}

func renderText(t *testing.T, r render.Renderable, width int) string {
	t.Helper()
	got, err := render.RenderString(r, render.Options{Width: width, Height: 3})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return got
}

func TestText_EndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		text  Text
		width int
		want  string
	}{
		{"clip drops the rest", Of("Hi").Clip(), 1, "H\n"},
		{"word wrap splits a long word", Of("AB").WordWrap(), 1, "A\nB\n"},
		{"default wraps graphemes", Of("abcde"), 2, "ab\ncd\ne \n"},
		{"wide grapheme moves down", Of("a世b"), 2, "a \n世\nb \n"},
		{"too wide abandons the line", Of("世a\nb"), 1, " \n \nb\n"},
		{"word wrap keeps words whole", Of("ab cd").WordWrap(), 3, "ab \ncd \n"},
		{"clip is per line", Of("abc\nd").Clip(), 2, "ab\nd \n"},
		{"crlf breaks lines", Of("a\r\nb").Clip(), 2, "a \nb \n"},
		{"segments continue on the line", Of("ab").WithTagged("cd", "x"), 5, "abcd \n"},
		{"ellipsis right", Of("Hello, world!").Ellipsis(), 7, "Hello,…\n"},
		{"ellipsis left", Of("Hello, world!").EllipsisAt(Left), 7, "…world!\n"},
		{"ellipsis center", Of("Hello, world!").EllipsisAt(Center), 7, "Hel…ld!\n"},
		{"ellipsis fitting line untouched", Of("Hello").Ellipsis(), 7, "Hello  \n"},
		{"ellipsis per line", Of("abcdef\nxy").Ellipsis(), 4, "abc…\nxy  \n"},
		{"ellipsis wide prefix", Of("世界世界").Ellipsis(), 4, "世… \n"},
		{"nested lines return to start column", Of(">>").WithComponent(Of("a\nb")), 4, ">>a \n  b \n"},
		{"tab expands to the next stop", Of("a\tb"), 8, "a   b   \n"},
		{"tab stops span segments", Of("ab").With("\tc"), 6, "ab  c \n"},
		{"tab stops restart after a newline", Of("abcde\n\tx"), 6, "abcde \n    x \n"},
		{"controls are dropped", Of("a\x07b\rc"), 4, "abc \n"},
		{"word wrap abandons an unfittable line", Of("a世b\nc").WordWrap(), 1, "a\n \nc\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderText(t, tt.text, tt.width); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEllipsis_SkipsLineWhenMarkerDoesNotFit(t *testing.T) {
	doc := Of(">>>").WithComponent(Of("abc").Ellipsis())
	if got := renderText(t, doc, 3); got != ">>>\n" {
		t.Fatalf("got %q, want %q", got, ">>>\n")
	}
}

func TestEllipsis_MarkerTag(t *testing.T) {
	g := renderCells(t, OfTagged("abcdef", "seg").EllipsisTagged(Left, "marker"), 4)
	want := [][]cell{{
		{G: "…", Tag: Marker{Position: Left, Tag: "marker"}},
		{G: "d", Tag: "seg"},
		{G: "e", Tag: "seg"},
		{G: "f", Tag: "seg"},
	}}
	if diff := cmp.Diff(want, g.rows); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
	if tag, ok := render.As[string](g.rows[0][0].Tag); !ok || tag != "marker" {
		t.Fatalf("As(marker)=%q,%v", tag, ok)
	}

	g = renderCells(t, OfTagged("abcdef", "seg").Ellipsis(), 3)
	if got := g.rows[0][2].Tag; got != (Marker{Position: Right, Tag: "seg"}) {
		t.Fatalf("default marker tag=%v", got)
	}
}

func TestEllipsis_WidthProperties(t *testing.T) {
	inputs := []string{
		"Hello, world!",
		"世界こんにちは abc",
		"abcdefghijklmnopqrstuvwxyz",
		"a世b界c",
		"x",
	}
	for _, in := range inputs {
		for width := 1; width <= 14; width++ {
			right := renderCells(t, Of(in).Ellipsis(), width).visibleWidth()
			left := renderCells(t, Of(in).EllipsisAt(Left), width).visibleWidth()
			center := renderCells(t, Of(in).EllipsisAt(Center), width).visibleWidth()
			for name, w := range map[string]int{"right": right, "left": left, "center": center} {
				if w > width {
					t.Fatalf("%q width %d: %s visible=%d exceeds line", in, width, name, w)
				}
			}
			if center < right {
				t.Fatalf("%q width %d: center=%d < right=%d", in, width, center, right)
			}
		}
	}
}

func TestEllipsis_OutputWidthMatchesLine(t *testing.T) {
	for _, pos := range []EllipsisPosition{Right, Left, Center} {
		got := renderText(t, Of("Hello, world!").EllipsisAt(pos), 7)
		line := strings.TrimSuffix(got, "\n")
		if w := xansi.StringWidth(line); w != 7 {
			t.Fatalf("%v: width=%d, want 7 (%q)", pos, w, line)
		}
		if !strings.Contains(line, "…") {
			t.Fatalf("%v: missing ellipsis in %q", pos, line)
		}
	}
}

func TestWordWrap_NeverSplitsGraphemes(t *testing.T) {
	in := "éé \U0001F44D\U0001F3FD ok"
	g := renderCells(t, Of(in).WordWrap(), 3)
	var parts []string
	for _, row := range g.rows {
		for _, c := range row {
			if _, ok := grapheme.New(c.G); !ok {
				t.Fatalf("cell %q is not a single grapheme", c.G)
			}
			parts = append(parts, c.G)
		}
	}
	if got := strings.Join(parts, ""); got != in {
		t.Fatalf("joined=%q, want %q", got, in)
	}
}

func TestErrorMode(t *testing.T) {
	_, err := render.RenderString(Of("abc").ErrorOnOverflow(), render.Options{Width: 2})
	if !errors.Is(err, render.ErrOverflow) {
		t.Fatalf("err=%v, want overflow", err)
	}
	var re *render.Error
	if !errors.As(err, &re) || re.Kind != render.KindOverflow {
		t.Fatalf("err=%v, want KindOverflow", err)
	}

	got, err := render.RenderString(Of("ab\ncd").ErrorOnOverflow(), render.Options{Width: 2})
	if err != nil || got != "ab\ncd\n" {
		t.Fatalf("got %q,%v", got, err)
	}
}

func TestComponentErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	doc := Of("a").WithComponent(render.RenderFunc(func(render.Canvas) error { return boom }))
	_, err := render.RenderString(doc, render.Options{Width: 2})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
}

func TestBuilder_DoesNotAlias(t *testing.T) {
	base := Of("a").With("b")
	x := base.With("x")
	y := base.With("y")
	if got := len(base.Segments()); got != 2 {
		t.Fatalf("base segments=%d, want 2", got)
	}
	if x.Segments()[2].Text != "x" || y.Segments()[2].Text != "y" {
		t.Fatalf("builders aliased: %q %q", x.Segments()[2].Text, y.Segments()[2].Text)
	}
	if base.Overflow().Mode != GraphemeWrap {
		t.Fatalf("default mode=%v, want grapheme-wrap", base.Overflow().Mode)
	}
	if Of("a").WithComponent(nil).Segments()[0].Text != "a" || len(Of("a").WithComponent(nil).Segments()) != 1 {
		t.Fatalf("nil component should be ignored")
	}
}

func TestParseModeAndPosition(t *testing.T) {
	for m := GraphemeWrap; m <= Error; m++ {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q)=%v,%v", m.String(), got, err)
		}
	}
	for p := Right; p <= Center; p++ {
		got, err := ParseEllipsisPosition(p.String())
		if err != nil || got != p {
			t.Fatalf("ParseEllipsisPosition(%q)=%v,%v", p.String(), got, err)
		}
	}
	if _, err := ParseMode("wrap"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
