package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkless"
	"github.com/iw2rmb/inkless/ansi"
	"github.com/iw2rmb/inkless/render"
	"github.com/iw2rmb/inkless/text"
)

// DefaultText is shown when Config.Text is empty.
const DefaultText = "Grüße from inkless: 世界 and ☕ share one grid.\n" +
	"A very_long_token_without_spaces_that_forces_grapheme_fallback_in_word_mode.\n" +
	"This sentence has natural word boundaries and demonstrates word wrapping."

var defaultStyles = map[string]ansi.Style{
	"heading": ansi.NewStyle().Bold().Underline(ansi.UnderlineSingle),
	"accent":  ansi.NewStyle().FgColor(ansi.MustHex("#ff8700")),
	"marker":  ansi.NewStyle().Faint(),
	"error":   ansi.NewStyle().Fg(ansi.Red).Bold(),
	"link":    ansi.NewStyle().Underline(ansi.UnderlineDotted).LinkID("https://unicode.org/reports/tr29/", "tr29"),
}

// quote is painted through the lipgloss adapter.
var quote = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#5fafff"))

var modes = []text.Mode{text.GraphemeWrap, text.Clip, text.WordWrap, text.Ellipsis, text.Error}

func (m Model) style(name string) ansi.Style {
	if st, ok := m.styles[name]; ok {
		return st
	}
	return defaultStyles[name]
}

// sample tags the first line of body and appends a linked footnote.
func (m Model) sample(o text.Overflow) text.Text {
	first, rest, _ := strings.Cut(m.text, "\n")
	t := text.OfTagged(first, m.style("accent"))
	if rest != "" {
		t = t.WithTagged("\n"+rest, quote)
	}
	return t.
		With("\nSee ").
		WithTagged("UAX #29", m.style("link")).
		With(" for grapheme rules.").
		WithOverflow(o)
}

func (m Model) heading(mode text.Mode) render.Renderable {
	label := mode.String()
	if mode == text.Ellipsis {
		label += " (" + m.overflow.Position.String() + ")"
	}
	return text.OfTagged(label, m.style("heading")).Clip()
}

// renderMode renders the heading and the sample under mode in separate
// passes so a failing sample keeps the heading. A failure is reported below
// whatever the sample painted.
func (m Model) renderMode(mode text.Mode, width int) string {
	o := m.overflow
	o.Mode = mode
	if o.MarkerTag == nil {
		o.MarkerTag = m.style("marker")
	}

	opts := m.opts
	opts.Width = width
	head, _ := m.paint(m.heading(mode), opts)
	body, err := m.paint(m.sample(o), opts)
	if err != nil {
		msg, _ := m.paint(text.OfTagged(fmt.Sprintf("render failed: %v", err), m.style("error")).WordWrap(), opts)
		body += msg
	}
	return strings.TrimSuffix(head+body, "\n")
}

// paint renders r through the active theme.
func (m Model) paint(r render.Renderable, opts render.Options) (string, error) {
	if m.clean {
		r = render.Themed(r, render.Clean)
	}
	return inkless.String(r, m.caps, opts)
}

func (m Model) renderContent() string {
	if m.viewport.Width <= 0 {
		return ""
	}
	if m.focus >= 0 {
		return m.renderMode(modes[m.focus], m.viewport.Width)
	}
	blocks := make([]string, 0, len(modes))
	for _, mode := range modes {
		blocks = append(blocks, m.renderMode(mode, m.viewport.Width))
	}
	return strings.Join(blocks, "\n\n")
}
