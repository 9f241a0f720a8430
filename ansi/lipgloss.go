package ansi

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FromLipgloss converts the attributes and colors of a lipgloss style.
// Adaptive colors use their dark variant. Layout properties are ignored.
func FromLipgloss(ls lipgloss.Style) Style {
	var s Style
	switch {
	case ls.GetBold():
		s = s.Bold()
	case ls.GetFaint():
		s = s.Faint()
	}
	if ls.GetItalic() {
		s = s.Italic()
	}
	if ls.GetUnderline() {
		s = s.Underline(UnderlineSingle)
	}
	if ls.GetStrikethrough() {
		s = s.Strikethrough()
	}
	if ls.GetBlink() {
		s = s.Blink(BlinkSlow)
	}
	s.fg = fromTerminalColor(ls.GetForeground())
	s.bg = fromTerminalColor(ls.GetBackground())
	return s
}

func fromLipglossTag(tag any) (Style, bool) {
	switch t := tag.(type) {
	case lipgloss.Style:
		return FromLipgloss(t), true
	case *lipgloss.Style:
		if t == nil {
			return Style{}, true
		}
		return FromLipgloss(*t), true
	}
	return Style{}, false
}

func fromTerminalColor(c lipgloss.TerminalColor) colorSet {
	switch c := c.(type) {
	case lipgloss.Color:
		return parseColorSpec(string(c))
	case lipgloss.ANSIColor:
		return parseColorSpec(strconv.FormatUint(uint64(c), 10))
	case lipgloss.AdaptiveColor:
		return parseColorSpec(c.Dark)
	case lipgloss.CompleteColor:
		return fromCompleteColor(c)
	case lipgloss.CompleteAdaptiveColor:
		return fromCompleteColor(c.Dark)
	default:
		return colorSet{}
	}
}

func fromCompleteColor(c lipgloss.CompleteColor) colorSet {
	var cs colorSet
	if rgb, err := Hex(c.TrueColor); err == nil {
		cs.rgb = some(rgb)
	}
	if n, err := strconv.ParseUint(c.ANSI256, 10, 8); err == nil {
		cs.c256 = some(Color256(n))
	}
	if n, err := strconv.ParseUint(c.ANSI, 10, 8); err == nil && n < 16 {
		c16 := Color16{Base: Color8(n % 8), Bright: n >= 8}
		cs.c16 = some(c16)
		if !c16.Bright {
			cs.c8 = some(c16.Base)
		}
	}
	return cs
}

// parseColorSpec reads a lipgloss color string: "#rrggbb" or a palette
// index.
func parseColorSpec(spec string) colorSet {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "#") {
		rgb, err := Hex(spec)
		if err != nil {
			return colorSet{}
		}
		return derived(rgb)
	}
	n, err := strconv.ParseUint(spec, 10, 8)
	if err != nil {
		return colorSet{}
	}
	switch {
	case n < 8:
		return named(Color8(n))
	case n < 16:
		return colorSet{c16: some(Bright(Color8(n - 8)))}
	default:
		c := Color256(n)
		cs := derived(c.RGB())
		cs.rgb = opt[RGB]{}
		cs.c256 = some(c)
		return cs
	}
}
