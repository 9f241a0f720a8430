package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/inkless/ansi"
)

var colorNames = map[string]ansi.Color8{
	"black":   ansi.Black,
	"red":     ansi.Red,
	"green":   ansi.Green,
	"yellow":  ansi.Yellow,
	"blue":    ansi.Blue,
	"magenta": ansi.Magenta,
	"cyan":    ansi.Cyan,
	"white":   ansi.White,
}

var underlineNames = map[string]ansi.Underline{
	"":       ansi.UnderlineNone,
	"none":   ansi.UnderlineNone,
	"single": ansi.UnderlineSingle,
	"double": ansi.UnderlineDouble,
	"curly":  ansi.UnderlineCurly,
	"dotted": ansi.UnderlineDotted,
	"dashed": ansi.UnderlineDashed,
}

var blinkNames = map[string]ansi.Blink{
	"":      ansi.BlinkNone,
	"none":  ansi.BlinkNone,
	"slow":  ansi.BlinkSlow,
	"rapid": ansi.BlinkRapid,
}

// color is a parsed color value. Exactly one of the fields is meaningful,
// picked by kind.
type color struct {
	kind  byte // 0 none, 'h' hex, 'i' index, 'n' named, 'b' bright named
	rgb   ansi.RGB
	index ansi.Color256
	named ansi.Color8
}

func parseColor(s string) (color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return color{}, nil
	case strings.HasPrefix(s, "#"):
		c, err := ansi.Hex(s)
		if err != nil {
			return color{}, err
		}
		return color{kind: 'h', rgb: c}, nil
	case strings.HasPrefix(s, "bright-"):
		c, ok := colorNames[strings.TrimPrefix(s, "bright-")]
		if !ok {
			return color{}, fmt.Errorf("unknown color %q", s)
		}
		return color{kind: 'b', named: c}, nil
	}
	if c, ok := colorNames[s]; ok {
		return color{kind: 'n', named: c}, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return color{}, fmt.Errorf("unknown color %q", s)
	}
	return color{kind: 'i', index: ansi.Color256(n)}, nil
}

func (c color) fg(st ansi.Style) ansi.Style {
	switch c.kind {
	case 'h':
		return st.FgColor(c.rgb)
	case 'i':
		return st.FgColor(c.index.RGB()).Fg256(c.index)
	case 'n':
		return st.Fg(c.named)
	case 'b':
		return st.FgBright(c.named)
	}
	return st
}

func (c color) bg(st ansi.Style) ansi.Style {
	switch c.kind {
	case 'h':
		return st.BgColor(c.rgb)
	case 'i':
		return st.BgColor(c.index.RGB()).Bg256(c.index)
	case 'n':
		return st.Bg(c.named)
	case 'b':
		return st.BgBright(c.named)
	}
	return st
}

// underline colors only exist in the 256 and true color tiers.
func (c color) ul(st ansi.Style) ansi.Style {
	switch c.kind {
	case 'h':
		return st.UnderlineColor(c.rgb)
	case 'i':
		return st.UnderlineColor(c.index.RGB()).Underline256(c.index)
	case 'n':
		return st.UnderlineColor(ansi.Normal(c.named).RGB()).Underline256(ansi.Color256(c.named))
	case 'b':
		return st.UnderlineColor(ansi.Bright(c.named).RGB()).Underline256(ansi.Color256(ansi.Bright(c.named).Index()))
	}
	return st
}

// Style converts s. Errors are *FieldError values naming the
// offending key.
func (s StyleSpec) Style() (ansi.Style, error) {
	st := ansi.NewStyle()
	for _, f := range []struct {
		field string
		value string
		apply func(color, ansi.Style) ansi.Style
	}{
		{"fg", s.Fg, color.fg},
		{"bg", s.Bg, color.bg},
		{"underline_color", s.UnderlineColor, color.ul},
	} {
		c, err := parseColor(f.value)
		if err != nil {
			return ansi.Style{}, &FieldError{Field: f.field, Err: err}
		}
		st = f.apply(c, st)
	}

	u, ok := underlineNames[strings.ToLower(s.Underline)]
	if !ok {
		return ansi.Style{}, &FieldError{Field: "underline", Err: fmt.Errorf("unknown underline style %q", s.Underline)}
	}
	b, ok := blinkNames[strings.ToLower(s.Blink)]
	if !ok {
		return ansi.Style{}, &FieldError{Field: "blink", Err: fmt.Errorf("unknown blink rate %q", s.Blink)}
	}
	if s.Bold && s.Faint {
		return ansi.Style{}, &FieldError{Field: "faint", Err: fmt.Errorf("bold and faint are exclusive")}
	}
	st = st.Underline(u).Blink(b)

	switch {
	case s.Bold:
		st = st.Bold()
	case s.Faint:
		st = st.Faint()
	}
	if s.Italic {
		st = st.Italic()
	}
	if s.Strikethrough {
		st = st.Strikethrough()
	}
	if s.Conceal {
		st = st.Conceal()
	}
	if s.Link != "" {
		st = st.Link(s.Link)
	}
	return st, nil
}
