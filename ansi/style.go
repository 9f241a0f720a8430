package ansi

import "github.com/iw2rmb/inkless/render"

type Intensity uint8

const (
	IntensityNormal Intensity = iota
	IntensityBold
	IntensityFaint
)

type Blink uint8

const (
	BlinkNone Blink = iota
	BlinkSlow
	BlinkRapid
)

type Underline uint8

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

type opt[T comparable] struct {
	v  T
	ok bool
}

func some[T comparable](v T) opt[T] { return opt[T]{v: v, ok: true} }

// colorSet holds one color in every representation the caller supplied.
type colorSet struct {
	c8   opt[Color8]
	c16  opt[Color16]
	c256 opt[Color256]
	rgb  opt[RGB]
}

func derived(c RGB) colorSet {
	return colorSet{
		c8:   some(c.To8()),
		c16:  some(c.To16()),
		c256: some(c.To256()),
		rgb:  some(c),
	}
}

func named(c Color8) colorSet {
	return colorSet{c8: some(c), c16: some(Normal(c))}
}

// Style is a comparable cell style. The zero value is unstyled. Colors can
// be given per palette tier; the Sink picks the richest tier the terminal
// supports.
type Style struct {
	fg, bg    colorSet
	ul256     opt[Color256]
	ulRGB     opt[RGB]
	underline Underline
	intensity Intensity
	blink     Blink
	italic    bool
	conceal   bool
	strike    bool
	url       string
	linkID    string
}

// Styler is implemented by tags that carry a Style.
type Styler interface {
	AnsiStyle() Style
}

func NewStyle() Style { return Style{} }

func (s Style) AnsiStyle() Style { return s }

func (s Style) Fg8(c Color8) Style            { s.fg.c8 = some(c); return s }
func (s Style) Fg16(c Color16) Style          { s.fg.c16 = some(c); return s }
func (s Style) Fg256(c Color256) Style        { s.fg.c256 = some(c); return s }
func (s Style) FgRGB(c RGB) Style             { s.fg.rgb = some(c); return s }
func (s Style) Bg8(c Color8) Style            { s.bg.c8 = some(c); return s }
func (s Style) Bg16(c Color16) Style          { s.bg.c16 = some(c); return s }
func (s Style) Bg256(c Color256) Style        { s.bg.c256 = some(c); return s }
func (s Style) BgRGB(c RGB) Style             { s.bg.rgb = some(c); return s }
func (s Style) Underline256(c Color256) Style { s.ul256 = some(c); return s }
func (s Style) UnderlineRGB(c RGB) Style      { s.ulRGB = some(c); return s }

// FgColor sets c as true color and fills the lower tiers with the nearest
// palette entries.
func (s Style) FgColor(c RGB) Style { s.fg = derived(c); return s }

// BgColor is the background counterpart of FgColor.
func (s Style) BgColor(c RGB) Style { s.bg = derived(c); return s }

// UnderlineColor sets both underline color tiers from c.
func (s Style) UnderlineColor(c RGB) Style {
	s.ul256 = some(c.To256())
	s.ulRGB = some(c)
	return s
}

// Fg sets a basic color for both the 8 and 16 color tiers.
func (s Style) Fg(c Color8) Style { s.fg = named(c); return s }

// Bg sets a basic background for both the 8 and 16 color tiers.
func (s Style) Bg(c Color8) Style { s.bg = named(c); return s }

// FgBright sets a bright color. Terminals limited to 8 colors show none.
func (s Style) FgBright(c Color8) Style { s.fg = colorSet{c16: some(Bright(c))}; return s }

func (s Style) BgBright(c Color8) Style { s.bg = colorSet{c16: some(Bright(c))}; return s }

func (s Style) Bold() Style                 { s.intensity = IntensityBold; return s }
func (s Style) Faint() Style                { s.intensity = IntensityFaint; return s }
func (s Style) NormalIntensity() Style      { s.intensity = IntensityNormal; return s }
func (s Style) Italic() Style               { s.italic = true; return s }
func (s Style) Conceal() Style              { s.conceal = true; return s }
func (s Style) Strikethrough() Style        { s.strike = true; return s }
func (s Style) Blink(b Blink) Style         { s.blink = b; return s }
func (s Style) NoBlink() Style              { s.blink = BlinkNone; return s }
func (s Style) Underline(u Underline) Style { s.underline = u; return s }

// Link makes the cell part of an OSC 8 hyperlink.
func (s Style) Link(url string) Style { s.url, s.linkID = url, ""; return s }

// LinkID is like Link; cells sharing id are grouped by the terminal.
func (s Style) LinkID(url, id string) Style { s.url, s.linkID = url, id; return s }

func (s Style) GetIntensity() Intensity   { return s.intensity }
func (s Style) GetBlink() Blink           { return s.blink }
func (s Style) GetUnderline() Underline   { return s.underline }
func (s Style) GetItalic() bool           { return s.italic }
func (s Style) GetConceal() bool          { return s.conceal }
func (s Style) GetStrikethrough() bool    { return s.strike }
func (s Style) GetLink() (url, id string) { return s.url, s.linkID }

// StyleOf extracts the Style carried by tag. Unknown tags are unstyled.
func StyleOf(tag render.Tag) Style {
	for tag != nil {
		switch t := tag.(type) {
		case Style:
			return t
		case *Style:
			if t == nil {
				return Style{}
			}
			return *t
		case Styler:
			return t.AnsiStyle()
		case render.Wrapper:
			tag = t.Unwrap()
		default:
			if s, ok := fromLipglossTag(t); ok {
				return s
			}
			return Style{}
		}
	}
	return Style{}
}
