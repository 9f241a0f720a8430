package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/inkless/ansi"
)

// CapabilitiesOf derives encoder capabilities from the palette size the
// screen reports.
func CapabilitiesOf(scr tcell.Screen) ansi.Capabilities {
	switch n := scr.Colors(); {
	case n >= 1<<24:
		return ansi.Capabilities{Color: ansi.TrueColorSupport, UnderlineColor: ansi.UnderlineColorTrue, Hyperlinks: true}
	case n >= 256:
		return ansi.Capabilities{Color: ansi.Color256Support, UnderlineColor: ansi.UnderlineColor256, Hyperlinks: true}
	case n >= 16:
		return ansi.Capabilities{Color: ansi.Color16Support, Hyperlinks: true}
	case n >= 8:
		return ansi.Capabilities{Color: ansi.Color8Support, Hyperlinks: true}
	default:
		return ansi.Capabilities{}
	}
}

var underlineStyles = [...]tcell.UnderlineStyle{
	ansi.UnderlineNone:   tcell.UnderlineStyleNone,
	ansi.UnderlineSingle: tcell.UnderlineStyleSolid,
	ansi.UnderlineDouble: tcell.UnderlineStyleDouble,
	ansi.UnderlineCurly:  tcell.UnderlineStyleCurly,
	ansi.UnderlineDotted: tcell.UnderlineStyleDotted,
	ansi.UnderlineDashed: tcell.UnderlineStyleDashed,
}

// Convert maps st to a tcell style after degrading it for caps. Both blink
// rates become tcell's single blink attribute.
func Convert(st ansi.Style, caps ansi.Capabilities) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(color(st.ResolveFg(caps))).
		Background(color(st.ResolveBg(caps)))

	switch st.GetIntensity() {
	case ansi.IntensityBold:
		ts = ts.Bold(true)
	case ansi.IntensityFaint:
		ts = ts.Dim(true)
	}
	if st.GetBlink() != ansi.BlinkNone {
		ts = ts.Blink(true)
	}
	if st.GetItalic() {
		ts = ts.Italic(true)
	}
	if st.GetStrikethrough() {
		ts = ts.StrikeThrough(true)
	}
	if u := st.GetUnderline(); u != ansi.UnderlineNone && int(u) < len(underlineStyles) {
		ts = ts.Underline(underlineStyles[u])
		if c := st.ResolveUl(caps); c.Kind != ansi.ColorDefault {
			ts = ts.Underline(color(c))
		}
	}
	if url, id := st.GetLink(); caps.Hyperlinks && url != "" {
		ts = ts.Url(url)
		if id != "" {
			ts = ts.UrlId(id)
		}
	}
	return ts
}

func color(c ansi.ResolvedColor) tcell.Color {
	switch c.Kind {
	case ansi.ColorIndexed16, ansi.ColorIndexed256:
		return tcell.PaletteColor(int(c.Index))
	case ansi.ColorRGB:
		return tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B))
	default:
		return tcell.ColorDefault
	}
}
