package ansi

import "strconv"

// ColorKind tells which palette a ResolvedColor comes from.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorIndexed16
	ColorIndexed256
	ColorRGB
)

// ResolvedColor is a color after degradation to what a terminal supports.
// Basic 8-color values resolve to the matching normal 16-color entry since
// both encode the same.
type ResolvedColor struct {
	Kind  ColorKind
	Index uint8
	RGB   RGB
}

func resolveColor(cs colorSet, sup ColorSupport) ResolvedColor {
	switch {
	case sup >= TrueColorSupport && cs.rgb.ok:
		return ResolvedColor{Kind: ColorRGB, RGB: cs.rgb.v}
	case sup >= Color256Support && cs.c256.ok:
		return ResolvedColor{Kind: ColorIndexed256, Index: uint8(cs.c256.v)}
	case sup >= Color16Support && cs.c16.ok:
		return ResolvedColor{Kind: ColorIndexed16, Index: cs.c16.v.Index()}
	case sup >= Color8Support && cs.c8.ok:
		return ResolvedColor{Kind: ColorIndexed16, Index: uint8(cs.c8.v)}
	}
	return ResolvedColor{}
}

func resolveUnderlineColor(s Style, sup UnderlineColorSupport) ResolvedColor {
	switch {
	case sup >= UnderlineColorTrue && s.ulRGB.ok:
		return ResolvedColor{Kind: ColorRGB, RGB: s.ulRGB.v}
	case sup >= UnderlineColor256 && s.ul256.ok:
		return ResolvedColor{Kind: ColorIndexed256, Index: uint8(s.ul256.v)}
	}
	return ResolvedColor{}
}

// ResolveFg, ResolveBg and ResolveUl return the color a terminal with caps
// would show for each axis.
func (s Style) ResolveFg(caps Capabilities) ResolvedColor { return resolveColor(s.fg, caps.Color) }
func (s Style) ResolveBg(caps Capabilities) ResolvedColor { return resolveColor(s.bg, caps.Color) }
func (s Style) ResolveUl(caps Capabilities) ResolvedColor {
	return resolveUnderlineColor(s, caps.UnderlineColor)
}

// state is a Style resolved against Capabilities: exactly what the terminal
// will show.
type state struct {
	intensity Intensity
	blink     Blink
	italic    bool
	conceal   bool
	strike    bool
	underline Underline
	fg, bg    ResolvedColor
	ul        ResolvedColor
	url, id   string
}

func resolve(s Style, caps Capabilities) state {
	st := state{
		intensity: s.intensity,
		blink:     s.blink,
		italic:    s.italic,
		conceal:   s.conceal,
		strike:    s.strike,
		underline: s.underline,
		fg:        resolveColor(s.fg, caps.Color),
		bg:        resolveColor(s.bg, caps.Color),
		ul:        resolveUnderlineColor(s, caps.UnderlineColor),
	}
	if caps.Hyperlinks && s.url != "" {
		st.url, st.id = s.url, s.linkID
	}
	return st
}

// appendDelta appends the sequences that turn old into cur, one axis at a
// time.
func appendDelta(b []byte, old, cur state) []byte {
	if old.intensity != cur.intensity {
		switch cur.intensity {
		case IntensityBold:
			b = append(b, "\x1b[1m"...)
		case IntensityFaint:
			b = append(b, "\x1b[2m"...)
		default:
			b = append(b, "\x1b[22m"...)
		}
	}
	if old.blink != cur.blink {
		switch cur.blink {
		case BlinkSlow:
			b = append(b, "\x1b[5m"...)
		case BlinkRapid:
			b = append(b, "\x1b[6m"...)
		default:
			b = append(b, "\x1b[25m"...)
		}
	}
	b = appendToggle(b, old.italic, cur.italic, "\x1b[3m", "\x1b[23m")
	b = appendToggle(b, old.conceal, cur.conceal, "\x1b[8m", "\x1b[28m")
	b = appendToggle(b, old.strike, cur.strike, "\x1b[9m", "\x1b[29m")
	if old.underline != cur.underline {
		b = append(b, underlineSeq[min(int(cur.underline), len(underlineSeq)-1)]...)
	}
	if old.fg != cur.fg {
		b = appendColor(b, cur.fg, 30, 90, "38", "\x1b[39m")
	}
	if old.bg != cur.bg {
		b = appendColor(b, cur.bg, 40, 100, "48", "\x1b[49m")
	}
	if old.ul != cur.ul {
		b = appendColor(b, cur.ul, 0, 0, "58", "\x1b[59m")
	}
	if old.url != cur.url || old.id != cur.id {
		b = appendLink(b, cur.url, cur.id)
	}
	return b
}

var underlineSeq = [...]string{
	UnderlineNone:   "\x1b[24m",
	UnderlineSingle: "\x1b[4m",
	UnderlineDouble: "\x1b[4:2m",
	UnderlineCurly:  "\x1b[4:3m",
	UnderlineDotted: "\x1b[4:4m",
	UnderlineDashed: "\x1b[4:5m",
}

func appendToggle(b []byte, old, cur bool, on, off string) []byte {
	switch {
	case old == cur:
		return b
	case cur:
		return append(b, on...)
	default:
		return append(b, off...)
	}
}

// appendColor writes c using base/brightBase for palette colors 0-15 and the
// extended prefix ext for 256 and true color.
func appendColor(b []byte, c ResolvedColor, base, brightBase int, ext, reset string) []byte {
	switch c.Kind {
	case ColorIndexed16:
		n := int(c.Index)
		if n >= 8 {
			n = brightBase + n - 8
		} else {
			n = base + n
		}
		b = append(b, "\x1b["...)
		b = strconv.AppendInt(b, int64(n), 10)
		return append(b, 'm')
	case ColorIndexed256:
		b = append(b, "\x1b["...)
		b = append(b, ext...)
		b = append(b, ";5;"...)
		b = strconv.AppendUint(b, uint64(c.Index), 10)
		return append(b, 'm')
	case ColorRGB:
		b = append(b, "\x1b["...)
		b = append(b, ext...)
		b = append(b, ";2;"...)
		b = strconv.AppendUint(b, uint64(c.RGB.R), 10)
		b = append(b, ';')
		b = strconv.AppendUint(b, uint64(c.RGB.G), 10)
		b = append(b, ';')
		b = strconv.AppendUint(b, uint64(c.RGB.B), 10)
		return append(b, 'm')
	default:
		return append(b, reset...)
	}
}

const linkClose = "\x1b]8;;\x1b\\"

func appendLink(b []byte, url, id string) []byte {
	if url == "" {
		return append(b, linkClose...)
	}
	b = append(b, "\x1b]8;"...)
	if id != "" {
		b = append(b, "id="...)
		b = append(b, id...)
	}
	b = append(b, ';')
	b = append(b, url...)
	return append(b, "\x1b\\"...)
}
