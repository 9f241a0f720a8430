package ansi

import (
	"fmt"

	"github.com/muesli/termenv"
)

// ColorSupport is the richest color palette a terminal accepts.
type ColorSupport uint8

const (
	ColorNone ColorSupport = iota
	Color8Support
	Color16Support
	Color256Support
	TrueColorSupport
)

var colorSupportNames = [...]string{
	ColorNone:        "none",
	Color8Support:    "ansi8",
	Color16Support:   "ansi16",
	Color256Support:  "ansi256",
	TrueColorSupport: "truecolor",
}

func (c ColorSupport) String() string {
	if int(c) < len(colorSupportNames) {
		return colorSupportNames[c]
	}
	return fmt.Sprintf("ColorSupport(%d)", uint8(c))
}

func ParseColorSupport(s string) (ColorSupport, error) {
	for i, name := range colorSupportNames {
		if name == s {
			return ColorSupport(i), nil
		}
	}
	return 0, fmt.Errorf("ansi: unknown color support %q", s)
}

// UnderlineColorSupport is the richest palette accepted for underline
// colors (SGR 58).
type UnderlineColorSupport uint8

const (
	UnderlineColorNone UnderlineColorSupport = iota
	UnderlineColor256
	UnderlineColorTrue
)

var underlineSupportNames = [...]string{
	UnderlineColorNone: "none",
	UnderlineColor256:  "ansi256",
	UnderlineColorTrue: "truecolor",
}

func (c UnderlineColorSupport) String() string {
	if int(c) < len(underlineSupportNames) {
		return underlineSupportNames[c]
	}
	return fmt.Sprintf("UnderlineColorSupport(%d)", uint8(c))
}

func ParseUnderlineColorSupport(s string) (UnderlineColorSupport, error) {
	for i, name := range underlineSupportNames {
		if name == s {
			return UnderlineColorSupport(i), nil
		}
	}
	return 0, fmt.Errorf("ansi: unknown underline color support %q", s)
}

// Capabilities describes what the destination terminal understands. The zero
// value allows text attributes but no colors or hyperlinks.
type Capabilities struct {
	Color          ColorSupport
	UnderlineColor UnderlineColorSupport
	Hyperlinks     bool
}

// Full enables every feature the encoder knows.
var Full = Capabilities{Color: TrueColorSupport, UnderlineColor: UnderlineColorTrue, Hyperlinks: true}

// FromProfile maps a termenv color profile. termenv does not report
// hyperlink support, so it is left off.
func FromProfile(p termenv.Profile) Capabilities {
	switch p {
	case termenv.TrueColor:
		return Capabilities{Color: TrueColorSupport, UnderlineColor: UnderlineColorTrue}
	case termenv.ANSI256:
		return Capabilities{Color: Color256Support, UnderlineColor: UnderlineColor256}
	case termenv.ANSI:
		return Capabilities{Color: Color16Support}
	default:
		return Capabilities{}
	}
}
