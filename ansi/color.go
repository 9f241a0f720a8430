package ansi

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color8 is one of the eight basic terminal colors.
type Color8 uint8

const (
	Black Color8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Color16 is a basic color in its normal or bright variant.
type Color16 struct {
	Base   Color8
	Bright bool
}

func Normal(c Color8) Color16 { return Color16{Base: c} }
func Bright(c Color8) Color16 { return Color16{Base: c, Bright: true} }

// Index is the palette index 0-15.
func (c Color16) Index() uint8 {
	if c.Bright {
		return uint8(c.Base) + 8
	}
	return uint8(c.Base)
}

// Color256 is an xterm palette index.
type Color256 uint8

// Cube returns the 6x6x6 cube entry for r, g, b in 0-5.
func Cube(r, g, b uint8) Color256 {
	if r > 5 || g > 5 || b > 5 {
		panic(fmt.Sprintf("ansi: cube coordinate out of range: %d,%d,%d", r, g, b))
	}
	return Color256(16 + 36*r + 6*g + b)
}

// Gray returns grayscale ramp entry v in 0-23.
func Gray(v uint8) Color256 {
	if v > 23 {
		panic(fmt.Sprintf("ansi: gray level out of range: %d", v))
	}
	return Color256(232 + v)
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex parses "#rrggbb" or "#rgb".
func Hex(s string) (RGB, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("ansi: %w", err)
	}
	return FromColorful(c), nil
}

// MustHex is like Hex but panics on malformed input.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func (c RGB) Hex() string { return c.Colorful().Hex() }

var palette16 = [16]RGB{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// RGB returns the xterm default for palette entry c.
func (c Color256) RGB() RGB {
	switch {
	case c < 16:
		return palette16[c]
	case c < 232:
		i := uint8(c) - 16
		return RGB{R: cubeLevels[i/36], G: cubeLevels[i/6%6], B: cubeLevels[i%6]}
	default:
		v := 8 + 10*(uint8(c)-232)
		return RGB{R: v, G: v, B: v}
	}
}

func (c Color16) RGB() RGB { return palette16[c.Index()] }

// To256 returns the nearest cube or grayscale entry.
func (c RGB) To256() Color256 {
	cube := Cube(nearestLevel(c.R), nearestLevel(c.G), nearestLevel(c.B))
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	gray := Gray(uint8(min(max((avg-3)/10, 0), 23)))

	lab := c.Colorful()
	if lab.DistanceLab(gray.RGB().Colorful()) < lab.DistanceLab(cube.RGB().Colorful()) {
		return gray
	}
	return cube
}

// To16 returns the nearest entry of the 16-color palette.
func (c RGB) To16() Color16 {
	i := nearest(c, palette16[:])
	return Color16{Base: Color8(i % 8), Bright: i >= 8}
}

// To8 returns the nearest basic color.
func (c RGB) To8() Color8 {
	return Color8(nearest(c, palette16[:8]))
}

func nearestLevel(v uint8) uint8 {
	best := 0
	for i, l := range cubeLevels {
		if absDiff(v, l) < absDiff(v, cubeLevels[best]) {
			best = i
		}
	}
	return uint8(best)
}

func nearest(c RGB, candidates []RGB) int {
	lab := c.Colorful()
	best, bestDist := 0, lab.DistanceLab(candidates[0].Colorful())
	for i := 1; i < len(candidates); i++ {
		if d := lab.DistanceLab(candidates[i].Colorful()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
