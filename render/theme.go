package render

import "github.com/iw2rmb/inkless/grapheme"

// Theme rewrites tags. Translate must be pure and defined for every tag,
// including nil.
type Theme interface {
	Translate(tag Tag) Tag
}

// ThemeFunc adapts a function to Theme.
type ThemeFunc func(tag Tag) Tag

func (f ThemeFunc) Translate(tag Tag) Tag { return f(tag) }

// Clean drops every tag.
var Clean Theme = ThemeFunc(func(Tag) Tag { return nil })

// Compose applies themes left to right.
func Compose(themes ...Theme) Theme {
	themes = append([]Theme(nil), themes...)
	return ThemeFunc(func(tag Tag) Tag {
		for _, th := range themes {
			tag = th.Translate(tag)
		}
		return tag
	})
}

// Themed renders r with every painted tag passed through th.
func Themed(r Renderable, th Theme) Renderable {
	return RenderFunc(func(c Canvas) error {
		return r.Render(&themeCanvas{Canvas: c, theme: th})
	})
}

// themeCanvas translates tags on paint and forwards everything else.
type themeCanvas struct {
	Canvas
	theme Theme
}

func (c *themeCanvas) Set(g grapheme.Grapheme, tag Tag) bool {
	return c.Canvas.Set(g, c.theme.Translate(tag))
}

func (c *themeCanvas) SetRune(r rune, tag Tag) bool {
	return c.Canvas.SetRune(r, c.theme.Translate(tag))
}

func (c *themeCanvas) Write(r Renderable) (Summary, error) {
	return c.Canvas.Write(Themed(r, c.theme))
}
