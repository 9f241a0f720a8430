package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/inkless/ansi"
	"github.com/iw2rmb/inkless/grapheme"
	"github.com/iw2rmb/inkless/render"
	"github.com/iw2rmb/inkless/text"
)

// Profile is a render profile as stored on disk. Enum fields hold the names
// printed by the String method of the matching type.
type Profile struct {
	Width     int                  `toml:"width" yaml:"width"`
	Height    int                  `toml:"height" yaml:"height"`
	Ambiguity string               `toml:"ambiguity" yaml:"ambiguity"`
	Storage   string               `toml:"storage" yaml:"storage"`
	Terminal  Terminal             `toml:"terminal" yaml:"terminal"`
	Overflow  Overflow             `toml:"overflow" yaml:"overflow"`
	Styles    map[string]StyleSpec `toml:"styles" yaml:"styles"`
}

type Terminal struct {
	Color          string `toml:"color" yaml:"color"`
	UnderlineColor string `toml:"underline_color" yaml:"underline_color"`
	Hyperlinks     bool   `toml:"hyperlinks" yaml:"hyperlinks"`
}

type Overflow struct {
	Mode     string `toml:"mode" yaml:"mode"`
	Position string `toml:"position" yaml:"position"`
	// Marker names the style of the ellipsis glyph. Empty reuses the
	// segment's tag.
	Marker string `toml:"marker" yaml:"marker"`
}

// StyleSpec describes one named style. Colors are "#rrggbb", "#rgb", a
// palette index "0".."255", a basic color name ("red") or its bright form
// ("bright-red").
type StyleSpec struct {
	Fg             string `toml:"fg" yaml:"fg"`
	Bg             string `toml:"bg" yaml:"bg"`
	Underline      string `toml:"underline" yaml:"underline"`
	UnderlineColor string `toml:"underline_color" yaml:"underline_color"`
	Bold           bool   `toml:"bold" yaml:"bold"`
	Faint          bool   `toml:"faint" yaml:"faint"`
	Italic         bool   `toml:"italic" yaml:"italic"`
	Strikethrough  bool   `toml:"strikethrough" yaml:"strikethrough"`
	Conceal        bool   `toml:"conceal" yaml:"conceal"`
	Blink          string `toml:"blink" yaml:"blink"`
	Link           string `toml:"link" yaml:"link"`
}

// Default is an 80-column true color profile that wraps at grapheme
// boundaries.
func Default() Profile {
	return Profile{
		Width:     80,
		Height:    render.DefaultHeight,
		Ambiguity: grapheme.Standard.String(),
		Storage:   render.StorageGrow.String(),
		Terminal: Terminal{
			Color:          ansi.TrueColorSupport.String(),
			UnderlineColor: ansi.UnderlineColorTrue.String(),
		},
		Overflow: Overflow{
			Mode:     text.GraphemeWrap.String(),
			Position: text.Right.String(),
		},
	}
}

// FieldError reports a profile value that does not parse.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("config: %s: %v", e.Field, e.Err) }
func (e *FieldError) Unwrap() error { return e.Err }

// ParseError reports a file that is not valid TOML or YAML.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config: parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("config: parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a profile file. Files ending in .yaml or .yml are YAML,
// everything else is TOML. The result is validated.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var p Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = parseYAML(path, data)
	default:
		p, err = parseTOML(path, data)
	}
	if err != nil {
		return Profile{}, err
	}
	return p, p.Validate()
}

// Parse decodes a TOML profile over Default. Unknown keys are errors.
func Parse(data []byte) (Profile, error) {
	p, err := parseTOML("<toml>", data)
	if err != nil {
		return Profile{}, err
	}
	return p, p.Validate()
}

// ParseYAML decodes a YAML profile over Default. Unknown keys are errors.
func ParseYAML(data []byte) (Profile, error) {
	p, err := parseYAML("<yaml>", data)
	if err != nil {
		return Profile{}, err
	}
	return p, p.Validate()
}

func parseTOML(source string, data []byte) (Profile, error) {
	p := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		perr := &ParseError{Path: source, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Profile{}, perr
	}
	return p, nil
}

func parseYAML(source string, data []byte) (Profile, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, &ParseError{Path: source, Err: err}
	}
	return p, nil
}

// Validate checks every enum field and style. The first failure is returned
// as a *FieldError.
func (p Profile) Validate() error {
	if _, err := p.Options(); err != nil {
		return err
	}
	if _, err := p.Capabilities(); err != nil {
		return err
	}
	if _, err := p.StyleMap(); err != nil {
		return err
	}
	_, err := p.OverflowPolicy()
	return err
}

// Options returns the render options the profile describes.
func (p Profile) Options() (render.Options, error) {
	if p.Width < 0 {
		return render.Options{}, &FieldError{Field: "width", Err: fmt.Errorf("negative width %d", p.Width)}
	}
	if p.Height < 0 {
		return render.Options{}, &FieldError{Field: "height", Err: fmt.Errorf("negative height %d", p.Height)}
	}
	policy, err := grapheme.ParseAmbiguityPolicy(p.Ambiguity)
	if err != nil {
		return render.Options{}, &FieldError{Field: "ambiguity", Err: err}
	}
	storage, err := render.ParseStorage(p.Storage)
	if err != nil {
		return render.Options{}, &FieldError{Field: "storage", Err: err}
	}
	return render.Options{Width: p.Width, Height: p.Height, Policy: policy, Storage: storage}, nil
}

// Capabilities returns the terminal description. An empty color tier means
// no color.
func (p Profile) Capabilities() (ansi.Capabilities, error) {
	caps := ansi.Capabilities{Hyperlinks: p.Terminal.Hyperlinks}
	if p.Terminal.Color != "" {
		c, err := ansi.ParseColorSupport(p.Terminal.Color)
		if err != nil {
			return ansi.Capabilities{}, &FieldError{Field: "terminal.color", Err: err}
		}
		caps.Color = c
	}
	if p.Terminal.UnderlineColor != "" {
		c, err := ansi.ParseUnderlineColorSupport(p.Terminal.UnderlineColor)
		if err != nil {
			return ansi.Capabilities{}, &FieldError{Field: "terminal.underline_color", Err: err}
		}
		caps.UnderlineColor = c
	}
	return caps, nil
}

// OverflowPolicy returns the default overflow of the profile. A marker name
// must refer to an entry of Styles.
func (p Profile) OverflowPolicy() (text.Overflow, error) {
	var o text.Overflow
	if p.Overflow.Mode != "" {
		m, err := text.ParseMode(p.Overflow.Mode)
		if err != nil {
			return text.Overflow{}, &FieldError{Field: "overflow.mode", Err: err}
		}
		o.Mode = m
	}
	if p.Overflow.Position != "" {
		pos, err := text.ParseEllipsisPosition(p.Overflow.Position)
		if err != nil {
			return text.Overflow{}, &FieldError{Field: "overflow.position", Err: err}
		}
		o.Position = pos
	}
	if name := p.Overflow.Marker; name != "" {
		st, err := p.Style(name)
		if err != nil {
			return text.Overflow{}, &FieldError{Field: "overflow.marker", Err: err}
		}
		o.MarkerTag = st
	}
	return o, nil
}

// Style returns the named style.
func (p Profile) Style(name string) (ansi.Style, error) {
	spec, ok := p.Styles[name]
	if !ok {
		return ansi.Style{}, fmt.Errorf("unknown style %q", name)
	}
	st, err := spec.Style()
	if err != nil {
		var ferr *FieldError
		if errors.As(err, &ferr) {
			ferr.Field = "styles." + name + "." + ferr.Field
			return ansi.Style{}, ferr
		}
		return ansi.Style{}, err
	}
	return st, nil
}

// StyleMap converts every named style.
func (p Profile) StyleMap() (map[string]ansi.Style, error) {
	out := make(map[string]ansi.Style, len(p.Styles))
	for _, name := range slices.Sorted(maps.Keys(p.Styles)) {
		st, err := p.Style(name)
		if err != nil {
			return nil, err
		}
		out[name] = st
	}
	return out, nil
}
