// Package inkless renders styled, Unicode-aware text into fixed-width pages
// and streams the result to a terminal.
//
// The pipeline is split across packages:
//
//   - grapheme: grapheme clusters and their column width
//   - render: positions, page buffers, canvases, themes and the paging driver
//   - text: styled text with clip, wrap, word-wrap and ellipsis layouts
//   - ansi: styles and the escape-code encoder
//   - screen: painting into a tcell screen
//   - config: render profiles from TOML or YAML
//
// This package wires the common case together:
//
//	t := text.Of("Hello, ").
//		WithTagged("world", ansi.NewStyle().Bold().Fg(ansi.Green)).
//		Ellipsis()
//	err := inkless.Write(os.Stdout, t, ansi.Full, render.Options{Width: 40})
package inkless
