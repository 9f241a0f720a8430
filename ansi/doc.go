// Package ansi encodes rendered cells as a terminal control stream.
//
// Sink is a render.Sink that emits SGR and OSC 8 sequences only when the
// resolved style of a cell differs from the previous cell. Styles are
// resolved against Capabilities first, so two tags that degrade to the same
// output on a given terminal produce no escape codes between them.
//
// Tags are read as Style values, anything implementing Styler, or
// lipgloss.Style values, optionally behind render.Wrapper chains. Every
// other tag renders unstyled.
package ansi
