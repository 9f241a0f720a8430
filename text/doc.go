// Package text lays out styled strings on a render.Canvas.
//
// A Text is an ordered list of segments: tagged literal strings and nested
// renderables. Literal segments are painted according to the Text's Overflow
// policy; every '\n' moves to the next line at the column the Text started
// at.
package text
