// Package screen paints rendered pages into a tcell.Screen.
//
// Sink is a render.Sink that places each cell at its row and column relative
// to an origin on the screen. Tags are converted with ansi.StyleOf, so the
// same tags drive both the escape-code encoder and full-screen output.
package screen
