// Package render paints graphemes onto a paged character grid and streams the
// result into a Sink.
//
// A Renderable draws through a Canvas, a cursor over a Buffer. The driver
// re-runs the Renderable once per page: each pass sees a window of Height
// lines starting at the page offset, and only cells inside that window are
// stored. Rendering stops once a pass targets nothing at or below the offset.
//
// Coordinates are 0-based (Line, Column) in terminal cells.
package render
