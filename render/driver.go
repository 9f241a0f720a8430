package render

import (
	"context"
	"strings"
)

// Render runs r page by page and streams the cells into sink. Finalize is
// always called; the first error wins.
func Render(r Renderable, sink Sink, opts Options) error {
	return RenderContext(context.Background(), r, sink, opts)
}

// RenderContext is like Render but stops between rows and pages once ctx is
// done.
func RenderContext(ctx context.Context, r Renderable, sink Sink, opts Options) error {
	return RenderBuffer(ctx, r, sink, opts.NewBuffer())
}

// RenderBuffer drives r over a caller-owned buffer.
func RenderBuffer(ctx context.Context, r Renderable, sink Sink, buf PageBuffer) error {
	err := drive(ctx, r, sink, buf)
	if ferr := sink.Finalize(); err == nil {
		err = ferr
	}
	return err
}

// RenderString renders r as plain text.
func RenderString(r Renderable, opts Options) (string, error) {
	var sb strings.Builder
	err := Render(r, NewPlaintext(&sb), opts)
	return sb.String(), err
}

func drive(ctx context.Context, r Renderable, sink Sink, buf PageBuffer) error {
	for offset := 0; ; offset += buf.Height() {
		if err := ctx.Err(); err != nil {
			return &Error{Kind: KindCanceled, Err: err}
		}
		buf.Reset(offset)
		if err := r.Render(NewCanvas(buf, Position{})); err != nil {
			return renderError(err)
		}
		if buf.Empty() {
			return nil
		}
		more, err := emitPage(ctx, buf, sink)
		if err != nil || !more {
			return err
		}
		if buf.Height() == 0 {
			return nil
		}
	}
}

// emitPage linearizes the rows of the current window that lie at or above
// the highest targeted line.
func emitPage(ctx context.Context, buf PageBuffer, sink Sink) (bool, error) {
	rows := buf.Highest() - buf.Offset() + 1
	if h := buf.Height(); h > 0 {
		rows = min(rows, h)
	}
	width := buf.Width()
	policy := buf.Policy()
	for row := range rows {
		if err := ctx.Err(); err != nil {
			return false, &Error{Kind: KindCanceled, Err: err}
		}
		for col := 0; col < width; {
			cell, ok := buf.Cell(row, col)
			if !ok {
				if !sink.Gap() {
					return false, nil
				}
				col++
				continue
			}
			if !sink.Append(cell.Grapheme, cell.Tag) {
				return false, nil
			}
			col += max(cell.Grapheme.Width(policy), 1)
		}
		if !sink.FinalizeLine() {
			return false, nil
		}
	}
	return true, nil
}
