package render

import (
	"errors"
	"fmt"
)

// ErrOverflow matches errors raised by content that refuses to overflow its
// line.
var ErrOverflow = errors.New("text overflows line")

type ErrorKind uint8

const (
	// KindWriter wraps a failure of the destination writer.
	KindWriter ErrorKind = iota + 1
	// KindRender is a failure reported by a Renderable.
	KindRender
	// KindOverflow is raised by the error overflow policy.
	KindOverflow
	// KindCanceled means the render context was done.
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindWriter:
		return "writer"
	case KindRender:
		return "render"
	case KindOverflow:
		return "overflow"
	case KindCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error is the error type returned by Render.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("render %s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("render %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("render %s: %s", e.Kind, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// WriterError wraps err as a KindWriter error.
func WriterError(err error) *Error {
	return &Error{Kind: KindWriter, Err: err}
}

// OverflowError reports that content did not fit its line.
func OverflowError(format string, args ...any) *Error {
	return &Error{Kind: KindOverflow, Msg: fmt.Sprintf(format, args...), Err: ErrOverflow}
}

func renderError(err error) error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return err
	}
	return &Error{Kind: KindRender, Err: err}
}
