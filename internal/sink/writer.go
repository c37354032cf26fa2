package sink

import (
	"io"
	"strings"
)

// DefaultNewline is the line terminator used by Writer unless overridden.
const DefaultNewline = "\r\n"

// Writer is a Sink backed by an io.Writer.
type Writer struct {
	w       io.Writer
	newline string
	n       int64
	scratch []byte
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithNewline sets the line terminator written by WriteNewline.
func WithNewline(nl string) WriterOption {
	return func(w *Writer) {
		w.newline = nl
	}
}

// NewWriter returns a Sink writing to w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	sw := &Writer{
		w:       w,
		newline: DefaultNewline,
	}
	for _, opt := range opts {
		opt(sw)
	}
	return sw
}

// WriteBytes implements Sink.
func (w *Writer) WriteBytes(p []byte) error {
	n, err := w.w.Write(p)
	w.n += int64(n)
	return err
}

// WriteText implements Sink.
func (w *Writer) WriteText(s string) error {
	n, err := io.WriteString(w.w, s)
	w.n += int64(n)
	return err
}

// WriteInt implements Sink.
func (w *Writer) WriteInt(v int64, base Base) error {
	var err error
	w.scratch, err = AppendInt(w.scratch[:0], v, base)
	if err != nil {
		return err
	}
	return w.WriteBytes(w.scratch)
}

// WriteNewline implements Sink.
func (w *Writer) WriteNewline() error {
	return w.WriteText(w.newline)
}

// Written returns the number of bytes successfully written so far.
func (w *Writer) Written() int64 {
	return w.n
}

// Buffer is an in-memory Sink. The zero value is ready to use and
// terminates lines with "\n".
type Buffer struct {
	b strings.Builder
}

// WriteBytes implements Sink.
func (b *Buffer) WriteBytes(p []byte) error {
	b.b.Write(p)
	return nil
}

// WriteText implements Sink.
func (b *Buffer) WriteText(s string) error {
	b.b.WriteString(s)
	return nil
}

// WriteInt implements Sink.
func (b *Buffer) WriteInt(v int64, base Base) error {
	var scratch [64]byte
	out, err := AppendInt(scratch[:0], v, base)
	if err != nil {
		return err
	}
	b.b.Write(out)
	return nil
}

// WriteNewline implements Sink.
func (b *Buffer) WriteNewline() error {
	b.b.WriteByte('\n')
	return nil
}

// String returns everything written since the last Reset.
func (b *Buffer) String() string {
	return b.b.String()
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	return b.b.Len()
}

// Reset discards the buffered output.
func (b *Buffer) Reset() {
	b.b.Reset()
}
