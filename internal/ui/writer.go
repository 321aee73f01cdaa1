package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/amicly/appearance/internal/domain"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer for stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterTo creates a Writer for out.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
