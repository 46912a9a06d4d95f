package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/vane-tools/vanectl/internal/domain"
)

// Writer implements domain.OutputWriter. Writes are serialized so that
// command callbacks and the dispatcher can share one writer.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a Writer on stdout.
func NewWriter() *Writer {
	return NewWriterTo(os.Stdout)
}

// NewWriterTo creates a Writer on out.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w, args...)
}

// Buffer is an OutputWriter that keeps everything written to it. The
// console uses it to collect a command's output before appending it to the
// scrollback.
type Buffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *Buffer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(b, format, args...)
}

func (b *Buffer) Println(args ...any) (int, error) {
	return fmt.Fprintln(b, args...)
}

// Drain returns the buffered text and resets the buffer.
func (b *Buffer) Drain() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.sb.String()
	b.sb.Reset()
	return s
}

var (
	_ domain.OutputWriter = (*Writer)(nil)
	_ domain.OutputWriter = (*Buffer)(nil)
)
