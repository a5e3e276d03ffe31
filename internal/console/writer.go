package console

import (
	"fmt"
	"io"
	"sync"
)

// LineWriter serializes line writes to an underlying writer. Write errors
// are dropped; console output is best effort.
type LineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLineWriter wraps w with a mutex guard.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// WriteLine writes text followed by a newline.
func (l *LineWriter) WriteLine(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.w, text)
}
