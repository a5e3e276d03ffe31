package console

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads newline-terminated answers from an input stream.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r for line-at-a-time reads.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. A final line
// without a trailing newline is returned before io.EOF.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
