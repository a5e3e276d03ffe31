package session

// LineReader supplies one line of user input per call. io.EOF marks input
// that will never produce another line; any other error is retried.
type LineReader interface {
	ReadLine() (string, error)
}

// LineWriter displays one line of text.
type LineWriter interface {
	WriteLine(text string)
}
