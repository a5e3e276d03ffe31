package question

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrFieldCount indicates a record that is not a question,answer pair.
var ErrFieldCount = errors.New("expected 2 fields (question,answer)")

// ParseError reports a malformed record in a question file.
type ParseError struct {
	Format string
	Line   int
	Err    error
}

// Error returns the line-qualified parse failure.
func (err *ParseError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", err.Format, err.Line, err.Err)
	}
	return fmt.Sprintf("parse %s: %v", err.Format, err.Err)
}

// Unwrap exposes the underlying cause.
func (err *ParseError) Unwrap() error {
	return err.Err
}

// ParseCSV reads question,answer records. A leading "question,answer" header
// row is skipped when present.
func ParseCSV(data []byte) ([]Pair, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	pairs := []Pair{}
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return pairs, nil
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Format: "csv", Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, &ParseError{Format: "csv", Err: err}
		}
		line, _ := reader.FieldPos(0)
		if len(record) != 2 {
			return nil, &ParseError{Format: "csv", Line: line, Err: fmt.Errorf("%w, got %d", ErrFieldCount, len(record))}
		}
		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}
		pairs = append(pairs, Pair{Question: record[0], Answer: record[1]})
	}
}

func isHeader(record []string) bool {
	return NormalizeAnswerText(record[0]) == "question" && NormalizeAnswerText(record[1]) == "answer"
}
