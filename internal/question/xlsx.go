package question

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ParseXLSX reads question,answer rows from the first worksheet. Blank rows
// are skipped and a leading header row is dropped, as in ParseCSV.
func ParseXLSX(data []byte) ([]Pair, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Format: "xlsx", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Format: "xlsx", Err: ErrNoSheets}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Format: "xlsx", Err: err}
	}

	pairs := []Pair{}
	first := true
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(row) > 2 {
			return nil, &ParseError{Format: "xlsx", Line: i + 1, Err: fmt.Errorf("%w, got %d", ErrFieldCount, len(row))}
		}
		// Trailing empty cells are trimmed by GetRows.
		record := []string{row[0], ""}
		if len(row) == 2 {
			record[1] = row[1]
		}
		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}
		pairs = append(pairs, Pair{Question: record[0], Answer: record[1]})
	}
	return pairs, nil
}
