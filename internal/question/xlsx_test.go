package question

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// workbook builds an xlsx payload with rows written to the default sheet.
func workbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseXLSXSkipsHeaderAndBlankRows(t *testing.T) {
	data := workbook(t, [][]string{
		{"Question", "Answer"},
		{"Capital of France?", "Paris"},
		{},
		{"5+5", "10"},
	})
	pairs, err := ParseXLSX(data)
	if err != nil {
		t.Fatalf("parse xlsx: %v", err)
	}
	want := []Pair{{Question: "Capital of France?", Answer: "Paris"}, {Question: "5+5", Answer: "10"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("unexpected pairs %#v", pairs)
	}
}

func TestParseXLSXMissingAnswerCell(t *testing.T) {
	pairs, err := ParseXLSX(workbook(t, [][]string{{"unanswerable"}}))
	if err != nil {
		t.Fatalf("parse xlsx: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Answer != "" {
		t.Fatalf("expected an empty answer, got %#v", pairs)
	}
}

func TestParseXLSXFieldCount(t *testing.T) {
	_, err := ParseXLSX(workbook(t, [][]string{{"1+1", "2"}, {"a", "b", "c"}}))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Line != 2 {
		t.Fatalf("expected line 2 parse error, got %v", err)
	}
	if !errors.Is(err, ErrFieldCount) {
		t.Fatalf("expected field count error, got %v", err)
	}
}

func TestParseXLSXNotAWorkbook(t *testing.T) {
	_, err := ParseXLSX([]byte("question,answer\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Format != "xlsx" {
		t.Fatalf("expected xlsx parse error, got %v", err)
	}
}

func TestLoadFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.xlsx")
	if err := os.WriteFile(path, workbook(t, [][]string{{"2+2", "4"}}), 0o644); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	pairs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Question != "2+2" {
		t.Fatalf("unexpected pairs %#v", pairs)
	}
}
