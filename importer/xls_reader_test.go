package importer

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParse_LegacyWorkbook(t *testing.T) {
	t.Parallel()

	result, err := Parse(filepath.Join("testdata", "words.xls"), Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !result.Mapping.HasHeader {
		t.Fatal("expected header row to be detected")
	}
	if result.RowsScanned != 4 || result.RowsBlank != 1 {
		t.Fatalf("expected 4 scanned and 1 blank row, got %d and %d", result.RowsScanned, result.RowsBlank)
	}

	tests := []struct {
		id     int
		source string
		target string
	}{
		{id: 1, source: "猫", target: "cat"},
		{id: 2, source: "10", target: "ten"},
		{id: 3, source: "2.5", target: "二点五"},
	}
	if len(result.Entries) != len(tests) {
		t.Fatalf("expected %d entries, got %d", len(tests), len(result.Entries))
	}
	for i, tt := range tests {
		entry := result.Entries[i]
		if entry.ID != tt.id || entry.SourceTerm != tt.source || entry.TargetTerm != tt.target {
			t.Fatalf("entry %d: expected %d %q/%q, got %d %q/%q",
				i, tt.id, tt.source, tt.target, entry.ID, entry.SourceTerm, entry.TargetTerm)
		}
	}
}

func TestXLSReader_NumbersAreNumericCells(t *testing.T) {
	t.Parallel()

	rows, err := (&XLSReader{}).Read(filepath.Join("testdata", "words.xls"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if cell := rows[3][0]; cell.Kind != CellNumber || cell.Number != 10 {
		t.Fatalf("expected number cell 10, got %+v", cell)
	}
	if cell := rows[0][0]; cell.Kind != CellText || cell.Text != "日语" {
		t.Fatalf("expected header text, got %+v", cell)
	}
}

func TestXLSReader_EmptySheetIsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join("testdata", "empty.xls"), Options{})
	var emptyErr *EmptyDocumentError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyDocumentError, got %v", err)
	}
}
