package importer

import (
	"errors"
	"testing"
)

func TestDetectColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows       [][]Cell
		wantHeader bool
		want       ColumnMapping
	}{
		{
			name:       "swapped header order",
			rows:       [][]Cell{textRow("Chinese", "Japanese"), textRow("猫", "猫")},
			wantHeader: true,
			want:       ColumnMapping{HasHeader: true, SourceTerm: 1, TargetTerm: 0, Pronunciation: Unmapped, Example: Unmapped},
		},
		{
			name:       "unmatched label fills next required slot",
			rows:       [][]Cell{textRow("日语", "meaning"), textRow("猫", "cat")},
			wantHeader: true,
			want:       ColumnMapping{HasHeader: true, SourceTerm: 0, TargetTerm: 1, Pronunciation: Unmapped, Example: Unmapped},
		},
		{
			name:       "duplicate source label first wins",
			rows:       [][]Cell{textRow("JP", "jp (kana)", "CN"), textRow("猫", "ねこ", "猫")},
			wantHeader: true,
			want:       ColumnMapping{HasHeader: true, SourceTerm: 0, TargetTerm: 2, Pronunciation: 1, Example: Unmapped},
		},
		{
			name:       "full width label",
			rows:       [][]Cell{textRow("ＪＰ", "ＣＮ"), textRow("猫", "猫")},
			wantHeader: true,
			want:       ColumnMapping{HasHeader: true, SourceTerm: 0, TargetTerm: 1, Pronunciation: Unmapped, Example: Unmapped},
		},
		{
			name:       "numeric cell disqualifies header",
			rows:       [][]Cell{{TextCell("日语"), NumberCell(1)}, textRow("猫", "cat")},
			wantHeader: false,
			want:       ColumnMapping{SourceTerm: 0, TargetTerm: 1, Pronunciation: Unmapped, Example: Unmapped},
		},
		{
			name:       "positional optional columns",
			rows:       [][]Cell{textRow("猫", "cat", "ねこ", "猫がいる")},
			wantHeader: false,
			want:       ColumnMapping{SourceTerm: 0, TargetTerm: 1, Pronunciation: 2, Example: 3},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := DetectColumns(tc.rows, HeaderSynonyms{})
			if err != nil {
				t.Fatalf("detect columns: %v", err)
			}
			if got.HasHeader != tc.wantHeader {
				t.Fatalf("HasHeader = %v, want %v", got.HasHeader, tc.wantHeader)
			}
			if got != tc.want {
				t.Fatalf("unexpected mapping: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDetectColumns_HeaderWithoutTranslationColumn(t *testing.T) {
	t.Parallel()

	rows := [][]Cell{textRow("日语", "发音"), textRow("猫", "ねこ")}
	_, err := DetectColumns(rows, HeaderSynonyms{})
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestDetectColumns_CustomSynonyms(t *testing.T) {
	t.Parallel()

	synonyms := HeaderSynonyms{
		SourceTerm: []string{"kotoba"},
		TargetTerm: []string{"imi"},
	}
	rows := [][]Cell{textRow("imi", "kotoba"), textRow("cat", "猫")}

	got, err := DetectColumns(rows, synonyms)
	if err != nil {
		t.Fatalf("detect columns: %v", err)
	}
	if !got.HasHeader || got.SourceTerm != 1 || got.TargetTerm != 0 {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}

func TestDetectColumns_PartialSynonymsKeepDefaults(t *testing.T) {
	t.Parallel()

	synonyms := HeaderSynonyms{SourceTerm: []string{"kotoba"}}
	rows := [][]Cell{textRow("中文", "kotoba", "读音"), textRow("cat", "猫", "ねこ")}

	got, err := DetectColumns(rows, synonyms)
	if err != nil {
		t.Fatalf("detect columns: %v", err)
	}
	if !got.HasHeader || got.SourceTerm != 1 || got.TargetTerm != 0 {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got.Pronunciation != Unmapped {
		t.Fatalf("expected no pronunciation column, got %d", got.Pronunciation)
	}
}

func TestDefaultSynonyms_ReturnsCopies(t *testing.T) {
	t.Parallel()

	first := DefaultSynonyms()
	first.TargetTerm[0] = "changed"

	if got := DefaultSynonyms().TargetTerm[0]; got == "changed" {
		t.Fatal("mutating returned synonyms changed the built-in labels")
	}
}

func TestCellString(t *testing.T) {
	t.Parallel()

	if got := NumberCell(10).String(); got != "10" {
		t.Fatalf("expected %q, got %q", "10", got)
	}
	if got := NumberCell(2.5).String(); got != "2.5" {
		t.Fatalf("expected %q, got %q", "2.5", got)
	}
	if !TextCell("   ").IsEmpty() || !(Cell{}).IsEmpty() {
		t.Fatalf("expected whitespace and empty cells to be empty")
	}
	if cell := parseFormattedCell("NaN"); cell.Kind != CellText {
		t.Fatalf("expected NaN to stay text, got kind %d", cell.Kind)
	}
	if cell := parseFormattedCell(" 42 "); cell.Kind != CellNumber || cell.Number != 42 {
		t.Fatalf("expected number cell, got %+v", cell)
	}
}
