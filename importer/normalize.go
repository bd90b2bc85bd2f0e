package importer

import (
	"strings"

	"kanadrill/vocab"
)

// NormalizeStats counts how the data rows of a sheet were handled.
type NormalizeStats struct {
	RowsScanned int
	RowsMapped  int
	RowsBlank   int
	RowsPartial int
}

// NormalizeRows converts every data row into a vocabulary entry. Blank rows
// and rows missing either term are skipped; the call fails only when no row
// yields an entry. IDs start at 1 and are unique within the returned list.
func NormalizeRows(rows [][]Cell, mapping ColumnMapping) ([]vocab.Entry, NormalizeStats, error) {
	var stats NormalizeStats

	start := 0
	if mapping.HasHeader {
		start = 1
	}
	if start > len(rows) {
		start = len(rows)
	}

	entries := make([]vocab.Entry, 0, len(rows)-start)
	for _, row := range rows[start:] {
		stats.RowsScanned++

		source := cellText(row, mapping.SourceTerm)
		target := cellText(row, mapping.TargetTerm)
		if source == "" && target == "" {
			stats.RowsBlank++
			continue
		}
		if source == "" || target == "" {
			stats.RowsPartial++
			continue
		}

		entries = append(entries, vocab.Entry{
			ID:            len(entries) + 1,
			SourceTerm:    source,
			TargetTerm:    target,
			Pronunciation: optionalText(row, mapping.Pronunciation),
			Example:       optionalText(row, mapping.Example),
		})
	}
	stats.RowsMapped = len(entries)

	if len(entries) == 0 {
		return nil, stats, &EmptyResultError{RowsScanned: stats.RowsScanned}
	}
	return entries, stats, nil
}

func cellText(row []Cell, col int) string {
	if col == Unmapped {
		return ""
	}
	return strings.TrimSpace(cellAt(row, col).String())
}

func optionalText(row []Cell, col int) *string {
	value := cellText(row, col)
	if value == "" {
		return nil
	}
	return &value
}
