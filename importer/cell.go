package importer

import (
	"strconv"
	"strings"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one scalar worksheet value as delivered by a WorkbookReader.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

func TextCell(value string) Cell {
	if value == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: value}
}

func NumberCell(value float64) Cell {
	return Cell{Kind: CellNumber, Number: value}
}

// String returns the textual form of the cell; numbers use their shortest
// decimal representation so 10 becomes "10" and 2.5 becomes "2.5".
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

func (c Cell) IsEmpty() bool {
	return strings.TrimSpace(c.String()) == ""
}

// parseFormattedCell classifies a formatted value whose storage type is
// unknown: anything that parses as a finite float is a number.
func parseFormattedCell(value string) Cell {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Cell{}
	}
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil && !isSpecialFloat(trimmed) {
		return NumberCell(number)
	}
	return TextCell(value)
}

// isSpecialFloat reports spellings ParseFloat accepts that are words, not numbers.
func isSpecialFloat(value string) bool {
	lowered := strings.ToLower(strings.TrimLeft(value, "+-"))
	return lowered == "inf" || lowered == "infinity" || lowered == "nan"
}

func cellAt(row []Cell, col int) Cell {
	if col < 0 || col >= len(row) {
		return Cell{}
	}
	return row[col]
}

func columnCount(rows [][]Cell) int {
	widest := 0
	for _, row := range rows {
		last := -1
		for col, cell := range row {
			if !cell.IsEmpty() {
				last = col
			}
		}
		if last+1 > widest {
			widest = last + 1
		}
	}
	return widest
}

func rowIsEmpty(row []Cell) bool {
	for _, cell := range row {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}

func trimTrailingEmptyRows(rows [][]Cell) [][]Cell {
	end := len(rows)
	for end > 0 && rowIsEmpty(rows[end-1]) {
		end--
	}
	return rows[:end]
}
