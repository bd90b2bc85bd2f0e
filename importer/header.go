package importer

import (
	"kanadrill/config"
	"kanadrill/internal/textutil"
)

// Field names a logical vocabulary column.
type Field int

const (
	FieldSourceTerm Field = iota
	FieldTargetTerm
	FieldPronunciation
	FieldExample
)

var fieldOrder = []Field{FieldSourceTerm, FieldTargetTerm, FieldPronunciation, FieldExample}

func (f Field) String() string {
	switch f {
	case FieldSourceTerm:
		return "sourceTerm"
	case FieldTargetTerm:
		return "targetTerm"
	case FieldPronunciation:
		return "pronunciation"
	case FieldExample:
		return "example"
	default:
		return "unknown"
	}
}

// Unmapped marks an optional field without a column.
const Unmapped = -1

// ColumnMapping associates each logical field with a zero-based column index.
type ColumnMapping struct {
	HasHeader     bool
	SourceTerm    int
	TargetTerm    int
	Pronunciation int
	Example       int
}

func (m ColumnMapping) Column(field Field) int {
	switch field {
	case FieldSourceTerm:
		return m.SourceTerm
	case FieldTargetTerm:
		return m.TargetTerm
	case FieldPronunciation:
		return m.Pronunciation
	case FieldExample:
		return m.Example
	default:
		return Unmapped
	}
}

func (m *ColumnMapping) set(field Field, col int) {
	switch field {
	case FieldSourceTerm:
		m.SourceTerm = col
	case FieldTargetTerm:
		m.TargetTerm = col
	case FieldPronunciation:
		m.Pronunciation = col
	case FieldExample:
		m.Example = col
	}
}

// HeaderSynonyms lists, per field, the labels that identify its column.
type HeaderSynonyms struct {
	SourceTerm    []string
	TargetTerm    []string
	Pronunciation []string
	Example       []string
}

// DefaultSynonyms returns fresh copies of the built-in header labels.
func DefaultSynonyms() HeaderSynonyms {
	return HeaderSynonyms{
		SourceTerm:    append([]string(nil), config.DefaultSourceHeaders...),
		TargetTerm:    append([]string(nil), config.DefaultTargetHeaders...),
		Pronunciation: append([]string(nil), config.DefaultPronunciationHeaders...),
		Example:       append([]string(nil), config.DefaultExampleHeaders...),
	}
}

func (s HeaderSynonyms) forField(field Field) []string {
	switch field {
	case FieldSourceTerm:
		return s.SourceTerm
	case FieldTargetTerm:
		return s.TargetTerm
	case FieldPronunciation:
		return s.Pronunciation
	case FieldExample:
		return s.Example
	default:
		return nil
	}
}

// withDefaults fills every field that has no labels with the built-in ones.
func (s HeaderSynonyms) withDefaults() HeaderSynonyms {
	defaults := DefaultSynonyms()
	if len(s.SourceTerm) == 0 {
		s.SourceTerm = defaults.SourceTerm
	}
	if len(s.TargetTerm) == 0 {
		s.TargetTerm = defaults.TargetTerm
	}
	if len(s.Pronunciation) == 0 {
		s.Pronunciation = defaults.Pronunciation
	}
	if len(s.Example) == 0 {
		s.Example = defaults.Example
	}
	return s
}

// DetectColumns decides whether the first row is a header and builds the
// column mapping. Without a header the positional layout term, translation,
// pronunciation, example is assumed.
func DetectColumns(rows [][]Cell, synonyms HeaderSynonyms) (ColumnMapping, error) {
	synonyms = synonyms.withDefaults()

	columns := columnCount(rows)
	if columns < 2 {
		return ColumnMapping{}, &SchemaError{Columns: columns, Reason: "fewer than two columns"}
	}

	if len(rows) > 0 && isHeaderRow(rows[0], synonyms) {
		return mapHeader(rows[0], columns, synonyms)
	}
	return positionalMapping(columns), nil
}

// isHeaderRow requires every non-empty cell to be text and at least one
// cell to name the source or target language.
func isHeaderRow(row []Cell, synonyms HeaderSynonyms) bool {
	labelled := false
	for _, cell := range row {
		if cell.IsEmpty() {
			continue
		}
		if cell.Kind != CellText {
			return false
		}
		if textutil.ContainsLabel(cell.Text, synonyms.SourceTerm) || textutil.ContainsLabel(cell.Text, synonyms.TargetTerm) {
			labelled = true
		}
	}
	return labelled
}

func mapHeader(header []Cell, columns int, synonyms HeaderSynonyms) (ColumnMapping, error) {
	mapping := ColumnMapping{
		HasHeader:     true,
		SourceTerm:    Unmapped,
		TargetTerm:    Unmapped,
		Pronunciation: Unmapped,
		Example:       Unmapped,
	}

	unmatched := make([]int, 0, len(header))
	for col, cell := range header {
		if cell.IsEmpty() {
			continue
		}

		matched := false
		for _, field := range fieldOrder {
			if !textutil.ContainsLabel(cell.Text, synonyms.forField(field)) {
				continue
			}
			matched = true
			if mapping.Column(field) == Unmapped {
				mapping.set(field, col)
				break
			}
		}
		if !matched {
			unmatched = append(unmatched, col)
		}
	}

	for _, col := range unmatched {
		switch {
		case mapping.SourceTerm == Unmapped:
			mapping.SourceTerm = col
		case mapping.TargetTerm == Unmapped:
			mapping.TargetTerm = col
		}
	}

	if mapping.SourceTerm == Unmapped {
		return ColumnMapping{}, &SchemaError{Columns: columns, Reason: "header row has no term column"}
	}
	if mapping.TargetTerm == Unmapped {
		return ColumnMapping{}, &SchemaError{Columns: columns, Reason: "header row has no translation column"}
	}
	return mapping, nil
}

func positionalMapping(columns int) ColumnMapping {
	mapping := ColumnMapping{
		SourceTerm:    0,
		TargetTerm:    1,
		Pronunciation: Unmapped,
		Example:       Unmapped,
	}
	if columns > 2 {
		mapping.Pronunciation = 2
	}
	if columns > 3 {
		mapping.Example = 3
	}
	return mapping
}
