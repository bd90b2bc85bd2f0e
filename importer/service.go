package importer

import (
	"fmt"

	"kanadrill/config"
	"kanadrill/vocab"
)

// Options tune a single parse. The zero value uses the built-in header
// synonyms and disables the partial-row advisory.
type Options struct {
	Synonyms            HeaderSynonyms
	PartialWarningRatio float64
}

type Result struct {
	Path        string
	Mapping     ColumnMapping
	RowsScanned int
	RowsMapped  int
	RowsBlank   int
	RowsPartial int
	Entries     []vocab.Entry
	Warnings    []string
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Synonyms: HeaderSynonyms{
			SourceTerm:    cfg.Import.Headers.Source,
			TargetTerm:    cfg.Import.Headers.Target,
			Pronunciation: cfg.Import.Headers.Pronunciation,
			Example:       cfg.Import.Headers.Example,
		},
		PartialWarningRatio: cfg.Import.PartialWarningRatio,
	}
}

// Parse reads the workbook at path and returns its vocabulary entries. The
// result is all-or-nothing: on error no entries are returned.
func Parse(path string, options Options) (*Result, error) {
	reader, err := ReaderForPath(path)
	if err != nil {
		return nil, err
	}

	rows, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	result, err := ParseRows(rows, options)
	if err != nil {
		return nil, err
	}
	result.Path = path
	return result, nil
}

// ParseRows runs header detection and row normalization on rows that were
// already read from a worksheet.
func ParseRows(rows [][]Cell, options Options) (*Result, error) {
	mapping, err := DetectColumns(rows, options.Synonyms)
	if err != nil {
		return nil, err
	}

	entries, stats, err := NormalizeRows(rows, mapping)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Mapping:     mapping,
		RowsScanned: stats.RowsScanned,
		RowsMapped:  stats.RowsMapped,
		RowsBlank:   stats.RowsBlank,
		RowsPartial: stats.RowsPartial,
		Entries:     entries,
	}
	if warning, ok := partialRowWarning(stats, options.PartialWarningRatio); ok {
		result.Warnings = append(result.Warnings, warning)
	}
	return result, nil
}

func partialRowWarning(stats NormalizeStats, ratio float64) (string, bool) {
	if ratio <= 0 || stats.RowsScanned == 0 || stats.RowsPartial == 0 {
		return "", false
	}
	if float64(stats.RowsPartial)/float64(stats.RowsScanned) <= ratio {
		return "", false
	}
	return fmt.Sprintf(
		"%d of %d rows have only a term or only a translation and were skipped",
		stats.RowsPartial,
		stats.RowsScanned,
	), true
}
