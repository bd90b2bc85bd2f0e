package importer

import "fmt"

// FormatError reports a file whose bytes cannot be decoded as a workbook.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot read %s as a spreadsheet (check that it is an .xlsx or .xls workbook): %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// EmptyDocumentError reports a workbook whose first worksheet has no rows.
type EmptyDocumentError struct {
	Path  string
	Sheet string
}

func (e *EmptyDocumentError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("workbook %s contains no worksheet rows", e.Path)
	}
	return fmt.Sprintf("worksheet %q in %s contains no rows", e.Sheet, e.Path)
}

// SchemaError reports a decodable sheet that lacks the term and translation columns.
type SchemaError struct {
	Columns int
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"sheet has %d column(s): %s; a term column and a translation column are both required",
		e.Columns,
		e.Reason,
	)
}

// EmptyResultError reports that no scanned row produced a vocabulary entry.
type EmptyResultError struct {
	RowsScanned int
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf(
		"no valid vocabulary rows found after scanning %d row(s); every row needs both a term and a translation",
		e.RowsScanned,
	)
}
