package importer

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
)

// XLSReader reads legacy BIFF workbooks (.xls). The format only exposes
// formatted cell text, so cells are classified by parsing that text.
type XLSReader struct {
	// Charset used for 8-bit strings in BIFF5 files; BIFF8 strings are UTF-16.
	Charset string
}

func (r *XLSReader) Read(path string) (rows [][]Cell, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open xls file %s: %w", path, err)
	}
	defer file.Close()

	charset := r.Charset
	if charset == "" {
		charset = "utf-8"
	}

	// The decoder panics on some truncated streams.
	defer func() {
		if recovered := recover(); recovered != nil {
			rows = nil
			err = &FormatError{Path: path, Err: fmt.Errorf("decode xls: %v", recovered)}
		}
	}()

	workbook, err := xls.OpenReader(file, charset)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	if workbook.NumSheets() == 0 {
		return nil, &EmptyDocumentError{Path: path}
	}
	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, &EmptyDocumentError{Path: path}
	}

	out := make([][]Cell, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			out = append(out, nil)
			continue
		}
		cells := make([]Cell, row.LastCol())
		for col := row.FirstCol(); col < row.LastCol(); col++ {
			cells[col] = parseFormattedCell(row.Col(col))
		}
		out = append(out, cells)
	}

	out = trimTrailingEmptyRows(out)
	if len(out) == 0 {
		return nil, &EmptyDocumentError{Path: path, Sheet: sheet.Name}
	}
	return out, nil
}
