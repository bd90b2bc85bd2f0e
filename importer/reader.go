package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedExtension is returned when a file does not carry one of the
// accepted workbook suffixes.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// WorkbookReader yields the first worksheet of a workbook as rows of cells.
type WorkbookReader interface {
	Read(path string) ([][]Cell, error)
}

func SupportedExtensions() []string {
	return []string{".xlsx", ".xls"}
}

// ReaderForPath selects a reader by file suffix only; the content is not sniffed.
func ReaderForPath(path string) (WorkbookReader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return &ExcelReader{}, nil
	case ".xls":
		return &XLSReader{}, nil
	default:
		return nil, fmt.Errorf(
			"%w: %s (upload an Excel file: %s)",
			ErrUnsupportedExtension,
			filepath.Base(path),
			strings.Join(SupportedExtensions(), " or "),
		)
	}
}
