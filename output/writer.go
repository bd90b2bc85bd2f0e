package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"kanadrill/drill"
)

const (
	FormatHTML  = "html"
	FormatExcel = "excel"
	FormatCSV   = "csv"

	PageWidthReceipt = "3in"
	PageWidthA4      = "a4"
)

type Writer interface {
	Write(path string, sheet drill.Sheet) error
}

// Layout holds the presentation choices shared by every writer.
type Layout struct {
	Answers   bool
	PageWidth string
}

func DefaultLayout() Layout {
	return Layout{Answers: true, PageWidth: PageWidthReceipt}
}

func WriterForFormat(format string, layout Layout) (Writer, error) {
	switch normalizeFormat(format) {
	case "", FormatHTML, "htm":
		return &HTMLWriter{Layout: layout}, nil
	case "csv":
		return &CSVWriter{Layout: layout}, nil
	case FormatExcel, "xlsx":
		return &ExcelWriter{Layout: layout}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the output format from the file extension and falls
// back to HTML.
func DetectFormat(path string) string {
	switch normalizeFormat(filepath.Ext(path)) {
	case ".xlsx":
		return FormatExcel
	case ".csv":
		return FormatCSV
	default:
		return FormatHTML
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
