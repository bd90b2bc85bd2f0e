package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"kanadrill/drill"
)

//go:embed templates/*.html
var templateFS embed.FS

type HTMLWriter struct {
	Layout Layout
}

type htmlSheet struct {
	drill.Sheet
	Caption string
	Answers bool
	Receipt bool
}

func (w *HTMLWriter) Write(path string, sheet drill.Sheet) error {
	var buf bytes.Buffer
	if err := w.Render(&buf, sheet); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write html output %s: %w", path, err)
	}
	return nil
}

// Render executes the sheet template into buf.
func (w *HTMLWriter) Render(buf *bytes.Buffer, sheet drill.Sheet) error {
	tmpl, err := template.New("base.html").Funcs(template.FuncMap{
		"fmtTime": func(value time.Time) string {
			return value.Format("2006-01-02 15:04")
		},
	}).ParseFS(templateFS, "templates/base.html", "templates/sheet.html")
	if err != nil {
		return fmt.Errorf("parse sheet template: %w", err)
	}

	data := htmlSheet{
		Sheet:   sheet,
		Caption: sheet.Direction.Caption(),
		Answers: w.Layout.Answers,
		Receipt: normalizeFormat(w.Layout.PageWidth) != PageWidthA4,
	}
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("render sheet template: %w", err)
	}
	return nil
}
