package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"kanadrill/drill"
)

func sampleSheet() drill.Sheet {
	return drill.Sheet{
		ID:          "sheet-1",
		Title:       drill.VocabTitle,
		Direction:   drill.JapaneseToChinese,
		GeneratedAt: time.Date(2025, 4, 2, 8, 30, 0, 0, time.UTC),
		Questions: []drill.Question{
			{Number: 1, Prompt: drill.Prompt{Question: "猫", Answer: "猫咪", QuestionLabel: "日语", AnswerLabel: "中文", Pronunciation: "ねこ", Example: "猫が好き"}},
			{Number: 2, Prompt: drill.Prompt{Question: "犬", Answer: "狗", QuestionLabel: "日语", AnswerLabel: "中文"}},
		},
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   any
	}{
		{format: "", want: &HTMLWriter{}},
		{format: "HTML", want: &HTMLWriter{}},
		{format: "xlsx", want: &ExcelWriter{}},
		{format: " excel ", want: &ExcelWriter{}},
		{format: "csv", want: &CSVWriter{}},
	}
	for _, tc := range tests {
		got, err := WriterForFormat(tc.format, DefaultLayout())
		if err != nil {
			t.Fatalf("format %q: unexpected error: %v", tc.format, err)
		}
		switch tc.want.(type) {
		case *HTMLWriter:
			if _, ok := got.(*HTMLWriter); !ok {
				t.Fatalf("format %q: expected html writer, got %T", tc.format, got)
			}
		case *ExcelWriter:
			if _, ok := got.(*ExcelWriter); !ok {
				t.Fatalf("format %q: expected excel writer, got %T", tc.format, got)
			}
		case *CSVWriter:
			if _, ok := got.(*CSVWriter); !ok {
				t.Fatalf("format %q: expected csv writer, got %T", tc.format, got)
			}
		}
	}

	if _, err := WriterForFormat("pdf", DefaultLayout()); err == nil {
		t.Fatalf("expected error for pdf")
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"sheet.html": FormatHTML,
		"sheet.XLSX": FormatExcel,
		"sheet.csv":  FormatCSV,
		"sheet":      FormatHTML,
	}
	for path, want := range cases {
		if got := DetectFormat(path); got != want {
			t.Fatalf("DetectFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestHTMLWriterRendersQuestionsAndAnswers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := &HTMLWriter{Layout: DefaultLayout()}
	if err := writer.Render(&buf, sampleSheet()); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"日语单词练习",
		"日语 → 中文",
		"问题 1 (日语)",
		"发音: ねこ",
		"例句: 猫が好き",
		"答案",
		"猫 → 猫咪",
		"size: 3in auto",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected html to contain %q", want)
		}
	}
}

func TestHTMLWriterWithoutAnswersOnA4(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sheet.html")
	writer := &HTMLWriter{Layout: Layout{Answers: false, PageWidth: PageWidthA4}}
	if err := writer.Write(path, sampleSheet()); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if strings.Contains(html, "猫 → 猫咪") {
		t.Fatalf("expected answers to be omitted")
	}
	if !strings.Contains(html, "size: A4") {
		t.Fatalf("expected A4 page rule")
	}
}

func TestExcelWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	if err := (&ExcelWriter{Layout: DefaultLayout()}).Write(path, sampleSheet()); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	questions, err := file.GetRows(questionsSheet)
	if err != nil {
		t.Fatalf("read questions: %v", err)
	}
	if len(questions) != 3 || questions[1][2] != "猫" {
		t.Fatalf("unexpected question rows: %v", questions)
	}

	answers, err := file.GetRows(answersSheet)
	if err != nil {
		t.Fatalf("read answers: %v", err)
	}
	if len(answers) != 3 || answers[2][2] != "狗" {
		t.Fatalf("unexpected answer rows: %v", answers)
	}
}

func TestCSVWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sheet.csv")
	if err := (&CSVWriter{Layout: Layout{Answers: false}}).Write(path, sampleSheet()); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(records))
	}
	for _, header := range records[0] {
		if header == "Answer" {
			t.Fatalf("expected no answer column, got %v", records[0])
		}
	}
	if records[1][2] != "猫" || records[1][4] != "ねこ" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
}
