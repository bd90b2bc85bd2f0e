package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"kanadrill/drill"
)

type CSVWriter struct {
	Layout Layout
}

func (w *CSVWriter) Write(path string, sheet drill.Sheet) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"No", "Label", "Question", "AnswerLabel"}
	if w.Layout.Answers {
		headers = append(headers, "Answer")
	}
	headers = append(headers, "Pronunciation", "Example")
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, q := range sheet.Questions {
		row := []string{strconv.Itoa(q.Number), q.QuestionLabel, q.Question, q.AnswerLabel}
		if w.Layout.Answers {
			row = append(row, q.Answer)
		}
		row = append(row, q.Pronunciation, q.Example)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
