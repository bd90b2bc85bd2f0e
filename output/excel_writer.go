package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"kanadrill/drill"
)

const (
	questionsSheet = "Questions"
	answersSheet   = "Answers"
)

type ExcelWriter struct {
	Layout Layout
}

func (w *ExcelWriter) Write(path string, sheet drill.Sheet) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), questionsSheet); err != nil {
		return fmt.Errorf("rename excel sheet: %w", err)
	}

	questionRows := make([][]any, 0, len(sheet.Questions)+1)
	questionRows = append(questionRows, []any{"No", "Label", "Question", "AnswerLabel", "Answer", "Pronunciation", "Example"})
	for _, q := range sheet.Questions {
		questionRows = append(questionRows, []any{q.Number, q.QuestionLabel, q.Question, q.AnswerLabel, "", q.Pronunciation, q.Example})
	}
	if err := writeRows(file, questionsSheet, questionRows); err != nil {
		return err
	}

	if w.Layout.Answers {
		if _, err := file.NewSheet(answersSheet); err != nil {
			return fmt.Errorf("create excel sheet %s: %w", answersSheet, err)
		}
		answerRows := make([][]any, 0, len(sheet.Questions)+1)
		answerRows = append(answerRows, []any{"No", "Question", "Answer", "Pronunciation"})
		for _, q := range sheet.Questions {
			answerRows = append(answerRows, []any{q.Number, q.Question, q.Answer, q.Pronunciation})
		}
		if err := writeRows(file, answersSheet, answerRows); err != nil {
			return err
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}

func writeRows(file *excelize.File, sheet string, rows [][]any) error {
	for r, values := range rows {
		for c, value := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
