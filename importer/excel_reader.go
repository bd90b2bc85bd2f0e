package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads Office Open XML workbooks (.xlsx). Cells are read as
// stored, so number formats such as thousands separators never reach the
// vocabulary text.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([][]Cell, error) {
	file, err := excelize.OpenFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, &EmptyDocumentError{Path: path}
	}

	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &FormatError{Path: path, Err: fmt.Errorf("read rows from sheet %s: %w", sheetName, err)}
	}

	out := make([][]Cell, 0, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for col, raw := range row {
			cell, cellErr := excelCell(file, sheetName, col+1, i+1, raw)
			if cellErr != nil {
				return nil, &FormatError{Path: path, Err: cellErr}
			}
			cells[col] = cell
		}
		out = append(out, cells)
	}

	out = trimTrailingEmptyRows(out)
	if len(out) == 0 {
		return nil, &EmptyDocumentError{Path: path, Sheet: sheetName}
	}
	return out, nil
}

// excelCell classifies a raw cell value by its stored type. String cells stay
// text even when they look numeric; untyped and numeric cells become numbers
// when the raw value parses as one.
func excelCell(file *excelize.File, sheet string, col, row int, raw string) (Cell, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, fmt.Errorf("resolve cell name: %w", err)
	}

	if strings.TrimSpace(raw) == "" {
		return formulaResult(file, sheet, axis)
	}

	cellType, err := file.GetCellType(sheet, axis)
	if err != nil {
		return Cell{}, fmt.Errorf("read cell type %s: %w", axis, err)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return TextCell(raw), nil
	case excelize.CellTypeFormula:
		// t="str": the cached formula result is a string.
		return TextCell(raw), nil
	case excelize.CellTypeBool:
		value, err := file.GetCellValue(sheet, axis)
		if err != nil {
			return Cell{}, fmt.Errorf("read cell %s: %w", axis, err)
		}
		return TextCell(value), nil
	}
	return rawCell(raw), nil
}

// formulaResult evaluates a formula cell that was saved without a cached
// value. Cells without a formula, and formulas the calculator cannot
// evaluate, read as empty.
func formulaResult(file *excelize.File, sheet, axis string) (Cell, error) {
	formula, err := file.GetCellFormula(sheet, axis)
	if err != nil {
		return Cell{}, fmt.Errorf("read formula %s: %w", axis, err)
	}
	if formula == "" {
		return Cell{}, nil
	}

	value, err := file.CalcCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil || strings.TrimSpace(value) == "" {
		return Cell{}, nil
	}
	return rawCell(value), nil
}

func rawCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil && !isSpecialFloat(trimmed) {
		return NumberCell(number)
	}
	return TextCell(raw)
}
