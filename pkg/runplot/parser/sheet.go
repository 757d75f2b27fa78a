package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheetTable reads a table from a worksheet.
// The first non-empty row is the header and the leftmost non-empty column
// is the first field. An empty sheetName selects the first sheet.
func ReadSheetTable(f *excelize.File, sheetName string) (*models.Table, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptySource
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "parser: could not read sheet %q", sheetName)
	}

	minRow, minCol := findDataOrigin(rows)
	if minRow < 0 {
		return nil, ErrEmptySource
	}

	table := &models.Table{Header: sliceFrom(rows[minRow], minCol)}
	for rowIdx := minRow + 1; rowIdx < len(rows); rowIdx++ {
		// Rows without any cell value have no text to parse.
		if emptyCells(rows[rowIdx]) {
			continue
		}
		table.Rows = append(table.Rows, models.Row{
			Line:   rowIdx + 1, // 1-based row index
			Fields: sliceFrom(rows[rowIdx], minCol),
		})
	}
	return table, nil
}

// findDataOrigin finds the first row and the leftmost column holding a non-empty cell.
func findDataOrigin(rows [][]string) (minRow, minCol int) {
	minRow, minCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
		}
	}

	return
}

func emptyCells(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func sliceFrom(row []string, col int) []string {
	if col >= len(row) {
		return nil
	}
	return row[col:]
}
