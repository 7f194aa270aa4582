package parser

import (
	"fmt"

	"github.com/ukaji3/expobook-go/pkg/booklet/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads a sheet of an xlsx file into a Table.
// An empty sheetName selects the first sheet. The first non-empty row inside
// the sheet's data bounds is the header.
func ReadWorkbook(path, sheetName string, nulls NullSet) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoColumns)
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return tableFromRows(rows, nulls)
}

// tableFromRows crops rows to their data bounds and splits off the header.
func tableFromRows(rows [][]string, nulls NullSet) (*models.Table, error) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, ErrNoColumns
	}

	width := maxCol - minCol + 1
	header := cropRow(rows[minRow], minCol, width)
	table := &models.Table{Columns: normalizeHeader(header)}

	for r := minRow + 1; r <= maxRow; r++ {
		cells := cropRow(rows[r], minCol, width)
		if isBlank(cells) {
			continue
		}
		table.Rows = append(table.Rows, buildRow(cells, width, nulls))
	}
	return table, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// cropRow returns width cells of row starting at col, padding as needed.
func cropRow(row []string, col, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && col+i < len(row); i++ {
		out[i] = row[col+i]
	}
	return out
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
