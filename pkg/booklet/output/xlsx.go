package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/expobook-go/pkg/booklet/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the booklet in xlsx output.
const SheetName = "Booklet"

var columnWidths = map[string]float64{
	models.ColumnAward:              18,
	models.ColumnBookletLocation:    20,
	models.ColumnDayWarning:         14,
	models.ColumnOrganization:       28,
	models.ColumnExhibitTitle:       32,
	models.ColumnExhibitDescription: 80,
}

// WriteXLSX writes the booklet to an xlsx workbook with a styled header row.
func WriteXLSX(path string, b *models.Booklet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}

	cols := b.Columns()
	for i, name := range cols {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, columnWidths[name]); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
		if name == models.ColumnExhibitDescription {
			if err := f.SetColStyle(SheetName, col, wrapStyle); err != nil {
				return fmt.Errorf("failed to set column style: %w", err)
			}
		}
	}

	if err := setRow(f, 1, cols); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(cols), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	for i, rec := range b.Records() {
		if err := setRow(f, i+2, rec); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// TempPath returns a hidden sibling of path with the same extension, for
// staging a workbook before it replaces path.
func TempPath(path string) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	return filepath.Join(dir, "."+strings.TrimSuffix(base, ext)+".tmp"+ext)
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
