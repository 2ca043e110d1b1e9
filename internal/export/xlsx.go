// Package export writes the clean table in formats beyond the delimited
// text outputs.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

const sheetName = "Sheet1"

// WriteXLSX writes the table to an XLSX workbook with a single sheet,
// creating parent directories as needed and overwriting any existing
// file. Null cells become empty spreadsheet cells.
func WriteXLSX(t *table.Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, headerCells(t)); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			if cell.IsNull() {
				cells[j] = nil
			} else {
				cells[j] = cell.Value()
			}
		}

		if err := writeRow(f, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

func headerCells(t *table.Table) []interface{} {
	cells := make([]interface{}, len(t.Header))
	for i, name := range t.Header {
		cells[i] = name
	}

	return cells
}

func writeRow(f *excelize.File, rowNum int, cells []interface{}) error {
	cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to build cell reference: %w", err)
	}

	if err := f.SetSheetRow(sheetName, cellRef, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}

	return nil
}
