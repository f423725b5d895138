package report

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExcelWriter builds a local workbook with one sheet per network.
type ExcelWriter struct {
	outputDir string
	file      *excelize.File
}

// NewExcelWriter creates a writer saving workbooks under outputDir.
func NewExcelWriter(outputDir string) *ExcelWriter {
	return &ExcelWriter{outputDir: outputDir, file: excelize.NewFile()}
}

// Write appends a sheet named after the network. The header carries the
// fixed columns followed by an amount/average pair per used symbol; the
// symbol cells of the first data row are seeded with zero for the running
// balance formulas accountants extend by hand.
func (w *ExcelWriter) Write(_ context.Context, sheet string, rows []Row, symbols []string) error {
	if _, err := w.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	header := append(Header(), symbolHeader(symbols)...)
	if err := w.writeRow(sheet, 1, toCells(header)); err != nil {
		return err
	}

	for i, row := range rows {
		cells := toCells(row.Values())
		if i == 0 {
			for range symbols {
				cells = append(cells, 0, 0)
			}
		}
		if err := w.writeRow(sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

// Flush drops the default sheet and saves the workbook as <name>.xlsx.
func (w *ExcelWriter) Flush(_ context.Context, name string) error {
	if err := w.file.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("deleting default sheet: %w", err)
	}

	path := filepath.Join(w.outputDir, name+".xlsx")
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return w.file.Close()
}

func (w *ExcelWriter) writeRow(sheet string, rowNum int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell coordinates for row %d: %w", rowNum, err)
	}
	if err := w.file.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d of %s: %w", rowNum, sheet, err)
	}
	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
