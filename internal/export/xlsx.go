package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phrazzld/catalog-forge/internal/domain"
	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet all records are written to.
const sheetName = "Products"

// XLSXExporter writes records as a spreadsheet with a header row, using the
// same columns and ordering as the CSV sink.
type XLSXExporter struct{}

// NewXLSXExporter creates an XLSXExporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes the records to path, creating parent directories as needed.
func (e *XLSXExporter) Export(path string, records []domain.ProductRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default worksheet: %w", err)
	}

	if err := writeSheetRow(f, 1, Header); err != nil {
		return err
	}

	for i, record := range records {
		if err := writeSheetRow(f, i+2, row(record)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save XLSX file: %w", err)
	}

	return nil
}

// writeSheetRow writes the cells of one row, 1-based.
func writeSheetRow(f *excelize.File, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}

	return nil
}
