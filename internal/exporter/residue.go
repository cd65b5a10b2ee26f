package exporter

import (
	"fmt"
	"io"

	"storefront/internal/domain"

	"github.com/tealeg/xlsx"
)

// WriteResidue renders remaining stock per product as an xlsx workbook, the
// format warehouse staff pull into their spreadsheets.
func WriteResidue(entries []domain.StockResidue, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Stock")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range []string{"ProductID", "Name", "Quantity"} {
		header.AddCell().SetValue(h)
	}

	for _, e := range entries {
		row := sheet.AddRow()
		row.AddCell().SetValue(e.ProductID)
		row.AddCell().SetValue(e.ProductName)
		row.AddCell().SetValue(e.Quantity)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
