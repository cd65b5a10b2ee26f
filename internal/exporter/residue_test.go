package exporter

import (
	"bytes"
	"testing"

	"storefront/internal/domain"

	"github.com/tealeg/xlsx"
)

func TestWriteResidue(t *testing.T) {
	entries := []domain.StockResidue{
		{ProductID: "p1", ProductName: "Lamp", Quantity: 3},
		{ProductID: "p2", ProductName: "Teapot", Quantity: 12},
	}

	var buf bytes.Buffer
	if err := WriteResidue(entries, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	if len(file.Sheets) != 1 || file.Sheets[0].Name != "Stock" {
		t.Fatalf("expected one Stock sheet, got %+v", file.Sheets)
	}
	rows := file.Sheets[0].Rows
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1].Cells[1].Value != "Lamp" || rows[2].Cells[1].Value != "Teapot" {
		t.Fatalf("unexpected cell values: %q %q", rows[1].Cells[1].Value, rows[2].Cells[1].Value)
	}
	if rows[2].Cells[2].Value != "12" {
		t.Fatalf("expected quantity 12, got %q", rows[2].Cells[2].Value)
	}
}

func TestWriteResidueEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResidue(nil, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	file, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	if len(file.Sheets[0].Rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(file.Sheets[0].Rows))
	}
}
