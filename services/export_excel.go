package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotationRegisterExcel creates an Excel workbook listing every
// quotation with its totals, and returns the file contents as a byte slice.
func GenerateQuotationRegisterExcel(rows []RegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotations"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through H).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1] // "H"

	widths := []float64{16, 12, 24, 24, 10, 16, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	// ── Header Rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Quotations Register")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	headers := []string{"Quotation #", "Date", "Client", "Company", "Currency", "Subtotal", "Total Tax", "Grand Total"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s3", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// ── Data Rows (starting row 4) ──────────────────────────────────────

	row := 4
	for _, r := range rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.QuotationID))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Date))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.ClientName))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Company))
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(r.Currency))
		f.SetCellValue(sheetName, "F"+rowStr, FormatAmount(r.Subtotal, r.Currency))
		f.SetCellValue(sheetName, "G"+rowStr, FormatAmount(r.TotalTax, r.Currency))
		f.SetCellValue(sheetName, "H"+rowStr, FormatAmount(r.GrandTotal, r.Currency))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, dataStyle)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
