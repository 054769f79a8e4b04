package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF renders a quotation as a printable PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotationPDF(data *QuotationExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addBillTo(m, data.Quotation)
	addItemsHeader(m)
	for _, item := range data.Items {
		addItemRow(m, item, data.Quotation.Currency)
	}
	addTotals(m, data.Quotation)
	addTerms(m, data.Quotation)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the company block and the quotation number/date.
func addQuotationHeader(m core.Maroto, data *QuotationExport) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.Company.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	if data.Company.Address != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(data.Company.Address, props.Text{
						Size:  9,
						Align: align.Left,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}

	if data.Company.GSTIN != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New("GSTIN: "+data.Company.GSTIN, props.Text{
						Size:  9,
						Align: align.Left,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Quotation "+data.Quotation.QuotationID, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("Date: "+data.Quotation.Date, props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addBillTo adds the client block.
func addBillTo(m core.Maroto, q Quotation) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Bill To", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	lines := []string{q.ClientName}
	if q.ClientCompany != "" {
		lines = append(lines, q.ClientCompany)
	}
	if q.ClientAddress != "" {
		lines = append(lines, q.ClientAddress)
	}
	if q.ClientEmail != "" {
		lines = append(lines, q.ClientEmail)
	}

	for _, line := range lines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(line, props.Text{
						Size:  9,
						Align: align.Left,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addItemsHeader adds the column header row for the items table.
func addItemsHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Item", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("SAC", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Price", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Tax", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addItemRow adds one line item to the items table.
func addItemRow(m core.Maroto, item ExportLineItem, currency string) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.SINo), baseText)),
			col.New(4).Add(text.New(item.Description, leftText)),
			col.New(1).Add(text.New(item.SAC, baseText)),
			col.New(1).Add(text.New(formatQty(item.Qty), rightText)),
			col.New(2).Add(text.New(FormatAmount(item.Price, currency), rightText)),
			col.New(1).Add(text.New(fmt.Sprintf("%.0f%%", item.TaxPercent), baseText)),
			col.New(2).Add(text.New(FormatAmount(item.Total, currency), rightText)),
		),
	)
}

// addTotals adds the totals block. CGST/SGST/IGST lines appear only when
// their configured rate is non-zero.
func addTotals(m core.Maroto, q Quotation) {
	m.AddRows(row.New(6))

	addTotalLine(m, "Subtotal", q.Subtotal, q.Currency, false)
	if q.ItemTaxTotal != 0 {
		addTotalLine(m, "Item Tax", q.ItemTaxTotal, q.Currency, false)
	}
	if q.CGSTRate != 0 {
		addTotalLine(m, fmt.Sprintf("CGST (%.1f%%)", float64(q.CGSTRate)), q.CGST, q.Currency, false)
	}
	if q.SGSTRate != 0 {
		addTotalLine(m, fmt.Sprintf("SGST (%.1f%%)", float64(q.SGSTRate)), q.SGST, q.Currency, false)
	}
	if q.IGSTRate != 0 {
		addTotalLine(m, fmt.Sprintf("IGST (%.1f%%)", float64(q.IGSTRate)), q.IGST, q.Currency, false)
	}
	addTotalLine(m, "Grand Total", q.GrandTotal, q.Currency, true)

	if q.Currency == "INR" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(AmountInWords(q.GrandTotal), props.Text{
						Size:  8,
						Style: fontstyle.Italic,
						Align: align.Right,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}
}

func addTotalLine(m core.Maroto, label string, amount float64, currency string, grand bool) {
	style := fontstyle.Normal
	size := 9.0
	if grand {
		style = fontstyle.Bold
		size = 10
	}

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelCol := col.New(8).Add(
		text.New(label, props.Text{Size: size, Style: style, Align: align.Right}),
	)
	valueCol := col.New(4).Add(
		text.New(FormatAmount(amount, currency), props.Text{Size: size, Style: style, Align: align.Right}),
	)
	if grand {
		labelCol = labelCol.WithStyle(summaryCell)
		valueCol = valueCol.WithStyle(summaryCell)
	}

	m.AddRows(row.New(7).Add(labelCol, valueCol))
}

// addTerms adds the payment terms and closing line.
func addTerms(m core.Maroto, q Quotation) {
	m.AddRows(row.New(6))

	if q.PaymentTerms != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New("Payment Terms", props.Text{
						Size:  9,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				),
			),
			row.New(6).Add(
				col.New(12).Add(
					text.New(q.PaymentTerms, props.Text{
						Size:  8,
						Align: align.Left,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Thank you for your business!", props.Text{
					Size:  9,
					Align: align.Center,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
	)
}
