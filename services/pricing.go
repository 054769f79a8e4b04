// Package services provides the quotation pricing engine, the public share
// link codec, and the supporting export/formatting helpers.
package services

// LineItem is one row of a quotation: a described unit of goods or service
// with quantity, unit price and its own tax rate. The numeric fields are
// Amounts so half-typed form state decodes without errors.
type LineItem struct {
	Description string `json:"description"`
	SAC         string `json:"sac"`
	Qty         Amount `json:"qty"`
	Price       Amount `json:"price"`
	TaxRate     Amount `json:"taxRate"`
}

// TaxConfig holds the three jurisdictional tax rates, each applied to the
// pre-tax subtotal. The engine does not enforce mutual exclusivity between
// IGST and the CGST+SGST pair; it sums whichever are set.
type TaxConfig struct {
	CGSTRate Amount `json:"cgstRate"`
	SGSTRate Amount `json:"sgstRate"`
	IGSTRate Amount `json:"igstRate"`
}

// Totals holds every derived amount for a quotation. Stored values keep full
// float precision; two-decimal rounding happens only at render time.
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	ItemTaxTotal float64 `json:"itemTaxTotal"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	TotalTax     float64 `json:"totalTax"`
	GrandTotal   float64 `json:"total"`
}

// LineItemCalc holds the calculated amounts for a single line item.
type LineItemCalc struct {
	LineTotal float64 // Qty * Price
	TaxAmount float64 // LineTotal * TaxRate / 100
	Total     float64 // LineTotal + TaxAmount
}

// CalcLineItem calculates the amounts for a single line item.
func CalcLineItem(item LineItem) LineItemCalc {
	lineTotal := float64(item.Qty) * float64(item.Price)
	taxAmount := lineTotal * float64(item.TaxRate) / 100
	return LineItemCalc{
		LineTotal: lineTotal,
		TaxAmount: taxAmount,
		Total:     lineTotal + taxAmount,
	}
}

// CalcTotals derives all quotation totals from the line items and tax config.
// One pass accumulates the subtotal and the per-item tax; the jurisdictional
// rates then apply to the final subtotal, never compounding on the item-level
// tax or on each other.
func CalcTotals(items []LineItem, cfg TaxConfig) Totals {
	var t Totals
	for _, item := range items {
		calc := CalcLineItem(item)
		t.Subtotal += calc.LineTotal
		t.ItemTaxTotal += calc.TaxAmount
	}

	t.CGST = t.Subtotal * float64(cfg.CGSTRate) / 100
	t.SGST = t.Subtotal * float64(cfg.SGSTRate) / 100
	t.IGST = t.Subtotal * float64(cfg.IGSTRate) / 100

	t.TotalTax = t.ItemTaxTotal + t.CGST + t.SGST + t.IGST
	t.GrandTotal = t.Subtotal + t.TotalTax
	return t
}
