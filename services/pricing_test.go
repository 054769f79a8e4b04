package services

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCalcLineItem(t *testing.T) {
	tests := []struct {
		name      string
		qty       float64
		price     float64
		taxRate   float64
		wantLine  float64
		wantTax   float64
		wantTotal float64
	}{
		{"basic", 2, 100, 18, 200, 36, 236},
		{"zero_qty", 0, 100, 18, 0, 0, 0},
		{"zero_tax", 10, 500, 0, 5000, 0, 5000},
		{"fractional", 3, 123.45, 12, 370.35, 44.442, 414.792},
		{"fractional_qty", 2.5, 40, 5, 100, 5, 105},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcLineItem(LineItem{
				Qty:     Amount(tt.qty),
				Price:   Amount(tt.price),
				TaxRate: Amount(tt.taxRate),
			})
			if !floatClose(got.LineTotal, tt.wantLine) {
				t.Errorf("LineTotal = %f, want %f", got.LineTotal, tt.wantLine)
			}
			if !floatClose(got.TaxAmount, tt.wantTax) {
				t.Errorf("TaxAmount = %f, want %f", got.TaxAmount, tt.wantTax)
			}
			if !floatClose(got.Total, tt.wantTotal) {
				t.Errorf("Total = %f, want %f", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestCalcTotals_IntraStateRates(t *testing.T) {
	items := []LineItem{
		{Description: "Design work", Qty: 2, Price: 100, TaxRate: 18},
	}
	got := CalcTotals(items, TaxConfig{CGSTRate: 9, SGSTRate: 9})

	if !floatClose(got.Subtotal, 200) {
		t.Errorf("Subtotal = %f, want 200", got.Subtotal)
	}
	if !floatClose(got.ItemTaxTotal, 36) {
		t.Errorf("ItemTaxTotal = %f, want 36", got.ItemTaxTotal)
	}
	if !floatClose(got.CGST, 18) {
		t.Errorf("CGST = %f, want 18", got.CGST)
	}
	if !floatClose(got.SGST, 18) {
		t.Errorf("SGST = %f, want 18", got.SGST)
	}
	if !floatClose(got.IGST, 0) {
		t.Errorf("IGST = %f, want 0", got.IGST)
	}
	if !floatClose(got.TotalTax, 72) {
		t.Errorf("TotalTax = %f, want 72", got.TotalTax)
	}
	if !floatClose(got.GrandTotal, 272) {
		t.Errorf("GrandTotal = %f, want 272", got.GrandTotal)
	}
}

func TestCalcTotals_RatesApplyToSubtotalNotItemTax(t *testing.T) {
	// Item tax must not compound into the jurisdictional base.
	items := []LineItem{
		{Qty: 1, Price: 80, TaxRate: 0},
	}
	got := CalcTotals(items, TaxConfig{IGSTRate: 3.75})

	if !floatClose(got.Subtotal, 80) {
		t.Errorf("Subtotal = %f, want 80", got.Subtotal)
	}
	if !floatClose(got.IGST, 3) {
		t.Errorf("IGST = %f, want 3", got.IGST)
	}
	if !floatClose(got.GrandTotal, 83) {
		t.Errorf("GrandTotal = %f, want 83", got.GrandTotal)
	}
}

func TestCalcTotals_ItemTaxOnly(t *testing.T) {
	// Per-item tax with every jurisdictional rate at zero.
	items := []LineItem{
		{Qty: 1, Price: 50, TaxRate: 0},
		{Qty: 3, Price: 10, TaxRate: 5},
	}
	got := CalcTotals(items, TaxConfig{})

	if !floatClose(got.Subtotal, 80) {
		t.Errorf("Subtotal = %f, want 80", got.Subtotal)
	}
	if !floatClose(got.ItemTaxTotal, 1.5) {
		t.Errorf("ItemTaxTotal = %f, want 1.5", got.ItemTaxTotal)
	}
	if got.CGST != 0 || got.SGST != 0 || got.IGST != 0 {
		t.Errorf("expected zero jurisdictional amounts, got %+v", got)
	}
	if !floatClose(got.TotalTax, 1.5) {
		t.Errorf("TotalTax = %f, want 1.5", got.TotalTax)
	}
	if !floatClose(got.GrandTotal, 81.5) {
		t.Errorf("GrandTotal = %f, want 81.5", got.GrandTotal)
	}
}

func TestCalcTotals_NoItems(t *testing.T) {
	got := CalcTotals(nil, TaxConfig{CGSTRate: 9, SGSTRate: 9, IGSTRate: 18})

	if got.Subtotal != 0 || got.TotalTax != 0 || got.GrandTotal != 0 {
		t.Errorf("expected all-zero totals for empty quotation, got %+v", got)
	}
}

func TestCalcTotals_TotalTaxIdentity(t *testing.T) {
	items := []LineItem{
		{Qty: 3, Price: 1500, TaxRate: 18},
		{Qty: 1, Price: 240.5, TaxRate: 5},
		{Qty: 12, Price: 99.99, TaxRate: 28},
	}
	got := CalcTotals(items, TaxConfig{CGSTRate: 9, SGSTRate: 9, IGSTRate: 18})

	wantTax := got.ItemTaxTotal + got.CGST + got.SGST + got.IGST
	if !floatClose(got.TotalTax, wantTax) {
		t.Errorf("TotalTax = %f, want sum of components %f", got.TotalTax, wantTax)
	}
	if !floatClose(got.GrandTotal, got.Subtotal+got.TotalTax) {
		t.Errorf("GrandTotal = %f, want Subtotal+TotalTax %f", got.GrandTotal, got.Subtotal+got.TotalTax)
	}
}

func TestLineItem_PermissiveJSONDecode(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantQty   float64
		wantPrice float64
		wantRate  float64
	}{
		{"numbers", `{"qty":2,"price":100,"taxRate":18}`, 2, 100, 18},
		{"numeric_strings", `{"qty":"2","price":"100.5","taxRate":"18"}`, 2, 100.5, 18},
		{"empty_strings", `{"qty":"","price":"","taxRate":""}`, 0, 0, 0},
		{"nulls", `{"qty":null,"price":null,"taxRate":null}`, 0, 0, 0},
		{"garbage", `{"qty":"abc","price":"1,000","taxRate":"ten"}`, 0, 0, 0},
		{"missing", `{}`, 0, 0, 0},
		{"negative_passthrough", `{"qty":-1,"price":"-50","taxRate":0}`, -1, -50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item LineItem
			if err := json.Unmarshal([]byte(tt.payload), &item); err != nil {
				t.Fatalf("unmarshal returned error: %v", err)
			}
			if float64(item.Qty) != tt.wantQty {
				t.Errorf("Qty = %f, want %f", float64(item.Qty), tt.wantQty)
			}
			if float64(item.Price) != tt.wantPrice {
				t.Errorf("Price = %f, want %f", float64(item.Price), tt.wantPrice)
			}
			if float64(item.TaxRate) != tt.wantRate {
				t.Errorf("TaxRate = %f, want %f", float64(item.TaxRate), tt.wantRate)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain", "42", 42},
		{"decimal", "42.75", 42.75},
		{"padded", "  19.5  ", 19.5},
		{"empty", "", 0},
		{"null_literal", "null", 0},
		{"garbage", "twelve", 0},
		{"grouped", "1,000", 0},
		{"negative", "-5", -5},
		{"nan_literal", "NaN", 0},
		{"inf_literal", "Inf", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.want {
				t.Errorf("ParseAmount(%q) = %f, want %f", tt.input, got, tt.want)
			}
		})
	}
}

func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}
