package collections

import (
	"fmt"
	"log"
	"math"

	"github.com/pocketbase/pocketbase"

	"leadpanel/services"
)

// BackfillQuotationTotals recomputes the stored totals of every quotation
// from its items and tax rates, rewriting records whose derived values have
// drifted (documents written by older builds, or edited out-of-band through
// the admin UI). Safe to call on every startup -- records already consistent
// are left untouched.
func BackfillQuotationTotals(app *pocketbase.PocketBase) error {
	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("backfill: could not find quotations collection: %w", err)
	}

	records, err := app.FindAllRecords(quotationsCol)
	if err != nil {
		return fmt.Errorf("backfill: could not query quotations: %w", err)
	}

	updated := 0
	for _, rec := range records {
		var items []services.LineItem
		if err := rec.UnmarshalJSONField("items", &items); err != nil {
			log.Printf("backfill: skipping quotation %s, unreadable items: %v\n", rec.Id, err)
			continue
		}

		cfg := services.TaxConfig{
			CGSTRate: services.Amount(rec.GetFloat("cgst_rate")),
			SGSTRate: services.Amount(rec.GetFloat("sgst_rate")),
			IGSTRate: services.Amount(rec.GetFloat("igst_rate")),
		}
		totals := services.CalcTotals(items, cfg)

		if totalsMatch(rec.GetFloat("subtotal"), totals.Subtotal) &&
			totalsMatch(rec.GetFloat("total_tax"), totals.TotalTax) &&
			totalsMatch(rec.GetFloat("grand_total"), totals.GrandTotal) {
			continue
		}

		rec.Set("subtotal", totals.Subtotal)
		rec.Set("item_tax_total", totals.ItemTaxTotal)
		rec.Set("cgst_amount", totals.CGST)
		rec.Set("sgst_amount", totals.SGST)
		rec.Set("igst_amount", totals.IGST)
		rec.Set("total_tax", totals.TotalTax)
		rec.Set("grand_total", totals.GrandTotal)

		if err := app.Save(rec); err != nil {
			log.Printf("backfill: failed to update quotation %s: %v\n", rec.Id, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("backfill: recomputed totals for %d quotation(s)\n", updated)
	}
	return nil
}

func totalsMatch(stored, computed float64) bool {
	return math.Abs(stored-computed) < 0.000001
}
