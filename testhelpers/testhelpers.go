// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/collections"
	"leadpanel/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestLead creates a lead record with the given name and returns it.
func CreateTestLead(t *testing.T, app *pocketbase.PocketBase, name, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("failed to find leads collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("email", strings.ToLower(strings.ReplaceAll(name, " ", "."))+"@example.com")
	record.Set("status", status)
	record.Set("assigned_to", "anonymous_user")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test lead: %v", err)
	}

	return record
}

// CreateTestQuotation creates a quotation record with the given items and
// tax config, storing the recomputed totals the way the handlers do.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, quotationID, clientName string, items []services.LineItem, cfg services.TaxConfig) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("failed to marshal quotation items: %v", err)
	}

	totals := services.CalcTotals(items, cfg)

	record := core.NewRecord(col)
	record.Set("quotation_id", quotationID)
	record.Set("client_name", clientName)
	record.Set("client_email", "client@example.com")
	record.Set("date", "2026-09-01")
	record.Set("currency", "INR")
	record.Set("items", string(itemsJSON))
	record.Set("cgst_rate", float64(cfg.CGSTRate))
	record.Set("sgst_rate", float64(cfg.SGSTRate))
	record.Set("igst_rate", float64(cfg.IGSTRate))
	record.Set("payment_terms", "50% advance, 50% on completion")
	record.Set("subtotal", totals.Subtotal)
	record.Set("item_tax_total", totals.ItemTaxTotal)
	record.Set("cgst_amount", totals.CGST)
	record.Set("sgst_amount", totals.SGST)
	record.Set("igst_amount", totals.IGST)
	record.Set("total_tax", totals.TotalTax)
	record.Set("grand_total", totals.GrandTotal)
	record.Set("created_by", "anonymous_user")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestInventoryItem creates an inventory record and returns it.
func CreateTestInventoryItem(t *testing.T, app *pocketbase.PocketBase, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("inventory")
	if err != nil {
		t.Fatalf("failed to find inventory collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("sac_code", "9983")
	record.Set("price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test inventory item: %v", err)
	}

	return record
}

// SetCompanySettings upserts the settings singleton with the given profile.
func SetCompanySettings(t *testing.T, app *pocketbase.PocketBase, name, gstin string) *core.Record {
	t.Helper()

	record, err := app.FindFirstRecordByFilter("settings", "id != ''")
	if err != nil {
		col, colErr := app.FindCollectionByNameOrId("settings")
		if colErr != nil {
			t.Fatalf("failed to find settings collection: %v", colErr)
		}
		record = core.NewRecord(col)
	}

	record.Set("name", name)
	record.Set("address", "42 Test Street, Bangalore")
	record.Set("gstin", gstin)
	record.Set("payment_terms", "Net 30")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test settings: %v", err)
	}

	return record
}

// AssertBodyContains checks that body contains all specified fragments.
func AssertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
