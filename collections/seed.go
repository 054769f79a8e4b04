package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type inventoryDef struct {
	name    string
	sacCode string
	price   float64
}

// Seed inserts the company settings singleton and a starter price list.
// It is safe to call on every startup: each block returns early when its
// collection already has records.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedSettings(app); err != nil {
		return err
	}
	return seedInventory(app)
}

func seedSettings(app *pocketbase.PocketBase) error {
	settingsCol, err := app.FindCollectionByNameOrId("settings")
	if err != nil {
		return fmt.Errorf("seed: could not find settings collection: %w", err)
	}
	existing, err := app.FindAllRecords(settingsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query settings: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: settings collection is empty – inserting defaults …")

	r := core.NewRecord(settingsCol)
	r.Set("name", "My Company")
	r.Set("address", "")
	r.Set("gstin", "")
	r.Set("payment_terms", "50% advance, 50% on completion")
	if err := app.Save(r); err != nil {
		return fmt.Errorf("seed: save settings: %w", err)
	}
	return nil
}

func seedInventory(app *pocketbase.PocketBase) error {
	inventoryCol, err := app.FindCollectionByNameOrId("inventory")
	if err != nil {
		return fmt.Errorf("seed: could not find inventory collection: %w", err)
	}
	existing, err := app.FindAllRecords(inventoryCol)
	if err != nil {
		return fmt.Errorf("seed: could not query inventory: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: inventory collection is empty – inserting starter price list …")

	items := []inventoryDef{
		{name: "Interior Design Consultation", sacCode: "998391", price: 5000},
		{name: "Modular Kitchen (per sqft)", sacCode: "995473", price: 1800},
		{name: "Wardrobe (per sqft)", sacCode: "995473", price: 1400},
		{name: "False Ceiling (per sqft)", sacCode: "995473", price: 120},
		{name: "Electrical Work (per point)", sacCode: "995461", price: 650},
		{name: "Painting (per sqft)", sacCode: "995473", price: 35},
		{name: "Site Supervision (per month)", sacCode: "998399", price: 25000},
	}

	for _, d := range items {
		r := core.NewRecord(inventoryCol)
		r.Set("name", d.name)
		r.Set("sac_code", d.sacCode)
		r.Set("price", d.price)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save inventory item %q: %w", d.name, err)
		}
	}

	log.Printf("seed: inserted %d starter inventory items", len(items))
	return nil
}
