package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

type inventoryView struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	SACCode string  `json:"sac"`
	Price   float64 `json:"price"`
}

// HandleInventoryList lists price-list items, optionally filtered by a
// typeahead substring match on the name.
func HandleInventoryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		search := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		filter := "id != ''"
		params := map[string]any{}
		if search != "" {
			filter = "name ~ {:q}"
			params["q"] = "%" + search + "%"
		}

		records, err := app.FindRecordsByFilter("inventory", filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("inventory: could not query inventory: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		views := make([]inventoryView, 0, len(records))
		for _, rec := range records {
			views = append(views, inventoryView{
				ID:      rec.Id,
				Name:    rec.GetString("name"),
				SACCode: rec.GetString("sac_code"),
				Price:   rec.GetFloat("price"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"items": views})
	}
}

func HandleInventoryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		sacCode := strings.TrimSpace(e.Request.FormValue("sac"))
		priceRaw := strings.TrimSpace(e.Request.FormValue("price"))

		errors := make(map[string]string)
		if name == "" {
			errors["name"] = "Name is required"
		}
		if priceRaw == "" {
			errors["price"] = "Price is required"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return e.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errors})
		}

		col, err := app.FindCollectionByNameOrId("inventory")
		if err != nil {
			log.Printf("inventory: could not find inventory collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("name", name)
		record.Set("sac_code", sacCode)
		record.Set("price", services.ParseAmount(priceRaw))

		if err := app.Save(record); err != nil {
			log.Printf("inventory: could not save item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Item added to price list")
		return e.JSON(http.StatusOK, inventoryView{
			ID:      record.Id,
			Name:    record.GetString("name"),
			SACCode: record.GetString("sac_code"),
			Price:   record.GetFloat("price"),
		})
	}
}

func HandleInventoryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("inventory", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("inventory: could not delete item %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Item deleted")
		return e.String(http.StatusOK, "")
	}
}
