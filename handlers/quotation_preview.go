package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

// previewPayload is the live-edit recompute request: just the items and the
// three jurisdictional rates, decoded permissively so half-typed values
// coerce to zero instead of failing the whole request.
type previewPayload struct {
	Items []services.LineItem `json:"items"`
	services.TaxConfig
}

// HandleQuotationPreview recomputes totals for an in-progress quotation
// without touching the store. Editors call it on every change.
func HandleQuotationPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload previewPayload
		if err := e.BindBody(&payload); err != nil {
			return e.String(http.StatusBadRequest, "Invalid preview data")
		}

		lines := make([]services.LineItemCalc, 0, len(payload.Items))
		for _, item := range payload.Items {
			lines = append(lines, services.CalcLineItem(item))
		}

		return e.JSON(http.StatusOK, map[string]any{
			"totals": services.CalcTotals(payload.Items, payload.TaxConfig),
			"lines":  lines,
		})
	}
}
