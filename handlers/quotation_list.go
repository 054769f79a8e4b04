package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

// quotationSummary is the register row shape for the quotations list.
type quotationSummary struct {
	ID          string  `json:"id"`
	QuotationID string  `json:"quotationId"`
	ClientName  string  `json:"clientName"`
	Company     string  `json:"clientCompany"`
	Date        string  `json:"date"`
	Currency    string  `json:"currency"`
	GrandTotal  float64 `json:"total"`
}

// HandleQuotationList lists quotations newest first.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("quotation_list: could not query quotations: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		summaries := make([]quotationSummary, 0, len(records))
		for _, rec := range records {
			summaries = append(summaries, quotationSummary{
				ID:          rec.Id,
				QuotationID: rec.GetString("quotation_id"),
				ClientName:  rec.GetString("client_name"),
				Company:     rec.GetString("client_company"),
				Date:        rec.GetString("date"),
				Currency:    rec.GetString("currency"),
				GrandTotal:  rec.GetFloat("grand_total"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"quotations": summaries})
	}
}

// HandleQuotationView returns the full quotation snapshot with freshly
// recomputed totals.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		q, err := services.QuotationFromRecord(rec)
		if err != nil {
			log.Printf("quotation_list: could not read quotation %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":        rec.Id,
			"quotation": q,
		})
	}
}
