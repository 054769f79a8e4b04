package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

// HandleDashboard returns the headline lead counts and the per-status
// distribution for the dashboard cards and chart.
func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leadsCol, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("dashboard: could not find leads collection: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		leads, err := app.FindAllRecords(leadsCol)
		if err != nil {
			log.Printf("dashboard: could not query leads: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"stats":        services.CalcLeadStats(leads),
			"distribution": services.StatusDistribution(leads),
		})
	}
}
