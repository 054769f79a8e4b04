package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

// HandleLeadStatusUpdate moves a lead to a new pipeline status.
func HandleLeadStatusUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leadID := e.Request.PathValue("id")

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		status := strings.TrimSpace(e.Request.FormValue("status"))
		if !services.IsValidLeadStatus(status) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown status")
		}

		record, err := app.FindRecordById("leads", leadID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Lead not found")
		}

		record.Set("status", status)
		if err := app.Save(record); err != nil {
			log.Printf("lead_update: could not save lead %s: %v", leadID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Lead moved to "+status)
		return e.JSON(http.StatusOK, leadViewFromRecord(record))
	}
}

// HandleLeadDelete removes a lead. Quotations that reference it keep their
// frozen client snapshot, so nothing else needs cleanup.
func HandleLeadDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leadID := e.Request.PathValue("id")

		record, err := app.FindRecordById("leads", leadID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Lead not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("lead_update: could not delete lead %s: %v", leadID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Lead deleted")
		return e.String(http.StatusOK, "")
	}
}
