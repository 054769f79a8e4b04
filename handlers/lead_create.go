package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

func HandleLeadCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		email := strings.TrimSpace(e.Request.FormValue("email"))
		phone := strings.TrimSpace(e.Request.FormValue("phone"))
		company := strings.TrimSpace(e.Request.FormValue("company"))
		status := strings.TrimSpace(e.Request.FormValue("status"))
		notes := strings.TrimSpace(e.Request.FormValue("notes"))

		errors := make(map[string]string)
		if name == "" {
			errors["name"] = "Name is required"
		}
		if email == "" {
			errors["email"] = "Email is required"
		}
		if status == "" {
			status = "New"
		} else if !services.IsValidLeadStatus(status) {
			errors["status"] = "Unknown status"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return e.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errors})
		}

		col, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("lead_create: could not find leads collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("name", name)
		record.Set("email", email)
		record.Set("phone", phone)
		record.Set("company", company)
		record.Set("status", status)
		record.Set("notes", notes)
		record.Set("assigned_to", getRequestUserID(e.Request))

		if err := app.Save(record); err != nil {
			log.Printf("lead_create: could not save lead: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Lead created")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/leads")
			return e.String(http.StatusOK, "")
		}
		return e.JSON(http.StatusOK, leadViewFromRecord(record))
	}
}
