package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// leadView is the list/detail shape returned for a lead record.
type leadView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	AssignedTo string `json:"assignedTo"`
	CreatedAt  string `json:"createdAt"`
}

func leadViewFromRecord(rec *core.Record) leadView {
	return leadView{
		ID:         rec.Id,
		Name:       rec.GetString("name"),
		Email:      rec.GetString("email"),
		Phone:      rec.GetString("phone"),
		Company:    rec.GetString("company"),
		Status:     rec.GetString("status"),
		Notes:      rec.GetString("notes"),
		AssignedTo: rec.GetString("assigned_to"),
		CreatedAt:  rec.GetString("created"),
	}
}

// HandleLeadList lists leads newest first, optionally filtered by a
// case-insensitive substring match over name, email and company.
func HandleLeadList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		search := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		filter := "id != ''"
		params := map[string]any{}
		if search != "" {
			filter = "name ~ {:q} || email ~ {:q} || company ~ {:q}"
			params["q"] = "%" + search + "%"
		}

		records, err := app.FindRecordsByFilter("leads", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("lead_list: could not query leads: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		views := make([]leadView, 0, len(records))
		for _, rec := range records {
			views = append(views, leadViewFromRecord(rec))
		}

		return e.JSON(http.StatusOK, map[string]any{"leads": views})
	}
}
