package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

type contextKey string

const CompanySettingsKey contextKey = "companySettings"

// AnonymousUserID tags records created by callers with no identity header.
const AnonymousUserID = "anonymous_user"

// GetCompanySettings extracts the company profile from the request context.
func GetCompanySettings(r *http.Request) services.CompanyProfile {
	if val, ok := r.Context().Value(CompanySettingsKey).(services.CompanyProfile); ok {
		return val
	}
	return services.CompanyProfile{}
}

// getRequestUserID returns the caller identity from the X-User-Id header.
// The identity collaborator sets it upstream; absent a value, records are
// tagged as anonymous rather than rejected.
func getRequestUserID(r *http.Request) string {
	if id := r.Header.Get("X-User-Id"); id != "" {
		return id
	}
	return AnonymousUserID
}

// CompanySettingsMiddleware loads the settings singleton and stores the
// company profile in the request context so handlers can default payment
// terms and render headers without refetching.
func CompanySettingsMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		profile := services.CompanyProfile{}

		rec, err := app.FindFirstRecordByFilter("settings", "id != ''")
		if err != nil {
			log.Printf("middleware: company settings not found: %v", err)
		} else {
			profile = services.ProfileFromRecord(rec)
		}

		ctx := context.WithValue(e.Request.Context(), CompanySettingsKey, profile)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
