package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

// HandlePublicQuote serves the read-only shared quotation. The token carries
// the complete snapshot, so this route touches neither the store nor any
// session state; a malformed or truncated token falls back to the normal
// entry path with a 302 instead of an error page.
func HandlePublicQuote() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.PathValue("token")

		quotation, company, err := services.DecodeShareToken(token)
		if err != nil {
			log.Printf("public_quote: rejecting token: %v", err)
			return e.Redirect(http.StatusFound, "/")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"quotation":   quotation,
			"companyInfo": company,
		})
	}
}
