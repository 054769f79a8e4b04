package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

// HandleQuotationShare builds the share bundle for a quotation: the frozen
// public URL plus prefilled WhatsApp and email links. The token snapshots
// the quotation and company profile at call time.
func HandleQuotationShare(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		q, err := services.QuotationFromRecord(rec)
		if err != nil {
			log.Printf("quotation_share: could not read quotation %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		company := GetCompanySettings(e.Request)

		token, err := services.EncodeShareToken(q, company)
		if err != nil {
			if errors.Is(err, services.ErrPayloadTooLarge) {
				return ErrorToast(e, http.StatusRequestEntityTooLarge,
					"Quotation is too large to share as a link. Try removing the company logo.")
			}
			log.Printf("quotation_share: could not encode token for %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// The origin always comes from the request itself; caller-supplied
		// overrides could mint links pointing at a foreign host.
		scheme := "https"
		if e.Request.TLS == nil {
			scheme = "http"
		}
		origin := scheme + "://" + e.Request.Host

		shareURL := services.BuildShareURL(origin, token)
		message := services.BuildShareMessage(q, company, shareURL)

		return e.JSON(http.StatusOK, map[string]any{
			"url":      shareURL,
			"token":    token,
			"message":  message,
			"whatsapp": services.WhatsAppShareURL(message),
			"mailto":   services.MailtoShareURL(q, message),
		})
	}
}
