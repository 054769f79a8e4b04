package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

// setQuotationFields writes the full quotation payload onto a record,
// recomputed totals included. Saves are full replacements: every field is
// overwritten, never patched, so stored totals can never drift from items.
func setQuotationFields(record *core.Record, q services.Quotation) error {
	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return err
	}

	totals := services.CalcTotals(q.Items, q.TaxConfig)

	record.Set("lead", q.LeadID)
	record.Set("client_name", q.ClientName)
	record.Set("client_email", q.ClientEmail)
	record.Set("client_company", q.ClientCompany)
	record.Set("client_address", q.ClientAddress)
	record.Set("date", q.Date)
	record.Set("currency", q.Currency)
	record.Set("items", string(itemsJSON))
	record.Set("cgst_rate", float64(q.CGSTRate))
	record.Set("sgst_rate", float64(q.SGSTRate))
	record.Set("igst_rate", float64(q.IGSTRate))
	record.Set("payment_terms", q.PaymentTerms)
	record.Set("subtotal", totals.Subtotal)
	record.Set("item_tax_total", totals.ItemTaxTotal)
	record.Set("cgst_amount", totals.CGST)
	record.Set("sgst_amount", totals.SGST)
	record.Set("igst_amount", totals.IGST)
	record.Set("total_tax", totals.TotalTax)
	record.Set("grand_total", totals.GrandTotal)
	return nil
}

func validateQuotation(q services.Quotation) map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(q.ClientName) == "" {
		errors["clientName"] = "Client name is required"
	}
	if q.Currency == "" {
		errors["currency"] = "Currency is required"
	}
	return errors
}

// HandleQuotationCreate creates a quotation from a JSON payload, assigning
// the next sequential number and defaulting empty payment terms from the
// company settings.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var q services.Quotation
		if err := e.BindBody(&q); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid quotation data")
		}

		if q.Currency == "" {
			q.Currency = "INR"
		}
		if q.Date == "" {
			q.Date = time.Now().Format("2006-01-02")
		}
		if strings.TrimSpace(q.PaymentTerms) == "" {
			q.PaymentTerms = GetCompanySettings(e.Request).PaymentTerms
		}

		if errors := validateQuotation(q); len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return e.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errors})
		}

		quotationNumber, err := services.GenerateQuotationNumber(app, time.Now())
		if err != nil {
			log.Printf("quotation_create: could not generate quotation number: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: could not find quotations collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("quotation_id", quotationNumber)
		record.Set("created_by", getRequestUserID(e.Request))
		if err := setQuotationFields(record, q); err != nil {
			log.Printf("quotation_create: could not marshal items: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation "+quotationNumber+" created")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotations/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.JSON(http.StatusOK, map[string]any{
			"id":          record.Id,
			"quotationId": quotationNumber,
		})
	}
}

// HandleQuotationSave replaces an existing quotation with the posted payload.
// The quotation number and authorship tag are immutable.
func HandleQuotationSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		var q services.Quotation
		if err := e.BindBody(&q); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid quotation data")
		}

		if q.Currency == "" {
			q.Currency = record.GetString("currency")
		}
		if strings.TrimSpace(q.PaymentTerms) == "" {
			q.PaymentTerms = GetCompanySettings(e.Request).PaymentTerms
		}

		if errors := validateQuotation(q); len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return e.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": errors})
		}

		if err := setQuotationFields(record, q); err != nil {
			log.Printf("quotation_create: could not marshal items: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: could not save quotation %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation saved")
		return e.JSON(http.StatusOK, map[string]any{"id": record.Id})
	}
}

// HandleQuotationDelete removes a quotation. Share links already handed out
// stay valid because they carry their own snapshot.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quotation_create: could not delete quotation %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation deleted")
		return e.String(http.StatusOK, "")
	}
}
