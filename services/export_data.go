package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuotationFromRecord maps a stored quotation record to the snapshot struct.
// Totals are recomputed from items + rates rather than read back, so exports
// and share tokens never show stale derived values.
func QuotationFromRecord(rec *core.Record) (Quotation, error) {
	var items []LineItem
	if err := rec.UnmarshalJSONField("items", &items); err != nil {
		return Quotation{}, fmt.Errorf("quotation %s items: %w", rec.Id, err)
	}

	cfg := TaxConfig{
		CGSTRate: Amount(rec.GetFloat("cgst_rate")),
		SGSTRate: Amount(rec.GetFloat("sgst_rate")),
		IGSTRate: Amount(rec.GetFloat("igst_rate")),
	}

	return Quotation{
		QuotationID:   rec.GetString("quotation_id"),
		LeadID:        rec.GetString("lead"),
		ClientName:    rec.GetString("client_name"),
		ClientEmail:   rec.GetString("client_email"),
		ClientCompany: rec.GetString("client_company"),
		ClientAddress: rec.GetString("client_address"),
		Date:          rec.GetString("date"),
		Currency:      rec.GetString("currency"),
		Items:         items,
		TaxConfig:     cfg,
		PaymentTerms:  rec.GetString("payment_terms"),
		Totals:        CalcTotals(items, cfg),
		CreatedAt:     rec.GetString("created"),
	}, nil
}

// ProfileFromRecord maps the settings singleton to a CompanyProfile.
func ProfileFromRecord(rec *core.Record) CompanyProfile {
	return CompanyProfile{
		Name:         rec.GetString("name"),
		Address:      rec.GetString("address"),
		GSTIN:        rec.GetString("gstin"),
		PaymentTerms: rec.GetString("payment_terms"),
		LogoDataURI:  rec.GetString("logo_data_uri"),
	}
}

// QuotationExport holds everything the PDF renderer needs for one quotation.
type QuotationExport struct {
	Quotation Quotation
	Company   CompanyProfile
	Items     []ExportLineItem
}

// ExportLineItem is one rendered row of the quotation items table.
type ExportLineItem struct {
	SINo        int
	Description string
	SAC         string
	Qty         float64
	Price       float64
	TaxPercent  float64
	LineTotal   float64
	TaxAmount   float64
	Total       float64
}

// BuildQuotationExport assembles the PDF export payload for a quotation.
func BuildQuotationExport(app *pocketbase.PocketBase, quotationId string) (*QuotationExport, error) {
	rec, err := app.FindRecordById("quotations", quotationId)
	if err != nil {
		return nil, fmt.Errorf("quotation not found: %w", err)
	}

	q, err := QuotationFromRecord(rec)
	if err != nil {
		return nil, err
	}

	var company CompanyProfile
	settings, err := app.FindFirstRecordByFilter("settings", "id != ''")
	if err != nil {
		log.Printf("export_data: could not load company settings: %v", err)
	} else {
		company = ProfileFromRecord(settings)
	}

	items := make([]ExportLineItem, 0, len(q.Items))
	for i, item := range q.Items {
		calc := CalcLineItem(item)
		items = append(items, ExportLineItem{
			SINo:        i + 1,
			Description: item.Description,
			SAC:         item.SAC,
			Qty:         float64(item.Qty),
			Price:       float64(item.Price),
			TaxPercent:  float64(item.TaxRate),
			LineTotal:   calc.LineTotal,
			TaxAmount:   calc.TaxAmount,
			Total:       calc.Total,
		})
	}

	return &QuotationExport{
		Quotation: q,
		Company:   company,
		Items:     items,
	}, nil
}

// RegisterRow is one row of the quotations register export.
type RegisterRow struct {
	QuotationID string
	Date        string
	ClientName  string
	Company     string
	Currency    string
	Subtotal    float64
	TotalTax    float64
	GrandTotal  float64
}

// BuildQuotationRegister assembles the register rows for the Excel export,
// newest first. Records with unreadable items are logged and skipped so one
// corrupt document cannot block the whole export.
func BuildQuotationRegister(app *pocketbase.PocketBase) ([]RegisterRow, error) {
	records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch quotations: %w", err)
	}

	rows := make([]RegisterRow, 0, len(records))
	for _, rec := range records {
		q, err := QuotationFromRecord(rec)
		if err != nil {
			log.Printf("export_data: skipping quotation %s: %v", rec.Id, err)
			continue
		}
		rows = append(rows, RegisterRow{
			QuotationID: q.QuotationID,
			Date:        q.Date,
			ClientName:  q.ClientName,
			Company:     q.ClientCompany,
			Currency:    q.Currency,
			Subtotal:    q.Subtotal,
			TotalTax:    q.TotalTax,
			GrandTotal:  q.GrandTotal,
		})
	}
	return rows, nil
}
