package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leadpanel/services"
	"leadpanel/testhelpers"
)

func quotationJSON(t *testing.T, method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func TestHandleQuotationCreate_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	body := `{
		"clientName": "Asha Rao",
		"clientEmail": "asha@example.com",
		"currency": "INR",
		"items": [{"description": "Modular Kitchen", "sac": "995473", "qty": 2, "price": 100, "taxRate": 18}],
		"cgstRate": 9,
		"sgstRate": 9
	}`
	req, rec := quotationJSON(t, http.MethodPost, "/quotations", body)

	if err := HandleQuotationCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	year := time.Now().Format("2006")
	testhelpers.AssertBodyContains(t, rec.Body.String(), "QUO-"+year+"-0001")

	records, err := app.FindAllRecords("quotations")
	if err != nil || len(records) != 1 {
		t.Fatalf("expected 1 quotation in db, got %d (err: %v)", len(records), err)
	}
	saved := records[0]
	if got := saved.GetFloat("subtotal"); got != 200 {
		t.Errorf("subtotal = %f, want 200", got)
	}
	if got := saved.GetFloat("grand_total"); got != 272 {
		t.Errorf("grand_total = %f, want 272", got)
	}
	if got := saved.GetString("created_by"); got != AnonymousUserID {
		t.Errorf("created_by = %q, want %q", got, AnonymousUserID)
	}
}

func TestHandleQuotationCreate_SequentialNumbers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	year := time.Now().Format("2006")

	for i, want := range []string{"QUO-" + year + "-0001", "QUO-" + year + "-0002"} {
		req, rec := quotationJSON(t, http.MethodPost, "/quotations", `{"clientName": "Client", "currency": "INR"}`)
		if err := HandleQuotationCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("create %d returned error: %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("create %d: expected 200, got %d: %s", i+1, rec.Code, rec.Body.String())
		}
		testhelpers.AssertBodyContains(t, rec.Body.String(), want)
	}
}

func TestHandleQuotationCreate_MissingClientName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req, rec := quotationJSON(t, http.MethodPost, "/quotations", `{"currency": "INR"}`)

	if err := HandleQuotationCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "Client name is required")
}

func TestHandleQuotationCreate_GarbageNumbersCoerceToZero(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	body := `{
		"clientName": "Asha",
		"items": [{"description": "Sofa", "qty": "abc", "price": "100", "taxRate": null}]
	}`
	req, rec := quotationJSON(t, http.MethodPost, "/quotations", body)

	if err := HandleQuotationCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	records, _ := app.FindAllRecords("quotations")
	if len(records) != 1 {
		t.Fatalf("expected 1 quotation in db, got %d", len(records))
	}
	if got := records[0].GetFloat("grand_total"); got != 0 {
		t.Errorf("grand_total = %f, want 0 (qty coerced to zero)", got)
	}
	if got := records[0].GetString("currency"); got != "INR" {
		t.Errorf("currency = %q, want default INR", got)
	}
}

func TestHandleQuotationSave_FullReplacement(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	items := []services.LineItem{{Description: "Old item", Qty: 1, Price: 500}}
	orig := testhelpers.CreateTestQuotation(t, app, "QUO-2026-0001", "Asha", items, services.TaxConfig{})

	body := `{
		"clientName": "Asha Rao",
		"currency": "USD",
		"items": [{"description": "New item", "qty": 3, "price": 10, "taxRate": 0}],
		"igstRate": 10
	}`
	req, rec := quotationJSON(t, http.MethodPost, "/quotations/"+orig.Id+"/save", body)
	req.SetPathValue("id", orig.Id)

	if err := HandleQuotationSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	saved, err := app.FindRecordById("quotations", orig.Id)
	if err != nil {
		t.Fatalf("could not reload quotation: %v", err)
	}
	if got := saved.GetString("quotation_id"); got != "QUO-2026-0001" {
		t.Errorf("quotation_id changed on save: %q", got)
	}
	if got := saved.GetString("client_name"); got != "Asha Rao" {
		t.Errorf("client_name = %q, want %q", got, "Asha Rao")
	}
	if got := saved.GetFloat("subtotal"); got != 30 {
		t.Errorf("subtotal = %f, want 30 (items fully replaced)", got)
	}
	if got := saved.GetFloat("grand_total"); got != 33 {
		t.Errorf("grand_total = %f, want 33", got)
	}
}

func TestHandleQuotationDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec0 := testhelpers.CreateTestQuotation(t, app, "QUO-2026-0001", "Asha", nil, services.TaxConfig{})

	req := httptest.NewRequest(http.MethodDelete, "/quotations/"+rec0.Id, nil)
	req.SetPathValue("id", rec0.Id)
	rec := httptest.NewRecorder()

	if err := HandleQuotationDelete(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("quotations", rec0.Id); err == nil {
		t.Error("expected quotation to be deleted")
	}
}

func TestHandleQuotationView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	items := []services.LineItem{{Description: "Wardrobe", Qty: 1, Price: 45000, TaxRate: 18}}
	rec0 := testhelpers.CreateTestQuotation(t, app, "QUO-2026-0003", "Ravi", items, services.TaxConfig{CGSTRate: 9, SGSTRate: 9})

	req := httptest.NewRequest(http.MethodGet, "/quotations/"+rec0.Id, nil)
	req.SetPathValue("id", rec0.Id)
	rec := httptest.NewRecorder()

	if err := HandleQuotationView(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "QUO-2026-0003", "Ravi", "Wardrobe")
}

func TestHandleQuotationList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuotation(t, app, "QUO-2026-0001", "Asha", nil, services.TaxConfig{})
	testhelpers.CreateTestQuotation(t, app, "QUO-2026-0002", "Ravi", nil, services.TaxConfig{})

	req := httptest.NewRequest(http.MethodGet, "/quotations", nil)
	rec := httptest.NewRecorder()

	if err := HandleQuotationList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "QUO-2026-0001", "QUO-2026-0002")
}

func TestHandleQuotationPreview(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	body := `{
		"items": [{"description": "Sofa", "qty": 2, "price": 100, "taxRate": 18}],
		"cgstRate": 9,
		"sgstRate": 9
	}`
	req, rec := quotationJSON(t, http.MethodPost, "/quotations/preview", body)

	if err := HandleQuotationPreview(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), `"total":272`, `"subtotal":200`)

	if count, _ := app.FindAllRecords("quotations"); len(count) != 0 {
		t.Errorf("preview must not persist anything, found %d records", len(count))
	}
}
