package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadpanel/testhelpers"
)

func TestHandleDashboard(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestLead(t, app, "Asha Rao", "New")
	testhelpers.CreateTestLead(t, app, "Ravi Kumar", "New")
	testhelpers.CreateTestLead(t, app, "Meera Iyer", "Interested")
	testhelpers.CreateTestLead(t, app, "Vikram Shah", "Pending Payment")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	if err := HandleDashboard(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Stats struct {
			Total          int `json:"total"`
			New            int `json:"new"`
			Interested     int `json:"interested"`
			PendingPayment int `json:"pendingPayment"`
		} `json:"stats"`
		Distribution []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"distribution"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("could not decode dashboard response: %v", err)
	}

	if payload.Stats.Total != 4 || payload.Stats.New != 2 || payload.Stats.Interested != 1 || payload.Stats.PendingPayment != 1 {
		t.Errorf("unexpected stats: %+v", payload.Stats)
	}
	if len(payload.Distribution) != 3 {
		t.Errorf("expected 3 distribution buckets, got %d", len(payload.Distribution))
	}
	if payload.Distribution[0].Name != "New" || payload.Distribution[0].Count != 2 {
		t.Errorf("expected New first with count 2, got %+v", payload.Distribution[0])
	}
}

func TestHandleDashboard_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	if err := HandleDashboard(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), `"total":0`)
}
