package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/collections"
	"leadpanel/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.BackfillQuotationTotals(app); err != nil {
			log.Printf("Warning: totals backfill failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Shared quotation view: token-only, no store, no session. Registered
		// before anything that could gate the request on identity.
		se.Router.GET("/quote/{token}", handlers.HandlePublicQuote())

		// Company settings are loaded once per request for everything below.
		se.Router.BindFunc(handlers.CompanySettingsMiddleware(app))

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard(app))

		// ── Lead CRUD ────────────────────────────────────────────
		se.Router.GET("/leads", handlers.HandleLeadList(app))
		se.Router.POST("/leads", handlers.HandleLeadCreate(app))
		se.Router.POST("/leads/{id}/status", handlers.HandleLeadStatusUpdate(app))
		se.Router.DELETE("/leads/{id}", handlers.HandleLeadDelete(app))

		// ── Quotation CRUD ───────────────────────────────────────
		se.Router.GET("/quotations", handlers.HandleQuotationList(app))
		se.Router.POST("/quotations", handlers.HandleQuotationCreate(app))
		se.Router.POST("/quotations/preview", handlers.HandleQuotationPreview(app))
		se.Router.GET("/quotations/export/excel", handlers.HandleQuotationRegisterExcel(app))
		se.Router.GET("/quotations/{id}/export/pdf", handlers.HandleQuotationExportPDF(app))
		se.Router.GET("/quotations/{id}/share", handlers.HandleQuotationShare(app))
		se.Router.POST("/quotations/{id}/save", handlers.HandleQuotationSave(app))
		se.Router.DELETE("/quotations/{id}", handlers.HandleQuotationDelete(app))

		// Quotation view (must be after specific /quotations/* routes)
		se.Router.GET("/quotations/{id}", handlers.HandleQuotationView(app))

		// ── Inventory (price list) ───────────────────────────────
		se.Router.GET("/inventory", handlers.HandleInventoryList(app))
		se.Router.POST("/inventory", handlers.HandleInventoryCreate(app))
		se.Router.DELETE("/inventory/{id}", handlers.HandleInventoryDelete(app))

		// ── Company settings ─────────────────────────────────────
		se.Router.GET("/settings", handlers.HandleSettingsGet(app))
		se.Router.POST("/settings", handlers.HandleSettingsSave(app))
		se.Router.POST("/settings/logo", handlers.HandleSettingsLogoUpload(app))

		// Redirect home to the dashboard
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/dashboard")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
