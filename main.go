package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"eventplanner/collections"
	"eventplanner/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the vendor dataset on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: vendor dataset seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Vendor recommendation ────────────────────────────────
		se.Router.GET("/recommend", handlers.HandleRecommendPage(app))
		se.Router.POST("/recommend", handlers.HandleRecommend(app))

		// ── Cost estimation & negotiation ────────────────────────
		se.Router.GET("/estimate", handlers.HandleEstimatePage(app))
		se.Router.POST("/estimate", handlers.HandleEstimate(app))
		se.Router.POST("/negotiate", handlers.HandleNegotiate(app))
		se.Router.POST("/estimate/export/excel", handlers.HandleEstimateExportExcel(app))
		se.Router.POST("/estimate/export/pdf", handlers.HandleEstimateExportPDF(app))

		// ── Vendor dataset ───────────────────────────────────────
		se.Router.GET("/vendors", handlers.HandleVendorList(app))
		se.Router.GET("/vendors/export", handlers.HandleVendorExportExcel(app))
		se.Router.GET("/vendors/template", handlers.HandleVendorTemplateDownload(app))

		// Dataset import - upload & validate, commit, error report
		se.Router.GET("/vendors/import", handlers.HandleVendorImportPage(app))
		se.Router.POST("/vendors/import", handlers.HandleVendorValidate(app))
		se.Router.POST("/vendors/import/commit", handlers.HandleVendorImportCommit(app))
		se.Router.POST("/vendors/import/errors", handlers.HandleVendorErrorReport(app))

		// Vendor delete (after the specific /vendors/* routes)
		se.Router.DELETE("/vendors/{id}", handlers.HandleVendorDelete(app))

		// Redirect home to the recommendation page
		se.Router.GET("/", handlers.HandleHome(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
