package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"eventplanner/services"
)

// HandleVendorExportExcel downloads the whole vendor dataset as an Excel
// file.
// Route: GET /vendors/export
func HandleVendorExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("vendors", "1=1", "name", 0, 0, nil)
		if err != nil {
			log.Printf("vendor_export: query failed: %v", err)
			records = nil
		}

		xlsxBytes, err := services.GenerateVendorExcel(services.VendorsFromRecords(records))
		if err != nil {
			log.Printf("vendor_export: generate failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Vendors_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleVendorTemplateDownload serves the Excel template for the vendor
// dataset import.
// Route: GET /vendors/template
func HandleVendorTemplateDownload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateVendorTemplate()
		if err != nil {
			log.Printf("vendor_template: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}

		filename := fmt.Sprintf("Vendor_Template_%d.xlsx", time.Now().Year())

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
