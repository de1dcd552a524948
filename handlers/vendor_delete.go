package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleVendorDelete removes a vendor from the dataset.
// Route: DELETE /vendors/{id}
func HandleVendorDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		vendorID := e.Request.PathValue("id")
		if vendorID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing vendor ID")
		}

		record, err := app.FindRecordById("vendors", vendorID)
		if err != nil {
			log.Printf("vendor_delete: could not find vendor %s: %v", vendorID, err)
			return ErrorToast(e, http.StatusNotFound, "Vendor not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("vendor_delete: failed to delete vendor %s: %v", vendorID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("vendor_delete: deleted vendor %s", vendorID)

		SetToast(e, "success", "Vendor removed")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/vendors")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/vendors")
	}
}
