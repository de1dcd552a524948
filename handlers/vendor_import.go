package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"eventplanner/services"
	"eventplanner/templates"
)

// HandleVendorImportPage renders the dataset upload form.
// Route: GET /vendors/import
func HandleVendorImportPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Request.Header.Get("HX-Request") == "true" {
			return templates.VendorImportContent().Render(e.Request.Context(), e.Response)
		}
		return templates.VendorImportPage().Render(e.Request.Context(), e.Response)
	}
}

// HandleVendorValidate receives a file upload, validates it, and returns the
// validation results as an HTMX partial.
// Route: POST /vendors/import
func HandleVendorValidate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ParseVendorFile(file, header.Filename)
		if err != nil {
			var malformed *services.MalformedDatasetError
			if errors.As(err, &malformed) {
				return ErrorToast(e, http.StatusBadRequest, malformed.Error())
			}
			log.Printf("vendor_validate: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		// Serialize parsed rows for the commit form, errors for the report
		// download.
		var parsedRowsJSON, errorsJSON string
		if result.ErrorRows == 0 {
			if b, err := json.Marshal(result.ParsedRows); err != nil {
				log.Printf("vendor_validate: marshal parsed rows: %v", err)
			} else {
				parsedRowsJSON = string(b)
			}
		} else {
			if b, err := json.Marshal(result.Errors); err != nil {
				log.Printf("vendor_validate: marshal errors: %v", err)
			} else {
				errorsJSON = string(b)
			}
		}

		component := templates.VendorValidationResults(result, parsedRowsJSON, errorsJSON)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleVendorImportCommit re-validates and batch-inserts the uploaded
// vendors. Nothing is written if any row fails.
// Route: POST /vendors/import/commit
func HandleVendorImportCommit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		parsedJSON := e.Request.FormValue("parsed_rows_json")
		if parsedJSON == "" {
			return ErrorToast(e, http.StatusBadRequest,
				"File data missing. Please re-upload and try again.")
		}

		var parsedRows []map[string]string
		if err := json.Unmarshal([]byte(parsedJSON), &parsedRows); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid parsed data")
		}

		result, err := services.CommitVendorImport(app, parsedRows)
		if err != nil {
			log.Printf("vendor_import_commit: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if len(result.Errors) > 0 {
			return ErrorToast(e, http.StatusBadRequest,
				"Rows failed validation on commit. Please re-upload the file.")
		}

		SetToast(e, "success", fmt.Sprintf("%d vendors imported", result.Inserted))
		return templates.VendorImportCommitted(result.Inserted).Render(e.Request.Context(), e.Response)
	}
}

// HandleVendorErrorReport downloads the validation errors as an Excel file.
// Route: POST /vendors/import/errors
func HandleVendorErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		errorsJSON := e.Request.FormValue("errors_json")
		if errorsJSON == "" {
			return ErrorToast(e, http.StatusBadRequest, "No validation errors to report")
		}

		var validationErrors []services.ValidationError
		if err := json.Unmarshal([]byte(errorsJSON), &validationErrors); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid error data")
		}

		xlsxBytes, err := services.GenerateErrorReport(validationErrors)
		if err != nil {
			log.Printf("vendor_error_report: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Vendor_Import_Errors_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
