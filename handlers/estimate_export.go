package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"eventplanner/services"
)

// HandleEstimateExportExcel recomputes the posted estimate and downloads it
// as an Excel workbook.
// Route: POST /estimate/export/excel
func HandleEstimateExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildEstimateExport(e)
		if err != nil {
			return err
		}

		xlsxBytes, err := services.GenerateEstimateExcel(data)
		if err != nil {
			log.Printf("estimate_export: generate excel failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, estimateFilename(data, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleEstimateExportPDF recomputes the posted estimate and downloads it as
// a PDF.
// Route: POST /estimate/export/pdf
func HandleEstimateExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildEstimateExport(e)
		if err != nil {
			return err
		}

		pdfBytes, err := services.GenerateEstimatePDF(data)
		if err != nil {
			log.Printf("estimate_export: generate pdf failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, estimateFilename(data, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// buildEstimateExport re-parses the estimate form and recomputes the
// breakdown so the export never trusts client-side numbers.
func buildEstimateExport(e *core.RequestEvent) (services.EstimateExport, error) {
	var data services.EstimateExport

	input, err := parseEstimateForm(e)
	if err != nil {
		return data, err
	}

	rows, total, estErr := services.Estimate(
		services.DefaultCatalog(), input.Services, input.Guests, input.TierFactor)
	if estErr != nil {
		return data, ErrorToast(e, http.StatusBadRequest, estErr.Error())
	}

	eventType := input.EventType
	if eventType == "" {
		eventType = "Event"
	}

	data = services.EstimateExport{
		EventType:   eventType,
		TierName:    input.TierName,
		Guests:      input.Guests,
		CreatedDate: time.Now().Format("2006-01-02"),
		Rows:        rows,
		Total:       total,
	}
	return data, nil
}

func estimateFilename(data services.EstimateExport, ext string) string {
	return fmt.Sprintf("Estimate_%s_%s.%s",
		sanitizeFilename(data.EventType), data.CreatedDate, ext)
}

// sanitizeFilename keeps filenames safe for Content-Disposition: spaces
// become underscores and anything outside [A-Za-z0-9_-] is dropped.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Event"
	}
	return b.String()
}
