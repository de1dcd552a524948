package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"eventplanner/services"
	"eventplanner/templates"
)

// HandleVendorList renders the vendor directory, optionally filtered by a
// search query over name, city and event types.
// Route: GET /vendors
func HandleVendorList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		var records []*core.Record
		var err error

		if searchQuery != "" {
			records, err = app.FindRecordsByFilter(
				"vendors",
				"name ~ {:q} || city ~ {:q} || event_types ~ {:q}",
				"name",
				0, 0,
				map[string]any{"q": searchQuery},
			)
		} else {
			records, err = app.FindRecordsByFilter(
				"vendors",
				"1=1",
				"name",
				0, 0,
				nil,
			)
		}
		if err != nil {
			log.Printf("vendor_list: could not query vendors: %v", err)
			records = nil
		}

		var items []templates.VendorListItem
		for _, rec := range records {
			v := services.VendorFromRecord(rec)
			items = append(items, templates.VendorListItem{
				ID:         v.ID,
				Name:       v.Name,
				City:       v.City,
				EventTypes: strings.Join(v.EventTypes, ", "),
				Rating:     v.Rating,
				MinBudget:  services.FormatINRWhole(float64(v.MinBudget)),
				MaxBudget:  services.FormatINRWhole(float64(v.MaxBudget)),
				Contact:    v.Contact,
			})
		}

		data := templates.VendorListData{
			Vendors:     items,
			SearchQuery: searchQuery,
			TotalCount:  len(items),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.VendorListContent(data)
		} else {
			component = templates.VendorListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
