package handlers

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"eventplanner/services"
	"eventplanner/templates"
)

// TopVendorCount is how many ranked vendors the recommendation shows.
const TopVendorCount = 3

// defaultBudget pre-fills the recommendation form.
const defaultBudget = 500000

// HandleRecommendPage renders the vendor recommendation form.
// Route: GET /recommend
func HandleRecommendPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		total, err := app.CountRecords("vendors")
		if err != nil {
			log.Printf("recommend_page: could not count vendors: %v", err)
		}

		data := templates.RecommendFormData{
			EventTypes: services.EventTypeOptions,
			Cities:     vendorCities(app),
			Budget:     defaultBudget,
			HasVendors: total > 0,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.RecommendContent(data)
		} else {
			component = templates.RecommendPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleRecommend scores the vendor dataset against the submitted filters
// and returns the ranked results partial.
// Route: POST /recommend
func HandleRecommend(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		eventType := strings.TrimSpace(e.Request.FormValue("event_type"))
		city := strings.TrimSpace(e.Request.FormValue("city"))
		budget, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue("budget")))
		if err != nil || budget <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Budget must be a positive number")
		}
		if eventType == "" {
			return ErrorToast(e, http.StatusBadRequest, "Please pick an event type")
		}

		records, err := app.FindRecordsByFilter("vendors", "1=1", "created", 0, 0, nil)
		if err != nil {
			log.Printf("recommend: could not query vendors: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		ranked := services.ScoreVendors(services.VendorsFromRecords(records), eventType, budget, city)
		if len(ranked) > TopVendorCount {
			ranked = ranked[:TopVendorCount]
		}

		items := make([]templates.ScoredVendorItem, 0, len(ranked))
		for _, sv := range ranked {
			items = append(items, templates.ScoredVendorItem{
				Name:      sv.Name,
				City:      sv.City,
				Rating:    sv.Rating,
				MinBudget: services.FormatINRWhole(float64(sv.MinBudget)),
				MaxBudget: services.FormatINRWhole(float64(sv.MaxBudget)),
				Contact:   sv.Contact,
				Score:     sv.Score,
			})
		}

		var checklist []templates.ChecklistItem
		for _, entry := range services.Checklist(eventType) {
			checklist = append(checklist, templates.ChecklistItem{When: entry.When, Task: entry.Task})
		}

		data := templates.RecommendResultsData{
			EventType: eventType,
			City:      city,
			Budget:    services.FormatINRWhole(float64(budget)),
			TopN:      len(items),
			Vendors:   items,
			Checklist: checklist,
		}
		return templates.RecommendResults(data).Render(e.Request.Context(), e.Response)
	}
}

// vendorCities returns the distinct vendor cities, sorted, for the city
// dropdown.
func vendorCities(app *pocketbase.PocketBase) []string {
	records, err := app.FindRecordsByFilter("vendors", "1=1", "city", 0, 0, nil)
	if err != nil {
		log.Printf("recommend: could not query vendor cities: %v", err)
		return nil
	}

	seen := make(map[string]bool)
	var cities []string
	for _, rec := range records {
		city := strings.TrimSpace(rec.GetString("city"))
		if city == "" || seen[strings.ToLower(city)] {
			continue
		}
		seen[strings.ToLower(city)] = true
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}
