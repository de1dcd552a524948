package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"eventplanner/services"
	"eventplanner/templates"
)

// Guest count bounds accepted by the estimation form.
const (
	minGuests = 10
	maxGuests = 5000
)

// defaultGuests pre-fills the estimation form.
const defaultGuests = 150

// HandleEstimatePage renders the cost estimation form.
// Route: GET /estimate
func HandleEstimatePage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		catalog := services.DefaultCatalog()

		options := make([]templates.ServiceOption, 0, len(services.ServiceOptions))
		for _, name := range services.ServiceOptions {
			def := catalog[name]
			label := services.FormatINRWhole(def.Base)
			if def.Unit == services.UnitPerGuest {
				label += " / guest"
			} else {
				label += " flat"
			}
			options = append(options, templates.ServiceOption{
				Name:       name,
				PriceLabel: label,
			})
		}

		data := templates.EstimateFormData{
			EventTypes: services.EventTypeOptions,
			Services:   options,
			Tiers:      services.TierOptions,
			Guests:     defaultGuests,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.EstimateContent(data)
		} else {
			component = templates.EstimatePage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleEstimate computes the cost breakdown for the submitted services and
// returns the results partial.
// Route: POST /estimate
func HandleEstimate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		input, err := parseEstimateForm(e)
		if err != nil {
			return err
		}

		rows, total, estErr := services.Estimate(
			services.DefaultCatalog(), input.Services, input.Guests, input.TierFactor)
		if estErr != nil {
			return ErrorToast(e, http.StatusBadRequest, estErr.Error())
		}

		items := make([]templates.BreakdownItem, 0, len(rows))
		for _, r := range rows {
			items = append(items, templates.BreakdownItem{
				Service: r.Service,
				Unit:    r.Unit.Label(),
				Cost:    services.FormatINR(r.Cost),
			})
		}

		data := templates.EstimateResultsData{
			Rows:         items,
			Total:        services.FormatINR(total),
			TotalRaw:     strconv.FormatFloat(total, 'f', 2, 64),
			TierName:     input.TierName,
			Guests:       input.Guests,
			EventType:    input.EventType,
			ServiceNames: input.Services,
			DefaultQuote: strconv.FormatFloat(total, 'f', 0, 64),
		}
		return templates.EstimateResults(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleNegotiate classifies a vendor quote against the estimate total and
// returns the advice partial.
// Route: POST /negotiate
func HandleNegotiate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		estimateTotal, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue("estimate_total")), 64)
		if err != nil || estimateTotal <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Estimate the cost first, then negotiate")
		}
		vendorQuote, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue("vendor_quote")), 64)
		if err != nil || vendorQuote <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Vendor quote must be a positive amount")
		}

		advice, counter := services.Negotiate(estimateTotal, vendorQuote)

		var data templates.NegotiationResultData
		switch advice {
		case services.AdviceAccept:
			data = templates.NegotiationResultData{
				Category: "accept",
				Message: fmt.Sprintf("✅ %s is a fair quote for your %s estimate. Accept it.",
					services.FormatINRWhole(vendorQuote), services.FormatINRWhole(estimateTotal)),
			}
		case services.AdviceCounterModerate:
			data = templates.NegotiationResultData{
				Category: "moderate",
				Message: fmt.Sprintf("🤝 %s is above your %s estimate but within haggling range.",
					services.FormatINRWhole(vendorQuote), services.FormatINRWhole(estimateTotal)),
				CounterOffer: services.FormatINRWhole(counter),
				ShowCounter:  true,
			}
		default:
			data = templates.NegotiationResultData{
				Category: "firm",
				Message: fmt.Sprintf("⚠️ %s is well above your %s estimate. Counter firmly or consider other vendors.",
					services.FormatINRWhole(vendorQuote), services.FormatINRWhole(estimateTotal)),
				CounterOffer: services.FormatINRWhole(counter),
				ShowCounter:  true,
			}
		}
		return templates.NegotiationResult(data).Render(e.Request.Context(), e.Response)
	}
}

// estimateInput carries the validated estimation form fields.
type estimateInput struct {
	EventType  string
	Services   []string
	Guests     int
	TierName   string
	TierFactor float64
}

// parseEstimateForm validates the shared estimation fields used by the
// estimate and export handlers. On failure it writes the error response and
// returns a non-nil error.
func parseEstimateForm(e *core.RequestEvent) (estimateInput, error) {
	var input estimateInput

	if err := e.Request.ParseForm(); err != nil {
		return input, ErrorToast(e, http.StatusBadRequest, "Invalid form data")
	}

	guests, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue("guests")))
	if err != nil || guests < minGuests || guests > maxGuests {
		return input, ErrorToast(e, http.StatusBadRequest,
			fmt.Sprintf("Guest count must be between %d and %d", minGuests, maxGuests))
	}

	tierName := strings.TrimSpace(e.Request.FormValue("tier"))
	tierFactor, ok := services.DefaultTiers()[tierName]
	if !ok {
		return input, ErrorToast(e, http.StatusBadRequest, "Unknown service tier")
	}

	selected := e.Request.Form["services"]
	if len(selected) == 0 {
		return input, ErrorToast(e, http.StatusBadRequest, "Select at least one service")
	}

	input.EventType = strings.TrimSpace(e.Request.FormValue("event_type"))
	input.Services = selected
	input.Guests = guests
	input.TierName = tierName
	input.TierFactor = tierFactor
	return input, nil
}
