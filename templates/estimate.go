package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ServiceOption is one selectable service on the estimation form.
type ServiceOption struct {
	Name       string
	PriceLabel string
	Selected   bool
}

// EstimateFormData drives the cost estimation form.
type EstimateFormData struct {
	EventTypes []string
	Services   []ServiceOption
	Tiers      []string
	Guests     int
}

// BreakdownItem is one preformatted row of the cost breakdown table.
type BreakdownItem struct {
	Service string
	Unit    string
	Cost    string
}

// EstimateResultsData drives the breakdown partial. The raw form values are
// carried along as hidden fields so the export and negotiation forms can
// re-submit the same estimate.
type EstimateResultsData struct {
	Rows          []BreakdownItem
	Total         string
	TotalRaw      string
	TierName      string
	Guests        int
	EventType     string
	ServiceNames  []string
	DefaultQuote  string
}

// NegotiationResultData drives the advice partial.
type NegotiationResultData struct {
	Category     string
	Message      string
	CounterOffer string
	ShowCounter  bool
}

// EstimatePage renders the full estimation & negotiation page.
func EstimatePage(data EstimateFormData) templ.Component {
	return Layout("Estimation & Negotiation", "estimate", EstimateContent(data))
}

// EstimateContent renders the estimation form partial.
func EstimateContent(data EstimateFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<section id="estimate">
<h1>💰 Estimation &amp; Negotiation</h1>
<h2>1. Estimate Your Event Cost</h2>
<form hx-post="/estimate" hx-target="#estimate-results" hx-swap="innerHTML">
<label>Event type
<select name="event_type">`)
		for _, et := range data.EventTypes {
			fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(et), esc(et))
		}

		fmt.Fprintf(w, `</select>
</label>
<label>Number of guests
<input type="number" name="guests" min="10" max="5000" step="10" value="%d">
</label>
<fieldset>
<legend>Service tier</legend>`, data.Guests)
		for i, tier := range data.Tiers {
			checked := ""
			if i == 1 {
				checked = " checked"
			}
			fmt.Fprintf(w, `<label class="inline"><input type="radio" name="tier" value="%s"%s> %s</label>`,
				esc(tier), checked, esc(tier))
		}

		fmt.Fprint(w, `</fieldset>
<fieldset>
<legend>Select services required</legend>`)
		for _, svc := range data.Services {
			checked := ""
			if svc.Selected {
				checked = " checked"
			}
			fmt.Fprintf(w, `<label class="inline"><input type="checkbox" name="services" value="%s"%s> %s <span class="muted">(%s)</span></label>`,
				esc(svc.Name), checked, esc(svc.Name), esc(svc.PriceLabel))
		}

		_, err := fmt.Fprint(w, `</fieldset>
<button type="submit" class="btn btn-primary">Estimate Cost</button>
</form>
<div id="estimate-results"></div>
</section>`)
		return err
	})
}

// EstimateResults renders the breakdown table, export buttons and the
// negotiation form.
func EstimateResults(data EstimateResultsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="estimate-summary">
<p class="ok">Estimated total cost: <strong>%s</strong> (Tier: %s)</p>
<table class="data-table">
<thead><tr><th>Service</th><th>Unit</th><th>Cost (₹)</th></tr></thead>
<tbody>
`, esc(data.Total), esc(data.TierName))

		for _, r := range data.Rows {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>
`, esc(r.Service), esc(r.Unit), esc(r.Cost))
		}
		fmt.Fprint(w, `</tbody>
</table>
`)

		// Export forms re-submit the estimate inputs as regular posts so the
		// browser handles the file download.
		for _, export := range []struct{ action, label string }{
			{"/estimate/export/excel", "Export Excel"},
			{"/estimate/export/pdf", "Export PDF"},
		} {
			fmt.Fprintf(w, `<form class="inline" method="post" action="%s">`, export.action)
			writeEstimateFields(w, data)
			fmt.Fprintf(w, `<button type="submit" class="btn">%s</button>
</form>
`, export.label)
		}

		fmt.Fprintf(w, `<h2>2. Negotiate With Vendor</h2>
<form hx-post="/negotiate" hx-target="#negotiate-result" hx-swap="innerHTML">
<input type="hidden" name="estimate_total" value="%s">
<label>Vendor's quoted total (INR)
<input type="number" name="vendor_quote" min="0" step="1000" value="%s">
</label>
<button type="submit" class="btn btn-primary">Negotiate</button>
</form>
<div id="negotiate-result"></div>
</div>`, esc(data.TotalRaw), esc(data.DefaultQuote))
		return nil
	})
}

func writeEstimateFields(w io.Writer, data EstimateResultsData) {
	fmt.Fprintf(w, `<input type="hidden" name="event_type" value="%s">`, esc(data.EventType))
	fmt.Fprintf(w, `<input type="hidden" name="guests" value="%d">`, data.Guests)
	fmt.Fprintf(w, `<input type="hidden" name="tier" value="%s">`, esc(data.TierName))
	for _, svc := range data.ServiceNames {
		fmt.Fprintf(w, `<input type="hidden" name="services" value="%s">`, esc(svc))
	}
}

// NegotiationResult renders the advice partial.
func NegotiationResult(data NegotiationResultData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="advice advice-%s">
<p>%s</p>
`, esc(data.Category), esc(data.Message))

		if data.ShowCounter {
			fmt.Fprintf(w, `<p>💡 Suggested counter-offer: <strong>%s</strong></p>
`, esc(data.CounterOffer))
		}

		_, err := fmt.Fprint(w, `</div>`)
		return err
	})
}
