package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// RecommendFormData drives the vendor recommendation form.
type RecommendFormData struct {
	EventTypes []string
	Cities     []string
	Budget     int
	HasVendors bool
}

// ScoredVendorItem is one row of the ranked vendor table, preformatted for
// display.
type ScoredVendorItem struct {
	Name      string
	City      string
	Rating    float64
	MinBudget string
	MaxBudget string
	Contact   string
	Score     float64
}

// ChecklistItem is one step of the planning mini-checklist.
type ChecklistItem struct {
	When string
	Task string
}

// RecommendResultsData drives the ranked results partial.
type RecommendResultsData struct {
	EventType string
	City      string
	Budget    string
	TopN      int
	Vendors   []ScoredVendorItem
	Checklist []ChecklistItem
}

// RecommendPage renders the full vendor recommendation page.
func RecommendPage(data RecommendFormData) templ.Component {
	return Layout("Vendor Recommendation", "recommend", RecommendContent(data))
}

// RecommendContent renders the recommendation form partial.
func RecommendContent(data RecommendFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<section id="recommend">
<h1>🏆 Vendor Recommendation</h1>
`)

		if !data.HasVendors {
			fmt.Fprint(w, `<p class="empty">Import a vendor dataset to use this feature.</p>
<a class="btn btn-primary" href="/vendors/import">Import Dataset</a>
</section>`)
			return nil
		}

		fmt.Fprint(w, `<form hx-post="/recommend" hx-target="#recommend-results" hx-swap="innerHTML">
<label>Event type
<select name="event_type">`)
		for _, et := range data.EventTypes {
			fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(et), esc(et))
		}
		fmt.Fprintf(w, `</select>
</label>
<label>Budget (INR)
<input type="number" name="budget" min="10000" step="5000" value="%d">
</label>
<label>City
<select name="city">`, data.Budget)
		for _, c := range data.Cities {
			fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(c), esc(c))
		}

		_, err := fmt.Fprint(w, `</select>
</label>
<button type="submit" class="btn btn-primary">Recommend Vendors</button>
</form>
<div id="recommend-results"></div>
</section>`)
		return err
	})
}

// RecommendResults renders the ranked vendor table and mini-checklist.
func RecommendResults(data RecommendResultsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(data.Vendors) == 0 {
			_, err := fmt.Fprint(w,
				`<p class="empty">No vendors fit those filters. Try tweaking budget or city.</p>`)
			return err
		}

		fmt.Fprintf(w, `<h2>Top %d vendors for a %s in %s (%s budget)</h2>
<table class="data-table">
<thead><tr><th>Vendor</th><th>City</th><th>⭐ Rating</th><th>Min Budget</th><th>Max Budget</th><th>Contact</th></tr></thead>
<tbody>
`, data.TopN, esc(data.EventType), esc(data.City), esc(data.Budget))

		for _, v := range data.Vendors {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%.1f</td><td>%s</td><td>%s</td><td>%s</td></tr>
`, esc(v.Name), esc(v.City), v.Rating, esc(v.MinBudget), esc(v.MaxBudget), esc(v.Contact))
		}

		fmt.Fprint(w, `</tbody>
</table>
<h3>🗓️ Mini-checklist</h3>
<ul class="checklist">
`)
		for _, entry := range data.Checklist {
			fmt.Fprintf(w, `<li><strong>%s</strong> — %s</li>
`, esc(entry.When), esc(entry.Task))
		}

		_, err := fmt.Fprint(w, `</ul>`)
		return err
	})
}
