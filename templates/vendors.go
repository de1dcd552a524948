package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// VendorListItem is one row of the vendor directory table.
type VendorListItem struct {
	ID         string
	Name       string
	City       string
	EventTypes string
	Rating     float64
	MinBudget  string
	MaxBudget  string
	Contact    string
}

// VendorListData drives the vendor directory page.
type VendorListData struct {
	Vendors     []VendorListItem
	SearchQuery string
	TotalCount  int
}

// VendorListPage renders the full vendor directory page.
func VendorListPage(data VendorListData) templ.Component {
	return Layout("Vendors", "vendors", VendorListContent(data))
}

// VendorListContent renders the vendor directory partial.
func VendorListContent(data VendorListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<section id="vendor-list">
<div class="page-head">
<h1>Vendor Directory</h1>
<div class="actions">
<a class="btn" href="/vendors/template">Download Template</a>
<a class="btn" href="/vendors/export">Export Excel</a>
<a class="btn btn-primary" href="/vendors/import">Import Dataset</a>
</div>
</div>
`)

		fmt.Fprintf(w, `<form class="search" hx-get="/vendors" hx-target="#vendor-list" hx-swap="outerHTML">
<input type="search" name="q" value="%s" placeholder="Search by name, city or event type">
<button type="submit" class="btn">Search</button>
</form>
`, esc(data.SearchQuery))

		if len(data.Vendors) == 0 {
			if data.SearchQuery != "" {
				fmt.Fprint(w, `<p class="empty">No vendors match your search.</p>`)
			} else {
				fmt.Fprint(w, `<p class="empty">No vendors yet. Import a vendor dataset to get started.</p>`)
			}
			fmt.Fprint(w, `</section>`)
			return nil
		}

		fmt.Fprintf(w, `<p class="count">%d vendors</p>
<table class="data-table">
<thead><tr><th>Vendor</th><th>City</th><th>Event Types</th><th>⭐ Rating</th><th>Min Budget</th><th>Max Budget</th><th>Contact</th><th></th></tr></thead>
<tbody>
`, data.TotalCount)

		for _, v := range data.Vendors {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%.1f</td><td>%s</td><td>%s</td><td>%s</td>`,
				esc(v.Name), esc(v.City), esc(v.EventTypes), v.Rating,
				esc(v.MinBudget), esc(v.MaxBudget), esc(v.Contact))
			fmt.Fprintf(w, `<td><button class="btn btn-danger" hx-delete="/vendors/%s" hx-confirm="Delete vendor %s?" hx-target="#vendor-list" hx-swap="outerHTML">Delete</button></td></tr>
`, esc(v.ID), esc(v.Name))
		}

		_, err := fmt.Fprint(w, `</tbody>
</table>
</section>`)
		return err
	})
}
