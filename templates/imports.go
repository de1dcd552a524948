package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"eventplanner/services"
)

// VendorImportPage renders the full dataset upload page.
func VendorImportPage() templ.Component {
	return Layout("Import Vendors", "vendors", VendorImportContent())
}

// VendorImportContent renders the upload form partial.
func VendorImportContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprint(w, `<section id="vendor-import">
<h1>Import Vendor Dataset</h1>
<p>Upload a .csv or .xlsx file with columns: name, city, event_types, rating, min_budget, max_budget, contact.
<a href="/vendors/template">Download the template</a> for the expected layout.</p>
<form hx-post="/vendors/import" hx-target="#import-results" hx-swap="innerHTML" enctype="multipart/form-data">
<input type="file" name="file" accept=".csv,.xlsx" required>
<button type="submit" class="btn btn-primary">Upload &amp; Validate</button>
</form>
<div id="import-results"></div>
</section>`)
		return err
	})
}

// VendorValidationResults renders the validation summary partial shown
// after an upload. When every row is valid the commit form is offered;
// otherwise the per-row errors are listed with an error-report download.
func VendorValidationResults(result *services.ValidationResult, parsedRowsJSON, errorsJSON string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="validation-summary">
<h2>Validation Results — %s</h2>
<p>%d rows: <span class="ok">%d valid</span>, <span class="bad">%d with errors</span></p>
`, esc(result.FileName), result.TotalRows, result.ValidRows, result.ErrorRows)

		if result.ErrorRows == 0 {
			fmt.Fprintf(w, `<form hx-post="/vendors/import/commit" hx-target="#import-results" hx-swap="innerHTML">
<input type="hidden" name="parsed_rows_json" value="%s">
<button type="submit" class="btn btn-primary">Import %d Vendors</button>
</form>
`, esc(parsedRowsJSON), result.ValidRows)
		} else {
			fmt.Fprint(w, `<table class="data-table errors">
<thead><tr><th>Row</th><th>Field</th><th>Error</th></tr></thead>
<tbody>
`)
			for _, e := range result.Errors {
				fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%s</td></tr>
`, e.Row, esc(e.Field), esc(e.Message))
			}
			fmt.Fprint(w, `</tbody>
</table>
<p>Fix the rows above and re-upload, or download the error report.</p>
`)
			fmt.Fprintf(w, `<form method="post" action="/vendors/import/errors">
<input type="hidden" name="errors_json" value="%s">
<button type="submit" class="btn">Download Error Report</button>
</form>
`, esc(errorsJSON))
		}

		_, err := fmt.Fprint(w, `</div>`)
		return err
	})
}

// VendorImportCommitted renders the post-commit confirmation partial.
func VendorImportCommitted(inserted int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="validation-summary">
<p class="ok">Imported %d vendors.</p>
<a class="btn" href="/vendors">Back to Vendor Directory</a>
</div>`, inserted)
		return err
	})
}
