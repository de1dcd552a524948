// Package templates contains the templ components for the event planner
// pages and HTMX partials. Components come in pairs: XxxPage wraps the
// content in the full layout shell, XxxContent renders only the partial
// swapped in by HTMX.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func esc(s string) string { return templ.EscapeString(s) }

// navItem is one entry of the top navigation.
type navItem struct {
	Href  string
	Label string
	Key   string
}

var navItems = []navItem{
	{Href: "/recommend", Label: "Recommendation", Key: "recommend"},
	{Href: "/estimate", Label: "Estimation & Negotiation", Key: "estimate"},
	{Href: "/vendors", Label: "Vendors", Key: "vendors"},
}

// Layout wraps content in the full page shell: head, navigation, toast
// container and the HTMX runtime.
func Layout(title, active string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s — Event Planner</title>
<link rel="stylesheet" href="/static/styles.css">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
<header class="topbar">
<span class="brand">🎉 Event Planner</span>
<nav>`, esc(title))

		for _, item := range navItems {
			class := "nav-link"
			if item.Key == active {
				class += " active"
			}
			fmt.Fprintf(w, `<a class="%s" href="%s">%s</a>`, class, item.Href, esc(item.Label))
		}

		fmt.Fprint(w, `</nav>
</header>
<div id="toast-container"></div>
<script>
document.body.addEventListener("showToast", function (evt) {
  var d = evt.detail || {};
  var el = document.createElement("div");
  el.className = "toast toast-" + (d.type || "info");
  el.textContent = d.message || "";
  document.getElementById("toast-container").appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
});
</script>
<main class="content">
`)

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprint(w, `
</main>
</body>
</html>
`)
		return err
	})
}
