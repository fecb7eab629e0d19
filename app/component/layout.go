package component

import (
	"context"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/event"
	"github.com/angelofallars/dpm/app/header"
)

var navigation = []struct{ href, label string }{
	{"/todos", "Todos"},
	{"/work", "Work"},
	{"/categories", "Categories"},
	{"/reports/categories", "Dashboard"},
	{"/employees", "Employees"},
	{"/pricing", "Pricing"},
}

// FullPage wraps body in the document shell: scripts, navigation, the
// error banner and the confirmation dialog.
func FullPage(title string, body templ.Component) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Raw("<!doctype html>")
		w.Open("html", Attr("lang", "en"))
		w.Open("head")
		w.Raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Elem("title", title)
		w.Raw(`<script src="https://unpkg.com/htmx.org@1.9.10"></script>`)
		w.Raw(`<script defer src="https://unpkg.com/alpinejs@3.13.3/dist/cdn.min.js"></script>`)
		w.Close("head")

		w.Open("body", Attr("hx-boost", "true"))
		w.Open("nav")
		w.Elem("a", "Daily Progress Manager", Attr("href", "/"))
		for _, n := range navigation {
			w.Elem("a", n.label, Attr("href", n.href))
		}
		w.Close("nav")

		w.Render(ctx, ErrorBanner())
		w.Render(ctx, ConfirmDialog())

		w.Open("main", Attr("id", "content"))
		w.Render(ctx, body)
		w.Close("main")
		w.Close("body")
		w.Close("html")
	})
}

// ErrorBanner shows the message of the latest set-err-message event and
// hides itself when the message is cleared.
func ErrorBanner() templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Open("div",
			Attr("x-data", "{ message: '' }", "x-show", "message !== ''", "role", "alert", "class", "error-banner"),
			event.SetErrMessage.Listen("message = $event.detail.value"),
		)
		w.Open("span", Attr("x-text", "message"))
		w.Close("span")
		w.Close("div")
	})
}

// ConfirmDialog asks before a destructive request is replayed with the
// confirmation header set.
func ConfirmDialog() templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Open("dialog",
			Attr("x-data", "{ elt: null }", "x-ref", "dialog"),
			event.OpenConfirm.Listen("elt = $event.target; $refs.dialog.showModal()"),
		)
		w.Elem("p", "This cannot be undone. Continue?")
		w.Elem("button", "Cancel", Attr("type", "button", "x-on:click", "$refs.dialog.close()"))
		w.Elem("button", "Delete", Attr(
			"type", "button",
			"x-on:click", "$refs.dialog.close(); htmx.ajax(elt.getAttribute('hx-delete') ? 'DELETE' : 'POST', elt.getAttribute('hx-delete') || elt.getAttribute('hx-post'), { source: elt, headers: { '"+header.Confirm+"': 'true' } })",
		))
		w.Close("dialog")
	})
}

// Landing is the home page.
func Landing() templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Elem("h1", "Track what you planned against what you did")
		w.Elem("p", "Plan the day as todos with an expected time, log start and end times as you finish them, and review where the hours went.")
		w.Open("ul")
		for _, n := range navigation {
			w.Open("li")
			w.Elem("a", n.label, Attr("href", n.href))
			w.Close("li")
		}
		w.Close("ul")
	})
}
