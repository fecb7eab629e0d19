package component

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/internal/listing"
	"github.com/angelofallars/dpm/internal/report"
)

// Stars draws a rating as five stars with an optional half star.
func Stars(rating, hours float64) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		s := report.StarsFor(rating)
		w.Open("span", Attr("class", "stars", "title", fmt.Sprintf("%.1f/5 (%.1fh)", rating, hours)))
		w.Raw(strings.Repeat(`<span class="star full">★</span>`, s.Full))
		if s.Half {
			w.Raw(`<span class="star half">★</span>`)
		}
		w.Raw(strings.Repeat(`<span class="star empty">☆</span>`, s.Empty))
		w.Textf(" %.1f/5", rating)
		w.Close("span")
	})
}

// Column is a table header. Sortable columns link to the toggled sort.
type Column struct {
	Key      string
	Label    string
	Sortable bool
}

func link(base string, q url.Values) string {
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

// TableHead renders the header row for state. target is the element the
// htmx request swaps.
func TableHead(base, target string, state listing.State, columns []Column) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Open("thead")
		w.Open("tr")
		for _, c := range columns {
			w.Open("th")
			if !c.Sortable {
				w.Text(c.Label)
				w.Close("th")
				continue
			}
			href := link(base, state.WithSort(c.Key).Query())
			w.Open("a", Attr("href", href, "hx-get", href, "hx-target", target, "hx-push-url", "true"))
			w.Text(c.Label)
			if state.Sort.Column == c.Key {
				if state.Sort.Order == listing.Asc {
					w.Raw(" ▲")
				} else {
					w.Raw(" ▼")
				}
			}
			w.Close("a")
			w.Close("th")
		}
		w.Close("tr")
		w.Close("thead")
	})
}

// Head renders a header row of plain labels.
func Head(labels ...string) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Open("thead")
		w.Open("tr")
		for _, l := range labels {
			w.Elem("th", l)
		}
		w.Close("tr")
		w.Close("thead")
	})
}

// Pagination renders "Showing X to Y of N" with previous and next
// buttons that are disabled at the boundaries.
func Pagination[T any](base, target string, state listing.State, page listing.Page[T]) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Open("nav", Attr("class", "pagination"))
		w.Open("span")
		w.Textf("Showing %d to %d of %d", page.From(), page.To(), page.TotalItems)
		w.Close("span")

		button := func(label string, to int, enabled bool) {
			href := link(base, state.WithPage(to).Query())
			w.Elem("button", label, Attr(
				"type", "button",
				"disabled", !enabled,
				"hx-get", href,
				"hx-target", target,
				"hx-push-url", "true",
			))
		}
		button("Previous", page.Page-1, page.HasPrev())
		w.Open("span")
		w.Textf("Page %d of %d", page.Page, max(page.TotalPages, 1))
		w.Close("span")
		button("Next", page.Page+1, page.HasNext())
		w.Close("nav")
	})
}

// FieldError renders the message for one form field, if any.
func FieldError(fields map[string]string, name string) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		if msg, ok := fields[name]; ok {
			w.Elem("p", msg, Attr("class", "field-error", "data-field", name))
		}
	})
}

// Stat is one figure in a row of summary cards.
type Stat struct {
	Label string
	Value string
}

func Stats(stats ...Stat) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Open("div", Attr("class", "stats"))
		for _, s := range stats {
			w.Open("div", Attr("class", "stat"))
			w.Elem("p", s.Label, Attr("class", "stat-label"))
			w.Elem("p", s.Value, Attr("class", "stat-value"))
			w.Close("div")
		}
		w.Close("div")
	})
}

// Swatch is a small colored square.
func Swatch(color string) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Open("span", Attr("class", "swatch", "style", "background-color: "+color))
		w.Close("span")
	})
}
