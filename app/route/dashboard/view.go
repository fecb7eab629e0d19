package dashboard

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/report"
)

func hours(h float64) string { return fmt.Sprintf("%.1fh", h) }

func summaryStats(s report.Summary) templ.Component {
	return component.Stats(
		component.Stat{Label: "Total hours", Value: hours(s.TotalHours)},
		component.Stat{Label: "Entries", Value: strconv.Itoa(s.WorkCount)},
		component.Stat{Label: "Categories", Value: strconv.Itoa(s.Categories)},
		component.Stat{Label: "Daily average", Value: hours(s.AverageDaily)},
	)
}

func DashboardView(d Dashboard) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "dashboard"))
		w.Elem("h1", "Dashboard")

		w.Open("form", component.Attr("hx-get", "/reports/categories", "hx-target", "#dashboard", "hx-swap", "outerHTML", "hx-push-url", "true"))
		w.Open("input", component.Attr("type", "date", "name", "from", "value", d.From, "aria-label", "From"))
		w.Open("input", component.Attr("type", "date", "name", "to", "value", d.To, "aria-label", "To"))
		w.Elem("button", "Apply", component.Attr("type", "submit"))
		export := "/reports/export.pdf"
		if d.From != "" || d.To != "" {
			export += "?" + url.Values{"from": {d.From}, "to": {d.To}}.Encode()
		}
		w.Elem("a", "Export PDF", component.Attr("href", export, "hx-boost", "false"))
		w.Close("form")

		w.Render(ctx, summaryStats(d.Summary))
		w.Render(ctx, component.Stars(d.Summary.Rating, d.Summary.AverageDaily))
		w.Elem("a", "Daily breakdown", component.Attr("href", "/reports/days"))

		if len(d.Categories) == 0 {
			w.Elem("p", "No work recorded in this period.", component.Attr("class", "empty"))
			w.Close("section")
			return
		}

		w.Open("table")
		w.Render(ctx, component.Head("Category", "Hours", "Entries", "Days", "Daily average"))
		w.Open("tbody")
		for _, t := range d.Categories {
			w.Open("tr")
			w.Open("td")
			w.Render(ctx, component.Swatch(d.color(t.Category)))
			w.Elem("a", t.Category, component.Attr("href", "/reports/categories/"+url.PathEscape(t.Category)))
			w.Close("td")
			w.Elem("td", hours(t.TotalHours))
			w.Elem("td", strconv.Itoa(t.WorkCount))
			w.Elem("td", strconv.Itoa(t.Days))
			w.Elem("td", hours(t.AverageDaily))
			w.Close("tr")
		}
		w.Close("tbody")
		w.Close("table")
		w.Close("section")
	})
}

func CategoryView(d CategoryDetail) templ.Component {
	base := "/reports/categories/" + url.PathEscape(d.Total.Category)
	const target = "#category-detail"
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "category-detail"))
		w.Elem("h1", d.Total.Category)
		w.Render(ctx, component.Stats(
			component.Stat{Label: "Total hours", Value: hours(d.Total.TotalHours)},
			component.Stat{Label: "Entries", Value: strconv.Itoa(d.Total.WorkCount)},
			component.Stat{Label: "Daily average", Value: hours(d.Total.AverageDaily)},
		))

		w.Open("table")
		w.Render(ctx, component.TableHead(base, target, d.state, []component.Column{
			{Key: "date", Label: "Date", Sortable: true},
			{Key: "description", Label: "Task", Sortable: true},
			{Label: "Time"},
			{Key: "duration", Label: "Duration", Sortable: true},
		}))
		w.Open("tbody")
		for _, e := range d.Entries.Items {
			w.Open("tr")
			w.Elem("td", e.Date)
			w.Elem("td", e.Description)
			w.Elem("td", fmt.Sprintf("%s to %s", e.Start, e.End))
			w.Elem("td", clock.Format(e.ActualMinutes))
			w.Close("tr")
		}
		w.Close("tbody")
		w.Close("table")
		w.Render(ctx, component.Pagination(base, target, d.state, d.Entries))
		w.Close("section")
	})
}

func DaysView(d DayList) templ.Component {
	const base, target = "/reports/days", "#days"
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "days"))
		w.Elem("h1", "Daily breakdown")

		w.Open("table")
		w.Render(ctx, component.TableHead(base, target, d.state, []component.Column{
			{Key: "date", Label: "Date", Sortable: true},
			{Key: "hours", Label: "Hours", Sortable: true},
			{Key: "entries", Label: "Entries", Sortable: true},
			{Label: "Categories"},
			{Label: "Rating"},
		}))
		w.Open("tbody")
		for _, day := range d.Days.Items {
			w.Open("tr")
			w.Open("td")
			w.Elem("a", day.Date, component.Attr("href", base+"/"+day.Date))
			w.Close("td")
			w.Elem("td", hours(day.Hours))
			w.Elem("td", strconv.Itoa(day.WorkCount))
			w.Elem("td", strings.Join(day.Categories, ", "))
			w.Open("td")
			w.Render(ctx, component.Stars(day.Rating, day.Hours))
			w.Close("td")
			w.Close("tr")
		}
		w.Close("tbody")
		w.Close("table")
		w.Render(ctx, component.Pagination(base, target, d.state, d.Days))
		w.Close("section")
	})
}

// gradient turns the slices into a CSS conic-gradient for a pie chart.
func gradient(slices []report.Slice) string {
	var (
		stops []string
		at    float64
	)
	for _, s := range slices {
		end := at + s.Hours/report.HoursPerDay*100
		stops = append(stops, fmt.Sprintf("%s %.2f%% %.2f%%", s.Color, at, end))
		at = end
	}
	if len(stops) == 0 {
		return "background: " + report.FreeTimeColor
	}
	return "background: conic-gradient(" + strings.Join(stops, ", ") + ")"
}

func DayView(d DayDetail) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "day"))
		w.Elem("h1", d.Date)
		w.Render(ctx, component.Stars(d.Rating, d.Hours))

		w.Open("div", component.Attr("class", "pie", "style", gradient(d.Distribution), "role", "img", "aria-label", "Time distribution"))
		w.Close("div")

		w.Open("ul", component.Attr("class", "legend"))
		for _, s := range d.Distribution {
			w.Open("li")
			w.Render(ctx, component.Swatch(s.Color))
			w.Textf("%s %s (%.1f%%)", s.Name, hours(s.Hours), s.Percent)
			w.Close("li")
		}
		w.Close("ul")

		w.Open("ul", component.Attr("class", "entries"))
		for _, e := range d.Entries {
			w.Open("li")
			w.Textf("%s to %s %s", e.Start, e.End, e.Description)
			w.Elem("span", e.Category, component.Attr("class", "category"))
			w.Close("li")
		}
		w.Close("ul")
		w.Close("section")
	})
}
