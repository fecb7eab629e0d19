package work

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/todo"
	"github.com/angelofallars/dpm/internal/work"
)

const target = "#work-log"

func query(f work.Filter) string {
	q := url.Values{}
	for k, v := range map[string]string{"date": f.Date, "category": f.Category, "from": f.From, "to": f.To} {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return "/work"
	}
	return "/work?" + q.Encode()
}

// LogView lists entries under the filter form and the entry form.
func LogView(l Log) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr(
			"id", "work-log",
			"hx-get", query(l.Filter),
			"hx-trigger", "todos-changed from:body",
			"hx-swap", "outerHTML",
		))
		w.Elem("h1", "Work log")

		w.Render(ctx, component.Stats(
			component.Stat{Label: "Entries", Value: strconv.Itoa(l.Summary.WorkCount)},
			component.Stat{Label: "Hours", Value: fmt.Sprintf("%.1f", l.Summary.TotalHours)},
			component.Stat{Label: "Categories", Value: strconv.Itoa(l.Summary.Categories)},
		))

		w.Render(ctx, filterForm(l))
		w.Render(ctx, entryForm(l.Filter.Date, l.Categories))

		if len(l.Entries) == 0 {
			w.Elem("p", "No work recorded.", component.Attr("class", "empty"))
			w.Close("section")
			return
		}

		w.Open("table")
		w.Render(ctx, component.Head("Date", "Task", "Category", "Time", "Duration", ""))
		w.Open("tbody")
		for _, e := range l.Entries {
			w.Open("tr", component.Attr("id", "work-"+e.ID))
			w.Elem("td", e.Date)
			w.Open("td")
			w.Text(e.Description)
			if e.Notes != "" {
				w.Elem("small", e.Notes)
			}
			w.Close("td")
			w.Elem("td", e.Category)
			w.Elem("td", fmt.Sprintf("%s to %s", e.Start, e.End))
			w.Elem("td", clock.Format(e.ActualMinutes))
			w.Open("td")
			w.Elem("button", "Delete", component.Attr(
				"type", "button",
				"hx-delete", "/work/"+e.ID,
				"hx-target", target,
				"hx-swap", "outerHTML",
			))
			w.Close("td")
			w.Close("tr")
		}
		w.Close("tbody")
		w.Close("table")
		w.Close("section")
	})
}

func filterForm(l Log) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("form", component.Attr("hx-get", "/work", "hx-target", target, "hx-swap", "outerHTML", "hx-push-url", "true", "class", "filters"))
		w.Open("input", component.Attr("type", "date", "name", "date", "value", l.Filter.Date))
		w.Open("input", component.Attr("type", "date", "name", "from", "value", l.Filter.From, "aria-label", "From"))
		w.Open("input", component.Attr("type", "date", "name", "to", "value", l.Filter.To, "aria-label", "To"))
		w.Open("select", component.Attr("name", "category"))
		w.Elem("option", "All categories", component.Attr("value", ""))
		for _, name := range l.Categories {
			w.Elem("option", name, component.Attr("value", name, "selected", name == l.Filter.Category))
		}
		w.Close("select")
		w.Elem("button", "Filter", component.Attr("type", "submit"))
		w.Close("form")
	})
}

func entryForm(date string, categories []string) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("form", component.Attr("hx-post", "/work", "hx-target", target, "hx-swap", "outerHTML", "class", "work-add"))
		w.Open("input", component.Attr("type", "text", "name", "description", "placeholder", "What did you work on?", "required", true))
		w.Open("input", component.Attr("type", "text", "name", "category", "list", "work-categories", "placeholder", work.DefaultCategory))
		w.Open("datalist", component.Attr("id", "work-categories"))
		for _, name := range categories {
			w.Open("option", component.Attr("value", name))
			w.Close("option")
		}
		w.Close("datalist")
		w.Open("input", component.Attr("type", "date", "name", "date", "value", date))
		w.Open("input", component.Attr("type", "time", "name", "startTime", "required", true))
		w.Open("input", component.Attr("type", "time", "name", "endTime", "required", true))
		w.Open("input", component.Attr("type", "number", "name", "expectedTime", "value", 0, "min", 0, "max", todo.MaxExpectedMinutes, "placeholder", "Expected minutes"))
		w.Open("textarea", component.Attr("name", "notes", "placeholder", "Notes"))
		w.Close("textarea")
		w.Elem("button", "Log work", component.Attr("type", "submit"))
		w.Close("form")
	})
}

// EntryView shows a single entry.
func EntryView(e work.Entry) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("article", component.Attr("id", "work-"+e.ID, "class", "work-entry"))
		w.Elem("h2", e.Description)
		w.Open("dl")
		for _, row := range [][2]string{
			{"Category", e.Category},
			{"Date", e.Date},
			{"Time", fmt.Sprintf("%s to %s", e.Start, e.End)},
			{"Duration", clock.FormatLong(e.ActualMinutes)},
		} {
			w.Elem("dt", row[0])
			w.Elem("dd", row[1])
		}
		if e.ExpectedMinutes > 0 {
			w.Elem("dt", "Expected")
			w.Elem("dd", clock.Format(e.ExpectedMinutes))
		}
		if e.Notes != "" {
			w.Elem("dt", "Notes")
			w.Elem("dd", e.Notes)
		}
		w.Close("dl")
		w.Close("article")
	})
}
