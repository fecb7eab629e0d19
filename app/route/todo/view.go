package todo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/todo"
)

const target = "#todo-day"

// DayView is the swappable todo section for one date.
func DayView(d Day) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "todo-day", "hx-get", "/todos?date="+d.Date, "hx-trigger", "work-changed from:body", "hx-swap", "outerHTML"))
		w.Elem("h1", "Daily todos")

		w.Open("form", component.Attr("hx-get", "/todos", "hx-target", target, "hx-swap", "outerHTML", "hx-trigger", "change"))
		w.Open("input", component.Attr("type", "date", "name", "date", "value", d.Date))
		w.Close("form")

		w.Render(ctx, component.Stats(
			component.Stat{Label: "Completed", Value: fmt.Sprintf("%d/%d", d.Stats.Completed, d.Stats.Total)},
			component.Stat{Label: "Progress", Value: strconv.Itoa(d.Stats.Percentage) + "%"},
		))

		w.Render(ctx, addForm(d.Date))

		if len(d.Items) == 0 {
			w.Elem("p", "Nothing planned for this day yet.", component.Attr("class", "empty"))
		}
		w.Open("ul", component.Attr("class", "todos"))
		for _, item := range d.Items {
			w.Render(ctx, itemView(item))
		}
		w.Close("ul")
		w.Close("section")
	})
}

func addForm(date string) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("form", component.Attr("hx-post", "/todos", "hx-target", target, "hx-swap", "outerHTML", "class", "todo-add"))
		w.Open("input", component.Attr("type", "hidden", "name", "date", "value", date))
		w.Open("input", component.Attr("type", "text", "name", "description", "placeholder", "What needs doing?", "required", true))
		w.Open("input", component.Attr(
			"type", "number", "name", "expectedTime", "placeholder", "Minutes",
			"min", todo.MinExpectedMinutes, "max", todo.MaxExpectedMinutes, "required", true,
		))
		w.Elem("button", "Add", component.Attr("type", "submit"))
		w.Close("form")
	})
}

func itemView(item todo.Item) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("li", component.Attr("id", "todo-"+item.ID, "class", "todo "+string(item.Status())))
		w.Elem("span", item.Description, component.Attr("class", "description"))
		w.Elem("span", "Expected "+clock.Format(item.ExpectedMinutes), component.Attr("class", "expected"))

		if c := item.Completion; c != nil {
			w.Elem("span", fmt.Sprintf("%s to %s", c.Start, c.End), component.Attr("class", "span"))
			w.Elem("span", clock.Format(c.ActualMinutes), component.Attr("class", "actual"))
			w.Elem("button", "Reopen", component.Attr(
				"type", "button",
				"hx-post", "/todos/"+item.ID+"/reopen",
				"hx-target", target,
				"hx-swap", "outerHTML",
			))
			w.Close("li")
			return
		}

		w.Open("form", component.Attr(
			"hx-post", "/todos/"+item.ID+"/complete",
			"hx-target", target,
			"hx-swap", "outerHTML",
			"class", "todo-complete",
		))
		w.Open("input", component.Attr("type", "time", "name", "startTime", "required", true))
		w.Open("input", component.Attr("type", "time", "name", "endTime", "required", true))
		w.Open("input", component.Attr("type", "text", "name", "category", "placeholder", "Category"))
		w.Open("input", component.Attr("type", "text", "name", "notes", "placeholder", "Notes"))
		w.Elem("button", "Complete", component.Attr("type", "submit"))
		w.Close("form")

		w.Elem("button", "Delete", component.Attr(
			"type", "button",
			"hx-delete", "/todos/"+item.ID,
			"hx-target", target,
			"hx-swap", "outerHTML",
		))
		w.Close("li")
	})
}
