package category

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/internal/category"
)

const target = "#categories"

// ListView is the category management section.
func ListView(l Listing) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "categories", "hx-get", "/categories", "hx-trigger", "work-changed from:body", "hx-swap", "outerHTML"))
		w.Elem("h1", "Categories")

		w.Render(ctx, component.Stats(
			component.Stat{Label: "Total categories", Value: strconv.Itoa(l.Stats.Categories)},
			component.Stat{Label: "Work entries", Value: strconv.Itoa(l.Stats.WorkEntries)},
			component.Stat{Label: "Most used", Value: l.Stats.MostUsed},
		))

		w.Open("input", component.Attr(
			"type", "search", "name", "q", "value", l.Query, "placeholder", "Search categories",
			"hx-get", "/categories", "hx-target", target, "hx-swap", "outerHTML",
			"hx-trigger", "input changed delay:300ms, search",
		))

		w.Render(ctx, form(category.Category{}, "hx-post", "/categories", "Add category"))

		if len(l.Categories) == 0 {
			w.Elem("p", "No categories found.", component.Attr("class", "empty"))
		}
		w.Open("ul", component.Attr("class", "category-grid"))
		for _, c := range l.Categories {
			w.Open("li", component.Attr("id", "category-"+c.ID))
			w.Render(ctx, component.Swatch(c.Color))
			w.Elem("strong", c.Name)
			w.Elem("p", c.Description)
			w.Elem("span", strconv.Itoa(c.WorkEntriesCount)+" entries", component.Attr("class", "count"))
			w.Elem("button", "Edit", component.Attr(
				"type", "button",
				"hx-get", "/categories/"+c.ID,
				"hx-target", "#category-"+c.ID,
				"hx-swap", "innerHTML",
			))
			w.Elem("button", "Delete", component.Attr(
				"type", "button",
				"hx-delete", "/categories/"+c.ID,
				"hx-target", target,
				"hx-swap", "outerHTML",
			))
			w.Close("li")
		}
		w.Close("ul")
		w.Close("section")
	})
}

// EditForm edits c in place.
func EditForm(c category.Category) templ.Component {
	return form(c, "hx-put", "/categories/"+c.ID, "Save")
}

func form(c category.Category, method, action, submit string) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		color := c.Color
		if color == "" {
			color = category.Palette[0]
		}
		w.Open("form", component.Attr(method, action, "hx-target", target, "hx-swap", "outerHTML", "class", "category-form"))
		w.Open("input", component.Attr("type", "text", "name", "name", "value", c.Name, "placeholder", "Name", "required", true))
		w.Open("input", component.Attr("type", "text", "name", "description", "value", c.Description, "placeholder", "Description"))
		w.Open("fieldset", component.Attr("class", "palette"))
		for _, p := range category.Palette {
			w.Open("label")
			w.Open("input", component.Attr("type", "radio", "name", "color", "value", p, "checked", p == color))
			w.Render(ctx, component.Swatch(p))
			w.Close("label")
		}
		w.Close("fieldset")
		w.Elem("button", submit, component.Attr("type", "submit"))
		w.Close("form")
	})
}
