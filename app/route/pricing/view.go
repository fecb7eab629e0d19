package pricing

import (
	"context"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/internal/plan"
)

func Page(catalog []plan.Category) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		w.Open("section", component.Attr("id", "pricing"))
		w.Elem("h1", "Plans and pricing")
		for _, c := range catalog {
			w.Elem("h2", c.Category)
			w.Open("div", component.Attr("class", "plans"))
			for _, p := range c.Plans {
				w.Render(ctx, card(p))
			}
			w.Close("div")
		}
		w.Close("section")
	})
}

func card(p plan.Plan) templ.Component {
	return component.Func(func(ctx context.Context, w *component.Writer) {
		class := "plan"
		if p.Popular {
			class += " popular"
		}
		w.Open("article", component.Attr("class", class))
		if p.Popular {
			w.Elem("span", "Most popular", component.Attr("class", "badge"))
		}
		w.Elem("h3", p.Title)
		price := p.Price
		if p.IsFree() {
			price = "Free"
		}
		w.Elem("p", price, component.Attr("class", "price"))
		if p.SavePerMonth != "" {
			w.Elem("p", "Save "+p.SavePerMonth, component.Attr("class", "save"))
		}

		w.Open("ul")
		for _, f := range p.Features {
			mark, class := "✓", "included"
			if !f.Included {
				mark, class = "✗", "excluded"
			}
			w.Open("li", component.Attr("class", class))
			w.Raw(mark + " ")
			w.Text(f.Text)
			w.Close("li")
		}
		w.Close("ul")
		w.Close("article")
	})
}
