// Package pricing serves the marketing pages: the landing page and the
// subscription plans.
package pricing

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/app/respond"
	"github.com/angelofallars/dpm/internal/plan"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type HandlerGroup struct{}

func NewHandlerGroup() *HandlerGroup {
	return &HandlerGroup{}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Handle("/", templ.Handler(component.FullPage("Daily Progress Manager", component.Landing())))
	r.Get("/pricing", handlePricing)
	r.Get("/api/plans", handlePlans)
	r.Get("/api/plans/{category}/{title}", handlePlan)
}

func handlePricing(w http.ResponseWriter, r *http.Request) {
	catalog := plan.Catalog()
	respond.Render(w, r, http.StatusOK, catalog, Page(catalog))
}

func handlePlans(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, plan.Catalog())
}

func handlePlan(w http.ResponseWriter, r *http.Request) {
	category, title := chi.URLParam(r, "category"), chi.URLParam(r, "title")
	p, ok := plan.Find(category, title)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, respond.ErrResponse{Error: fmt.Sprintf("no %q plan for %q", title, category)})
		return
	}
	render.JSON(w, r, p)
}
