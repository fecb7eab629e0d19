package category

import (
	"context"
	"net/http"

	"github.com/angelofallars/dpm/app/confirm"
	"github.com/angelofallars/dpm/app/event"
	"github.com/angelofallars/dpm/app/respond"
	"github.com/angelofallars/dpm/internal/category"
	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"
)

type HandlerGroup struct {
	categories *category.Service
}

func NewHandlerGroup(categories *category.Service) *HandlerGroup {
	return &HandlerGroup{categories: categories}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", hg.handleList)
		r.Post("/", hg.handleCreate)
		r.Get("/{id}", hg.handleGet)
		r.Put("/{id}", hg.handleUpdate)
		r.Delete("/{id}", confirm.Require(hg.handleDelete))
	})
}

// Listing is the searchable category list. Stats cover every category,
// not only the ones matching Query.
type Listing struct {
	Query      string              `json:"query,omitempty"`
	Categories []category.Category `json:"categories"`
	Stats      category.Stats      `json:"stats"`
}

func (hg *HandlerGroup) listing(ctx context.Context, term string) (Listing, error) {
	all, err := hg.categories.Search(ctx, "")
	if err != nil {
		return Listing{}, err
	}
	matched, err := hg.categories.Search(ctx, term)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Query: term, Categories: matched, Stats: category.Summarize(all)}, nil
}

func (hg *HandlerGroup) respondListing(w http.ResponseWriter, r *http.Request, code int, data any, triggers ...htmx.EventTrigger) {
	l, err := hg.listing(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if data == nil {
		data = l
	}
	respond.Render(w, r, code, data, ListView(l), triggers...)
}

func (hg *HandlerGroup) handleList(w http.ResponseWriter, r *http.Request) {
	hg.respondListing(w, r, http.StatusOK, nil)
}

func (hg *HandlerGroup) handleGet(w http.ResponseWriter, r *http.Request) {
	c, err := hg.categories.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Render(w, r, http.StatusOK, c, EditForm(c))
}

type categoryRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Color       string `json:"color" form:"color"`
}

// categoryRequest satisfies [render.Binder]
func (req *categoryRequest) Bind(r *http.Request) error { return nil }

func (req *categoryRequest) input() category.Input {
	return category.Input{Name: req.Name, Description: req.Description, Color: req.Color}
}

func (hg *HandlerGroup) handleCreate(w http.ResponseWriter, r *http.Request) {
	req := &categoryRequest{}
	if err := respond.Bind(r, req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := hg.categories.Create(r.Context(), req.input())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	hg.respondListing(w, r, http.StatusCreated, c, event.TriggerCategoriesChanged)
}

func (hg *HandlerGroup) handleUpdate(w http.ResponseWriter, r *http.Request) {
	req := &categoryRequest{}
	if err := respond.Bind(r, req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := hg.categories.Update(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	hg.respondListing(w, r, http.StatusOK, c, event.TriggerCategoriesChanged)
}

func (hg *HandlerGroup) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := hg.categories.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := hg.listing(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Deleted(w, r, ListView(l), event.TriggerCategoriesChanged)
}
