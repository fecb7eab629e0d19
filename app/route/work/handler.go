package work

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/angelofallars/dpm/app/confirm"
	"github.com/angelofallars/dpm/app/event"
	"github.com/angelofallars/dpm/app/respond"
	"github.com/angelofallars/dpm/internal/category"
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/report"
	"github.com/angelofallars/dpm/internal/work"
	"github.com/go-chi/chi/v5"
)

type HandlerGroup struct {
	entries    *work.Service
	categories *category.Service
	now        func() time.Time
}

func NewHandlerGroup(entries *work.Service, categories *category.Service) *HandlerGroup {
	return &HandlerGroup{entries: entries, categories: categories, now: time.Now}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Route("/work", func(r chi.Router) {
		r.Get("/", hg.handleList)
		r.Post("/", hg.handleCreate)
		r.Get("/{id}", hg.handleGet)
		r.Delete("/{id}", confirm.Require(hg.handleDelete))
	})
}

// Log is a filtered list of entries with its totals.
type Log struct {
	Filter     work.Filter    `json:"-"`
	Entries    []work.Entry   `json:"entries"`
	Summary    report.Summary `json:"summary"`
	Categories []string       `json:"-"`
}

func filterFrom(r *http.Request) work.Filter {
	q := r.URL.Query()
	return work.Filter{
		Date:     q.Get("date"),
		Category: q.Get("category"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}
}

func (hg *HandlerGroup) log(ctx context.Context, f work.Filter) (Log, error) {
	entries, err := hg.entries.List(ctx, f)
	if err != nil {
		return Log{}, err
	}
	l := Log{Filter: f, Entries: entries, Summary: report.Summarize(entries)}

	all, err := hg.categories.Search(ctx, "")
	if err != nil {
		return Log{}, err
	}
	for _, c := range all {
		l.Categories = append(l.Categories, c.Name)
	}
	return l, nil
}

func (hg *HandlerGroup) handleList(w http.ResponseWriter, r *http.Request) {
	f := filterFrom(r)
	for _, d := range []string{f.Date, f.From, f.To} {
		if d == "" {
			continue
		}
		if err := clock.ValidDate(d); err != nil {
			respond.Error(w, r, err)
			return
		}
	}

	l, err := hg.log(r.Context(), f)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Render(w, r, http.StatusOK, l, LogView(l))
}

func (hg *HandlerGroup) handleGet(w http.ResponseWriter, r *http.Request) {
	e, err := hg.entries.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Render(w, r, http.StatusOK, e, EntryView(e))
}

type createRequest struct {
	Description  string `json:"description" form:"description"`
	Category     string `json:"category" form:"category"`
	Date         string `json:"date" form:"date"`
	StartTime    string `json:"startTime" form:"startTime"`
	EndTime      string `json:"endTime" form:"endTime"`
	ExpectedTime int    `json:"expectedTime" form:"expectedTime"`
	Notes        string `json:"notes" form:"notes"`
}

// createRequest satisfies [render.Binder]
func (req *createRequest) Bind(r *http.Request) error {
	req.Description = strings.TrimSpace(req.Description)
	req.Notes = strings.TrimSpace(req.Notes)
	return nil
}

func (hg *HandlerGroup) handleCreate(w http.ResponseWriter, r *http.Request) {
	req := &createRequest{}
	if err := respond.Bind(r, req); err != nil {
		respond.Error(w, r, err)
		return
	}
	if req.Date == "" {
		req.Date = clock.Today(hg.now())
	}

	e, err := hg.entries.Record(r.Context(), work.Input{
		Description:     req.Description,
		Category:        req.Category,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		ExpectedMinutes: req.ExpectedTime,
		Notes:           req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := hg.log(r.Context(), work.Filter{Date: e.Date})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Render(w, r, http.StatusCreated, e, LogView(l),
		event.TriggerWorkChanged,
		event.TriggerCategoriesChanged,
	)
}

func (hg *HandlerGroup) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, err := hg.entries.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := hg.entries.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := hg.log(r.Context(), work.Filter{Date: e.Date})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Deleted(w, r, LogView(l), event.TriggerWorkChanged, event.TriggerCategoriesChanged)
}
