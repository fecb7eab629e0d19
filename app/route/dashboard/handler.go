package dashboard

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/angelofallars/dpm/app/respond"
	"github.com/angelofallars/dpm/internal/category"
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/listing"
	"github.com/angelofallars/dpm/internal/pdf"
	"github.com/angelofallars/dpm/internal/report"
	"github.com/angelofallars/dpm/internal/work"
	"github.com/go-chi/chi/v5"
)

type HandlerGroup struct {
	entries    *work.Service
	categories *category.Service
	pageSize   int
	now        func() time.Time
}

func NewHandlerGroup(entries *work.Service, categories *category.Service, pageSize int) *HandlerGroup {
	return &HandlerGroup{
		entries:    entries,
		categories: categories,
		pageSize:   cmp.Or(pageSize, listing.DefaultPageSize),
		now:        time.Now,
	}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/categories", hg.handleCategories)
		r.Get("/categories/{name}", hg.handleCategory)
		r.Get("/days", hg.handleDays)
		r.Get("/days/{date}", hg.handleDay)
		r.Get("/export.pdf", hg.handleExport)
	})
}

// window reads the optional from and to bounds.
func window(r *http.Request) (work.Filter, error) {
	q := r.URL.Query()
	f := work.Filter{From: q.Get("from"), To: q.Get("to")}
	for _, d := range []string{f.From, f.To} {
		if d == "" {
			continue
		}
		if err := clock.ValidDate(d); err != nil {
			return f, err
		}
	}
	return f, nil
}

// colors maps category names, case-insensitively, to their colors.
// Unknown names get the default color.
func (hg *HandlerGroup) colors(ctx context.Context) (func(string) string, error) {
	all, err := hg.categories.Search(ctx, "")
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(all))
	for _, c := range all {
		byName[strings.ToLower(c.Name)] = c.Color
	}
	return func(name string) string {
		return cmp.Or(byName[strings.ToLower(name)], category.Palette[0])
	}, nil
}

// Dashboard is the per-category overview.
type Dashboard struct {
	From       string                 `json:"from,omitempty"`
	To         string                 `json:"to,omitempty"`
	Summary    report.Summary         `json:"summary"`
	Categories []report.CategoryTotal `json:"categories"`
	color      func(string) string
}

func (hg *HandlerGroup) handleCategories(w http.ResponseWriter, r *http.Request) {
	f, err := window(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	entries, err := hg.entries.List(r.Context(), f)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	color, err := hg.colors(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	d := Dashboard{
		From:       f.From,
		To:         f.To,
		Summary:    report.Summarize(entries),
		Categories: report.ByCategory(entries, report.DistinctDays(entries)),
		color:      color,
	}
	respond.Render(w, r, http.StatusOK, d, DashboardView(d))
}

// CategoryDetail pages through the entries of one category.
type CategoryDetail struct {
	Total   report.CategoryTotal     `json:"total"`
	Sort    listing.Sort             `json:"sort"`
	Entries listing.Page[work.Entry] `json:"entries"`
	state   listing.State
}

func compareEntries(column string) func(a, b work.Entry) int {
	switch column {
	case "date":
		return func(a, b work.Entry) int {
			return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.Start.Minutes(), b.Start.Minutes()))
		}
	case "duration":
		return listing.By(func(e work.Entry) int { return e.ActualMinutes })
	case "description":
		return listing.By(func(e work.Entry) string { return strings.ToLower(e.Description) })
	}
	return nil
}

func (hg *HandlerGroup) handleCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	all, err := hg.entries.List(r.Context(), work.Filter{})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	f := work.Filter{Category: name}
	var entries []work.Entry
	for _, e := range all {
		if f.Match(e) {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		respond.Error(w, r, fmt.Errorf("%w: no work recorded under %q", work.ErrNotFound, name))
		return
	}

	state := listing.ParseState(r.URL.Query())
	state.Sort.Column = cmp.Or(state.Sort.Column, "date")

	d := CategoryDetail{
		Total:   report.ByCategory(entries, report.DistinctDays(all))[0],
		Sort:    state.Sort,
		Entries: listing.Apply(entries, state, hg.pageSize, nil, compareEntries),
		state:   state,
	}
	respond.Render(w, r, http.StatusOK, d, CategoryView(d))
}

// DayList pages through the per-day totals.
type DayList struct {
	Sort  listing.Sort                  `json:"sort"`
	Days  listing.Page[report.DayTotal] `json:"days"`
	state listing.State
}

func compareDays(column string) func(a, b report.DayTotal) int {
	switch column {
	case "date":
		return listing.By(func(d report.DayTotal) string { return d.Date })
	case "hours":
		return listing.By(func(d report.DayTotal) int { return d.Minutes })
	case "entries":
		return listing.By(func(d report.DayTotal) int { return d.WorkCount })
	}
	return nil
}

func (hg *HandlerGroup) handleDays(w http.ResponseWriter, r *http.Request) {
	entries, err := hg.entries.List(r.Context(), work.Filter{})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	state := listing.ParseState(r.URL.Query())
	state.Sort.Column = cmp.Or(state.Sort.Column, "date")

	d := DayList{
		Sort:  state.Sort,
		Days:  listing.Apply(report.ByDate(entries), state, hg.pageSize, nil, compareDays),
		state: state,
	}
	respond.Render(w, r, http.StatusOK, d, DaysView(d))
}

// DayDetail is one day split into categories and free time.
type DayDetail struct {
	Date         string         `json:"date"`
	Hours        float64        `json:"hours"`
	Rating       float64        `json:"rating"`
	Distribution []report.Slice `json:"distribution"`
	Entries      []work.Entry   `json:"entries"`
}

func (hg *HandlerGroup) handleDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := clock.ValidDate(date); err != nil {
		respond.Error(w, r, err)
		return
	}
	entries, err := hg.entries.List(r.Context(), work.Filter{Date: date})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	color, err := hg.colors(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var minutes int
	for _, e := range entries {
		minutes += e.ActualMinutes
	}
	d := DayDetail{
		Date:         date,
		Hours:        report.Round1(clock.Hours(minutes)),
		Rating:       report.Rating(clock.Hours(minutes)),
		Distribution: report.Distribution(entries, color),
		Entries:      entries,
	}
	respond.Render(w, r, http.StatusOK, d, DayView(d))
}

func (hg *HandlerGroup) handleExport(w http.ResponseWriter, r *http.Request) {
	f, err := window(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	entries, err := hg.entries.List(r.Context(), f)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	now := hg.now()
	var buf bytes.Buffer
	if err := pdf.WriteReport(&buf, report.Build(entries, f.From, f.To), now); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="work-report-%s.pdf"`, clock.Today(now)))
	_, _ = buf.WriteTo(w)
}
