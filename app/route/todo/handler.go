package todo

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/angelofallars/dpm/app/event"
	"github.com/angelofallars/dpm/app/respond"
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/todo"
	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"
)

type HandlerGroup struct {
	todos *todo.Service
	now   func() time.Time
}

func NewHandlerGroup(todos *todo.Service) *HandlerGroup {
	return &HandlerGroup{todos: todos, now: time.Now}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Route("/todos", func(r chi.Router) {
		r.Get("/", hg.handleList)
		r.Post("/", hg.handleCreate)
		r.Patch("/{id}", hg.handleUpdate)
		r.Delete("/{id}", hg.handleDelete)
		r.Post("/{id}/complete", hg.handleComplete)
		r.Post("/{id}/reopen", hg.handleReopen)
	})
}

// Day is the todo list of one date with its completion summary.
type Day struct {
	Date  string      `json:"date"`
	Items []todo.Item `json:"items"`
	Stats todo.Stats  `json:"stats"`
}

func (hg *HandlerGroup) day(ctx context.Context, date string) (Day, error) {
	items, err := hg.todos.ForDate(ctx, date)
	if err != nil {
		return Day{}, err
	}
	return Day{Date: date, Items: items, Stats: todo.Summarize(items)}, nil
}

// respondDay answers with the refreshed list for date. JSON callers get
// data instead.
func (hg *HandlerGroup) respondDay(w http.ResponseWriter, r *http.Request, code int, date string, data any, triggers ...htmx.EventTrigger) {
	d, err := hg.day(r.Context(), date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if data == nil {
		data = d
	}
	respond.Render(w, r, code, data, DayView(d), triggers...)
}

func (hg *HandlerGroup) handleList(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = clock.Today(hg.now())
	}
	hg.respondDay(w, r, http.StatusOK, date, nil)
}

type createRequest struct {
	Description  string `json:"description" form:"description"`
	ExpectedTime int    `json:"expectedTime" form:"expectedTime"`
	Date         string `json:"date" form:"date"`
}

// createRequest satisfies [render.Binder]
func (req *createRequest) Bind(r *http.Request) error {
	req.Description = strings.TrimSpace(req.Description)
	req.Date = strings.TrimSpace(req.Date)
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

	item, err := hg.todos.Add(r.Context(), req.Description, req.ExpectedTime, req.Date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	hg.respondDay(w, r, http.StatusCreated, item.Date, item, event.TriggerTodosChanged)
}

type updateRequest struct {
	Description  *string `json:"description,omitempty" form:"description"`
	ExpectedTime *int    `json:"expectedTime,omitempty" form:"expectedTime"`
	Date         *string `json:"date,omitempty" form:"date"`
}

// updateRequest satisfies [render.Binder]
func (req *updateRequest) Bind(r *http.Request) error { return nil }

func (hg *HandlerGroup) handleUpdate(w http.ResponseWriter, r *http.Request) {
	req := &updateRequest{}
	if err := respond.Bind(r, req); err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := hg.todos.Update(r.Context(), chi.URLParam(r, "id"), todo.Patch{
		Description:     req.Description,
		ExpectedMinutes: req.ExpectedTime,
		Date:            req.Date,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	hg.respondDay(w, r, http.StatusOK, item.Date, item, event.TriggerTodosChanged)
}

func (hg *HandlerGroup) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := hg.todos.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := hg.todos.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := hg.day(r.Context(), item.Date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Deleted(w, r, DayView(d), event.TriggerTodosChanged)
}

type completeRequest struct {
	StartTime string `json:"startTime" form:"startTime"`
	EndTime   string `json:"endTime" form:"endTime"`
	Category  string `json:"category" form:"category"`
	Notes     string `json:"notes" form:"notes"`
}

// completeRequest satisfies [render.Binder]
func (req *completeRequest) Bind(r *http.Request) error {
	req.StartTime = strings.TrimSpace(req.StartTime)
	req.EndTime = strings.TrimSpace(req.EndTime)
	return nil
}

func (hg *HandlerGroup) handleComplete(w http.ResponseWriter, r *http.Request) {
	req := &completeRequest{}
	if err := respond.Bind(r, req); err != nil {
		respond.Error(w, r, err)
		return
	}

	item, err := hg.todos.Complete(r.Context(), chi.URLParam(r, "id"), todo.CompleteInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  req.Category,
		Notes:     req.Notes,
	})
	if err != nil && !item.IsCompleted() {
		respond.Error(w, r, err)
		return
	}
	if err != nil {
		// the todo is done but the work log missed it
		w.Header().Set("Warning", fmt.Sprintf("199 dpm %q", "work entry was not recorded"))
	}

	hg.respondDay(w, r, http.StatusOK, item.Date, item,
		event.TriggerTodosChanged,
		event.TriggerWorkChanged,
		event.TriggerTodoCompleted(clock.Format(item.Completion.ActualMinutes)),
	)
}

func (hg *HandlerGroup) handleReopen(w http.ResponseWriter, r *http.Request) {
	item, err := hg.todos.Reopen(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	hg.respondDay(w, r, http.StatusOK, item.Date, item, event.TriggerTodosChanged)
}
