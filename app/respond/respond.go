// Package respond writes handler results as HTML fragments for htmx
// requests, as full pages for browsers, and as JSON for everyone else.
package respond

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/app/event"
	"github.com/angelofallars/dpm/internal/category"
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/employee"
	"github.com/angelofallars/dpm/internal/todo"
	"github.com/angelofallars/dpm/internal/validate"
	"github.com/angelofallars/dpm/internal/work"
	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/render"
)

// ErrConfirmationRequired is returned for destructive requests sent
// without the confirmation header.
var ErrConfirmationRequired = errors.New("Please confirm this action before it is carried out.")

// Status maps an error onto the HTTP status it is reported with.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, validate.ErrInvalid),
		errors.Is(err, clock.ErrInvalidClock),
		errors.Is(err, clock.ErrMissingTimes),
		errors.Is(err, clock.ErrEndNotAfterStart),
		errors.Is(err, clock.ErrInvalidDate),
		errors.Is(err, clock.ErrInvalidDuration):
		return http.StatusBadRequest
	case errors.Is(err, todo.ErrNotFound),
		errors.Is(err, work.ErrNotFound),
		errors.Is(err, category.ErrNotFound),
		errors.Is(err, employee.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, todo.ErrAlreadyCompleted),
		errors.Is(err, todo.ErrCompletedImmutable),
		errors.Is(err, category.ErrDuplicateName):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// ErrResponse is the JSON error body.
type ErrResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Error reports err. htmx requests get no body, only an error message
// trigger plus any extra triggers.
func Error(w http.ResponseWriter, r *http.Request, err error, triggers ...htmx.EventTrigger) {
	code := Status(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		slog.Default().Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "Something went wrong. Please try again."
	}

	fields, _ := validate.Fields(err)
	if len(fields) > 0 {
		message = fields.Error()
	}

	if htmx.IsHTMX(r) {
		_ = htmx.NewResponse().
			StatusCode(code).
			Reswap(htmx.SwapNone).
			AddTrigger(append(triggers, event.TriggerSetErrMessage(message))...).
			Write(w)
		return
	}

	render.Status(r, code)
	render.JSON(w, r, ErrResponse{Error: message, Fields: fields})
}

// Render writes a successful result. view is rendered for htmx requests
// and, wrapped in the page layout, for browsers asking for HTML.
func Render(w http.ResponseWriter, r *http.Request, code int, data any, view templ.Component, triggers ...htmx.EventTrigger) {
	if htmx.IsHTMX(r) {
		err := htmx.NewResponse().
			StatusCode(code).
			AddTrigger(append(triggers, event.TriggerSetErrMessage(""))...).
			RenderTempl(r.Context(), w, view)
		if err != nil {
			slog.Default().Warn("render failed", "path", r.URL.Path, "error", err)
		}
		return
	}

	if render.GetAcceptedContentType(r) == render.ContentTypeHTML {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(code)
		if err := component.FullPage("Daily Progress Manager", view).Render(r.Context(), w); err != nil {
			slog.Default().Warn("render failed", "path", r.URL.Path, "error", err)
		}
		return
	}

	render.Status(r, code)
	render.JSON(w, r, data)
}

// Deleted answers a successful delete. htmx callers swap in view, which
// is usually the refreshed list.
func Deleted(w http.ResponseWriter, r *http.Request, view templ.Component, triggers ...htmx.EventTrigger) {
	if htmx.IsHTMX(r) {
		Render(w, r, http.StatusOK, nil, view, triggers...)
		return
	}
	render.NoContent(w, r)
}

// Bind decodes and validates the request body into v. Decoding failures
// are reported as invalid input.
func Bind(r *http.Request, v render.Binder) error {
	if err := render.Bind(r, v); err != nil {
		if errors.Is(err, validate.ErrInvalid) {
			return err
		}
		return fmt.Errorf("%w: %v", validate.ErrInvalid, err)
	}
	return nil
}
