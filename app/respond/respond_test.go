package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelofallars/dpm/app/component"
	"github.com/angelofallars/dpm/internal/category"
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/employee"
	"github.com/angelofallars/dpm/internal/todo"
	"github.com/angelofallars/dpm/internal/validate"
)

func TestStatus(t *testing.T) {
	testCases := []struct {
		err  error
		want int
	}{
		{validate.Errors{"name": "required"}, http.StatusBadRequest},
		{clock.ErrEndNotAfterStart, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", clock.ErrMissingTimes), http.StatusBadRequest},
		{todo.ErrNotFound, http.StatusNotFound},
		{employee.ErrNotFound, http.StatusNotFound},
		{todo.ErrCompletedImmutable, http.StatusConflict},
		{category.ErrDuplicateName, http.StatusConflict},
		{ErrConfirmationRequired, http.StatusPreconditionRequired},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		if got := Status(tc.err); got != tc.want {
			t.Fatalf("Status(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestError_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/todos", nil)
	rec := httptest.NewRecorder()

	Error(rec, req, validate.Errors{"description": "Description is required"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body ErrResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Fields["description"] != "Description is required" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestError_InternalIsHidden(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()

	Error(rec, req, errors.New("secret connection string"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
}

func TestError_HTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/todos/1/complete", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	Error(rec, req, clock.ErrEndNotAfterStart)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Fatalf("expected no swap, got %q", rec.Header().Get("HX-Reswap"))
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "End time must be after start time") {
		t.Fatalf("expected error message trigger, got %q", rec.Header().Get("HX-Trigger"))
	}
}

func TestRender_Negotiates(t *testing.T) {
	view := component.Func(func(_ context.Context, w *component.Writer) { w.Elem("p", "fragment") })
	data := map[string]int{"count": 2}

	testCases := []struct {
		name    string
		headers map[string]string
		want    string
		page    bool
	}{
		{name: "json", headers: nil, want: `"count":2`},
		{name: "htmx", headers: map[string]string{"HX-Request": "true"}, want: "<p>fragment</p>"},
		{name: "browser", headers: map[string]string{"Accept": "text/html,application/xhtml+xml"}, want: "<p>fragment</p>", page: true},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		rec := httptest.NewRecorder()

		Render(rec, req, http.StatusOK, data, view)

		body := rec.Body.String()
		if !strings.Contains(body, tc.want) {
			t.Fatalf("%s: expected %q in %q", tc.name, tc.want, body)
		}
		if isPage := strings.HasPrefix(body, "<!doctype html>"); isPage != tc.page {
			t.Fatalf("%s: full page = %v, want %v", tc.name, isPage, tc.page)
		}
	}
}
