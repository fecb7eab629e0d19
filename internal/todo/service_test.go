package todo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/validate"
	"github.com/golang/mock/gomock"
)

func newTestService(sinks ...CompletionSink) (*Memory, *Service) {
	repo := NewMemory()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
	for _, sink := range sinks {
		svc.Subscribe(sink)
	}
	return repo, svc
}

func mustAdd(t *testing.T, svc *Service, description string, expected int, date string) Item {
	t.Helper()

	item, err := svc.Add(context.Background(), description, expected, date)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	return item
}

func TestServiceAdd_Validation(t *testing.T) {
	t.Parallel()

	_, svc := newTestService()

	testCases := []struct {
		name        string
		description string
		expected    int
		date        string
		field       string
	}{
		{name: "blank_description", description: "   ", expected: 30, date: "2025-01-10", field: "description"},
		{name: "zero_expected", description: "task", expected: 0, date: "2025-01-10", field: "expectedTime"},
		{name: "too_long", description: "task", expected: 481, date: "2025-01-10", field: "expectedTime"},
		{name: "bad_date", description: "task", expected: 30, date: "2025-1-10", field: "date"},
	}

	for _, tc := range testCases {
		_, err := svc.Add(context.Background(), tc.description, tc.expected, tc.date)
		fields, ok := validate.Fields(err)
		if !ok {
			t.Fatalf("%s: expected field errors, got %v", tc.name, err)
		}
		if _, ok := fields[tc.field]; !ok {
			t.Fatalf("%s: expected error on %q, got %v", tc.name, tc.field, fields)
		}
	}
}

func TestServiceAdd_TrimsAndDefaultsIncomplete(t *testing.T) {
	t.Parallel()

	_, svc := newTestService()
	item := mustAdd(t, svc, "  Write report  ", 30, "2025-01-10")

	if item.Description != "Write report" {
		t.Fatalf("expected trimmed description, got %q", item.Description)
	}
	if item.Status() != StatusIncomplete {
		t.Fatalf("expected incomplete, got %s", item.Status())
	}
	if item.ID == "" {
		t.Fatalf("expected an id to be generated")
	}
}

func TestWriteReportScenario(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sink := NewMockCompletionSink(ctrl)

	_, svc := newTestService(sink)
	item := mustAdd(t, svc, "Write report", 30, "2025-01-10")
	mustAdd(t, svc, "Other day", 15, "2025-01-11")

	forDay, err := svc.ForDate(context.Background(), "2025-01-10")
	if err != nil {
		t.Fatalf("ForDate returned error: %v", err)
	}
	if len(forDay) != 1 || forDay[0].ID != item.ID {
		t.Fatalf("expected only the report todo on 2025-01-10, got %v", forDay)
	}

	other, err := svc.ForDate(context.Background(), "2025-01-11")
	if err != nil {
		t.Fatalf("ForDate returned error: %v", err)
	}
	for _, it := range other {
		if it.ID == item.ID {
			t.Fatalf("todo leaked into another date")
		}
	}

	var got Completed
	sink.EXPECT().
		TodoCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c Completed) error {
			got = c
			return nil
		})

	done, err := svc.Complete(context.Background(), item.ID, CompleteInput{StartTime: "09:00", EndTime: "09:45", Category: "Writing"})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if done.Status() != StatusCompleted {
		t.Fatalf("expected completed, got %s", done.Status())
	}
	if done.Completion.ActualMinutes != 45 {
		t.Fatalf("expected 45 minutes, got %d", done.Completion.ActualMinutes)
	}
	if clock.Format(done.Completion.ActualMinutes) != "45m" {
		t.Fatalf("expected 45m, got %s", clock.Format(done.Completion.ActualMinutes))
	}
	if got.Item.ID != item.ID || got.Category != "Writing" {
		t.Fatalf("unexpected completion event %+v", got)
	}
}

func TestServiceComplete_RejectsEndNotAfterStart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sink := NewMockCompletionSink(ctrl)
	sink.EXPECT().TodoCompleted(gomock.Any(), gomock.Any()).Times(0)

	repo, svc := newTestService(sink)
	item := mustAdd(t, svc, "task", 30, "2025-01-10")

	for _, tc := range [][2]string{{"10:00", "10:00"}, {"10:00", "09:00"}} {
		_, err := svc.Complete(context.Background(), item.ID, CompleteInput{StartTime: tc[0], EndTime: tc[1]})
		if !errors.Is(err, clock.ErrEndNotAfterStart) {
			t.Fatalf("expected ErrEndNotAfterStart, got %v", err)
		}
	}

	stored, err := repo.Get(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.IsCompleted() {
		t.Fatalf("rejected completion must leave the todo incomplete")
	}
}

func TestServiceComplete_Twice(t *testing.T) {
	t.Parallel()

	_, svc := newTestService()
	item := mustAdd(t, svc, "task", 30, "2025-01-10")

	if _, err := svc.Complete(context.Background(), item.ID, CompleteInput{StartTime: "09:00", EndTime: "10:00"}); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	_, err := svc.Complete(context.Background(), item.ID, CompleteInput{StartTime: "11:00", EndTime: "12:00"})
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
	}
}

// slowRepo widens the window between reading a todo and writing it back.
type slowRepo struct {
	*Memory
}

func (r slowRepo) Get(ctx context.Context, id string) (Item, error) {
	time.Sleep(time.Millisecond)
	return r.Memory.Get(ctx, id)
}

func TestServiceComplete_Concurrent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sink := NewMockCompletionSink(ctrl)
	sink.EXPECT().TodoCompleted(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), slowRepo{NewMemory()}).Subscribe(sink)
	item := mustAdd(t, svc, "Write report", 60, "2025-01-10")

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Complete(context.Background(), item.ID, CompleteInput{StartTime: "09:00", EndTime: "10:00"})
		}()
	}
	wg.Wait()

	var completed, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			completed++
		case errors.Is(err, ErrAlreadyCompleted):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if completed != 1 || rejected != callers-1 {
		t.Fatalf("expected 1 completion and %d rejections, got %d and %d", callers-1, completed, rejected)
	}
}

func TestServiceComplete_SinkFailureKeepsCompletion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sink := NewMockCompletionSink(ctrl)
	sink.EXPECT().TodoCompleted(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	repo, svc := newTestService(sink)
	item := mustAdd(t, svc, "task", 30, "2025-01-10")

	done, err := svc.Complete(context.Background(), item.ID, CompleteInput{StartTime: "09:00", EndTime: "10:00"})
	if err == nil {
		t.Fatalf("expected sink error to be reported")
	}
	if !done.IsCompleted() {
		t.Fatalf("expected the completed item to be returned")
	}
	stored, _ := repo.Get(context.Background(), item.ID)
	if !stored.IsCompleted() {
		t.Fatalf("expected the completion to be stored")
	}
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	_, svc := newTestService()
	open := mustAdd(t, svc, "open", 30, "2025-01-10")
	closed := mustAdd(t, svc, "closed", 30, "2025-01-10")

	if _, err := svc.Complete(context.Background(), closed.ID, CompleteInput{StartTime: "09:00", EndTime: "09:30"}); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), closed.ID); !errors.Is(err, ErrCompletedImmutable) {
		t.Fatalf("expected ErrCompletedImmutable, got %v", err)
	}
	if err := svc.Delete(context.Background(), open.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), open.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceReopen_ClearsCompletion(t *testing.T) {
	t.Parallel()

	_, svc := newTestService()
	item := mustAdd(t, svc, "task", 30, "2025-01-10")
	if _, err := svc.Complete(context.Background(), item.ID, CompleteInput{StartTime: "09:00", EndTime: "09:30"}); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	reopened, err := svc.Reopen(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("Reopen returned error: %v", err)
	}
	if reopened.Status() != StatusIncomplete || reopened.Completion != nil {
		t.Fatalf("expected completion to be cleared, got %+v", reopened)
	}
	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("reopened todo should be deletable: %v", err)
	}
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	_, svc := newTestService()
	item := mustAdd(t, svc, "task", 30, "2025-01-10")

	if _, err := svc.Update(context.Background(), item.ID, Patch{}); !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}

	description := " renamed "
	updated, err := svc.Update(context.Background(), item.ID, Patch{Description: &description})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Description != "renamed" || updated.ExpectedMinutes != 30 || updated.Date != "2025-01-10" {
		t.Fatalf("unexpected merge result %+v", updated)
	}

	tooLong := 500
	if _, err := svc.Update(context.Background(), item.ID, Patch{ExpectedMinutes: &tooLong}); !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	stored, _ := svc.Get(context.Background(), item.ID)
	if stored.ExpectedMinutes != 30 {
		t.Fatalf("failed update must not be stored, got %d", stored.ExpectedMinutes)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	items := []Item{
		{ID: "1", Completion: &Completion{ActualMinutes: 10}},
		{ID: "2"},
		{ID: "3"},
	}
	stats := Summarize(items)
	if stats.Completed != 1 || stats.Total != 3 || stats.Percentage != 33 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if Summarize(nil).Percentage != 0 {
		t.Fatalf("empty list should be 0%%")
	}
}

func TestItemJSON(t *testing.T) {
	t.Parallel()

	open := Item{ID: "a", Description: "task", ExpectedMinutes: 30, Date: "2025-01-10"}
	b, err := json.Marshal(open)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(b, &wire); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if wire["status"] != "incomplete" {
		t.Fatalf("expected incomplete status, got %v", wire["status"])
	}
	for _, key := range []string{"startTime", "endTime", "actualMinutes"} {
		if _, ok := wire[key]; ok {
			t.Fatalf("incomplete todo must not carry %q", key)
		}
	}

	done := open
	done.Completion = &Completion{Start: clock.MustParse("09:00"), End: clock.MustParse("09:45"), ActualMinutes: 45}
	b, err = json.Marshal(done)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var decoded Item
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded.Completion == nil || decoded.Completion.ActualMinutes != 45 || decoded.Completion.End.String() != "09:45" {
		t.Fatalf("unexpected decoded item %+v", decoded)
	}
}
