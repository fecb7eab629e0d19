package category

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/angelofallars/dpm/internal/validate"
)

func newTestService() *Service {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), NewMemory())
	svc.now = func() time.Time { return time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	c, err := svc.Create(context.Background(), Input{Name: "  Research ", Description: "Reading"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.Name != "Research" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}
	if c.Color != Palette[0] {
		t.Fatalf("expected default color %s, got %s", Palette[0], c.Color)
	}
	if c.CreatedAt != "2025-02-20" || c.UpdatedAt != "2025-02-20" {
		t.Fatalf("unexpected timestamps %s %s", c.CreatedAt, c.UpdatedAt)
	}

	if _, err := svc.Create(context.Background(), Input{Name: "RESEARCH"}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestCreate_Invalid(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	testCases := []struct {
		name  string
		in    Input
		field string
	}{
		{name: "empty_name", in: Input{Name: " "}, field: "name"},
		{name: "bad_color", in: Input{Name: "x", Color: "blue"}, field: "color"},
		{name: "short_hex", in: Input{Name: "x", Color: "#FFF"}, field: "color"},
	}

	for _, tc := range testCases {
		_, err := svc.Create(context.Background(), tc.in)
		fields, ok := validate.Fields(err)
		if !ok {
			t.Fatalf("%s: expected field errors, got %v", tc.name, err)
		}
		if _, ok := fields[tc.field]; !ok {
			t.Fatalf("%s: expected error on %s, got %v", tc.name, tc.field, fields)
		}
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	a, _ := svc.Create(context.Background(), Input{Name: "Alpha"})
	if _, err := svc.Create(context.Background(), Input{Name: "Beta"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// renaming to its own name in another case is fine
	if _, err := svc.Update(context.Background(), a.ID, Input{Name: "ALPHA", Color: "#10B981"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if _, err := svc.Update(context.Background(), a.ID, Input{Name: "beta"}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "missing", Input{Name: "Gamma"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, _ := svc.Get(context.Background(), a.ID)
	if got.Name != "ALPHA" || got.Color != "#10B981" {
		t.Fatalf("unexpected stored category %+v", got)
	}
}

func TestCounters(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	c, _ := svc.Create(context.Background(), Input{Name: "Development"})

	for range 3 {
		if err := svc.Increment(context.Background(), "development"); err != nil {
			t.Fatalf("Increment returned error: %v", err)
		}
	}
	if err := svc.Increment(context.Background(), "Unknown"); err != nil {
		t.Fatalf("Increment of unknown name should be ignored, got %v", err)
	}
	if err := svc.Decrement(context.Background(), "Development"); err != nil {
		t.Fatalf("Decrement returned error: %v", err)
	}

	got, _ := svc.Get(context.Background(), c.ID)
	if got.WorkEntriesCount != 2 {
		t.Fatalf("expected 2 entries, got %d", got.WorkEntriesCount)
	}

	for range 5 {
		_ = svc.Decrement(context.Background(), "Development")
	}
	got, _ = svc.Get(context.Background(), c.ID)
	if got.WorkEntriesCount != 0 {
		t.Fatalf("count must not go below zero, got %d", got.WorkEntriesCount)
	}
}

func TestCounters_Rename(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService()
	c, _ := svc.Create(ctx, Input{Name: "Dev"})
	for range 2 {
		if err := svc.Increment(ctx, "Dev"); err != nil {
			t.Fatalf("Increment returned error: %v", err)
		}
	}

	renamed, err := svc.Update(ctx, c.ID, Input{Name: "Development"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if renamed.WorkEntriesCount != 2 {
		t.Fatalf("expected the count to survive the rename, got %d", renamed.WorkEntriesCount)
	}

	// Entries logged before the rename still say "Dev".
	if err := svc.Decrement(ctx, "dev"); err != nil {
		t.Fatalf("Decrement returned error: %v", err)
	}
	if err := svc.Increment(ctx, "Development"); err != nil {
		t.Fatalf("Increment returned error: %v", err)
	}
	got, _ := svc.Get(ctx, c.ID)
	if got.WorkEntriesCount != 2 {
		t.Fatalf("expected 2 entries after decrementing the old name, got %d", got.WorkEntriesCount)
	}

	// A new category may take the old name back; it then owns the counter.
	other, err := svc.Create(ctx, Input{Name: "Dev"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	_ = svc.Increment(ctx, "Dev")
	if got, _ := svc.Get(ctx, other.ID); got.WorkEntriesCount != 1 {
		t.Fatalf("expected the new Dev to be counted, got %d", got.WorkEntriesCount)
	}
	if got, _ := svc.Get(ctx, c.ID); got.WorkEntriesCount != 2 {
		t.Fatalf("expected Development untouched, got %d", got.WorkEntriesCount)
	}
}

func TestSearchAndSeed(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("second Seed returned error: %v", err)
	}

	all, _ := svc.Search(context.Background(), "")
	if len(all) != len(Defaults()) {
		t.Fatalf("expected %d categories, got %d", len(Defaults()), len(all))
	}

	got, _ := svc.Search(context.Background(), "CALLS")
	if len(got) != 1 || got[0].Name != "Meetings" {
		t.Fatalf("expected description match on Meetings, got %v", got)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	c, _ := svc.Create(context.Background(), Input{Name: "Temp"})

	if err := svc.Delete(context.Background(), c.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// the name is free again
	if _, err := svc.Create(context.Background(), Input{Name: "temp"}); err != nil {
		t.Fatalf("Create after delete returned error: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	if got := Summarize(nil); got.MostUsed != "None" || got.Categories != 0 {
		t.Fatalf("unexpected empty summary %+v", got)
	}

	got := Summarize([]Category{
		{Name: "A", WorkEntriesCount: 3},
		{Name: "B", WorkEntriesCount: 7},
		{Name: "C", WorkEntriesCount: 7},
	})
	if got.Categories != 3 || got.WorkEntries != 17 || got.MostUsed != "B" {
		t.Fatalf("unexpected summary %+v", got)
	}
}
