package report

import (
	"math"
	"testing"

	"github.com/angelofallars/dpm/internal/work"
)

func entry(category, date string, minutes int) work.Entry {
	return work.Entry{Category: category, Date: date, ActualMinutes: minutes}
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	entries := []work.Entry{
		entry("Development", "2025-01-10", 180),
		entry("Meetings", "2025-01-10", 30),
		entry("Development", "2025-01-11", 330),
	}

	got := ByCategory(entries, DistinctDays(entries))
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}

	dev := got[0]
	if dev.Category != "Development" {
		t.Fatalf("expected Development first, got %s", dev.Category)
	}
	if dev.TotalHours != 8.5 || dev.WorkCount != 2 {
		t.Fatalf("expected 8.5h over 2 entries, got %vh over %d", dev.TotalHours, dev.WorkCount)
	}
	if dev.Days != 2 || dev.AverageDaily != 4.25 {
		t.Fatalf("expected 4.25h average over 2 days, got %v over %d", dev.AverageDaily, dev.Days)
	}
	// Meetings happened on one day but the window spans two.
	if got[1].TotalMinutes != 30 || got[1].Days != 1 || got[1].AverageDaily != 0.25 {
		t.Fatalf("unexpected meetings total %+v", got[1])
	}

	if fallback := ByCategory(entries, 0); fallback[1].AverageDaily != 0.25 {
		t.Fatalf("expected the entries' own days as the window, got %+v", fallback[1])
	}
	if wide := ByCategory(entries, 5); wide[0].AverageDaily != 1.7 {
		t.Fatalf("expected 8.5h over 5 days, got %v", wide[0].AverageDaily)
	}

	if len(ByCategory(nil, 0)) != 0 {
		t.Fatalf("expected no totals for no entries")
	}
}

func TestByDate(t *testing.T) {
	t.Parallel()

	entries := []work.Entry{
		entry("Testing", "2025-01-11", 60),
		entry("Design", "2025-01-10", 120),
		entry("Design", "2025-01-11", 300),
		entry("Ads", "2025-01-11", 60),
	}

	got := ByDate(entries)
	if len(got) != 2 || got[0].Date != "2025-01-10" || got[1].Date != "2025-01-11" {
		t.Fatalf("expected two days in ascending order, got %+v", got)
	}

	day := got[1]
	if day.Hours != 7 || day.WorkCount != 3 {
		t.Fatalf("unexpected day total %+v", day)
	}
	want := []string{"Ads", "Design", "Testing"}
	if len(day.Categories) != len(want) {
		t.Fatalf("expected categories %v, got %v", want, day.Categories)
	}
	for i := range want {
		if day.Categories[i] != want[i] {
			t.Fatalf("expected categories %v, got %v", want, day.Categories)
		}
	}
	if day.Rating != 3.5 {
		t.Fatalf("expected rating 3.5 for 7h, got %v", day.Rating)
	}
}

func TestRating(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		hours float64
		want  float64
	}{
		{0, 2.5},
		{3, 2.5},
		{3.99, 2.5},
		{4, 3.0},
		{5.9, 3.0},
		{6, 3.5},
		{10, 4.0},
		{13.9, 4.0},
		{14, 4.5},
		{16, 5.0},
		{100, 5.0},
		{-1, 2.5},
	}

	for _, tc := range testCases {
		if got := Rating(tc.hours); got != tc.want {
			t.Fatalf("Rating(%v) = %v, want %v", tc.hours, got, tc.want)
		}
	}
}

func TestRating_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Rating(0)
	for h := 0.0; h <= 30; h += 0.25 {
		r := Rating(h)
		if r < prev {
			t.Fatalf("rating dropped from %v to %v at %vh", prev, r, h)
		}
		if r < MinRating || r > MaxStars {
			t.Fatalf("rating %v out of bounds at %vh", r, h)
		}
		prev = r
	}
}

func TestStarsFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		rating float64
		want   Stars
	}{
		{2.5, Stars{Full: 2, Half: true, Empty: 2}},
		{3, Stars{Full: 3, Empty: 2}},
		{4.5, Stars{Full: 4, Half: true}},
		{5, Stars{Full: 5}},
	}

	for _, tc := range testCases {
		if got := StarsFor(tc.rating); got != tc.want {
			t.Fatalf("StarsFor(%v) = %+v, want %+v", tc.rating, got, tc.want)
		}
	}
}

func TestDistribution(t *testing.T) {
	t.Parallel()

	colors := map[string]string{"Development": "#3B82F6"}
	got := Distribution([]work.Entry{
		entry("Development", "2025-01-10", 360),
		entry("Meetings", "2025-01-10", 120),
	}, func(c string) string { return colors[c] })

	if len(got) != 3 {
		t.Fatalf("expected 2 categories and free time, got %+v", got)
	}
	if got[0].Color != "#3B82F6" || got[0].Hours != 6 || got[0].Percent != 25 {
		t.Fatalf("unexpected first slice %+v", got[0])
	}
	free := got[2]
	if free.Name != FreeTime || free.Hours != 16 {
		t.Fatalf("expected 16h free time, got %+v", free)
	}

	var total float64
	for _, s := range got {
		total += s.Hours
	}
	if math.Abs(total-HoursPerDay) > 1e-9 {
		t.Fatalf("slices should cover 24h, got %v", total)
	}
}

func TestDistribution_Overworked(t *testing.T) {
	t.Parallel()

	got := Distribution([]work.Entry{
		entry("Development", "2025-01-10", 20*60),
		entry("Ops", "2025-01-10", 6*60),
	}, nil)

	for _, s := range got {
		if s.Name == FreeTime {
			t.Fatalf("free time must be omitted when the day is full, got %+v", s)
		}
		if s.Hours < 0 {
			t.Fatalf("negative slice %+v", s)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize([]work.Entry{
		entry("A", "2025-01-10", 100),
		entry("B", "2025-01-10", 50),
		entry("A", "2025-01-11", 50),
	})
	if got.TotalHours != 3.3 || got.WorkCount != 3 || got.Categories != 2 || got.Days != 2 {
		t.Fatalf("unexpected summary %+v", got)
	}
	if got.AverageDaily != 1.7 {
		t.Fatalf("expected 1.7h daily average, got %v", got.AverageDaily)
	}

	if got := Summarize([]work.Entry{entry("A", "2025-01-10", 239)}); got.AverageDaily != 4 || got.Rating != 2.5 {
		t.Fatalf("expected 3h59m to display as 4.0h but rate 2.5, got %+v", got)
	}
	if got := Summarize([]work.Entry{entry("A", "2025-01-10", 240)}); got.Rating != 3 {
		t.Fatalf("expected 4h to rate 3, got %+v", got)
	}

	empty := Summarize(nil)
	if empty.TotalHours != 0 || empty.Rating != MinRating {
		t.Fatalf("unexpected empty summary %+v", empty)
	}
}

func TestDistinctDays(t *testing.T) {
	t.Parallel()

	entries := []work.Entry{
		entry("A", "2025-01-10", 10),
		entry("B", "2025-01-10", 10),
		entry("A", "2025-01-12", 10),
	}
	if got := DistinctDays(entries); got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
	if got := DistinctDays(nil); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}
