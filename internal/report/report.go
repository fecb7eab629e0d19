// Package report aggregates work entries for the dashboard views.
package report

import (
	"cmp"
	"math"
	"slices"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/work"
)

// CategoryTotal is the time spent on one category.
type CategoryTotal struct {
	Category     string  `json:"category"`
	TotalMinutes int     `json:"totalMinutes"`
	TotalHours   float64 `json:"totalHours"`
	WorkCount    int     `json:"workCount"`
	Days         int     `json:"days"`
	AverageDaily float64 `json:"averageDaily"`
}

// ByCategory groups entries by category. AverageDaily divides the hours by
// windowDays, the number of distinct days worked across the whole window,
// so categories in the same window share a denominator. A windowDays of
// zero or less falls back to [DistinctDays] of entries. Days is the number
// of days the category itself was worked on. The result is ordered by
// hours, highest first, then by name.
func ByCategory(entries []work.Entry, windowDays int) []CategoryTotal {
	if windowDays <= 0 {
		windowDays = DistinctDays(entries)
	}

	index := map[string]int{}
	days := map[string]map[string]struct{}{}
	var out []CategoryTotal

	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			days[e.Category] = map[string]struct{}{}
			out = append(out, CategoryTotal{Category: e.Category})
		}
		out[i].TotalMinutes += e.ActualMinutes
		out[i].WorkCount++
		days[e.Category][e.Date] = struct{}{}
	}

	for i := range out {
		t := &out[i]
		t.TotalHours = clock.Hours(t.TotalMinutes)
		t.Days = len(days[t.Category])
		t.AverageDaily = t.TotalHours / float64(windowDays)
	}

	slices.SortStableFunc(out, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.TotalMinutes, a.TotalMinutes); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// DistinctDays counts the calendar days that have at least one entry.
func DistinctDays(entries []work.Entry) int {
	days := map[string]struct{}{}
	for _, e := range entries {
		days[e.Date] = struct{}{}
	}
	return len(days)
}

// DayTotal is the time worked on one calendar day.
type DayTotal struct {
	Date       string   `json:"date"`
	Minutes    int      `json:"minutes"`
	Hours      float64  `json:"hours"`
	WorkCount  int      `json:"workCount"`
	Categories []string `json:"categories"`
	Rating     float64  `json:"rating"`
}

// ByDate groups entries per day in ascending date order. Categories lists
// each category touched that day once, sorted.
func ByDate(entries []work.Entry) []DayTotal {
	index := map[string]int{}
	var out []DayTotal

	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(out)
			index[e.Date] = i
			out = append(out, DayTotal{Date: e.Date})
		}
		d := &out[i]
		d.Minutes += e.ActualMinutes
		d.WorkCount++
		if !slices.Contains(d.Categories, e.Category) {
			d.Categories = append(d.Categories, e.Category)
		}
	}

	for i := range out {
		d := &out[i]
		d.Hours = clock.Hours(d.Minutes)
		d.Rating = Rating(d.Hours)
		slices.Sort(d.Categories)
	}

	slices.SortFunc(out, func(a, b DayTotal) int { return cmp.Compare(a.Date, b.Date) })
	return out
}

// Summary is the headline row of the dashboard.
type Summary struct {
	TotalHours   float64 `json:"totalHours"`
	WorkCount    int     `json:"workCount"`
	Categories   int     `json:"categories"`
	Days         int     `json:"days"`
	AverageDaily float64 `json:"averageDaily"`
	Rating       float64 `json:"rating"`
}

func Summarize(entries []work.Entry) Summary {
	var minutes int
	categories := map[string]struct{}{}
	days := map[string]struct{}{}
	for _, e := range entries {
		minutes += e.ActualMinutes
		categories[e.Category] = struct{}{}
		days[e.Date] = struct{}{}
	}

	s := Summary{
		TotalHours: Round1(clock.Hours(minutes)),
		WorkCount:  len(entries),
		Categories: len(categories),
		Days:       len(days),
	}
	var average float64
	if s.Days > 0 {
		average = clock.Hours(minutes) / float64(s.Days)
	}
	// Rate the unrounded value; 3.96h must not round up into the 4h bracket.
	s.AverageDaily = Round1(average)
	s.Rating = Rating(average)
	return s
}

// Round1 rounds to one decimal place for display.
func Round1(f float64) float64 { return math.Round(f*10) / 10 }

// Report bundles everything the export renders for a date window.
type Report struct {
	From       string
	To         string
	Summary    Summary
	Categories []CategoryTotal
	Days       []DayTotal
}

func Build(entries []work.Entry, from, to string) Report {
	return Report{
		From:       from,
		To:         to,
		Summary:    Summarize(entries),
		Categories: ByCategory(entries, DistinctDays(entries)),
		Days:       ByDate(entries),
	}
}
