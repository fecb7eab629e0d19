package report

import (
	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/work"
)

const (
	HoursPerDay   = 24
	FreeTime      = "Free Time"
	FreeTimeColor = "#E5E7EB"
)

// Slice is one segment of the 24-hour chart.
type Slice struct {
	Name    string  `json:"name"`
	Hours   float64 `json:"hours"`
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
}

// Distribution splits a single day into one slice per category, in first
// seen order, followed by a Free Time slice for the remainder of the 24
// hours. Free time is never negative and is omitted when nothing is left.
// color may be nil.
func Distribution(entries []work.Entry, color func(category string) string) []Slice {
	index := map[string]int{}
	var out []Slice
	var worked float64

	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			s := Slice{Name: e.Category}
			if color != nil {
				s.Color = color(e.Category)
			}
			out = append(out, s)
		}
		h := clock.Hours(e.ActualMinutes)
		out[i].Hours += h
		worked += h
	}

	if free := max(0, HoursPerDay-worked); free > 0 {
		out = append(out, Slice{Name: FreeTime, Hours: free, Color: FreeTimeColor})
	}

	for i := range out {
		out[i].Percent = Round1(out[i].Hours / HoursPerDay * 100)
	}
	return out
}
