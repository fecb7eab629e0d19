// Package work records time actually spent on tasks, either directly or
// as the side effect of completing a todo.
package work

import (
	"errors"
	"strings"

	"github.com/angelofallars/dpm/internal/clock"
)

// DefaultCategory is used when an entry is recorded without a category.
const DefaultCategory = "Uncategorized"

var ErrNotFound = errors.New("work entry not found")

// Entry is a completed, time-logged unit of work.
type Entry struct {
	ID              string      `json:"id"`
	Description     string      `json:"description"`
	Category        string      `json:"category"`
	Start           clock.Clock `json:"startTime"`
	End             clock.Clock `json:"endTime"`
	ActualMinutes   int         `json:"actualMinutes"`
	ExpectedMinutes int         `json:"expectedTime,omitempty"`
	Date            string      `json:"date"`
	Notes           string      `json:"notes,omitempty"`
	// Timestamp is the recording time in Unix milliseconds.
	Timestamp int64 `json:"timestamp,omitempty"`
}

func (e Entry) Hours() float64 { return clock.Hours(e.ActualMinutes) }

// Filter narrows a listing. Zero fields match everything; From and To
// are inclusive date bounds.
type Filter struct {
	Date     string
	Category string
	From     string
	To       string
}

func (f Filter) Match(e Entry) bool {
	if f.Date != "" && e.Date != f.Date {
		return false
	}
	if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
		return false
	}
	if f.From != "" && e.Date < f.From {
		return false
	}
	if f.To != "" && e.Date > f.To {
		return false
	}
	return true
}

func categoryOrDefault(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return DefaultCategory
}
