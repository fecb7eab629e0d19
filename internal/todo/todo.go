// Package todo holds the planned units of work for a day and the
// transition from planned to time-logged.
package todo

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/angelofallars/dpm/internal/clock"
)

var (
	ErrNotFound           = errors.New("todo not found")
	ErrAlreadyCompleted   = errors.New("todo is already completed")
	ErrCompletedImmutable = errors.New("completed todos cannot be deleted")
)

// Expected time bounds in minutes, matching the form input limits.
const (
	MinExpectedMinutes = 1
	MaxExpectedMinutes = 480
)

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
)

// Completion is the time log attached to a todo once it is done.
// Its fields only exist on completed items.
type Completion struct {
	Start         clock.Clock
	End           clock.Clock
	ActualMinutes int
}

// Item is a todo. It is completed if and only if Completion is set.
type Item struct {
	ID              string
	Description     string
	ExpectedMinutes int
	Date            string
	Completion      *Completion
}

func (i Item) Status() Status {
	if i.Completion != nil {
		return StatusCompleted
	}
	return StatusIncomplete
}

func (i Item) IsCompleted() bool { return i.Completion != nil }

type itemJSON struct {
	ID            string       `json:"id"`
	Description   string       `json:"description"`
	ExpectedTime  int          `json:"expectedTime"`
	Date          string       `json:"date"`
	Status        Status       `json:"status"`
	StartTime     *clock.Clock `json:"startTime,omitempty"`
	EndTime       *clock.Clock `json:"endTime,omitempty"`
	ActualMinutes *int         `json:"actualMinutes,omitempty"`
}

// MarshalJSON emits the flat wire shape where the time fields are only
// present on completed items.
func (i Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{
		ID:           i.ID,
		Description:  i.Description,
		ExpectedTime: i.ExpectedMinutes,
		Date:         i.Date,
		Status:       i.Status(),
	}
	if c := i.Completion; c != nil {
		start, end, actual := c.Start, c.End, c.ActualMinutes
		out.StartTime = &start
		out.EndTime = &end
		out.ActualMinutes = &actual
	}
	return json.Marshal(out)
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var in itemJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*i = Item{
		ID:              in.ID,
		Description:     in.Description,
		ExpectedMinutes: in.ExpectedTime,
		Date:            in.Date,
	}
	if in.Status == StatusCompleted && in.StartTime != nil && in.EndTime != nil {
		minutes, err := clock.Between(*in.StartTime, *in.EndTime)
		if err != nil {
			return err
		}
		i.Completion = &Completion{Start: *in.StartTime, End: *in.EndTime, ActualMinutes: minutes}
	}
	return nil
}

// Completed is published when a todo transitions to completed.
type Completed struct {
	Item     Item
	Category string
	Notes    string
}

// Stats is the completion summary shown above a day's list.
type Stats struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

func Summarize(items []Item) Stats {
	s := Stats{Total: len(items)}
	for _, item := range items {
		if item.IsCompleted() {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}
