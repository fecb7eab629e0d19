// Package clock converts HH:mm time-of-day strings into minute counts
// and renders minute counts for display.
//
// All times are interpreted on one nominal day. Spans never wrap past
// midnight: an end at or before the start is rejected.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidClock     = errors.New("time must be in HH:mm format")
	ErrMissingTimes     = errors.New("Please enter both start and end times")
	ErrEndNotAfterStart = errors.New("End time must be after start time")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDuration  = errors.New("invalid duration")
)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Parse reads a 24-hour "HH:mm" string.
func Parse(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// MustParse is like Parse but panics on malformed input. Meant for
// constants and tests.
func MustParse(s string) Clock {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Minutes returns the minutes since midnight.
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

// Clock satisfies [fmt.Stringer]
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// IsZero reports whether c is midnight, which is also the zero value.
func (c Clock) IsZero() bool { return c.Hour == 0 && c.Minute == 0 }

func (c Clock) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Clock) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Between returns the number of minutes from start to end.
// The result is always positive on success.
func Between(start, end Clock) (int, error) {
	duration := end.Minutes() - start.Minutes()
	if duration <= 0 {
		return 0, ErrEndNotAfterStart
	}
	return duration, nil
}

// Span parses both ends of a time range and returns its length in minutes.
func Span(start, end string) (Clock, Clock, int, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return Clock{}, Clock{}, 0, ErrMissingTimes
	}

	startClock, err := Parse(start)
	if err != nil {
		return Clock{}, Clock{}, 0, fmt.Errorf("start time: %w", err)
	}
	endClock, err := Parse(end)
	if err != nil {
		return Clock{}, Clock{}, 0, fmt.Errorf("end time: %w", err)
	}

	minutes, err := Between(startClock, endClock)
	if err != nil {
		return Clock{}, Clock{}, 0, err
	}
	return startClock, endClock, minutes, nil
}

// Format renders minutes as "{h}h {m}m", dropping whichever part is zero.
// Zero renders as "0m".
func Format(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

// FormatLong is used by the 24-hour distribution where short spans read
// better spelled out.
func FormatLong(minutes int) string {
	if minutes < 60 {
		if minutes < 0 {
			minutes = 0
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return Format(minutes)
}

// ParseDuration is the inverse of Format.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidDuration
	}

	total := 0
	seenHours, seenMinutes := false, false
	for _, part := range strings.Fields(s) {
		if len(part) < 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		unit := part[len(part)-1]
		n, err := strconv.Atoi(part[:len(part)-1])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}

		switch {
		case unit == 'h' && !seenHours && !seenMinutes:
			seenHours = true
			total += n * 60
		case unit == 'm' && !seenMinutes:
			if seenHours && n > 59 {
				return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
			}
			seenMinutes = true
			total += n
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
	}
	return total, nil
}

// Hours converts minutes to fractional hours.
func Hours(minutes int) float64 { return float64(minutes) / 60 }

// Today returns the canonical date string for now in its own location.
func Today(now time.Time) string { return now.Format(time.DateOnly) }

// ValidDate reports whether s is a canonical YYYY-MM-DD date.
func ValidDate(s string) error {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil || t.Format(time.DateOnly) != s {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}
