package clock

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "09:00", want: Clock{Hour: 9}},
		{in: "23:59", want: Clock{Hour: 23, Minute: 59}},
		{in: " 00:05 ", want: Clock{Minute: 5}},
		{in: "9:00", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidClock) {
				t.Fatalf("Parse(%q): expected ErrInvalidClock, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSpan(t *testing.T) {
	_, _, minutes, err := Span("09:00", "09:45")
	if err != nil {
		t.Fatalf("Span returned error: %v", err)
	}
	if minutes != 45 {
		t.Fatalf("expected 45 minutes, got %d", minutes)
	}

	_, _, minutes, err = Span("08:30", "17:05")
	if err != nil {
		t.Fatalf("Span returned error: %v", err)
	}
	if minutes != 8*60+35 {
		t.Fatalf("expected 515 minutes, got %d", minutes)
	}
}

func TestSpan_EndNotAfterStart(t *testing.T) {
	for _, tc := range [][2]string{
		{"10:00", "10:00"},
		{"10:00", "09:59"},
		{"23:00", "01:00"},
	} {
		_, _, _, err := Span(tc[0], tc[1])
		if !errors.Is(err, ErrEndNotAfterStart) {
			t.Fatalf("Span(%q, %q): expected ErrEndNotAfterStart, got %v", tc[0], tc[1], err)
		}
	}

	if ErrEndNotAfterStart.Error() != "End time must be after start time" {
		t.Fatalf("unexpected message %q", ErrEndNotAfterStart.Error())
	}
}

func TestSpan_MissingTimes(t *testing.T) {
	_, _, _, err := Span("", "10:00")
	if !errors.Is(err, ErrMissingTimes) {
		t.Fatalf("expected ErrMissingTimes, got %v", err)
	}
}

func TestSpan_DurationMatchesMinuteDifference(t *testing.T) {
	for start := 0; start < 24*60; start += 37 {
		for end := start + 1; end < 24*60; end += 53 {
			s := Clock{Hour: start / 60, Minute: start % 60}
			e := Clock{Hour: end / 60, Minute: end % 60}
			_, _, got, err := Span(s.String(), e.String())
			if err != nil {
				t.Fatalf("Span(%s, %s) returned error: %v", s, e, err)
			}
			if got != end-start || got <= 0 {
				t.Fatalf("Span(%s, %s) = %d, want %d", s, e, got, end-start)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	testCases := map[int]string{
		0:   "0m",
		45:  "45m",
		65:  "1h 5m",
		90:  "1h 30m",
		120: "2h",
		480: "8h",
		-5:  "0m",
	}
	for in, want := range testCases {
		if got := Format(in); got != want {
			t.Fatalf("Format(%d) = %q, want %q", in, got, want)
		}
	}

	if got := FormatLong(0); got != "0 minutes" {
		t.Fatalf("FormatLong(0) = %q", got)
	}
	if got := FormatLong(75); got != "1h 15m" {
		t.Fatalf("FormatLong(75) = %q", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for minutes := 0; minutes <= 24*60; minutes++ {
		formatted := Format(minutes)
		parsed, err := ParseDuration(formatted)
		if err != nil {
			t.Fatalf("ParseDuration(%q) returned error: %v", formatted, err)
		}
		if parsed != minutes {
			t.Fatalf("ParseDuration(%q) = %d, want %d", formatted, parsed, minutes)
		}
		if again := Format(parsed); again != formatted {
			t.Fatalf("round trip of %q produced %q", formatted, again)
		}
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, in := range []string{"", "5", "m", "1m 1h", "1h 1h", "1h 75m", "-3m", "1d"} {
		if _, err := ParseDuration(in); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("ParseDuration(%q): expected ErrInvalidDuration, got %v", in, err)
		}
	}
}

func TestValidDate(t *testing.T) {
	if err := ValidDate("2025-01-10"); err != nil {
		t.Fatalf("ValidDate returned error: %v", err)
	}
	for _, in := range []string{"2025-1-10", "2025-02-30", "10/01/2025", ""} {
		if err := ValidDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ValidDate(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}

	now := time.Date(2025, time.January, 10, 23, 30, 0, 0, time.UTC)
	if got := Today(now); got != "2025-01-10" {
		t.Fatalf("Today = %q", got)
	}
}
