package season

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestWindow_BeforeBoundary verifies a date before July 5 falls in the
// season that started the previous year.
func TestWindow_BeforeBoundary(t *testing.T) {
	start, end := Window(date(2024, time.June, 30))

	if got, want := start, date(2023, time.July, 5); !got.Equal(want) {
		t.Errorf("start = %v, want %v", got, want)
	}
	wantEnd := time.Date(2024, time.July, 4, 23, 59, 59, 999e6, time.UTC)
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

// TestWindow_OnBoundary verifies July 5 itself starts a new season.
func TestWindow_OnBoundary(t *testing.T) {
	start, end := Window(date(2024, time.July, 5))

	if got, want := start, date(2024, time.July, 5); !got.Equal(want) {
		t.Errorf("start = %v, want %v", got, want)
	}
	wantEnd := time.Date(2025, time.July, 4, 23, 59, 59, 999e6, time.UTC)
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestWindow_MidSeason(t *testing.T) {
	start, _ := Window(date(2023, time.December, 1))
	if got, want := start, date(2023, time.July, 5); !got.Equal(want) {
		t.Errorf("start = %v, want %v", got, want)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		ref  time.Time
		want string
	}{
		{date(2024, time.June, 30), "2023-2024"},
		{date(2024, time.July, 5), "2024-2025"},
		{date(2025, time.January, 15), "2024-2025"},
	}
	for _, c := range cases {
		if got := Label(c.ref); got != c.want {
			t.Errorf("Label(%v) = %q, want %q", c.ref, got, c.want)
		}
	}
}

func TestContains(t *testing.T) {
	start, end := Window(date(2023, time.December, 1))

	cases := []struct {
		date string
		want bool
	}{
		{"2023-07-05", true},  // first day, inclusive
		{"2024-07-04", true},  // last day, inclusive
		{"2023-07-04", false}, // previous season
		{"2024-07-05", false}, // next season
		{"2023-12-01", true},
		{"not-a-date", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Contains(start, end, c.date); got != c.want {
			t.Errorf("Contains(%q) = %v, want %v", c.date, got, c.want)
		}
	}
}
