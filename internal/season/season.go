// Package season implements the rolling competitive year used everywhere a
// "current season" filter or rollover decision is needed. A season runs from
// July 5 through July 4 of the following year.
package season

import (
	"fmt"
	"time"
)

// boundaryMonth/boundaryDay define the season turnover date (July 5).
const (
	boundaryMonth = time.July
	boundaryDay   = 5
)

// Window returns the season window containing ref. The start is July 5 at
// midnight; the end is the following July 4 at 23:59:59.999. Both are in
// ref's location.
func Window(ref time.Time) (start, end time.Time) {
	year := ref.Year()
	loc := ref.Location()

	july5 := time.Date(year, boundaryMonth, boundaryDay, 0, 0, 0, 0, loc)
	if !ref.Before(july5) {
		start = july5
		end = time.Date(year+1, boundaryMonth, boundaryDay-1, 23, 59, 59, 999e6, loc)
	} else {
		start = time.Date(year-1, boundaryMonth, boundaryDay, 0, 0, 0, 0, loc)
		end = time.Date(year, boundaryMonth, boundaryDay-1, 23, 59, 59, 999e6, loc)
	}
	return start, end
}

// Label returns the season tag for ref, e.g. "2025-2026". The first year is
// the window's start year.
func Label(ref time.Time) string {
	start, _ := Window(ref)
	return fmt.Sprintf("%d-%d", start.Year(), start.Year()+1)
}

// Contains reports whether the ISO date (YYYY-MM-DD) falls inside the window,
// inclusive of both endpoints. Malformed dates are never contained.
func Contains(start, end time.Time, date string) bool {
	d, err := time.ParseInLocation("2006-01-02", date, start.Location())
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}
