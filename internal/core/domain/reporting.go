package domain

import (
	"fmt"
	"time"
)

// ReportingWindow is the [first day, last day] interval of a calendar month
// used to decide which records belong to a monthly report. Both bounds are
// dates at midnight UTC.
type ReportingWindow struct {
	Start time.Time
	End   time.Time
}

// MonthWindow computes the reporting window for a month/year pair. The end
// bound lands on the last calendar day of the month, so February of a leap
// year yields the 29th.
func MonthWindow(month time.Month, year int) (ReportingWindow, error) {
	if month < time.January || month > time.December {
		return ReportingWindow{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return ReportingWindow{
		Start: first,
		End:   first.AddDate(0, 1, -1),
	}, nil
}

// Contains reports whether the given date falls inside the window.
func (w ReportingWindow) Contains(d time.Time) bool {
	d = DateOnly(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// DateOnly truncates a timestamp to its calendar date in UTC. Start and end
// dates are stored and compared as dates, never as timestamps.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ActiveInWindow decides whether a record with the given start date, optional
// end date, and recurrence is active during the reporting window.
//
// Non-recurring records are active only in the month their start date falls
// in. Recurring records are active when [startDate, endDate] overlaps the
// window, with a nil end date meaning open-ended. The occurrence cap is a
// creation-time rule and deliberately plays no part here.
func ActiveInWindow(startDate time.Time, endDate *time.Time, rec Recurrence, w ReportingWindow) bool {
	start := DateOnly(startDate)
	if !rec.IsRecurring {
		return w.Contains(start)
	}
	if start.After(w.End) {
		return false
	}
	if endDate == nil {
		return true
	}
	return !DateOnly(*endDate).Before(w.Start)
}
