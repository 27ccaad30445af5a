package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		month     time.Month
		year      int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "thirty-one day month",
			month:     time.January,
			year:      2023,
			wantStart: date(2023, time.January, 1),
			wantEnd:   date(2023, time.January, 31),
		},
		{
			name:      "february of a common year",
			month:     time.February,
			year:      2023,
			wantStart: date(2023, time.February, 1),
			wantEnd:   date(2023, time.February, 28),
		},
		{
			name:      "february of a leap year",
			month:     time.February,
			year:      2024,
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "thirty day month",
			month:     time.April,
			year:      2023,
			wantStart: date(2023, time.April, 1),
			wantEnd:   date(2023, time.April, 30),
		},
		{
			name:      "december spans the year boundary correctly",
			month:     time.December,
			year:      2023,
			wantStart: date(2023, time.December, 1),
			wantEnd:   date(2023, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := domain.MonthWindow(tt.month, tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestMonthWindow_InvalidMonth(t *testing.T) {
	_, err := domain.MonthWindow(time.Month(0), 2023)
	assert.Error(t, err)

	_, err = domain.MonthWindow(time.Month(13), 2023)
	assert.Error(t, err)
}

func TestReportingWindow_Contains(t *testing.T) {
	w, err := domain.MonthWindow(time.June, 2023)
	require.NoError(t, err)

	assert.True(t, w.Contains(date(2023, time.June, 1)))
	assert.True(t, w.Contains(date(2023, time.June, 30)))
	assert.False(t, w.Contains(date(2023, time.May, 31)))
	assert.False(t, w.Contains(date(2023, time.July, 1)))

	// Time-of-day must not matter; bounds are calendar dates.
	assert.True(t, w.Contains(time.Date(2023, time.June, 30, 23, 59, 59, 0, time.UTC)))
}

func TestActiveInWindow_NonRecurring(t *testing.T) {
	w, err := domain.MonthWindow(time.March, 2023)
	require.NoError(t, err)

	once := domain.Recurrence{IsRecurring: false}

	// Active only in the month the start date falls in.
	assert.True(t, domain.ActiveInWindow(date(2023, time.March, 15), nil, once, w))
	assert.False(t, domain.ActiveInWindow(date(2023, time.February, 15), nil, once, w))
	assert.False(t, domain.ActiveInWindow(date(2023, time.April, 1), nil, once, w))

	// An end date in the window does not make a one-off from an earlier month
	// active.
	assert.False(t, domain.ActiveInWindow(date(2023, time.February, 15), datePtr(2023, time.March, 15), once, w))
}

func TestActiveInWindow_Recurring(t *testing.T) {
	monthly := domain.Recurrence{IsRecurring: true, Periodicity: domain.Monthly}

	tests := []struct {
		name      string
		startDate time.Time
		endDate   *time.Time
		month     time.Month
		year      int
		want      bool
	}{
		{
			name:      "open-ended recurrence started before the window",
			startDate: date(2023, time.January, 10),
			endDate:   nil,
			month:     time.June,
			year:      2023,
			want:      true,
		},
		{
			name:      "open-ended recurrence starting after the window",
			startDate: date(2023, time.July, 1),
			endDate:   nil,
			month:     time.June,
			year:      2023,
			want:      false,
		},
		{
			name:      "recurrence starting on the last day of the window",
			startDate: date(2023, time.June, 30),
			endDate:   nil,
			month:     time.June,
			year:      2023,
			want:      true,
		},
		{
			name:      "recurrence ended before the window",
			startDate: date(2023, time.January, 10),
			endDate:   datePtr(2023, time.May, 31),
			month:     time.June,
			year:      2023,
			want:      false,
		},
		{
			name:      "recurrence ending on the first day of the window",
			startDate: date(2023, time.January, 10),
			endDate:   datePtr(2023, time.June, 1),
			month:     time.June,
			year:      2023,
			want:      true,
		},
		{
			name:      "interval fully covering the window",
			startDate: date(2022, time.December, 1),
			endDate:   datePtr(2024, time.January, 1),
			month:     time.June,
			year:      2023,
			want:      true,
		},
		{
			name:      "interval contained within the window",
			startDate: date(2023, time.June, 10),
			endDate:   datePtr(2023, time.June, 20),
			month:     time.June,
			year:      2023,
			want:      true,
		},
		{
			name:      "recurrence active through leap-year february 29th",
			startDate: date(2024, time.January, 1),
			endDate:   datePtr(2024, time.February, 29),
			month:     time.February,
			year:      2024,
			want:      true,
		},
		{
			name:      "recurrence ended on january 31st is out of a leap february",
			startDate: date(2024, time.January, 1),
			endDate:   datePtr(2024, time.January, 31),
			month:     time.February,
			year:      2024,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := domain.MonthWindow(tt.month, tt.year)
			require.NoError(t, err)
			got := domain.ActiveInWindow(tt.startDate, tt.endDate, monthly, w)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActiveInWindow_IgnoresOccurrenceCap(t *testing.T) {
	// A monthly recurrence capped at 2 occurrences, started far before the
	// window. The cap is a creation-time rule; membership only looks at the
	// date interval.
	occurrences := 2
	rec := domain.Recurrence{IsRecurring: true, Periodicity: domain.Monthly, MaxOccurrences: &occurrences}

	w, err := domain.MonthWindow(time.December, 2023)
	require.NoError(t, err)

	assert.True(t, domain.ActiveInWindow(date(2023, time.January, 1), nil, rec, w))
}
