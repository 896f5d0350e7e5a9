// Package calendar generates workday sequences for a date range under
// the configured rest schedule.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/minqi/tsgen/internal/models"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateRange is returned for unparsable dates or a start date
// after the end date.
var ErrInvalidDateRange = errors.New("invalid date range")

// Schedule configures which weekdays count as rest days
type Schedule struct {
	Type            string // double, single, alternate
	SingleRestDay   string // saturday or sunday, single schedule only
	BigWeek         *bool  // whether the start date's week is a big week; nil falls back to double rest
	ExcludeHolidays bool
}

// fixedHolidays is the short fixed-date holiday table: New Year's Day,
// Labor Day and the first three days of National Day. Lunar-calendar
// holidays are out of scope.
var fixedHolidays = []struct{ month, day int }{
	{1, 1},
	{5, 1},
	{10, 1},
	{10, 2},
	{10, 3},
}

// Generate enumerates every calendar day from startDate to endDate
// inclusive and marks each as workday or rest day. The sequence is
// deterministic: identical arguments always produce identical output.
func Generate(startDate, endDate string, dailyHours float64, sched Schedule) ([]models.WorkDay, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start date %q", ErrInvalidDateRange, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end date %q", ErrInvalidDateRange, endDate)
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange, startDate, endDate)
	}

	var days []models.WorkDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		holiday := isFixedHoliday(d)

		workday := true
		if sched.ExcludeHolidays && holiday {
			workday = false
		} else if isRestDay(d, start, sched) {
			workday = false
		}

		planned := 0.0
		if workday {
			planned = dailyHours
		}

		days = append(days, models.WorkDay{
			Date:         d.Format(dateLayout),
			IsWorkday:    workday,
			IsHoliday:    holiday,
			PlannedHours: planned,
		})
	}
	return days, nil
}

func isFixedHoliday(d time.Time) bool {
	for _, h := range fixedHolidays {
		if int(d.Month()) == h.month && d.Day() == h.day {
			return true
		}
	}
	return false
}

func isRestDay(d, start time.Time, sched Schedule) bool {
	switch sched.Type {
	case models.ScheduleSingle:
		if sched.SingleRestDay == "sunday" {
			return d.Weekday() == time.Sunday
		}
		return d.Weekday() == time.Saturday
	case models.ScheduleAlternate:
		if sched.BigWeek == nil {
			// Week parity unknown: fall back to double rest.
			return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
		}
		big := *sched.BigWeek
		if weeksBetween(start, d)%2 == 1 {
			big = !big
		}
		if big {
			return d.Weekday() == time.Sunday
		}
		return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
	default: // double
		return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
	}
}

// weeksBetween counts Monday-aligned week boundaries crossed between
// the week containing a and the week containing b.
func weeksBetween(a, b time.Time) int {
	ma := mondayOf(a)
	mb := mondayOf(b)
	days := int(mb.Sub(ma).Hours() / 24)
	weeks := days / 7
	if weeks < 0 {
		weeks = -weeks
	}
	return weeks
}

func mondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // ISO: Sunday closes the week
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
