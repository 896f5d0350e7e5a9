package calendar_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/minqi/tsgen/internal/calendar"
	"github.com/minqi/tsgen/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerateDoubleRestWeek(t *testing.T) {
	// 2025-06-02 is a Monday.
	days, err := calendar.Generate("2025-06-02", "2025-06-08", 8, calendar.Schedule{
		Type:            models.ScheduleDouble,
		ExcludeHolidays: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}

	for i, day := range days {
		weekend := day.Date == "2025-06-07" || day.Date == "2025-06-08"
		if day.IsWorkday == weekend {
			t.Errorf("day %d (%s): IsWorkday = %v", i, day.Date, day.IsWorkday)
		}
		wantHours := 8.0
		if weekend {
			wantHours = 0
		}
		if day.PlannedHours != wantHours {
			t.Errorf("day %s: PlannedHours = %v, want %v", day.Date, day.PlannedHours, wantHours)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	sched := calendar.Schedule{Type: models.ScheduleAlternate, BigWeek: boolPtr(true), ExcludeHolidays: true}
	a, err := calendar.Generate("2025-09-29", "2025-10-31", 7.5, sched)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := calendar.Generate("2025-09-29", "2025-10-31", 7.5, sched)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different sequences")
	}
}

func TestPlannedHoursMatchesWorkdayFlag(t *testing.T) {
	days, err := calendar.Generate("2025-01-01", "2025-03-31", 8, calendar.Schedule{
		Type:            models.ScheduleSingle,
		SingleRestDay:   "sunday",
		ExcludeHolidays: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, day := range days {
		if (day.PlannedHours > 0) != day.IsWorkday {
			t.Errorf("%s: PlannedHours=%v but IsWorkday=%v", day.Date, day.PlannedHours, day.IsWorkday)
		}
	}
}

func TestSingleRestSaturday(t *testing.T) {
	days, err := calendar.Generate("2025-06-02", "2025-06-08", 8, calendar.Schedule{
		Type:          models.ScheduleSingle,
		SingleRestDay: "saturday",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	byDate := indexByDate(days)
	if byDate["2025-06-07"].IsWorkday {
		t.Error("Saturday should rest under single/saturday")
	}
	if !byDate["2025-06-08"].IsWorkday {
		t.Error("Sunday should work under single/saturday")
	}
}

func TestAlternateBigThenSmallWeek(t *testing.T) {
	// Two full weeks starting Monday 2025-06-02; the first is big.
	days, err := calendar.Generate("2025-06-02", "2025-06-15", 8, calendar.Schedule{
		Type:            models.ScheduleAlternate,
		BigWeek:         boolPtr(true),
		ExcludeHolidays: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	byDate := indexByDate(days)

	if !byDate["2025-06-07"].IsWorkday {
		t.Error("big week Saturday should be a workday")
	}
	if byDate["2025-06-08"].IsWorkday {
		t.Error("big week Sunday should rest")
	}
	if byDate["2025-06-14"].IsWorkday {
		t.Error("small week Saturday should rest")
	}
	if byDate["2025-06-15"].IsWorkday {
		t.Error("small week Sunday should rest")
	}
}

func TestAlternateWithoutParityFallsBackToDouble(t *testing.T) {
	days, err := calendar.Generate("2025-06-02", "2025-06-15", 8, calendar.Schedule{
		Type: models.ScheduleAlternate,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, day := range days {
		weekend := day.Date == "2025-06-07" || day.Date == "2025-06-08" ||
			day.Date == "2025-06-14" || day.Date == "2025-06-15"
		if day.IsWorkday == weekend {
			t.Errorf("%s: IsWorkday = %v under parity fallback", day.Date, day.IsWorkday)
		}
	}
}

func TestHolidayExclusion(t *testing.T) {
	// 2025-10-01..03 are fixed holidays; Oct 1 2025 is a Wednesday.
	days, err := calendar.Generate("2025-09-29", "2025-10-05", 8, calendar.Schedule{
		Type:            models.ScheduleDouble,
		ExcludeHolidays: true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	byDate := indexByDate(days)
	for _, date := range []string{"2025-10-01", "2025-10-02", "2025-10-03"} {
		day := byDate[date]
		if !day.IsHoliday {
			t.Errorf("%s: IsHoliday = false", date)
		}
		if day.IsWorkday {
			t.Errorf("%s: holiday marked as workday", date)
		}
	}

	// Holidays stay flagged but remain workdays when not excluded.
	days, err = calendar.Generate("2025-09-29", "2025-10-05", 8, calendar.Schedule{
		Type: models.ScheduleDouble,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	day := indexByDate(days)["2025-10-01"]
	if !day.IsHoliday || !day.IsWorkday {
		t.Errorf("2025-10-01 without exclusion: IsHoliday=%v IsWorkday=%v", day.IsHoliday, day.IsWorkday)
	}
}

func TestGenerateInvalidRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"start after end", "2025-06-10", "2025-06-01"},
		{"bad start", "not-a-date", "2025-06-01"},
		{"bad end", "2025-06-01", "junk"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calendar.Generate(tc.start, tc.end, 8, calendar.Schedule{Type: models.ScheduleDouble})
			if !errors.Is(err, calendar.ErrInvalidDateRange) {
				t.Errorf("err = %v, want ErrInvalidDateRange", err)
			}
		})
	}
}

func indexByDate(days []models.WorkDay) map[string]models.WorkDay {
	m := make(map[string]models.WorkDay, len(days))
	for _, d := range days {
		m[d.Date] = d
	}
	return m
}
